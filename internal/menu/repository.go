package menu

import (
	"context"

	"github.com/fekuna/menu-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, menu *model.Menu) error
	FindAll(ctx context.Context, skip, limit int) ([]model.Menu, error)
	FindByID(ctx context.Context, id string) (*model.Menu, error)
	Update(ctx context.Context, menu *model.Menu) error
	Delete(ctx context.Context, id string) error
	// CountChildren returns the distinct number of submenus under the menu
	// and the distinct number of dishes across those submenus. A missing
	// menu yields zero counts, not an error.
	CountChildren(ctx context.Context, menuID string) (submenus int, dishes int, err error)
}
