package submenu

import (
	"context"

	"github.com/fekuna/menu-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, submenu *model.SubMenu) error
	FindAllByMenu(ctx context.Context, menuID string, skip, limit int) ([]model.SubMenu, error)
	// FindByID is parent-scoped: a submenu that exists under a different
	// menu than requested resolves to (nil, nil).
	FindByID(ctx context.Context, menuID, submenuID string) (*model.SubMenu, error)
	Update(ctx context.Context, submenu *model.SubMenu) error
	Delete(ctx context.Context, id string) error
	CountDishes(ctx context.Context, submenuID string) (int, error)
}
