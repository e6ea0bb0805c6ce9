package dish

import (
	"context"

	"github.com/fekuna/menu-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, dish *model.Dish) error
	FindAllBySubMenu(ctx context.Context, submenuID string, skip, limit int) ([]model.Dish, error)
	// FindByID is parent-scoped: a dish under a different submenu than
	// requested resolves to (nil, nil).
	FindByID(ctx context.Context, submenuID, dishID string) (*model.Dish, error)
	Update(ctx context.Context, dish *model.Dish) error
	Delete(ctx context.Context, id string) error
}
