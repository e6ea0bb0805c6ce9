package dish

import (
	"context"

	"github.com/fekuna/menu-service/internal/dish/dto"
)

type UseCase interface {
	CreateDish(ctx context.Context, menuID, submenuID string, input *dto.CreateDishInput) (*dto.DishResponse, error)
	ListDishes(ctx context.Context, menuID, submenuID string, skip, limit int) ([]dto.DishResponse, error)
	GetDish(ctx context.Context, menuID, submenuID, dishID string) (*dto.DishResponse, error)
	UpdateDish(ctx context.Context, menuID, submenuID, dishID string, input *dto.UpdateDishInput) (*dto.DishResponse, error)
	DeleteDish(ctx context.Context, menuID, submenuID, dishID string) error
}
