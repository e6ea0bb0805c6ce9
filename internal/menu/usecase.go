package menu

import (
	"context"

	"github.com/fekuna/menu-service/internal/menu/dto"
)

type UseCase interface {
	CreateMenu(ctx context.Context, input *dto.CreateMenuInput) (*dto.MenuResponse, error)
	ListMenus(ctx context.Context, skip, limit int) ([]dto.MenuResponse, error)
	ListMenuTree(ctx context.Context) ([]dto.MenuTreeResponse, error)
	GetMenu(ctx context.Context, id string) (*dto.MenuResponse, error)
	UpdateMenu(ctx context.Context, input *dto.UpdateMenuInput) (*dto.MenuResponse, error)
	DeleteMenu(ctx context.Context, id string) error
}
