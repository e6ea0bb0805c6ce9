package submenu

import (
	"context"

	"github.com/fekuna/menu-service/internal/submenu/dto"
)

type UseCase interface {
	CreateSubMenu(ctx context.Context, menuID string, input *dto.CreateSubMenuInput) (*dto.SubMenuResponse, error)
	ListSubMenus(ctx context.Context, menuID string, skip, limit int) ([]dto.SubMenuResponse, error)
	GetSubMenu(ctx context.Context, menuID, submenuID string) (*dto.SubMenuResponse, error)
	UpdateSubMenu(ctx context.Context, menuID, submenuID string, input *dto.UpdateSubMenuInput) (*dto.SubMenuResponse, error)
	DeleteSubMenu(ctx context.Context, menuID, submenuID string) error
}
