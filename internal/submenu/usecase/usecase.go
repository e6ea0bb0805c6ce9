package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/menu-service/internal/cache"
	"github.com/fekuna/menu-service/internal/menu"
	"github.com/fekuna/menu-service/internal/model"
	"github.com/fekuna/menu-service/internal/submenu"
	"github.com/fekuna/menu-service/internal/submenu/dto"
	"github.com/fekuna/menu-service/pkg/logger"
)

type subMenuUseCase struct {
	repo     submenu.Repository
	menuRepo menu.Repository
	cache    cache.Cache
	logger   logger.ZapLogger

	background func(fn func())
}

func NewSubMenuUseCase(
	repo submenu.Repository,
	menuRepo menu.Repository,
	c cache.Cache,
	log logger.ZapLogger,
) submenu.UseCase {
	return &subMenuUseCase{
		repo:       repo,
		menuRepo:   menuRepo,
		cache:      c,
		logger:     log,
		background: func(fn func()) { go fn() },
	}
}

func (uc *subMenuUseCase) CreateSubMenu(ctx context.Context, menuID string, input *dto.CreateSubMenuInput) (*dto.SubMenuResponse, error) {
	parent, err := uc.menuRepo.FindByID(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, model.ErrMenuNotFound
	}

	id := input.ID
	if id == "" {
		id = uuid.New().String()
	}
	desc := input.Description

	s := &model.SubMenu{
		ID:          id,
		Title:       input.Title,
		Description: &desc,
		MenuID:      menuID,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.invalidateCache()

	return toResponse(s, 0), nil
}

func (uc *subMenuUseCase) ListSubMenus(ctx context.Context, menuID string, skip, limit int) ([]dto.SubMenuResponse, error) {
	key := cache.SubMenuListKey(menuID, skip, limit)
	cached := []dto.SubMenuResponse{}
	if uc.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	submenus, err := uc.repo.FindAllByMenu(ctx, menuID, skip, limit)
	if err != nil {
		return nil, err
	}

	response := make([]dto.SubMenuResponse, 0, len(submenus))
	for i := range submenus {
		count, err := uc.repo.CountDishes(ctx, submenus[i].ID)
		if err != nil {
			return nil, err
		}
		response = append(response, *toResponse(&submenus[i], count))
	}

	uc.cache.Set(ctx, key, response)
	return response, nil
}

func (uc *subMenuUseCase) GetSubMenu(ctx context.Context, menuID, submenuID string) (*dto.SubMenuResponse, error) {
	key := cache.SubMenuItemKey(menuID, submenuID)
	var cached dto.SubMenuResponse
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	s, err := uc.repo.FindByID(ctx, menuID, submenuID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, model.ErrSubMenuNotFound
	}

	count, err := uc.repo.CountDishes(ctx, submenuID)
	if err != nil {
		return nil, err
	}

	response := toResponse(s, count)
	uc.cache.Set(ctx, key, response)
	return response, nil
}

func (uc *subMenuUseCase) UpdateSubMenu(ctx context.Context, menuID, submenuID string, input *dto.UpdateSubMenuInput) (*dto.SubMenuResponse, error) {
	s, err := uc.repo.FindByID(ctx, menuID, submenuID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, model.ErrSubMenuNotFound
	}

	desc := input.Description
	s.Title = input.Title
	s.Description = &desc
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.invalidateCache()

	count, err := uc.repo.CountDishes(ctx, submenuID)
	if err != nil {
		return nil, err
	}
	return toResponse(s, count), nil
}

func (uc *subMenuUseCase) DeleteSubMenu(ctx context.Context, menuID, submenuID string) error {
	s, err := uc.repo.FindByID(ctx, menuID, submenuID)
	if err != nil {
		return err
	}
	if s == nil {
		return model.ErrSubMenuNotFound
	}

	if err := uc.repo.Delete(ctx, submenuID); err != nil {
		return err
	}

	uc.invalidateCache()
	uc.logger.Debug("submenu deleted", zap.String("submenu_id", submenuID))
	return nil
}

// A submenu write also flushes menu caches: both counts on the parent menu
// are derived from submenu rows.
func (uc *subMenuUseCase) invalidateCache() {
	uc.background(func() {
		uc.cache.Invalidate(context.Background(), cache.SubMenuWriteScope()...)
	})
}

func toResponse(s *model.SubMenu, dishesCount int) *dto.SubMenuResponse {
	desc := ""
	if s.Description != nil {
		desc = *s.Description
	}
	return &dto.SubMenuResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: desc,
		MenuID:      s.MenuID,
		DishesCount: dishesCount,
	}
}
