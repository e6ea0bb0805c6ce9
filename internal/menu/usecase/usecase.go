package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/menu-service/internal/cache"
	"github.com/fekuna/menu-service/internal/dish"
	"github.com/fekuna/menu-service/internal/menu"
	"github.com/fekuna/menu-service/internal/menu/dto"
	"github.com/fekuna/menu-service/internal/model"
	"github.com/fekuna/menu-service/internal/submenu"
	"github.com/fekuna/menu-service/pkg/logger"
)

type menuUseCase struct {
	repo        menu.Repository
	submenuRepo submenu.Repository
	dishRepo    dish.Repository
	cache       cache.Cache
	logger      logger.ZapLogger

	// background dispatches cache invalidation after a committed write.
	// Asynchronous in production; tests replace it with a direct call.
	background func(fn func())
}

func NewMenuUseCase(
	repo menu.Repository,
	submenuRepo submenu.Repository,
	dishRepo dish.Repository,
	c cache.Cache,
	log logger.ZapLogger,
) menu.UseCase {
	return &menuUseCase{
		repo:        repo,
		submenuRepo: submenuRepo,
		dishRepo:    dishRepo,
		cache:       c,
		logger:      log,
		background:  func(fn func()) { go fn() },
	}
}

func (uc *menuUseCase) CreateMenu(ctx context.Context, input *dto.CreateMenuInput) (*dto.MenuResponse, error) {
	id := input.ID
	if id == "" {
		id = uuid.New().String()
	}
	desc := input.Description

	m := &model.Menu{
		ID:          id,
		Title:       input.Title,
		Description: &desc,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	uc.invalidateCache()

	return toResponse(m, 0, 0), nil
}

func (uc *menuUseCase) ListMenus(ctx context.Context, skip, limit int) ([]dto.MenuResponse, error) {
	key := cache.MenuListKey(skip, limit)
	cached := []dto.MenuResponse{}
	if uc.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	menus, err := uc.repo.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	// One count query per menu. Fine for menu-sized lists.
	response := make([]dto.MenuResponse, 0, len(menus))
	for i := range menus {
		submenus, dishes, err := uc.repo.CountChildren(ctx, menus[i].ID)
		if err != nil {
			return nil, err
		}
		response = append(response, *toResponse(&menus[i], submenus, dishes))
	}

	uc.cache.Set(ctx, key, response)
	return response, nil
}

func (uc *menuUseCase) ListMenuTree(ctx context.Context) ([]dto.MenuTreeResponse, error) {
	cached := []dto.MenuTreeResponse{}
	if uc.cache.Get(ctx, cache.MenuFullKey, &cached) {
		return cached, nil
	}

	menus, err := uc.repo.FindAll(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	response := make([]dto.MenuTreeResponse, 0, len(menus))
	for i := range menus {
		m := &menus[i]
		submenus, err := uc.submenuRepo.FindAllByMenu(ctx, m.ID, 0, 0)
		if err != nil {
			return nil, err
		}

		submenuNodes := make([]dto.SubMenuTreeResponse, 0, len(submenus))
		for j := range submenus {
			s := &submenus[j]
			dishes, err := uc.dishRepo.FindAllBySubMenu(ctx, s.ID, 0, 0)
			if err != nil {
				return nil, err
			}

			dishNodes := make([]dto.DishTreeResponse, 0, len(dishes))
			for k := range dishes {
				d := &dishes[k]
				dishNodes = append(dishNodes, dto.DishTreeResponse{
					ID:          d.ID,
					Title:       d.Title,
					Description: deref(d.Description),
					Price:       model.FormatPrice(d.Price),
					SubMenuID:   d.SubMenuID,
				})
			}

			submenuNodes = append(submenuNodes, dto.SubMenuTreeResponse{
				ID:          s.ID,
				Title:       s.Title,
				Description: deref(s.Description),
				MenuID:      s.MenuID,
				Dishes:      dishNodes,
			})
		}

		response = append(response, dto.MenuTreeResponse{
			ID:          m.ID,
			Title:       m.Title,
			Description: deref(m.Description),
			SubMenus:    submenuNodes,
		})
	}

	uc.cache.Set(ctx, cache.MenuFullKey, response)
	return response, nil
}

func (uc *menuUseCase) GetMenu(ctx context.Context, id string) (*dto.MenuResponse, error) {
	key := cache.MenuItemKey(id)
	var cached dto.MenuResponse
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, model.ErrMenuNotFound
	}

	submenus, dishes, err := uc.repo.CountChildren(ctx, id)
	if err != nil {
		return nil, err
	}

	response := toResponse(m, submenus, dishes)
	uc.cache.Set(ctx, key, response)
	return response, nil
}

func (uc *menuUseCase) UpdateMenu(ctx context.Context, input *dto.UpdateMenuInput) (*dto.MenuResponse, error) {
	m, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, model.ErrMenuNotFound
	}

	desc := input.Description
	m.Title = input.Title
	m.Description = &desc
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	uc.invalidateCache()

	submenus, dishes, err := uc.repo.CountChildren(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	return toResponse(m, submenus, dishes), nil
}

func (uc *menuUseCase) DeleteMenu(ctx context.Context, id string) error {
	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return model.ErrMenuNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateCache()
	uc.logger.Debug("menu deleted", zap.String("menu_id", id))
	return nil
}

func (uc *menuUseCase) invalidateCache() {
	uc.background(func() {
		uc.cache.Invalidate(context.Background(), cache.MenuWriteScope()...)
	})
}

func toResponse(m *model.Menu, submenus, dishes int) *dto.MenuResponse {
	return &dto.MenuResponse{
		ID:            m.ID,
		Title:         m.Title,
		Description:   deref(m.Description),
		SubMenusCount: submenus,
		DishesCount:   dishes,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
