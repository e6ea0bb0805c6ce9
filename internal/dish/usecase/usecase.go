package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/menu-service/internal/cache"
	"github.com/fekuna/menu-service/internal/dish"
	"github.com/fekuna/menu-service/internal/dish/dto"
	"github.com/fekuna/menu-service/internal/model"
	"github.com/fekuna/menu-service/internal/submenu"
	"github.com/fekuna/menu-service/pkg/logger"
)

type dishUseCase struct {
	repo        dish.Repository
	submenuRepo submenu.Repository
	cache       cache.Cache
	logger      logger.ZapLogger

	background func(fn func())
}

func NewDishUseCase(
	repo dish.Repository,
	submenuRepo submenu.Repository,
	c cache.Cache,
	log logger.ZapLogger,
) dish.UseCase {
	return &dishUseCase{
		repo:        repo,
		submenuRepo: submenuRepo,
		cache:       c,
		logger:      log,
		background:  func(fn func()) { go fn() },
	}
}

func (uc *dishUseCase) CreateDish(ctx context.Context, menuID, submenuID string, input *dto.CreateDishInput) (*dto.DishResponse, error) {
	parent, err := uc.submenuRepo.FindByID(ctx, menuID, submenuID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, model.ErrSubMenuNotFound
	}

	price, err := model.ParsePrice(input.Price)
	if err != nil {
		return nil, model.ErrInvalidPrice
	}

	id := input.ID
	if id == "" {
		id = uuid.New().String()
	}
	desc := input.Description

	d := &model.Dish{
		ID:          id,
		Title:       input.Title,
		Description: &desc,
		Price:       price,
		SubMenuID:   submenuID,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	uc.invalidateCache()

	return toResponse(d), nil
}

func (uc *dishUseCase) ListDishes(ctx context.Context, _, submenuID string, skip, limit int) ([]dto.DishResponse, error) {
	key := cache.DishListKey(submenuID, skip, limit)
	cached := []dto.DishResponse{}
	if uc.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	dishes, err := uc.repo.FindAllBySubMenu(ctx, submenuID, skip, limit)
	if err != nil {
		return nil, err
	}

	response := make([]dto.DishResponse, 0, len(dishes))
	for i := range dishes {
		response = append(response, *toResponse(&dishes[i]))
	}

	uc.cache.Set(ctx, key, response)
	return response, nil
}

func (uc *dishUseCase) GetDish(ctx context.Context, _, submenuID, dishID string) (*dto.DishResponse, error) {
	key := cache.DishItemKey(submenuID, dishID)
	var cached dto.DishResponse
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	d, err := uc.repo.FindByID(ctx, submenuID, dishID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, model.ErrDishNotFound
	}

	response := toResponse(d)
	uc.cache.Set(ctx, key, response)
	return response, nil
}

func (uc *dishUseCase) UpdateDish(ctx context.Context, _, submenuID, dishID string, input *dto.UpdateDishInput) (*dto.DishResponse, error) {
	d, err := uc.repo.FindByID(ctx, submenuID, dishID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, model.ErrDishNotFound
	}

	price, err := model.ParsePrice(input.Price)
	if err != nil {
		return nil, model.ErrInvalidPrice
	}

	desc := input.Description
	d.Title = input.Title
	d.Description = &desc
	d.Price = price
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}

	uc.invalidateCache()

	return toResponse(d), nil
}

func (uc *dishUseCase) DeleteDish(ctx context.Context, _, submenuID, dishID string) error {
	d, err := uc.repo.FindByID(ctx, submenuID, dishID)
	if err != nil {
		return err
	}
	if d == nil {
		return model.ErrDishNotFound
	}

	if err := uc.repo.Delete(ctx, dishID); err != nil {
		return err
	}

	uc.invalidateCache()
	uc.logger.Debug("dish deleted", zap.String("dish_id", dishID))
	return nil
}

// A dish write flushes the whole ancestor chain: dishes_count shows up on
// both submenu and menu reads.
func (uc *dishUseCase) invalidateCache() {
	uc.background(func() {
		uc.cache.Invalidate(context.Background(), cache.DishWriteScope()...)
	})
}

func toResponse(d *model.Dish) *dto.DishResponse {
	desc := ""
	if d.Description != nil {
		desc = *d.Description
	}
	return &dto.DishResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: desc,
		Price:       model.FormatPrice(d.Price),
		SubMenuID:   d.SubMenuID,
	}
}
