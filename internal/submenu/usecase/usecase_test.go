package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/menu-service/internal/cache"
	"github.com/fekuna/menu-service/internal/model"
	"github.com/fekuna/menu-service/internal/submenu/dto"
	"github.com/fekuna/menu-service/internal/testutil"
	"github.com/fekuna/menu-service/pkg/logger"
)

func newTestUseCase(t *testing.T) (*subMenuUseCase, *testutil.Store, *cache.Memory) {
	t.Helper()

	store := testutil.NewStore()
	mem := cache.NewMemory(time.Minute)
	uc := NewSubMenuUseCase(
		&testutil.SubMenuRepo{S: store},
		&testutil.MenuRepo{S: store},
		mem,
		logger.NewNop(),
	).(*subMenuUseCase)
	uc.background = func(fn func()) { fn() }
	return uc, store, mem
}

func seedMenu(t *testing.T, store *testutil.Store, id string) {
	t.Helper()
	desc := "d"
	repo := &testutil.MenuRepo{S: store}
	require.NoError(t, repo.Create(context.Background(), &model.Menu{ID: id, Title: "Menu " + id, Description: &desc}))
}

func TestCreateSubMenuUnderMissingMenu(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.CreateSubMenu(context.Background(), "missing", &dto.CreateSubMenuInput{Title: "T"})
	require.ErrorIs(t, err, model.ErrMenuNotFound)
}

func TestCreateSubMenu(t *testing.T) {
	uc, store, _ := newTestUseCase(t)
	seedMenu(t, store, "m1")

	created, err := uc.CreateSubMenu(context.Background(), "m1", &dto.CreateSubMenuInput{Title: "Drinks", Description: "cold"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "m1", created.MenuID)
	assert.Equal(t, "Drinks", created.Title)
	assert.Equal(t, 0, created.DishesCount)
}

func TestGetSubMenuScopedToParent(t *testing.T) {
	uc, store, _ := newTestUseCase(t)
	seedMenu(t, store, "m1")
	seedMenu(t, store, "m2")
	ctx := context.Background()

	created, err := uc.CreateSubMenu(ctx, "m1", &dto.CreateSubMenuInput{Title: "Drinks"})
	require.NoError(t, err)

	_, err = uc.GetSubMenu(ctx, "m2", created.ID)
	require.ErrorIs(t, err, model.ErrSubMenuNotFound, "submenu under another menu must read as absent")

	got, err := uc.GetSubMenu(ctx, "m1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestSubMenuDishCount(t *testing.T) {
	uc, store, _ := newTestUseCase(t)
	seedMenu(t, store, "m1")
	ctx := context.Background()

	created, err := uc.CreateSubMenu(ctx, "m1", &dto.CreateSubMenuInput{Title: "Drinks"})
	require.NoError(t, err)

	desc := ""
	dishes := &testutil.DishRepo{S: store}
	require.NoError(t, dishes.Create(ctx, &model.Dish{ID: "d1", Title: "Cola", Description: &desc, Price: 1, SubMenuID: created.ID}))
	require.NoError(t, dishes.Create(ctx, &model.Dish{ID: "d2", Title: "Juice", Description: &desc, Price: 2, SubMenuID: created.ID}))

	got, err := uc.GetSubMenu(ctx, "m1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.DishesCount)
}

func TestSubMenuWriteFlushesMenuCache(t *testing.T) {
	uc, store, mem := newTestUseCase(t)
	seedMenu(t, store, "m1")
	ctx := context.Background()

	// A cached menu read bakes in submenus_count; a submenu write must
	// evict it.
	mem.Set(ctx, cache.MenuItemKey("m1"), map[string]any{"id": "m1"})

	_, err := uc.CreateSubMenu(ctx, "m1", &dto.CreateSubMenuInput{Title: "Drinks"})
	require.NoError(t, err)

	var stale map[string]any
	assert.False(t, mem.Get(ctx, cache.MenuItemKey("m1"), &stale))
}

func TestUpdateSubMenu(t *testing.T) {
	uc, store, _ := newTestUseCase(t)
	seedMenu(t, store, "m1")
	ctx := context.Background()

	created, err := uc.CreateSubMenu(ctx, "m1", &dto.CreateSubMenuInput{Title: "Drinks"})
	require.NoError(t, err)

	updated, err := uc.UpdateSubMenu(ctx, "m1", created.ID, &dto.UpdateSubMenuInput{Title: "Cold Drinks", Description: "new"})
	require.NoError(t, err)
	assert.Equal(t, "Cold Drinks", updated.Title)
	assert.Equal(t, "new", updated.Description)
}

func TestDeleteSubMenuCascadesDishes(t *testing.T) {
	uc, store, _ := newTestUseCase(t)
	seedMenu(t, store, "m1")
	ctx := context.Background()

	created, err := uc.CreateSubMenu(ctx, "m1", &dto.CreateSubMenuInput{Title: "Drinks"})
	require.NoError(t, err)

	desc := ""
	dishes := &testutil.DishRepo{S: store}
	require.NoError(t, dishes.Create(ctx, &model.Dish{ID: "d1", Title: "Cola", Description: &desc, Price: 1, SubMenuID: created.ID}))

	require.NoError(t, uc.DeleteSubMenu(ctx, "m1", created.ID))

	_, err = uc.GetSubMenu(ctx, "m1", created.ID)
	require.ErrorIs(t, err, model.ErrSubMenuNotFound)
	assert.Empty(t, store.Dishes)
}
