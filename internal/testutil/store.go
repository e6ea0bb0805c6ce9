// Package testutil provides in-memory repository fakes backed by one shared
// Store, so usecase, handler and reconciler tests run without PostgreSQL.
// Cascade-delete semantics mirror the real schema.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/fekuna/menu-service/internal/dish"
	"github.com/fekuna/menu-service/internal/menu"
	"github.com/fekuna/menu-service/internal/model"
	"github.com/fekuna/menu-service/internal/submenu"
)

type Store struct {
	mu       sync.Mutex
	Menus    map[string]model.Menu
	SubMenus map[string]model.SubMenu
	Dishes   map[string]model.Dish

	MenuCreates    int
	SubMenuCreates int
	DishCreates    int
	MenuFindAlls   int
	MenuFindByIDs  int
}

func NewStore() *Store {
	return &Store{
		Menus:    make(map[string]model.Menu),
		SubMenus: make(map[string]model.SubMenu),
		Dishes:   make(map[string]model.Dish),
	}
}

type MenuRepo struct{ S *Store }
type SubMenuRepo struct{ S *Store }
type DishRepo struct{ S *Store }

var (
	_ menu.Repository    = (*MenuRepo)(nil)
	_ submenu.Repository = (*SubMenuRepo)(nil)
	_ dish.Repository    = (*DishRepo)(nil)
)

func (r *MenuRepo) Create(_ context.Context, m *model.Menu) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.Menus[m.ID] = *m
	r.S.MenuCreates++
	return nil
}

func (r *MenuRepo) FindAll(_ context.Context, skip, limit int) ([]model.Menu, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.MenuFindAlls++

	menus := make([]model.Menu, 0, len(r.S.Menus))
	for _, m := range r.S.Menus {
		menus = append(menus, m)
	}
	sort.Slice(menus, func(i, j int) bool { return menus[i].Title < menus[j].Title })
	return page(menus, skip, limit), nil
}

func (r *MenuRepo) FindByID(_ context.Context, id string) (*model.Menu, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.MenuFindByIDs++

	if m, ok := r.S.Menus[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *MenuRepo) Update(_ context.Context, m *model.Menu) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Menus[m.ID]; ok {
		r.S.Menus[m.ID] = *m
	}
	return nil
}

func (r *MenuRepo) Delete(_ context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	delete(r.S.Menus, id)
	for sid, s := range r.S.SubMenus {
		if s.MenuID != id {
			continue
		}
		delete(r.S.SubMenus, sid)
		for did, d := range r.S.Dishes {
			if d.SubMenuID == sid {
				delete(r.S.Dishes, did)
			}
		}
	}
	return nil
}

func (r *MenuRepo) CountChildren(_ context.Context, menuID string) (int, int, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()

	submenus, dishes := 0, 0
	for sid, s := range r.S.SubMenus {
		if s.MenuID != menuID {
			continue
		}
		submenus++
		for _, d := range r.S.Dishes {
			if d.SubMenuID == sid {
				dishes++
			}
		}
	}
	return submenus, dishes, nil
}

func (r *SubMenuRepo) Create(_ context.Context, s *model.SubMenu) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.SubMenus[s.ID] = *s
	r.S.SubMenuCreates++
	return nil
}

func (r *SubMenuRepo) FindAllByMenu(_ context.Context, menuID string, skip, limit int) ([]model.SubMenu, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()

	submenus := []model.SubMenu{}
	for _, s := range r.S.SubMenus {
		if s.MenuID == menuID {
			submenus = append(submenus, s)
		}
	}
	sort.Slice(submenus, func(i, j int) bool { return submenus[i].Title < submenus[j].Title })
	return page(submenus, skip, limit), nil
}

func (r *SubMenuRepo) FindByID(_ context.Context, menuID, submenuID string) (*model.SubMenu, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()

	if s, ok := r.S.SubMenus[submenuID]; ok && s.MenuID == menuID {
		return &s, nil
	}
	return nil, nil
}

func (r *SubMenuRepo) Update(_ context.Context, s *model.SubMenu) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.SubMenus[s.ID]; ok {
		r.S.SubMenus[s.ID] = *s
	}
	return nil
}

func (r *SubMenuRepo) Delete(_ context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	delete(r.S.SubMenus, id)
	for did, d := range r.S.Dishes {
		if d.SubMenuID == id {
			delete(r.S.Dishes, did)
		}
	}
	return nil
}

func (r *SubMenuRepo) CountDishes(_ context.Context, submenuID string) (int, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()

	count := 0
	for _, d := range r.S.Dishes {
		if d.SubMenuID == submenuID {
			count++
		}
	}
	return count, nil
}

func (r *DishRepo) Create(_ context.Context, d *model.Dish) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.Dishes[d.ID] = *d
	r.S.DishCreates++
	return nil
}

func (r *DishRepo) FindAllBySubMenu(_ context.Context, submenuID string, skip, limit int) ([]model.Dish, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()

	dishes := []model.Dish{}
	for _, d := range r.S.Dishes {
		if d.SubMenuID == submenuID {
			dishes = append(dishes, d)
		}
	}
	sort.Slice(dishes, func(i, j int) bool { return dishes[i].Title < dishes[j].Title })
	return page(dishes, skip, limit), nil
}

func (r *DishRepo) FindByID(_ context.Context, submenuID, dishID string) (*model.Dish, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()

	if d, ok := r.S.Dishes[dishID]; ok && d.SubMenuID == submenuID {
		return &d, nil
	}
	return nil, nil
}

func (r *DishRepo) Update(_ context.Context, d *model.Dish) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Dishes[d.ID]; ok {
		r.S.Dishes[d.ID] = *d
	}
	return nil
}

func (r *DishRepo) Delete(_ context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	delete(r.S.Dishes, id)
	return nil
}

func page[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
