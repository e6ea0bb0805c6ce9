// Package reconcile imports the menu hierarchy from a spreadsheet into the
// store on a fixed interval. The job is purely additive: rows whose
// identifier already exists are left alone, rows missing from the sheet are
// never deleted, and sheet-supplied identifiers are used verbatim. It writes
// past the cache on purpose; inserted entities surface in cached reads once
// the TTL expires.
package reconcile

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fekuna/menu-service/internal/dish"
	"github.com/fekuna/menu-service/internal/menu"
	"github.com/fekuna/menu-service/internal/model"
	"github.com/fekuna/menu-service/internal/submenu"
	"github.com/fekuna/menu-service/pkg/logger"
)

type Reconciler struct {
	menus    menu.Repository
	submenus submenu.Repository
	dishes   dish.Repository
	logger   logger.ZapLogger
	path     string
	interval time.Duration

	// Existence check and insert are not atomic, so overlapping runs could
	// both insert the "missing" row. TryLock serializes runs: a tick that
	// finds the previous run still going is skipped.
	running sync.Mutex
}

func New(
	menus menu.Repository,
	submenus submenu.Repository,
	dishes dish.Repository,
	log logger.ZapLogger,
	path string,
	interval time.Duration,
) *Reconciler {
	return &Reconciler{
		menus:    menus,
		submenus: submenus,
		dishes:   dishes,
		logger:   log,
		path:     path,
		interval: interval,
	}
}

// Start runs the job immediately and then on every tick until ctx is done.
func (r *Reconciler) Start(ctx context.Context) {
	r.logger.Info("starting sheet reconciler",
		zap.String("path", r.path),
		zap.Duration("interval", r.interval))

	if err := r.RunOnce(ctx); err != nil {
		r.logger.Warn("sheet sync failed", zap.Error(err))
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("sheet reconciler stopped")
			return
		case <-ticker.C:
			if err := r.RunOnce(ctx); err != nil {
				r.logger.Warn("sheet sync failed", zap.Error(err))
			}
		}
	}
}

// RunOnce reads the sheet and upserts missing rows. A run that would overlap
// a still-active one is skipped.
func (r *Reconciler) RunOnce(ctx context.Context) error {
	if !r.running.TryLock() {
		r.logger.Debug("previous sheet sync still running, skipping")
		return nil
	}
	defer r.running.Unlock()

	rows, err := loadSheet(r.path)
	if err != nil {
		return err
	}
	return r.apply(ctx, rows)
}

// apply walks the sheet top to bottom. A submenu row attaches to the last
// seen menu row, a dish row to the last seen submenu row. Bad rows are
// logged and skipped; the batch never aborts on a single row.
func (r *Reconciler) apply(ctx context.Context, rows [][]string) error {
	var currentMenuID, currentSubMenuID string

	for i, cells := range rows {
		row, err := parseRow(cells)
		if err != nil {
			r.logger.Warn("skipping sheet row", zap.Int("row", i+1), zap.Error(err))
			continue
		}

		switch row.Kind {
		case RowMenu:
			currentMenuID = row.ID
			if err := r.upsertMenu(ctx, row); err != nil {
				r.logger.Warn("menu row not applied", zap.Int("row", i+1), zap.Error(err))
			}
		case RowSubMenu:
			currentSubMenuID = row.ID
			if currentMenuID == "" {
				r.logger.Warn("submenu row before any menu row", zap.Int("row", i+1))
				continue
			}
			if err := r.upsertSubMenu(ctx, currentMenuID, row); err != nil {
				r.logger.Warn("submenu row not applied", zap.Int("row", i+1), zap.Error(err))
			}
		case RowDish:
			if currentSubMenuID == "" {
				r.logger.Warn("dish row before any submenu row", zap.Int("row", i+1))
				continue
			}
			if err := r.upsertDish(ctx, currentSubMenuID, row); err != nil {
				r.logger.Warn("dish row not applied", zap.Int("row", i+1), zap.Error(err))
			}
		}
	}
	return nil
}

func (r *Reconciler) upsertMenu(ctx context.Context, row *SheetRow) error {
	existing, err := r.menus.FindByID(ctx, row.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	desc := row.Description
	return r.menus.Create(ctx, &model.Menu{
		ID:          row.ID,
		Title:       row.Title,
		Description: &desc,
	})
}

func (r *Reconciler) upsertSubMenu(ctx context.Context, menuID string, row *SheetRow) error {
	existing, err := r.submenus.FindByID(ctx, menuID, row.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	desc := row.Description
	return r.submenus.Create(ctx, &model.SubMenu{
		ID:          row.ID,
		Title:       row.Title,
		Description: &desc,
		MenuID:      menuID,
	})
}

func (r *Reconciler) upsertDish(ctx context.Context, submenuID string, row *SheetRow) error {
	existing, err := r.dishes.FindByID(ctx, submenuID, row.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	desc := row.Description
	return r.dishes.Create(ctx, &model.Dish{
		ID:          row.ID,
		Title:       row.Title,
		Description: &desc,
		Price:       row.Price,
		SubMenuID:   submenuID,
	})
}
