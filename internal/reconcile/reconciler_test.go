package reconcile

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fekuna/menu-service/internal/testutil"
	"github.com/fekuna/menu-service/pkg/logger"
)

func TestParseRowShapes(t *testing.T) {
	menuRow, err := parseRow([]string{"m1", "Food", "main menu"})
	require.NoError(t, err)
	assert.Equal(t, RowMenu, menuRow.Kind)
	assert.Equal(t, "m1", menuRow.ID)
	assert.Equal(t, "Food", menuRow.Title)
	assert.Equal(t, "main menu", menuRow.Description)

	subRow, err := parseRow([]string{"", "s1", "Drinks", "cold"})
	require.NoError(t, err)
	assert.Equal(t, RowSubMenu, subRow.Kind)
	assert.Equal(t, "s1", subRow.ID)
	assert.Equal(t, "Drinks", subRow.Title)

	dishRow, err := parseRow([]string{"", "", "d1", "Cola", "sweet", "1.50"})
	require.NoError(t, err)
	assert.Equal(t, RowDish, dishRow.Kind)
	assert.Equal(t, "d1", dishRow.ID)
	assert.Equal(t, 1.5, dishRow.Price)
}

func TestParseRowErrors(t *testing.T) {
	_, err := parseRow([]string{"", "", "", "", "", ""})
	require.ErrorIs(t, err, errEmptyRow)

	_, err = parseRow(nil)
	require.ErrorIs(t, err, errEmptyRow)

	_, err = parseRow([]string{"", "", "d1", "Cola", "sweet", "not-a-price"})
	require.Error(t, err)
}

func newTestReconciler(t *testing.T, path string) (*Reconciler, *testutil.Store) {
	t.Helper()

	store := testutil.NewStore()
	r := New(
		&testutil.MenuRepo{S: store},
		&testutil.SubMenuRepo{S: store},
		&testutil.DishRepo{S: store},
		logger.NewNop(),
		path,
		time.Second,
	)
	return r, store
}

func TestApplyBuildsHierarchy(t *testing.T) {
	r, store := newTestReconciler(t, "")

	rows := [][]string{
		{"m1", "Food", "main"},
		{"", "s1", "Drinks", "cold"},
		{"", "", "d1", "Cola", "sweet", "1.50"},
		{"", "", "d2", "Juice", "", "2"},
		{"", "s2", "Soups", ""},
		{"", "", "d3", "Borscht", "", "5.25"},
	}
	require.NoError(t, r.apply(context.Background(), rows))

	require.Len(t, store.Menus, 1)
	require.Len(t, store.SubMenus, 2)
	require.Len(t, store.Dishes, 3)

	assert.Equal(t, "m1", store.SubMenus["s1"].MenuID)
	assert.Equal(t, "m1", store.SubMenus["s2"].MenuID)
	assert.Equal(t, "s1", store.Dishes["d1"].SubMenuID)
	assert.Equal(t, "s2", store.Dishes["d3"].SubMenuID)
	assert.Equal(t, 5.25, store.Dishes["d3"].Price)
}

func TestApplyIsAdditiveAndIdempotent(t *testing.T) {
	r, store := newTestReconciler(t, "")
	ctx := context.Background()

	rows := [][]string{
		{"m1", "Food", ""},
		{"", "s1", "Drinks", ""},
		{"", "", "d1", "Cola", "", "1"},
	}
	require.NoError(t, r.apply(ctx, rows))
	require.NoError(t, r.apply(ctx, rows))

	assert.Equal(t, 1, store.MenuCreates, "existing rows must not be recreated")
	assert.Equal(t, 1, store.SubMenuCreates)
	assert.Equal(t, 1, store.DishCreates)

	// Existing entities keep their stored state.
	renamed := [][]string{{"m1", "Renamed", ""}}
	require.NoError(t, r.apply(ctx, renamed))
	assert.Equal(t, "Food", store.Menus["m1"].Title)
}

func TestApplySkipsBadRows(t *testing.T) {
	r, store := newTestReconciler(t, "")

	rows := [][]string{
		{"", "", "d0", "Orphan", "", "1"}, // dish before any submenu
		{"m1", "Food", ""},
		{"", "", "d1", "Bad", "", "oops"}, // unparsable price
		{"", "s1", "Drinks", ""},
		{"", "", "d2", "Cola", "", "1.50"},
	}
	require.NoError(t, r.apply(context.Background(), rows))

	assert.Len(t, store.Menus, 1)
	assert.Len(t, store.SubMenus, 1)
	require.Len(t, store.Dishes, 1)
	assert.Equal(t, "Cola", store.Dishes["d2"].Title)
}

func TestRunOnceReadsWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Menu.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]any{
		{"m1", "Food", "main"},
		{"", "s1", "Drinks", "cold"},
		{"", "", "d1", "Cola", "sweet", "1.50"},
	}
	for i, row := range cells {
		for j, v := range row {
			if v == "" {
				continue
			}
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, name, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	r, store := newTestReconciler(t, path)
	require.NoError(t, r.RunOnce(context.Background()))

	require.Len(t, store.Menus, 1)
	require.Len(t, store.SubMenus, 1)
	require.Len(t, store.Dishes, 1)
	assert.Equal(t, 1.5, store.Dishes["d1"].Price)
}

func TestRunOnceMissingFile(t *testing.T) {
	r, _ := newTestReconciler(t, filepath.Join(t.TempDir(), "absent.xlsx"))

	err := r.RunOnce(context.Background())
	require.Error(t, err)
}

func TestRunOnceSkipsWhileBusy(t *testing.T) {
	r, _ := newTestReconciler(t, "irrelevant")

	r.running.Lock()
	done := make(chan error, 1)
	go func() { done <- r.RunOnce(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err, "overlapping run must be skipped, not fail")
	case <-time.After(time.Second):
		r.running.Unlock()
		t.Fatal("RunOnce blocked instead of skipping")
	}
	r.running.Unlock()
}

func TestCellPadsShortRows(t *testing.T) {
	cells := []string{"a", "b"}
	assert.Equal(t, "a", cell(cells, 0))
	assert.Equal(t, "", cell(cells, 5))
}
