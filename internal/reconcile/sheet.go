package reconcile

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fekuna/menu-service/internal/model"
)

// The sheet encodes the hierarchy positionally. Which leading columns are
// populated decides the row shape:
//
//	menu row:    [menu_id, title, description, -, -, -]
//	submenu row: [-, submenu_id, title, description, -, -]
//	dish row:    [-, -, dish_id, title, description, price]

type RowKind int

const (
	RowMenu RowKind = iota
	RowSubMenu
	RowDish
)

type SheetRow struct {
	Kind        RowKind
	ID          string
	Title       string
	Description string
	Price       float64
}

var errEmptyRow = errors.New("row has no identifier cell")

// loadSheet reads every row of the workbook's first sheet as raw cells.
func loadSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func parseRow(cells []string) (*SheetRow, error) {
	switch {
	case cell(cells, 0) != "":
		return &SheetRow{
			Kind:        RowMenu,
			ID:          cell(cells, 0),
			Title:       cell(cells, 1),
			Description: cell(cells, 2),
		}, nil
	case cell(cells, 1) != "":
		return &SheetRow{
			Kind:        RowSubMenu,
			ID:          cell(cells, 1),
			Title:       cell(cells, 2),
			Description: cell(cells, 3),
		}, nil
	case cell(cells, 2) != "":
		price, err := model.ParsePrice(cell(cells, 5))
		if err != nil {
			return nil, fmt.Errorf("dish price %q: %w", cell(cells, 5), err)
		}
		return &SheetRow{
			Kind:        RowDish,
			ID:          cell(cells, 2),
			Title:       cell(cells, 3),
			Description: cell(cells, 4),
			Price:       price,
		}, nil
	default:
		return nil, errEmptyRow
	}
}

// cell reads column i, tolerating the short rows excelize produces when
// trailing cells are empty.
func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return cells[i]
}
