package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/menu-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, m *model.Menu) error {
	query := `
        INSERT INTO menus (id, title, description)
        VALUES (:id, :title, :description)
    `
	_, err := r.DB.NamedExecContext(ctx, query, m)
	return err
}

func (r *PGRepository) FindAll(ctx context.Context, skip, limit int) ([]model.Menu, error) {
	query := `SELECT * FROM menus ORDER BY title ASC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	if skip > 0 {
		query += fmt.Sprintf(" OFFSET %d", skip)
	}

	menus := []model.Menu{}
	if err := r.DB.SelectContext(ctx, &menus, query); err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Menu, error) {
	var m model.Menu
	query := `SELECT * FROM menus WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *PGRepository) Update(ctx context.Context, m *model.Menu) error {
	query := `
        UPDATE menus
        SET title = :title,
            description = :description
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, m)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	// submenus and dishes go with it via ON DELETE CASCADE.
	_, err := r.DB.ExecContext(ctx, `DELETE FROM menus WHERE id = $1`, id)
	return err
}

// CountChildren runs the whole aggregation as one grouped outer join so a
// menu read costs a single extra query.
func (r *PGRepository) CountChildren(ctx context.Context, menuID string) (int, int, error) {
	query := `
        SELECT COUNT(DISTINCT s.id) AS submenus_count,
               COUNT(DISTINCT d.id) AS dishes_count
        FROM menus m
        LEFT JOIN submenus s ON s.menu_id = m.id
        LEFT JOIN dishes d ON d.submenu_id = s.id
        WHERE m.id = $1
        GROUP BY m.id
    `
	var submenus, dishes int
	err := r.DB.QueryRowxContext(ctx, query, menuID).Scan(&submenus, &dishes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, nil
		}
		return 0, 0, err
	}
	return submenus, dishes, nil
}
