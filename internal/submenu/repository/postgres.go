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

func (r *PGRepository) Create(ctx context.Context, s *model.SubMenu) error {
	query := `
        INSERT INTO submenus (id, title, description, menu_id)
        VALUES (:id, :title, :description, :menu_id)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) FindAllByMenu(ctx context.Context, menuID string, skip, limit int) ([]model.SubMenu, error) {
	query := `SELECT * FROM submenus WHERE menu_id = $1 ORDER BY title ASC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	if skip > 0 {
		query += fmt.Sprintf(" OFFSET %d", skip)
	}

	submenus := []model.SubMenu{}
	if err := r.DB.SelectContext(ctx, &submenus, query, menuID); err != nil {
		return nil, err
	}
	return submenus, nil
}

func (r *PGRepository) FindByID(ctx context.Context, menuID, submenuID string) (*model.SubMenu, error) {
	var s model.SubMenu
	query := `SELECT * FROM submenus WHERE id = $1 AND menu_id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &s, query, submenuID, menuID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) Update(ctx context.Context, s *model.SubMenu) error {
	query := `
        UPDATE submenus
        SET title = :title,
            description = :description
        WHERE id = :id AND menu_id = :menu_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM submenus WHERE id = $1`, id)
	return err
}

func (r *PGRepository) CountDishes(ctx context.Context, submenuID string) (int, error) {
	var count int
	query := `SELECT COUNT(id) FROM dishes WHERE submenu_id = $1`
	if err := r.DB.QueryRowxContext(ctx, query, submenuID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
