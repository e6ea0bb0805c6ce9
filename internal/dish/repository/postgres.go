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

func (r *PGRepository) Create(ctx context.Context, d *model.Dish) error {
	query := `
        INSERT INTO dishes (id, title, description, price, submenu_id)
        VALUES (:id, :title, :description, :price, :submenu_id)
    `
	_, err := r.DB.NamedExecContext(ctx, query, d)
	return err
}

func (r *PGRepository) FindAllBySubMenu(ctx context.Context, submenuID string, skip, limit int) ([]model.Dish, error) {
	query := `SELECT * FROM dishes WHERE submenu_id = $1 ORDER BY title ASC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	if skip > 0 {
		query += fmt.Sprintf(" OFFSET %d", skip)
	}

	dishes := []model.Dish{}
	if err := r.DB.SelectContext(ctx, &dishes, query, submenuID); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *PGRepository) FindByID(ctx context.Context, submenuID, dishID string) (*model.Dish, error) {
	var d model.Dish
	query := `SELECT * FROM dishes WHERE id = $1 AND submenu_id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &d, query, dishID, submenuID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *PGRepository) Update(ctx context.Context, d *model.Dish) error {
	query := `
        UPDATE dishes
        SET title = :title,
            description = :description,
            price = :price
        WHERE id = :id AND submenu_id = :submenu_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, d)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM dishes WHERE id = $1`, id)
	return err
}
