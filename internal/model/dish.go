package model

type Dish struct {
	ID          string  `db:"id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Price       float64 `db:"price"`
	SubMenuID   string  `db:"submenu_id"`
}
