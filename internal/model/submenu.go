package model

type SubMenu struct {
	ID          string  `db:"id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	MenuID      string  `db:"menu_id"`
}
