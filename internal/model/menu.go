package model

type Menu struct {
	ID          string  `db:"id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
}
