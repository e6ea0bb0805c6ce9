package dto

// DishResponse renders price as a string with exactly two decimal places.
type DishResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	SubMenuID   string `json:"submenu_id"`
}
