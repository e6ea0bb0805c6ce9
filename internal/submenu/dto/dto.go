package dto

type SubMenuResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MenuID      string `json:"menu_id"`
	DishesCount int    `json:"dishes_count"`
}
