package dto

// MenuResponse is the public menu record. The counts are always recomputed
// from current child rows, never stored.
type MenuResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	SubMenusCount int    `json:"submenus_count"`
	DishesCount   int    `json:"dishes_count"`
}

// Tree responses back the /menus/full endpoint: the whole hierarchy nested
// in one payload.

type MenuTreeResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	SubMenus    []SubMenuTreeResponse `json:"submenus"`
}

type SubMenuTreeResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	MenuID      string             `json:"menu_id"`
	Dishes      []DishTreeResponse `json:"dishes"`
}

type DishTreeResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	SubMenuID   string `json:"submenu_id"`
}
