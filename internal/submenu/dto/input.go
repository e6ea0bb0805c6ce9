package dto

type CreateSubMenuInput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateSubMenuInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
