package dto

// CreateMenuInput carries a client- or reconciler-supplied menu. ID is
// optional; when empty the usecase generates one.
type CreateMenuInput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateMenuInput struct {
	ID          string `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
