package dto

// Price arrives as a string and is parsed to float64 at the usecase
// boundary, mirroring how it is rendered on the way out.
type CreateDishInput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type UpdateDishInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}
