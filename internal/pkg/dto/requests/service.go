package requests

type UpsertService struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Description string  `json:"description" validate:"required"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Color       string  `json:"color" validate:"omitempty,hexcolor"`
}
