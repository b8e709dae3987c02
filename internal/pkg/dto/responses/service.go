package responses

type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Color       string  `json:"color"`
	ImageURL    string  `json:"image,omitempty"`
	HasImage    bool    `json:"hasImage"`
}
