package salondto

type User struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	UserRole   string `json:"userRole"`
	StatusUser string `json:"statusUser"`
	Phone      string `json:"phone,omitempty"`
}

type RegisterUser struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	UserRole   string `json:"userRole"`
	Phone      string `json:"phone"`
	StatusUser string `json:"statusUser"`
}

type LoginUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
