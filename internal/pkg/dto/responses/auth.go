package responses

type User struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	UserRole   string `json:"userRole"`
	StatusUser string `json:"statusUser"`
	Phone      string `json:"phone,omitempty"`
	PhotoURL   string `json:"photoUrl,omitempty"`
	HasPhoto   bool   `json:"hasPhoto"`
}

type LoginUser struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
