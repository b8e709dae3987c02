package requests

// UserListQuery filters the user directory; Query matches name or email
// case-insensitively, Role and Status are exact values or empty for all.
type UserListQuery struct {
	Query  string
	Role   string `validate:"omitempty,oneof=ADMIN FUNCIONARIO CLIENTE"`
	Status string `validate:"omitempty,oneof=ATIVO PENDENTE"`
	Pagination
}
