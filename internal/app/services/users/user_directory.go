package users

import (
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/salondto"
	"strings"
)

// MatchesQuery reports whether a user passes the directory filter: the free
// text matches name or email case-insensitively, role and status are exact.
func MatchesQuery(request *requests.UserListQuery, user salondto.User) bool {
	if request.Query != "" {
		needle := strings.ToLower(request.Query)
		if !strings.Contains(strings.ToLower(user.Name), needle) &&
			!strings.Contains(strings.ToLower(user.Email), needle) {
			return false
		}
	}
	if request.Role != "" && request.Role != user.UserRole {
		return false
	}
	if request.Status != "" && request.Status != user.StatusUser {
		return false
	}
	return true
}

// FilterUsers keeps the upstream ordering and applies MatchesQuery.
func FilterUsers(rawUsers []salondto.User, request *requests.UserListQuery) []salondto.User {
	filtered := make([]salondto.User, 0, len(rawUsers))
	for _, user := range rawUsers {
		if MatchesQuery(request, user) {
			filtered = append(filtered, user)
		}
	}
	return filtered
}

// Paginate slices one page out of the filtered list. An out-of-range page
// yields an empty slice, not an error.
func Paginate(filtered []salondto.User, page, pageSize int) []salondto.User {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return []salondto.User{}
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}
