package users

import (
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/salondto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func directoryFixture() []salondto.User {
	return []salondto.User{
		{UserID: "1", Name: "Maria Silva", Email: "maria@salon.pt", UserRole: constvars.RoleEmployee, StatusUser: constvars.UserStatusActive},
		{UserID: "2", Name: "Joana Costa", Email: "joana@salon.pt", UserRole: constvars.RoleEmployee, StatusUser: constvars.UserStatusPending},
		{UserID: "3", Name: "Ana Pereira", Email: "ana@gmail.com", UserRole: constvars.RoleClient, StatusUser: constvars.UserStatusActive},
		{UserID: "4", Name: "Rui Santos", Email: "rui@gmail.com", UserRole: constvars.RoleClient, StatusUser: constvars.UserStatusPending},
		{UserID: "5", Name: "Marta Alves", Email: "marta@salon.pt", UserRole: constvars.RoleAdmin, StatusUser: constvars.UserStatusActive},
	}
}

func TestFilterUsers(t *testing.T) {
	t.Run("No filter keeps everyone in upstream order", func(t *testing.T) {
		filtered := FilterUsers(directoryFixture(), &requests.UserListQuery{})
		assert.Len(t, filtered, 5)
		assert.Equal(t, "1", filtered[0].UserID)
	})

	t.Run("Free text matches name case-insensitively", func(t *testing.T) {
		filtered := FilterUsers(directoryFixture(), &requests.UserListQuery{Query: "mar"})
		assert.Len(t, filtered, 2)
		assert.Equal(t, "Maria Silva", filtered[0].Name)
		assert.Equal(t, "Marta Alves", filtered[1].Name)
	})

	t.Run("Free text matches email", func(t *testing.T) {
		filtered := FilterUsers(directoryFixture(), &requests.UserListQuery{Query: "gmail"})
		assert.Len(t, filtered, 2)
	})

	t.Run("Role and status combine", func(t *testing.T) {
		filtered := FilterUsers(directoryFixture(), &requests.UserListQuery{
			Role:   constvars.RoleEmployee,
			Status: constvars.UserStatusPending,
		})
		assert.Len(t, filtered, 1)
		assert.Equal(t, "2", filtered[0].UserID)
	})

	t.Run("No match yields an empty list", func(t *testing.T) {
		filtered := FilterUsers(directoryFixture(), &requests.UserListQuery{Query: "zzz"})
		assert.Empty(t, filtered)
	})
}

func TestPaginate(t *testing.T) {
	fixture := directoryFixture()

	t.Run("First page", func(t *testing.T) {
		page := Paginate(fixture, 1, 2)
		assert.Len(t, page, 2)
		assert.Equal(t, "1", page[0].UserID)
	})

	t.Run("Last partial page", func(t *testing.T) {
		page := Paginate(fixture, 3, 2)
		assert.Len(t, page, 1)
		assert.Equal(t, "5", page[0].UserID)
	})

	t.Run("Out-of-range page is empty", func(t *testing.T) {
		assert.Empty(t, Paginate(fixture, 9, 2))
	})

	t.Run("Defaults guard nonsense input", func(t *testing.T) {
		page := Paginate(fixture, 0, 0)
		assert.Len(t, page, 5)
	})
}
