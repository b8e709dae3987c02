package bookings

import (
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []models.Booking {
	return []models.Booking{
		{ID: "1", EmployeeName: "Maria", ServiceName: "Corte", Status: constvars.BookingStatusPending, DayKey: "2025-09-01", StartMinutes: 540},
		{ID: "2", EmployeeName: "Joana", ServiceName: "Lavagem", Status: constvars.BookingStatusConfirmed, DayKey: "2025-09-01", StartMinutes: 600},
		{ID: "3", EmployeeName: "Maria", ServiceName: "Lavagem", Status: constvars.BookingStatusPending, DayKey: "2025-09-02", StartMinutes: 540},
		{ID: "4", EmployeeName: "Joana", ServiceName: "Corte", Status: constvars.BookingStatusCancelled, DayKey: "2025-09-02", StartMinutes: 600},
		{ID: "5", EmployeeName: "Maria", ServiceName: "Corte", Status: constvars.BookingStatusPending, DayKey: "2025-09-03", StartMinutes: 540},
		{ID: "6", EmployeeName: "Rita", ServiceName: "Corte", Status: constvars.BookingStatusFinished, DayKey: "2025-09-03", StartMinutes: 600},
		{ID: "7", EmployeeName: "Rita", ServiceName: "Lavagem", Status: constvars.BookingStatusConfirmed, DayKey: "2025-09-04", StartMinutes: 540},
		{ID: "8", EmployeeName: "Maria", ServiceName: "Corte", Status: constvars.BookingStatusPending, DayKey: "2025-09-04", StartMinutes: 600},
		{ID: "9", EmployeeName: "Joana", ServiceName: "Lavagem", Status: constvars.BookingStatusConfirmed, DayKey: "2025-09-05", StartMinutes: 540},
		{ID: "10", EmployeeName: "Rita", ServiceName: "Corte", Status: constvars.BookingStatusFinished, DayKey: "2025-09-05", StartMinutes: 600},
	}
}

func TestApplyFilter(t *testing.T) {
	t.Run("ALL sentinel on every dimension keeps the whole list", func(t *testing.T) {
		filter := models.BookingFilter{Employee: constvars.FilterAll, Service: constvars.FilterAll, Status: constvars.FilterAll}
		assert.Len(t, ApplyFilter(filterFixture(), filter), 10)
	})

	t.Run("Status filter keeps exactly the matching entries", func(t *testing.T) {
		// Scenario: 10 bookings, 4 of them PENDENTE.
		filter := models.BookingFilter{Employee: constvars.FilterAll, Service: constvars.FilterAll, Status: constvars.BookingStatusPending}

		filtered := ApplyFilter(filterFixture(), filter)

		assert.Len(t, filtered, 4)
		for _, booking := range filtered {
			assert.Equal(t, constvars.BookingStatusPending, booking.Status)
		}
	})

	t.Run("Employee filter matches exact names only", func(t *testing.T) {
		filter := models.BookingFilter{Employee: "Maria", Service: constvars.FilterAll, Status: constvars.FilterAll}

		filtered := ApplyFilter(filterFixture(), filter)

		assert.Len(t, filtered, 4)
		for _, booking := range filtered {
			assert.Equal(t, "Maria", booking.EmployeeName)
		}
	})

	t.Run("Combined filters intersect", func(t *testing.T) {
		all := filterFixture()
		byEmployee := ApplyFilter(all, models.BookingFilter{Employee: "Maria"})
		byStatus := ApplyFilter(all, models.BookingFilter{Status: constvars.BookingStatusPending})
		combined := ApplyFilter(all, models.BookingFilter{Employee: "Maria", Status: constvars.BookingStatusPending})

		expected := make([]string, 0)
		statusIDs := map[string]bool{}
		for _, booking := range byStatus {
			statusIDs[booking.ID] = true
		}
		for _, booking := range byEmployee {
			if statusIDs[booking.ID] {
				expected = append(expected, booking.ID)
			}
		}

		combinedIDs := make([]string, 0)
		for _, booking := range combined {
			combinedIDs = append(combinedIDs, booking.ID)
		}
		assert.Equal(t, expected, combinedIDs)
	})
}

func TestDeriveOptions(t *testing.T) {
	options := DeriveOptions(filterFixture())

	assert.Equal(t, constvars.FilterAll, options.Employees[0])
	assert.Equal(t, []string{constvars.FilterAll, "Maria", "Joana", "Rita"}, options.Employees)
	assert.Equal(t, []string{constvars.FilterAll, "Corte", "Lavagem"}, options.Services)
	assert.Equal(t, []string{
		constvars.FilterAll,
		constvars.BookingStatusPending,
		constvars.BookingStatusConfirmed,
		constvars.BookingStatusCancelled,
		constvars.BookingStatusFinished,
	}, options.Statuses)
}

func TestFilterEngine(t *testing.T) {
	t.Run("Observer fires when the filtered result changes", func(t *testing.T) {
		var notifications [][]models.Booking
		engine := NewFilterEngine(func(flattened []models.Booking) {
			notifications = append(notifications, flattened)
		})

		engine.Update(filterFixture(), models.BookingFilter{Status: constvars.BookingStatusPending})
		assert.Len(t, notifications, 1)
		assert.Len(t, notifications[0], 4)
	})

	t.Run("Identical re-derivation is suppressed", func(t *testing.T) {
		calls := 0
		engine := NewFilterEngine(func([]models.Booking) { calls++ })

		filter := models.BookingFilter{Status: constvars.BookingStatusPending}
		engine.Update(filterFixture(), filter)
		engine.Update(filterFixture(), filter)

		assert.Equal(t, 1, calls)
	})

	t.Run("Same length and endpoints but different members still notifies", func(t *testing.T) {
		calls := 0
		engine := NewFilterEngine(func([]models.Booking) { calls++ })

		first := []models.Booking{
			testBooking("a", "2025-09-01", 540),
			testBooking("b", "2025-09-01", 600),
			testBooking("c", "2025-09-02", 540),
		}
		// Same count, same first and last id, different middle.
		second := []models.Booking{
			testBooking("a", "2025-09-01", 540),
			testBooking("x", "2025-09-01", 600),
			testBooking("c", "2025-09-02", 540),
		}

		filter := models.BookingFilter{}
		engine.Update(first, filter)
		engine.Update(second, filter)

		assert.Equal(t, 2, calls)
	})
}
