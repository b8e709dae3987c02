package bookings

import (
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/salondto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOne(t *testing.T) {
	t.Run("Derives day key and display fields from a naive timestamp", func(t *testing.T) {
		booking := NormalizeOne(salondto.Booking{
			ID:           "b-1",
			ServiceName:  "Corte Feminino",
			EmployeeName: "Maria",
			CustomerName: "Ana",
			StartTime:    "2025-09-11T10:00:00",
			EndTime:      "2025-09-11T11:00:00",
			Status:       constvars.BookingStatusPending,
		})

		assert.Equal(t, "b-1", booking.ID)
		assert.Equal(t, "2025-09-11", booking.DayKey)
		assert.Equal(t, "11/09/2025", booking.Date)
		assert.Equal(t, "10:00", booking.StartTime)
		assert.Equal(t, "11:00", booking.EndTime)
		assert.Equal(t, 600, booking.StartMinutes)
		assert.Equal(t, "Ana", booking.ClientName)
	})

	t.Run("Accepts timestamps without seconds", func(t *testing.T) {
		booking := NormalizeOne(salondto.Booking{StartTime: "2025-09-11T09:30"})
		assert.Equal(t, "2025-09-11", booking.DayKey)
		assert.Equal(t, 570, booking.StartMinutes)
	})

	t.Run("Malformed timestamps degrade to the sentinel without an error", func(t *testing.T) {
		booking := NormalizeOne(salondto.Booking{
			ID:        "b-2",
			StartTime: "not-a-date",
			EndTime:   "",
		})

		assert.Equal(t, constvars.InvalidDateSentinel, booking.Date)
		assert.Equal(t, constvars.InvalidDateSentinel, booking.StartTime)
		assert.Equal(t, constvars.InvalidDateSentinel, booking.EndTime)
		assert.Equal(t, constvars.InvalidDateSentinel, booking.DayKey)
		assert.Equal(t, 0, booking.StartMinutes)
	})

	t.Run("Two bookings on the same date share the day key", func(t *testing.T) {
		first := NormalizeOne(salondto.Booking{StartTime: "2025-09-11T08:00:00"})
		second := NormalizeOne(salondto.Booking{StartTime: "2025-09-11T17:45:00"})
		assert.Equal(t, first.DayKey, second.DayKey)
	})
}

func TestNormalize(t *testing.T) {
	raw := []salondto.Booking{
		{ID: "a", StartTime: "2025-09-11T10:00:00"},
		{ID: "b", StartTime: "garbage"},
	}

	normalized := Normalize(raw)

	assert.Len(t, normalized, 2)
	assert.Equal(t, "2025-09-11", normalized[0].DayKey)
	assert.Equal(t, constvars.InvalidDateSentinel, normalized[1].DayKey)
}
