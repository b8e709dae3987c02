package bookings

import (
	"salon-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testBooking(id, dayKey string, startMinutes int) models.Booking {
	return models.Booking{ID: id, DayKey: dayKey, StartMinutes: startMinutes}
}

func TestGroupByDay(t *testing.T) {
	t.Run("Orders each day ascending by start minutes", func(t *testing.T) {
		// Scenario: three bookings on the same day arriving out of order.
		input := []models.Booking{
			testBooking("a", "2025-09-11", 600),
			testBooking("b", "2025-09-11", 540),
			testBooking("c", "2025-09-11", 660),
		}

		groups := GroupByDay(input)

		assert.Len(t, groups, 1)
		day := groups["2025-09-11"]
		assert.Equal(t, []string{"b", "a", "c"}, []string{day[0].ID, day[1].ID, day[2].ID})
		assert.Equal(t, []int{540, 600, 660}, []int{day[0].StartMinutes, day[1].StartMinutes, day[2].StartMinutes})
	})

	t.Run("Ties keep input order", func(t *testing.T) {
		input := []models.Booking{
			testBooking("first", "2025-09-11", 540),
			testBooking("second", "2025-09-11", 540),
		}

		day := GroupByDay(input)["2025-09-11"]
		assert.Equal(t, "first", day[0].ID)
		assert.Equal(t, "second", day[1].ID)
	})

	t.Run("Empty input yields an empty mapping", func(t *testing.T) {
		assert.Empty(t, GroupByDay(nil))
	})

	t.Run("Grouping is idempotent over flatten", func(t *testing.T) {
		input := []models.Booking{
			testBooking("a", "2025-09-12", 300),
			testBooking("b", "2025-09-11", 600),
			testBooking("c", "2025-09-11", 540),
			testBooking("d", "2025-09-15", 60),
		}

		once := GroupByDay(input)
		twice := GroupByDay(Flatten(once))
		assert.Equal(t, once, twice)
	})
}

func TestFlatten(t *testing.T) {
	groups := GroupByDay([]models.Booking{
		testBooking("late", "2025-09-12", 60),
		testBooking("early", "2025-09-11", 600),
	})

	flattened := Flatten(groups)

	assert.Len(t, flattened, 2)
	assert.Equal(t, "early", flattened[0].ID)
	assert.Equal(t, "late", flattened[1].ID)
}

func TestSortBookings(t *testing.T) {
	bookings := []models.Booking{
		testBooking("c", "2025-09-12", 60),
		testBooking("b", "2025-09-11", 600),
		testBooking("a", "2025-09-11", 540),
	}

	SortBookings(bookings)

	assert.Equal(t, "a", bookings[0].ID)
	assert.Equal(t, "b", bookings[1].ID)
	assert.Equal(t, "c", bookings[2].ID)
}
