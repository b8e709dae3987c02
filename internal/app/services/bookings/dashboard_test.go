package bookings

import (
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDashboardStateSelection(t *testing.T) {
	state := NewDashboardState("2025-09")
	state.SetBookings(filterFixture())

	t.Run("Defaults to show-all", func(t *testing.T) {
		assert.True(t, state.SelectionAll)
		assert.Len(t, state.SelectionBookings(), 10)
	})

	t.Run("Day click selects that day's filtered bookings", func(t *testing.T) {
		assert.NoError(t, state.SelectDay("2025-09-01"))

		selection := state.SelectionBookings()
		assert.Len(t, selection, 2)
		for _, booking := range selection {
			assert.Equal(t, "2025-09-01", booking.DayKey)
		}
	})

	t.Run("Day selection honors the active filter", func(t *testing.T) {
		state.Filter.Status = constvars.BookingStatusPending
		assert.NoError(t, state.SelectDay("2025-09-01"))

		selection := state.SelectionBookings()
		assert.Len(t, selection, 1)
		assert.Equal(t, "1", selection[0].ID)
		state.Filter.Status = constvars.FilterAll
	})

	t.Run("Show all returns the full unfiltered list even when filtered", func(t *testing.T) {
		state.Filter.Status = constvars.BookingStatusPending
		state.SelectAll()

		assert.Len(t, state.SelectionBookings(), 10)
		state.Filter.Status = constvars.FilterAll
	})

	t.Run("Rejects a malformed day key", func(t *testing.T) {
		assert.Error(t, state.SelectDay("11/09/2025"))
	})
}

func TestDashboardStateApplyPatch(t *testing.T) {
	state := NewDashboardState("2025-09")
	state.SetBookings(filterFixture())
	assert.NoError(t, state.SelectDay("2025-09-01"))

	before := make([]models.Booking, len(state.Bookings))
	copy(before, state.Bookings)

	confirmed := constvars.BookingStatusConfirmed
	assert.True(t, state.ApplyPatch("1", models.BookingPatch{Status: &confirmed}))

	t.Run("Patches the master list entry", func(t *testing.T) {
		for _, booking := range state.Bookings {
			if booking.ID == "1" {
				assert.Equal(t, constvars.BookingStatusConfirmed, booking.Status)
			}
		}
	})

	t.Run("Patch is visible in the current selection", func(t *testing.T) {
		for _, booking := range state.SelectionBookings() {
			if booking.ID == "1" {
				assert.Equal(t, constvars.BookingStatusConfirmed, booking.Status)
			}
		}
	})

	t.Run("No other booking changes and order is preserved", func(t *testing.T) {
		assert.Len(t, state.Bookings, len(before))
		for i, booking := range state.Bookings {
			assert.Equal(t, before[i].ID, booking.ID)
			if booking.ID != "1" {
				assert.Equal(t, before[i], booking)
			}
		}
	})

	t.Run("Unknown booking id reports not found", func(t *testing.T) {
		assert.False(t, state.ApplyPatch("missing", models.BookingPatch{Status: &confirmed}))
	})
}

func TestDashboardStateSetBookings(t *testing.T) {
	t.Run("Master list is ordered by day then start minutes", func(t *testing.T) {
		state := NewDashboardState("2025-09")
		state.SetBookings([]models.Booking{
			testBooking("late", "2025-09-12", 60),
			testBooking("b", "2025-09-11", 600),
			testBooking("a", "2025-09-11", 540),
		})

		assert.Equal(t, "a", state.Bookings[0].ID)
		assert.Equal(t, "b", state.Bookings[1].ID)
		assert.Equal(t, "late", state.Bookings[2].ID)
	})

	t.Run("A refetch that empties the selected day falls back to show-all", func(t *testing.T) {
		state := NewDashboardState("2025-09")
		state.SetBookings(filterFixture())
		assert.NoError(t, state.SelectDay("2025-09-01"))

		state.SetBookings([]models.Booking{testBooking("only", "2025-09-20", 540)})

		assert.True(t, state.SelectionAll)
	})
}

func TestDashboardStateValidate(t *testing.T) {
	assert.NoError(t, NewDashboardState("2025-09").Validate())

	corrupt := &DashboardState{SelectionAll: true}
	assert.Error(t, corrupt.Validate())

	danglingDay := NewDashboardState("2025-09")
	danglingDay.SelectionAll = false
	assert.Error(t, danglingDay.Validate())
}

func TestBuildDashboardResponse(t *testing.T) {
	now := time.Date(2025, time.September, 11, 12, 0, 0, 0, time.Local)
	state := NewDashboardState("2025-09")
	state.Generation = 3
	state.SetBookings(filterFixture())

	dashboard, err := BuildDashboardResponse(state, now)
	assert.NoError(t, err)

	assert.Equal(t, "2025-09", dashboard.Month)
	assert.Equal(t, int64(3), dashboard.Generation)
	assert.Equal(t, 25, len(dashboard.Calendar))
	assert.Equal(t, []string{constvars.FilterAll, "Maria", "Joana", "Rita"}, dashboard.Options.Employees)
	assert.True(t, dashboard.Selection.All)
	assert.Equal(t, 10, dashboard.Selection.Count)

	t.Run("Calendar reflects the active filter but options do not", func(t *testing.T) {
		state.Filter.Status = constvars.BookingStatusPending
		filtered, err := BuildDashboardResponse(state, now)
		assert.NoError(t, err)

		total := 0
		for _, cell := range filtered.Calendar {
			total += cell.Count
		}
		assert.Equal(t, 4, total)
		assert.Equal(t, dashboard.Options, filtered.Options)
	})

	t.Run("Malformed month cursor fails", func(t *testing.T) {
		broken := NewDashboardState("bogus")
		_, err := BuildDashboardResponse(broken, now)
		assert.Error(t, err)
	})
}
