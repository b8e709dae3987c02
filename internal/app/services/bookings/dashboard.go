package bookings

import (
	"fmt"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/dto/responses"
	"salon-service/internal/pkg/exceptions"
	"time"
)

// DashboardState is the per-session booking view state cached in redis: the
// master booking list fetched from the salon API plus the month cursor, the
// active filter and the summary-panel selection. Groupings, filter options
// and the calendar grid are always re-derived from it, never stored.
type DashboardState struct {
	Month        string               `json:"month"`
	Generation   int64                `json:"generation"`
	Filter       models.BookingFilter `json:"filter"`
	Bookings     []models.Booking     `json:"bookings"`
	SelectionDay string               `json:"selectionDay,omitempty"`
	SelectionAll bool                 `json:"selectionAll"`
	// FilteredIDs is the id sequence of the last observed filtered view,
	// carried so the filter engine's change suppression survives the redis
	// round trip between requests.
	FilteredIDs []string  `json:"filteredIds,omitempty"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

func NewDashboardState(month string) *DashboardState {
	return &DashboardState{
		Month:        month,
		Filter:       models.BookingFilter{Employee: constvars.FilterAll, Service: constvars.FilterAll, Status: constvars.FilterAll},
		SelectionAll: true,
	}
}

// SetBookings replaces the master list, keeping it ordered by dayKey then
// start minutes. A selected day that no longer holds any booking falls back
// to the show-all selection.
func (s *DashboardState) SetBookings(bookings []models.Booking) {
	SortBookings(bookings)
	s.Bookings = bookings
	s.FetchedAt = time.Now()
	if !s.SelectionAll && len(ApplyFilter(s.dayBookings(s.SelectionDay), s.Filter)) == 0 {
		s.SelectAll()
	}
}

// FilteredBookings applies the active filter over the master list.
func (s *DashboardState) FilteredBookings() []models.Booking {
	return ApplyFilter(s.Bookings, s.Filter)
}

// SelectDay switches the summary panel to one day's filtered bookings.
func (s *DashboardState) SelectDay(dayKey string) error {
	if _, err := time.ParseInLocation(constvars.DayKeyLayout, dayKey, time.Local); err != nil {
		return exceptions.ErrInvalidDayKey(err)
	}
	s.SelectionDay = dayKey
	s.SelectionAll = false
	return nil
}

// SelectAll switches the summary panel back to the full unfiltered list.
func (s *DashboardState) SelectAll() {
	s.SelectionDay = ""
	s.SelectionAll = true
}

// SelectionBookings derives the summary-panel list: the whole unfiltered
// master list under show-all, otherwise the selected day's filtered
// bookings. Deriving instead of storing keeps the selection consistent with
// every patch by construction.
func (s *DashboardState) SelectionBookings() []models.Booking {
	if s.SelectionAll {
		return s.Bookings
	}
	return ApplyFilter(s.dayBookings(s.SelectionDay), s.Filter)
}

func (s *DashboardState) dayBookings(dayKey string) []models.Booking {
	day := make([]models.Booking, 0)
	for _, booking := range s.Bookings {
		if booking.DayKey == dayKey {
			day = append(day, booking)
		}
	}
	return day
}

// ApplyPatch updates the matching booking in place, preserving the order and
// identity of every other entry. It reports whether the booking was found.
func (s *DashboardState) ApplyPatch(bookingID string, patch models.BookingPatch) bool {
	for i := range s.Bookings {
		if s.Bookings[i].ID == bookingID {
			patch.Apply(&s.Bookings[i])
			return true
		}
	}
	return false
}

// Validate guards against a corrupt cached state (e.g. a truncated redis
// value that still unmarshalled).
func (s *DashboardState) Validate() error {
	if s.Month == "" {
		return exceptions.ErrDashboardStateCorrupt(fmt.Errorf("state has no month cursor"))
	}
	if !s.SelectionAll && s.SelectionDay == "" {
		return exceptions.ErrDashboardStateCorrupt(fmt.Errorf("day selection without a day key"))
	}
	return nil
}

// BuildDashboardResponse derives the full view from the state: filter
// options over the master list, the calendar grid over the filtered
// grouping, and the summary panel.
func BuildDashboardResponse(state *DashboardState, now time.Time) (*responses.Dashboard, error) {
	firstOfMonth, err := ParseMonthCursor(state.Month, now)
	if err != nil {
		return nil, err
	}

	groups := GroupByDay(state.FilteredBookings())
	selection := state.SelectionBookings()

	return &responses.Dashboard{
		Month:      state.Month,
		Generation: state.Generation,
		Filter:     state.Filter,
		Options:    DeriveOptions(state.Bookings),
		Calendar:   BuildMonthGrid(firstOfMonth, groups, now),
		Selection: responses.Selection{
			Day:      state.SelectionDay,
			All:      state.SelectionAll,
			Count:    len(selection),
			Bookings: selection,
		},
	}, nil
}
