package responses

import (
	"salon-service/internal/app/models"
)

// Dashboard is the full booking view delivered to the management screen in a
// single round trip: the month grid, the derived filter options, the current
// selection panel and the generation token clients echo back on mutations.
type Dashboard struct {
	Month      string               `json:"month"`
	Generation int64                `json:"generation"`
	Filter     models.BookingFilter `json:"filter"`
	Options    models.FilterOptions `json:"options"`
	Calendar   []models.DayCell     `json:"calendar"`
	Selection  Selection            `json:"selection"`
}

// Selection is the summary panel: the day in focus (empty when the whole
// period is selected) and the bookings listed under it.
type Selection struct {
	Day      string           `json:"day,omitempty"`
	All      bool             `json:"all"`
	Count    int              `json:"count"`
	Bookings []models.Booking `json:"bookings"`
}
