package bookings

import (
	"fmt"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/salondto"
	"time"
)

// timestampLayouts are tried in order against the upstream start/end
// timestamps. All are interpreted as local wall-clock time; the salon API
// emits naive timestamps without a zone designator.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Normalize converts the raw upstream booking records into the flat
// locally-keyed representation used by the grouping, filtering and calendar
// layers.
func Normalize(rawBookings []salondto.Booking) []models.Booking {
	normalized := make([]models.Booking, 0, len(rawBookings))
	for _, raw := range rawBookings {
		normalized = append(normalized, NormalizeOne(raw))
	}
	return normalized
}

// NormalizeOne never fails: malformed timestamps degrade into the
// "Invalid Date" sentinel on every derived field so downstream rendering
// stays total.
func NormalizeOne(raw salondto.Booking) models.Booking {
	booking := models.Booking{
		ID:           raw.ID,
		ServiceName:  raw.ServiceName,
		EmployeeName: raw.EmployeeName,
		ClientName:   raw.CustomerName,
		Status:       raw.Status,
		Color:        raw.Color,
	}

	start, ok := parseLocalTime(raw.StartTime)
	if !ok {
		booking.Date = constvars.InvalidDateSentinel
		booking.StartTime = constvars.InvalidDateSentinel
		booking.DayKey = constvars.InvalidDateSentinel
		booking.StartMinutes = 0
	} else {
		booking.Date = start.Format(constvars.DisplayDateLayout)
		booking.StartTime = start.Format(constvars.DisplayTimeLayout)
		booking.DayKey = start.Format(constvars.DayKeyLayout)
		booking.StartMinutes = start.Hour()*60 + start.Minute()
	}

	end, ok := parseLocalTime(raw.EndTime)
	if !ok {
		booking.EndTime = constvars.InvalidDateSentinel
	} else {
		booking.EndTime = end.Format(constvars.DisplayTimeLayout)
	}

	return booking
}

func parseLocalTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, true
		}
	}
	// Zone-carrying timestamps are honored as-is rather than rejected.
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

// PillLabel is the compact calendar entry text: service plus client.
func PillLabel(booking models.Booking) string {
	return fmt.Sprintf("%s - %s", booking.ServiceName, booking.ClientName)
}
