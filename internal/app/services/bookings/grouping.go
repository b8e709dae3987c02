package bookings

import (
	"salon-service/internal/app/models"
	"sort"
)

// GroupByDay partitions bookings into dayKey buckets, each bucket sorted
// ascending by start minutes. The sort is stable so same-minute bookings
// keep their input order.
func GroupByDay(bookings []models.Booking) map[string][]models.Booking {
	groups := make(map[string][]models.Booking)
	for _, booking := range bookings {
		groups[booking.DayKey] = append(groups[booking.DayKey], booking)
	}
	for dayKey := range groups {
		day := groups[dayKey]
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].StartMinutes < day[j].StartMinutes
		})
		groups[dayKey] = day
	}
	return groups
}

// Flatten walks the grouping in ascending dayKey order and concatenates the
// per-day lists, so group(Flatten(group(x))) is structurally identical to
// group(x).
func Flatten(groups map[string][]models.Booking) []models.Booking {
	dayKeys := make([]string, 0, len(groups))
	for dayKey := range groups {
		dayKeys = append(dayKeys, dayKey)
	}
	sort.Strings(dayKeys)

	flattened := make([]models.Booking, 0)
	for _, dayKey := range dayKeys {
		flattened = append(flattened, groups[dayKey]...)
	}
	return flattened
}

// SortBookings orders the master list by dayKey then start minutes, keeping
// input order for ties.
func SortBookings(bookings []models.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].DayKey != bookings[j].DayKey {
			return bookings[i].DayKey < bookings[j].DayKey
		}
		return bookings[i].StartMinutes < bookings[j].StartMinutes
	})
}
