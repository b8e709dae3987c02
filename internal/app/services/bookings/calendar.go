package bookings

import (
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/exceptions"
	"strings"
	"time"
)

// ParseMonthCursor turns a YYYY-MM cursor into the first day of that month
// in local time. An empty cursor resolves to the current month.
func ParseMonthCursor(cursor string, now time.Time) (time.Time, error) {
	if cursor == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local), nil
	}
	parsed, err := time.ParseInLocation(constvars.MonthQueryLayout, cursor, time.Local)
	if err != nil {
		return time.Time{}, exceptions.ErrInvalidMonthCursor(err)
	}
	return parsed, nil
}

// AddMonths shifts a first-of-month reference date by exactly delta calendar
// months. Filters and selection are untouched by navigation; callers only
// move the cursor.
func AddMonths(firstOfMonth time.Time, delta int) time.Time {
	return time.Date(firstOfMonth.Year(), firstOfMonth.Month(), 1, 0, 0, 0, 0, firstOfMonth.Location()).AddDate(0, delta, 0)
}

// startOfWeek returns the Monday on or before the given date.
func startOfWeek(date time.Time) time.Time {
	offset := int(date.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return date.AddDate(0, 0, -offset)
}

// BuildMonthGrid produces the ordered weekday cells for the month view:
// Monday through Friday only, from the week containing the first of the
// month through the week containing the last day. Saturdays and Sundays are
// excluded from the grid entirely.
func BuildMonthGrid(firstOfMonth time.Time, groups map[string][]models.Booking, today time.Time) []models.DayCell {
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
	todayKey := today.Format(constvars.DayKeyLayout)

	cells := make([]models.DayCell, 0, 25)
	for weekMonday := startOfWeek(firstOfMonth); !weekMonday.After(lastOfMonth); weekMonday = weekMonday.AddDate(0, 0, 7) {
		for dayOffset := 0; dayOffset < 5; dayOffset++ {
			date := weekMonday.AddDate(0, 0, dayOffset)
			dayKey := date.Format(constvars.DayKeyLayout)
			cells = append(cells, buildDayCell(date, dayKey, firstOfMonth.Month(), dayKey == todayKey, groups[dayKey]))
		}
	}
	return cells
}

func buildDayCell(date time.Time, dayKey string, month time.Month, isToday bool, dayBookings []models.Booking) models.DayCell {
	cell := models.DayCell{
		DayKey:  dayKey,
		Day:     date.Day(),
		InMonth: date.Month() == month,
		Today:   isToday,
		Count:   len(dayBookings),
	}

	if cell.Count > constvars.CalendarShowLimit {
		cell.Overflow = true
		if cell.Count > constvars.CalendarBadgeAlertThreshold {
			cell.BadgeTier = constvars.BadgeTierAlert
		} else {
			cell.BadgeTier = constvars.BadgeTierNormal
		}
		return cell
	}

	for _, booking := range dayBookings {
		cell.Pills = append(cell.Pills, models.Pill{
			ID:       booking.ID,
			Label:    PillLabel(booking),
			Category: PillCategory(booking.ServiceName),
		})
	}
	return cell
}

// PillCategory derives the visual category from a case-insensitive substring
// match on the service name.
func PillCategory(serviceName string) string {
	lowered := strings.ToLower(serviceName)
	switch {
	case strings.Contains(lowered, constvars.PillCategoryWash):
		return constvars.PillCategoryWash
	case strings.Contains(lowered, constvars.PillCategoryCut):
		return constvars.PillCategoryCut
	default:
		return constvars.PillCategoryNeutral
	}
}
