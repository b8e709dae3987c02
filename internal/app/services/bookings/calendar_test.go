package bookings

import (
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMonthCursor(t *testing.T) {
	now := time.Date(2025, time.September, 11, 15, 0, 0, 0, time.Local)

	t.Run("Parses a valid cursor", func(t *testing.T) {
		first, err := ParseMonthCursor("2025-09", now)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.Local), first)
	})

	t.Run("Empty cursor falls back to the current month", func(t *testing.T) {
		first, err := ParseMonthCursor("", now)
		assert.NoError(t, err)
		assert.Equal(t, time.September, first.Month())
		assert.Equal(t, 1, first.Day())
	})

	t.Run("Rejects a malformed cursor", func(t *testing.T) {
		_, err := ParseMonthCursor("september", now)
		assert.Error(t, err)
	})
}

func TestAddMonths(t *testing.T) {
	first := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)

	assert.Equal(t, time.February, AddMonths(first, 1).Month())
	assert.Equal(t, time.December, AddMonths(first, -1).Month())
	assert.Equal(t, 2024, AddMonths(first, -1).Year())
	// Shifting from the first of month never lands mid-month.
	assert.Equal(t, 1, AddMonths(first, 13).Day())
}

func TestBuildMonthGrid(t *testing.T) {
	september := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.Local)
	today := time.Date(2025, time.September, 11, 12, 0, 0, 0, time.Local)

	t.Run("September 2025 renders weekdays only", func(t *testing.T) {
		cells := BuildMonthGrid(september, nil, today)

		// Sept 1 2025 is a Monday; the last week starts Mon Sept 29.
		assert.Equal(t, 25, len(cells))
		assert.Equal(t, "2025-09-01", cells[0].DayKey)
		assert.Equal(t, "2025-10-03", cells[len(cells)-1].DayKey)

		excluded := map[string]bool{
			"2025-09-06": true, "2025-09-07": true,
			"2025-09-13": true, "2025-09-14": true,
			"2025-09-20": true, "2025-09-21": true,
			"2025-09-27": true, "2025-09-28": true,
		}
		for _, cell := range cells {
			assert.False(t, excluded[cell.DayKey], "weekend %s must not render", cell.DayKey)
			date, err := time.ParseInLocation(constvars.DayKeyLayout, cell.DayKey, time.Local)
			assert.NoError(t, err)
			assert.NotEqual(t, time.Saturday, date.Weekday())
			assert.NotEqual(t, time.Sunday, date.Weekday())
		}
	})

	t.Run("Trailing days complete the last displayed week", func(t *testing.T) {
		cells := BuildMonthGrid(september, nil, today)

		trailing := map[string]bool{}
		for _, cell := range cells {
			if !cell.InMonth {
				trailing[cell.DayKey] = true
			}
		}
		assert.True(t, trailing["2025-10-01"])
		assert.True(t, trailing["2025-10-02"])
		assert.True(t, trailing["2025-10-03"])
	})

	t.Run("Flags today", func(t *testing.T) {
		cells := BuildMonthGrid(september, nil, today)
		for _, cell := range cells {
			assert.Equal(t, cell.DayKey == "2025-09-11", cell.Today)
		}
	})

	t.Run("Leading days appear for a mid-week month start", func(t *testing.T) {
		october := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.Local)
		cells := BuildMonthGrid(october, nil, today)

		// Oct 1 2025 is a Wednesday; the grid starts at Mon Sept 29.
		assert.Equal(t, "2025-09-29", cells[0].DayKey)
		assert.False(t, cells[0].InMonth)
	})

	t.Run("Overflow policy per booking count", func(t *testing.T) {
		groups := map[string][]models.Booking{}
		for day, count := range map[string]int{
			"2025-09-01": 2,
			"2025-09-02": 3,
			"2025-09-03": 6,
		} {
			for i := 0; i < count; i++ {
				groups[day] = append(groups[day], models.Booking{
					ID:          day + string(rune('a'+i)),
					ServiceName: "Corte",
					ClientName:  "Ana",
					DayKey:      day,
				})
			}
		}

		cells := BuildMonthGrid(september, groups, today)
		byKey := map[string]models.DayCell{}
		for _, cell := range cells {
			byKey[cell.DayKey] = cell
		}

		within := byKey["2025-09-01"]
		assert.False(t, within.Overflow)
		assert.Len(t, within.Pills, 2)
		assert.Empty(t, within.BadgeTier)

		over := byKey["2025-09-02"]
		assert.True(t, over.Overflow)
		assert.Empty(t, over.Pills)
		assert.Equal(t, 3, over.Count)
		assert.Equal(t, constvars.BadgeTierNormal, over.BadgeTier)

		alert := byKey["2025-09-03"]
		assert.True(t, alert.Overflow)
		assert.Equal(t, 6, alert.Count)
		assert.Equal(t, constvars.BadgeTierAlert, alert.BadgeTier)
	})
}

func TestPillCategory(t *testing.T) {
	assert.Equal(t, constvars.PillCategoryWash, PillCategory("Lavagem Completa"))
	assert.Equal(t, constvars.PillCategoryCut, PillCategory("CORTE Masculino"))
	assert.Equal(t, constvars.PillCategoryNeutral, PillCategory("Manicure"))
}

func TestPillLabel(t *testing.T) {
	label := PillLabel(models.Booking{ServiceName: "Corte", ClientName: "Ana"})
	assert.Equal(t, "Corte - Ana", label)
}
