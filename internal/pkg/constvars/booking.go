package constvars

const (
	BookingStatusPending   = "PENDENTE"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusFinished  = "FINISHED"
)

const (
	// FilterAll is the sentinel for an inactive filter dimension.
	FilterAll = "ALL"

	// CalendarShowLimit is the number of individual entries a day cell renders
	// before collapsing into an aggregate count badge.
	CalendarShowLimit = 2

	// CalendarBadgeAlertThreshold escalates the badge tier once a day holds
	// more bookings than this.
	CalendarBadgeAlertThreshold = 5

	PillCategoryWash    = "lavagem"
	PillCategoryCut     = "corte"
	PillCategoryNeutral = "neutral"

	BadgeTierNormal = "normal"
	BadgeTierAlert  = "alert"

	// InvalidDateSentinel fills display fields when an upstream timestamp
	// cannot be parsed. Rendering must tolerate it.
	InvalidDateSentinel = "Invalid Date"

	DayKeyLayout      = "2006-01-02"
	DisplayDateLayout = "02/01/2006"
	DisplayTimeLayout = "15:04"
	MonthQueryLayout  = "2006-01"
)
