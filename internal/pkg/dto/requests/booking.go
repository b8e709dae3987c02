package requests

// DashboardQuery carries the calendar cursor and the three filter
// dimensions. Empty filter values mean the ALL sentinel; Refresh forces a
// round trip to the salon API instead of serving the cached view.
type DashboardQuery struct {
	Month    string `validate:"omitempty,datetime=2006-01"`
	Employee string
	Service  string
	Status   string `validate:"omitempty,booking_status"`
	Refresh  bool
}

type CreateBooking struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	ServiceID  string `json:"serviceId" validate:"required"`
	StartTime  string `json:"startTime" validate:"required,datetime=2006-01-02T15:04:05"`
	UserID     string `json:"userId" validate:"required"`
}

type CreateGuestBooking struct {
	EmployeeID   string `json:"employeeId" validate:"required"`
	ServiceID    string `json:"serviceId" validate:"required"`
	StartTime    string `json:"startTime" validate:"required,datetime=2006-01-02T15:04:05"`
	NameUser     string `json:"name_user" validate:"required,min=2,max=120"`
	PhoneUser    string `json:"phone_user" validate:"required,phone_number"`
	ConsentTerms bool   `json:"consent_terms" validate:"required"`
}

// UpdateSelection switches the summary panel either to one day's bookings or
// to the full list.
type UpdateSelection struct {
	Day string `json:"day,omitempty" validate:"omitempty,datetime=2006-01-02"`
	All bool   `json:"all,omitempty"`
}
