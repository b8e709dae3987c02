// Package salondto holds the wire shapes of the external salon backend API,
// the way the backend returns them. Normalized representations live in
// internal/app/models.
package salondto

type Booking struct {
	ID           string `json:"id"`
	ServiceName  string `json:"serviceName"`
	EmployeeName string `json:"employeeName"`
	CustomerName string `json:"customerName"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Status       string `json:"status"`
	Color        string `json:"color,omitempty"`
}

type CreateBooking struct {
	EmployeeID string `json:"employeeId"`
	ServiceID  string `json:"serviceId"`
	StartTime  string `json:"startTime"`
	UserID     string `json:"userId,omitempty"`
}

type CreateGuestBooking struct {
	EmployeeID   string `json:"employeeId"`
	ServiceID    string `json:"serviceId"`
	StartTime    string `json:"startTime"`
	NameUser     string `json:"name_user"`
	PhoneUser    string `json:"phone_user"`
	ConsentTerms bool   `json:"consent_terms"`
}
