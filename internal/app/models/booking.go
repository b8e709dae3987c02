package models

// Booking is the normalized, locally-keyed representation of an upstream
// booking record. Display fields are pre-formatted; DayKey and StartMinutes
// are derived from the local interpretation of the upstream start timestamp.
type Booking struct {
	ID           string `json:"id"`
	ServiceName  string `json:"serviceName"`
	EmployeeName string `json:"employeeName"`
	ClientName   string `json:"clientName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Status       string `json:"status"`
	DayKey       string `json:"dayKey"`
	StartMinutes int    `json:"startMinutes"`
	Color        string `json:"color,omitempty"`
}

// BookingPatch carries a partial update. Nil fields are left untouched.
type BookingPatch struct {
	ServiceName  *string `json:"serviceName,omitempty"`
	EmployeeName *string `json:"employeeName,omitempty"`
	ClientName   *string `json:"clientName,omitempty"`
	Status       *string `json:"status,omitempty"`
	Color        *string `json:"color,omitempty"`
}

// Apply copies the non-nil patch fields onto b.
func (p BookingPatch) Apply(b *Booking) {
	if p.ServiceName != nil {
		b.ServiceName = *p.ServiceName
	}
	if p.EmployeeName != nil {
		b.EmployeeName = *p.EmployeeName
	}
	if p.ClientName != nil {
		b.ClientName = *p.ClientName
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.Color != nil {
		b.Color = *p.Color
	}
}
