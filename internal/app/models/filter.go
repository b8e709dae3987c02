package models

// BookingFilter selects bookings by employee, service and status. Each
// dimension is either the ALL sentinel or an exact value; active dimensions
// are ANDed.
type BookingFilter struct {
	Employee string `json:"employee"`
	Service  string `json:"service"`
	Status   string `json:"status"`
}

// FilterOptions lists the selectable values per dimension, ALL first, in
// first-seen order of the underlying booking list.
type FilterOptions struct {
	Employees []string `json:"employees"`
	Services  []string `json:"services"`
	Statuses  []string `json:"statuses"`
}
