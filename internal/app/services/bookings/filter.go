package bookings

import (
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
)

// matchesDimension treats both the explicit ALL sentinel and the empty
// string as "no filter".
func matchesDimension(selected, value string) bool {
	return selected == "" || selected == constvars.FilterAll || selected == value
}

// Matches reports whether a booking passes every active dimension of the
// filter. Comparisons are exact; the dimensions are ANDed.
func Matches(filter models.BookingFilter, booking models.Booking) bool {
	return matchesDimension(filter.Employee, booking.EmployeeName) &&
		matchesDimension(filter.Service, booking.ServiceName) &&
		matchesDimension(filter.Status, booking.Status)
}

// ApplyFilter returns the subset of bookings passing the filter, preserving
// input order.
func ApplyFilter(bookings []models.Booking, filter models.BookingFilter) []models.Booking {
	filtered := make([]models.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if Matches(filter, booking) {
			filtered = append(filtered, booking)
		}
	}
	return filtered
}

// DeriveOptions collects the selectable filter values, ALL first, then in
// first-seen order of the booking list.
func DeriveOptions(bookings []models.Booking) models.FilterOptions {
	options := models.FilterOptions{
		Employees: []string{constvars.FilterAll},
		Services:  []string{constvars.FilterAll},
		Statuses:  []string{constvars.FilterAll},
	}
	seenEmployees := map[string]bool{}
	seenServices := map[string]bool{}
	seenStatuses := map[string]bool{}
	for _, booking := range bookings {
		if booking.EmployeeName != "" && !seenEmployees[booking.EmployeeName] {
			seenEmployees[booking.EmployeeName] = true
			options.Employees = append(options.Employees, booking.EmployeeName)
		}
		if booking.ServiceName != "" && !seenServices[booking.ServiceName] {
			seenServices[booking.ServiceName] = true
			options.Services = append(options.Services, booking.ServiceName)
		}
		if booking.Status != "" && !seenStatuses[booking.Status] {
			seenStatuses[booking.Status] = true
			options.Statuses = append(options.Statuses, booking.Status)
		}
	}
	return options
}

// FilterEngine re-derives the filtered view and notifies a registered
// observer with the flattened filtered list. Notification is suppressed when
// the ordered id sequence is unchanged; comparing the full sequence instead
// of a count-plus-endpoints shortcut means no real change is ever missed.
type FilterEngine struct {
	observer    func([]models.Booking)
	lastIDOrder []string
}

func NewFilterEngine(observer func([]models.Booking)) *FilterEngine {
	return &FilterEngine{observer: observer}
}

// Seed primes the suppression state with a previously observed id sequence.
// An engine rebuilt from persisted state must not re-notify a view that has
// not moved since the last request.
func (e *FilterEngine) Seed(idOrder []string) {
	e.lastIDOrder = idOrder
}

// IDOrder returns the id sequence of the last observed filtered view, for
// persisting alongside the state the engine was built from.
func (e *FilterEngine) IDOrder() []string {
	return e.lastIDOrder
}

// Update applies the filter and regroups. The observer fires only when the
// filtered result actually changed.
func (e *FilterEngine) Update(bookings []models.Booking, filter models.BookingFilter) map[string][]models.Booking {
	filtered := ApplyFilter(bookings, filter)
	groups := GroupByDay(filtered)
	flattened := Flatten(groups)

	idOrder := make([]string, len(flattened))
	for i, booking := range flattened {
		idOrder[i] = booking.ID
	}
	if !equalIDOrder(e.lastIDOrder, idOrder) {
		e.lastIDOrder = idOrder
		if e.observer != nil {
			e.observer(flattened)
		}
	}
	return groups
}

func equalIDOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
