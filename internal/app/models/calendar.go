package models

// Pill is a single booking entry rendered inside a day cell.
type Pill struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// DayCell is one Monday-to-Friday cell of the month grid. When Overflow is
// set the cell carries only the aggregate Count and BadgeTier; otherwise
// Pills holds the individual entries.
type DayCell struct {
	DayKey    string `json:"dayKey"`
	Day       int    `json:"day"`
	InMonth   bool   `json:"inMonth"`
	Today     bool   `json:"today"`
	Count     int    `json:"count"`
	Overflow  bool   `json:"overflow"`
	BadgeTier string `json:"badgeTier,omitempty"`
	Pills     []Pill `json:"pills,omitempty"`
}
