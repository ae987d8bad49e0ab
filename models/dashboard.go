package models

// DashboardStats are the summary counters shown on a counselor dashboard.
type DashboardStats struct {
	StudentsHelped int `json:"studentsHelped"` // Distinct nicknames across Confirmed and Completed
	HoursDedicated int `json:"hoursDedicated"` // One unit per Completed session
}

// DashboardSummary is the read-only projection of a counselor's appointments.
type DashboardSummary struct {
	Pending   []Appointment  `json:"pendingRequests"` // Ascending by date
	Confirmed []Appointment  `json:"appointments"`    // Ascending by date
	Completed []Appointment  `json:"history"`         // Descending by date, most recent first
	Stats     DashboardStats `json:"stats"`
}
