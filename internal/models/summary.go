package models

// SubjectSummary is the total study time for one subject, derived from
// the full record log. Never persisted, always recomputed.
type SubjectSummary struct {
	Subject      string  `json:"subject"`
	TotalMinutes float64 `json:"total_minutes"`
	TotalHours   float64 `json:"total_hours"`
}

// WeekdaySummary is the total study time for one day of the week over a
// trailing window. A summary set always covers all seven weekdays.
type WeekdaySummary struct {
	Weekday      string  `json:"weekday"`
	TotalMinutes float64 `json:"total_minutes"`
	TotalHours   float64 `json:"total_hours"`
}

// Stats are overall figures across the whole record log
type Stats struct {
	TotalHours     float64 `json:"total_hours"`
	SessionCount   int     `json:"session_count"`
	AverageMinutes float64 `json:"average_minutes"`
	SessionsPerDay float64 `json:"sessions_per_day"`
}
