package models

import (
	"time"
)

// StudyRecord is one completed, persisted study session. Records are
// append-only: once written they are never edited or reordered.
type StudyRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Date            time.Time `gorm:"not null;index" json:"date"` // calendar day, local midnight
	StartTime       string    `gorm:"not null" json:"start_time"` // HH:MM
	EndTime         string    `gorm:"not null" json:"end_time"`   // HH:MM
	DurationMinutes float64   `gorm:"not null" json:"duration_minutes"`
	Subject         string    `gorm:"not null;index" json:"subject"`
}

// Subject is one entry of the allowed subject vocabulary
type Subject struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}
