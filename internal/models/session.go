package models

import (
	"time"
)

// StudySession represents one in-progress study interval. It is transient
// state: on stop it either becomes a StudyRecord or is discarded. The
// StoppedAt pointer doubles as the active flag (nil = still running),
// which is also how the session ledger finds the active row.
type StudySession struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Subject   string     `gorm:"not null" json:"subject"`
	StartedAt time.Time  `gorm:"not null" json:"started_at"`
	StoppedAt *time.Time `json:"stopped_at"`
}

// Active reports whether the session is still running
func (s *StudySession) Active() bool {
	return s.StoppedAt == nil
}
