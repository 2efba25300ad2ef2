package store

import (
	"errors"

	"github.com/lfmoreira/studylog/internal/models"
)

// ErrUnavailable wraps every storage failure so callers can tell "the
// store is down" apart from domain outcomes like a rejected session.
// Storage failures are always recoverable from the core's point of view:
// the caller decides whether to retry, queue or drop.
var ErrUnavailable = errors.New("record store unavailable")

// RecordStore is the append-only log of completed study sessions. The
// log is never edited in place; summaries are recomputed from ReadAll.
type RecordStore interface {
	// Append durably adds one record to the log
	Append(record *models.StudyRecord) error
	// ReadAll returns the full historical log, in no guaranteed order
	ReadAll() ([]models.StudyRecord, error)
	// ListSubjects returns the allowed subject vocabulary. May be empty,
	// in which case callers fall back to their configured default list.
	ListSubjects() ([]string, error)
}

// SessionLedger persists the single active session across command
// invocations so start, status and stop can run as separate processes.
// This is presentation-layer state, not part of the record log.
type SessionLedger interface {
	// SaveActive persists a newly started session
	SaveActive(session *models.StudySession) error
	// Active returns the running session, or nil when there is none
	Active() (*models.StudySession, error)
	// Finish marks a session as stopped
	Finish(session *models.StudySession) error
}
