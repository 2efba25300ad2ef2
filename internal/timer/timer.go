package timer

import (
	"errors"
	"math"
	"time"

	"github.com/lfmoreira/studylog/internal/models"
)

// DefaultMinDuration is the shortest session worth recording. Anything
// under it is discarded on stop instead of being written to the log.
const DefaultMinDuration = 10 * time.Second

var (
	// ErrSessionActive means Start was called while a session is running
	ErrSessionActive = errors.New("a study session is already active")
	// ErrNoSession means Stop or Restore hit an idle timer
	ErrNoSession = errors.New("no active study session")
	// ErrEmptySubject means Start was called with an empty subject
	ErrEmptySubject = errors.New("subject must not be empty")
	// ErrUnknownSubject means the subject is not in the allowed vocabulary
	ErrUnknownSubject = errors.New("subject is not in the subject list")
	// ErrTooShort is the normal negative-path outcome of Stop: the session
	// ended before the minimum duration and nothing gets persisted. Not a
	// failure, but callers must be able to tell it apart from a saved stop.
	ErrTooShort = errors.New("session too short to record")
)

// Timer owns the lifecycle of a single study session: idle or active,
// nothing else. It never sleeps, never polls and never touches storage;
// displaying a running clock is the caller's concern via Elapsed.
type Timer struct {
	clock       func() time.Time
	minDuration time.Duration
	subjects    []string
	freeText    bool

	session *models.StudySession
}

// Option configures a Timer
type Option func(*Timer)

// WithMinDuration overrides the minimum recordable session length
func WithMinDuration(d time.Duration) Option {
	return func(t *Timer) { t.minDuration = d }
}

// WithSubjects sets the allowed subject vocabulary. An empty vocabulary
// accepts any non-empty subject.
func WithSubjects(subjects []string) Option {
	return func(t *Timer) { t.subjects = subjects }
}

// WithFreeText disables subject validation so any non-empty subject is
// accepted even when a vocabulary is set
func WithFreeText(allowed bool) Option {
	return func(t *Timer) { t.freeText = allowed }
}

// WithClock replaces the wall clock used by Start. For tests.
func WithClock(clock func() time.Time) Option {
	return func(t *Timer) { t.clock = clock }
}

// New creates an idle timer
func New(opts ...Option) *Timer {
	t := &Timer{
		clock:       time.Now,
		minDuration: DefaultMinDuration,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins a new session for the given subject. Fails with
// ErrSessionActive if a session is already running, ErrEmptySubject if
// the subject is blank, and ErrUnknownSubject if validation is on and the
// subject is not in the vocabulary.
func (t *Timer) Start(subject string) (*models.StudySession, error) {
	if t.session != nil && t.session.Active() {
		return nil, ErrSessionActive
	}
	if subject == "" {
		return nil, ErrEmptySubject
	}
	if !t.allowed(subject) {
		return nil, ErrUnknownSubject
	}

	t.session = &models.StudySession{
		Subject:   subject,
		StartedAt: t.clock(),
	}
	return t.session, nil
}

// Restore rehydrates the timer from a previously persisted active
// session, so separate command invocations can share one logical session.
func (t *Timer) Restore(session *models.StudySession) error {
	if t.session != nil && t.session.Active() {
		return ErrSessionActive
	}
	if session == nil || !session.Active() {
		return ErrNoSession
	}
	t.session = session
	return nil
}

// Session returns the current session, or nil when idle
func (t *Timer) Session() *models.StudySession {
	return t.session
}

// Active reports whether a session is running
func (t *Timer) Active() bool {
	return t.session != nil && t.session.Active()
}

// MinDuration returns the configured minimum recordable length
func (t *Timer) MinDuration() time.Duration {
	return t.minDuration
}

// Elapsed returns how long the current session has been running at the
// given instant. It is a pure read: safe to call at any cadence for
// display, never changes state. If the clock went backwards the result
// is clamped to zero and the second return value reports the skew.
func (t *Timer) Elapsed(now time.Time) (time.Duration, bool) {
	if !t.Active() {
		return 0, false
	}
	elapsed := now.Sub(t.session.StartedAt)
	if elapsed < 0 {
		return 0, true
	}
	return elapsed, false
}

// Stop ends the current session at the given instant. The timer returns
// to idle no matter what. If the realized duration is under the minimum,
// Stop returns ErrTooShort and no record; otherwise it returns the
// completed StudyRecord for the caller to persist. Stopping an idle timer
// fails with ErrNoSession.
func (t *Timer) Stop(now time.Time) (*models.StudyRecord, error) {
	if !t.Active() {
		return nil, ErrNoSession
	}

	session := t.session
	elapsed, _ := t.Elapsed(now)

	stopped := now
	session.StoppedAt = &stopped
	t.session = nil

	if elapsed < t.minDuration {
		return nil, ErrTooShort
	}

	started := session.StartedAt
	record := &models.StudyRecord{
		Date:            time.Date(started.Year(), started.Month(), started.Day(), 0, 0, 0, 0, started.Location()),
		StartTime:       started.Format("15:04"),
		EndTime:         now.Format("15:04"),
		DurationMinutes: roundMinutes(elapsed),
		Subject:         session.Subject,
	}
	return record, nil
}

func (t *Timer) allowed(subject string) bool {
	if t.freeText || len(t.subjects) == 0 {
		return true
	}
	for _, s := range t.subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// roundMinutes converts a duration to minutes rounded to two decimals,
// the precision records are stored with
func roundMinutes(d time.Duration) float64 {
	return math.Round(d.Seconds()/60*100) / 100
}
