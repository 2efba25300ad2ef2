package timer

import (
	"errors"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestStartAndElapsed(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	tm := New(WithClock(fixedClock(start)))

	session, err := tm.Start("Math")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if session.Subject != "Math" {
		t.Fatalf("expected subject Math, got %q", session.Subject)
	}
	if !session.StartedAt.Equal(start) {
		t.Fatalf("expected start %v, got %v", start, session.StartedAt)
	}
	if !tm.Active() {
		t.Fatalf("expected timer to be active after Start")
	}

	elapsed, skewed := tm.Elapsed(start.Add(90 * time.Second))
	if skewed {
		t.Fatalf("unexpected skew signal")
	}
	if elapsed != 90*time.Second {
		t.Fatalf("expected 90s elapsed, got %v", elapsed)
	}
}

func TestElapsedClampsClockSkew(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	tm := New(WithClock(fixedClock(start)))
	if _, err := tm.Start("Math"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	elapsed, skewed := tm.Elapsed(start.Add(-5 * time.Second))
	if elapsed != 0 {
		t.Fatalf("expected clamped zero elapsed, got %v", elapsed)
	}
	if !skewed {
		t.Fatalf("expected skew to be signaled")
	}
}

func TestStartWhileActiveFails(t *testing.T) {
	tm := New()
	if _, err := tm.Start("Math"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := tm.Start("Law"); !errors.Is(err, ErrSessionActive) {
		t.Fatalf("expected ErrSessionActive, got %v", err)
	}
}

func TestStartValidation(t *testing.T) {
	tests := []struct {
		name     string
		subjects []string
		freeText bool
		subject  string
		wantErr  error
	}{
		{"empty subject", []string{"Math"}, false, "", ErrEmptySubject},
		{"unknown subject strict", []string{"Math", "Law"}, false, "History", ErrUnknownSubject},
		{"known subject", []string{"Math", "Law"}, false, "Law", nil},
		{"unknown subject free text", []string{"Math"}, true, "History", nil},
		{"no vocabulary accepts anything", nil, false, "History", nil},
		{"empty subject free text", nil, true, "", ErrEmptySubject},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tm := New(WithSubjects(tc.subjects), WithFreeText(tc.freeText))
			_, err := tm.Start(tc.subject)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestStopWhileIdleFails(t *testing.T) {
	tm := New()
	if _, err := tm.Stop(time.Now()); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestStopRejectsTooShort(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	tm := New(WithClock(fixedClock(start)), WithMinDuration(10*time.Second))
	if _, err := tm.Start("Law"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	record, err := tm.Stop(start.Add(5 * time.Second))
	if !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}
	if record != nil {
		t.Fatalf("expected no record for a too-short session")
	}
	if tm.Active() {
		t.Fatalf("expected timer to be idle after rejected stop")
	}
}

func TestStopProducesRecord(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	tm := New(WithClock(fixedClock(start)), WithMinDuration(10*time.Second))
	if _, err := tm.Start("Law"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	record, err := tm.Stop(start.Add(150 * time.Second))
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if record.Subject != "Law" {
		t.Fatalf("expected subject Law, got %q", record.Subject)
	}
	if record.DurationMinutes != 2.5 {
		t.Fatalf("expected 2.5 minutes, got %v", record.DurationMinutes)
	}
	if record.StartTime != "09:00" || record.EndTime != "09:02" {
		t.Fatalf("expected 09:00-09:02, got %s-%s", record.StartTime, record.EndTime)
	}
	wantDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	if !record.Date.Equal(wantDate) {
		t.Fatalf("expected date %v, got %v", wantDate, record.Date)
	}
	if tm.Active() {
		t.Fatalf("expected timer to be idle after stop")
	}
}

func TestStopRoundsToTwoDecimals(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	tm := New(WithClock(fixedClock(start)))
	if _, err := tm.Start("Math"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// 100 seconds is 1.666... minutes, should round to 1.67
	record, err := tm.Stop(start.Add(100 * time.Second))
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if record.DurationMinutes != 1.67 {
		t.Fatalf("expected 1.67 minutes, got %v", record.DurationMinutes)
	}
}

func TestDoubleStopFails(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	tm := New(WithClock(fixedClock(start)))
	if _, err := tm.Start("Math"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := tm.Stop(start.Add(time.Minute)); err != nil {
		t.Fatalf("first Stop failed: %v", err)
	}
	if _, err := tm.Stop(start.Add(2 * time.Minute)); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession on second stop, got %v", err)
	}
}

func TestRestore(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	first := New(WithClock(fixedClock(start)))
	session, err := first.Start("Math")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// A second timer, as a fresh command invocation would build
	second := New(WithMinDuration(10 * time.Second))
	if err := second.Restore(session); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	record, err := second.Stop(start.Add(time.Minute))
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if record.DurationMinutes != 1.0 {
		t.Fatalf("expected 1.0 minutes, got %v", record.DurationMinutes)
	}
}

func TestRestoreRejectsStoppedSession(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	first := New(WithClock(fixedClock(start)))
	session, err := first.Start("Math")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := first.Stop(start.Add(time.Minute)); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	second := New()
	if err := second.Restore(session); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if err := second.Restore(nil); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession for nil session, got %v", err)
	}
}

func TestElapsedIsReadOnly(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	tm := New(WithClock(fixedClock(start)))
	if _, err := tm.Start("Math"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Polling at any cadence must not transition state
	for i := 0; i < 100; i++ {
		tm.Elapsed(start.Add(time.Duration(i) * time.Second))
	}
	if !tm.Active() {
		t.Fatalf("polling Elapsed must not change timer state")
	}
}
