package store

import (
	"errors"
	"testing"
	"time"

	"github.com/lfmoreira/studylog/internal/models"
)

var errTransient = errors.New("transient failure")

// failNStore fails the first n calls of every operation
type failNStore struct {
	failures int
	calls    int
	records  []models.StudyRecord
}

func (s *failNStore) op() error {
	s.calls++
	if s.calls <= s.failures {
		return unavailable("flaky", errTransient)
	}
	return nil
}

func (s *failNStore) Append(record *models.StudyRecord) error {
	if err := s.op(); err != nil {
		return err
	}
	s.records = append(s.records, *record)
	return nil
}

func (s *failNStore) ReadAll() ([]models.StudyRecord, error) {
	if err := s.op(); err != nil {
		return nil, err
	}
	return s.records, nil
}

func (s *failNStore) ListSubjects() ([]string, error) {
	if err := s.op(); err != nil {
		return nil, err
	}
	return []string{"Math"}, nil
}

func newTestRetry(inner RecordStore, attempts int) (*RetryStore, *[]time.Duration) {
	r := WithRetry(inner, attempts, 10*time.Millisecond)
	var delays []time.Duration
	r.sleep = func(d time.Duration) { delays = append(delays, d) }
	return r, &delays
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	inner := &failNStore{failures: 2}
	r, delays := newTestRetry(inner, 3)

	if err := r.Append(sampleRecord("Math", 30)); err != nil {
		t.Fatalf("expected success on the third attempt, got %v", err)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
	if len(*delays) != 2 {
		t.Fatalf("expected 2 backoff sleeps, got %d", len(*delays))
	}
	// Exponential: base, then doubled
	if (*delays)[0] != 10*time.Millisecond || (*delays)[1] != 20*time.Millisecond {
		t.Fatalf("expected 10ms then 20ms backoff, got %v", *delays)
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	inner := &failNStore{failures: 10}
	r, _ := newTestRetry(inner, 3)

	if err := r.Append(sampleRecord("Math", 30)); err == nil {
		t.Fatalf("expected failure after exhausting attempts")
	}
	if inner.calls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", inner.calls)
	}
}

func TestRetryReadAllPassesThrough(t *testing.T) {
	inner := &failNStore{}
	r, _ := newTestRetry(inner, 2)
	if err := r.Append(sampleRecord("Law", 20)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	inner.calls = 0
	inner.failures = 1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 1 || records[0].Subject != "Law" {
		t.Fatalf("expected the appended record back, got %+v", records)
	}

	inner.calls = 0
	subjects, err := r.ListSubjects()
	if err != nil {
		t.Fatalf("ListSubjects failed: %v", err)
	}
	if len(subjects) != 1 {
		t.Fatalf("expected 1 subject, got %v", subjects)
	}
}

func TestRetrySingleAttemptMinimum(t *testing.T) {
	inner := &failNStore{failures: 0}
	r := WithRetry(inner, 0, time.Millisecond)
	if err := r.Append(sampleRecord("Math", 5)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("attempts below 1 must clamp to 1, got %d calls", inner.calls)
	}
}
