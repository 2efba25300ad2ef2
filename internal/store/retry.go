package store

import (
	"time"

	"github.com/lfmoreira/studylog/internal/models"
)

// RetryStore decorates a RecordStore with retry and exponential backoff.
// This is the single place retries happen: the timer and the aggregation
// code never retry on their own, they just see the final outcome.
type RetryStore struct {
	inner     RecordStore
	attempts  int
	baseDelay time.Duration
	sleep     func(time.Duration)
}

// WithRetry wraps a RecordStore so each operation is attempted up to
// attempts times, waiting baseDelay, 2*baseDelay, 4*baseDelay... between
// tries
func WithRetry(inner RecordStore, attempts int, baseDelay time.Duration) *RetryStore {
	if attempts < 1 {
		attempts = 1
	}
	return &RetryStore{
		inner:     inner,
		attempts:  attempts,
		baseDelay: baseDelay,
		sleep:     time.Sleep,
	}
}

// Append retries the underlying append
func (r *RetryStore) Append(record *models.StudyRecord) error {
	return r.do(func() error { return r.inner.Append(record) })
}

// ReadAll retries the underlying read
func (r *RetryStore) ReadAll() ([]models.StudyRecord, error) {
	var records []models.StudyRecord
	err := r.do(func() error {
		var innerErr error
		records, innerErr = r.inner.ReadAll()
		return innerErr
	})
	return records, err
}

// ListSubjects retries the underlying subject listing
func (r *RetryStore) ListSubjects() ([]string, error) {
	var subjects []string
	err := r.do(func() error {
		var innerErr error
		subjects, innerErr = r.inner.ListSubjects()
		return innerErr
	})
	return subjects, err
}

func (r *RetryStore) do(op func() error) error {
	var err error
	delay := r.baseDelay
	for attempt := 0; attempt < r.attempts; attempt++ {
		if attempt > 0 && delay > 0 {
			r.sleep(delay)
			delay *= 2
		}
		if err = op(); err == nil {
			return nil
		}
	}
	return err
}
