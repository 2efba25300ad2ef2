package store

import (
	"sync"
	"time"

	"github.com/lfmoreira/studylog/internal/models"
)

// MemoryStore is an ephemeral RecordStore and SessionLedger. It backs
// the --memory flag (track without leaving anything on disk) and the
// test suites.
type MemoryStore struct {
	mu       sync.RWMutex
	records  []models.StudyRecord
	subjects []string
	active   *models.StudySession
	nextID   uint
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Append adds one record to the in-memory log
func (s *MemoryStore) Append(record *models.StudyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.nextID
	record.CreatedAt = time.Now()
	s.nextID++
	s.records = append(s.records, *record)
	return nil
}

// ReadAll returns a copy of the log so callers cannot mutate it
func (s *MemoryStore) ReadAll() ([]models.StudyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]models.StudyRecord, len(s.records))
	copy(records, s.records)
	return records, nil
}

// ListSubjects returns the vocabulary set via SetSubjects
func (s *MemoryStore) ListSubjects() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subjects := make([]string, len(s.subjects))
	copy(subjects, s.subjects)
	return subjects, nil
}

// AddSubject appends a name to the vocabulary, ignoring duplicates
func (s *MemoryStore) AddSubject(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.subjects {
		if existing == name {
			return nil
		}
	}
	s.subjects = append(s.subjects, name)
	return nil
}

// SetSubjects replaces the in-memory vocabulary
func (s *MemoryStore) SetSubjects(subjects []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subjects = append([]string(nil), subjects...)
}

// SaveActive stores the running session
func (s *MemoryStore) SaveActive(session *models.StudySession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = session
	return nil
}

// Active returns the running session, or nil
func (s *MemoryStore) Active() (*models.StudySession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil || !s.active.Active() {
		return nil, nil
	}
	return s.active, nil
}

// Finish clears the running session
func (s *MemoryStore) Finish(session *models.StudySession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
	return nil
}
