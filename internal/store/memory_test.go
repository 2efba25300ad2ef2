package store

import (
	"testing"
	"time"

	"github.com/lfmoreira/studylog/internal/models"
)

func sampleRecord(subject string, minutes float64) *models.StudyRecord {
	return &models.StudyRecord{
		Date:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
		StartTime:       "09:00",
		EndTime:         "09:30",
		DurationMinutes: minutes,
		Subject:         subject,
	}
}

func TestMemoryStoreAppendAndReadAll(t *testing.T) {
	s := NewMemoryStore()

	if err := s.Append(sampleRecord("Math", 30)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Append(sampleRecord("Law", 15)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	records, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID == records[1].ID {
		t.Fatalf("expected distinct record IDs")
	}

	// Mutating the returned slice must not touch the log
	records[0].Subject = "tampered"
	again, _ := s.ReadAll()
	if again[0].Subject != "Math" {
		t.Fatalf("ReadAll must return a copy, log was mutated")
	}
}

func TestMemoryStoreSubjects(t *testing.T) {
	s := NewMemoryStore()
	s.SetSubjects([]string{"Math", "Law"})

	if err := s.AddSubject("History"); err != nil {
		t.Fatalf("AddSubject failed: %v", err)
	}
	if err := s.AddSubject("Math"); err != nil {
		t.Fatalf("duplicate AddSubject failed: %v", err)
	}

	subjects, err := s.ListSubjects()
	if err != nil {
		t.Fatalf("ListSubjects failed: %v", err)
	}
	if len(subjects) != 3 {
		t.Fatalf("expected 3 subjects, got %v", subjects)
	}
}

func TestMemoryStoreLedger(t *testing.T) {
	s := NewMemoryStore()

	active, err := s.Active()
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	if active != nil {
		t.Fatalf("expected no active session in a fresh store")
	}

	session := &models.StudySession{Subject: "Math", StartedAt: time.Now()}
	if err := s.SaveActive(session); err != nil {
		t.Fatalf("SaveActive failed: %v", err)
	}

	active, err = s.Active()
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	if active == nil || active.Subject != "Math" {
		t.Fatalf("expected the saved session, got %+v", active)
	}

	if err := s.Finish(session); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	active, _ = s.Active()
	if active != nil {
		t.Fatalf("expected no active session after Finish")
	}
}
