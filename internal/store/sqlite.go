package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lfmoreira/studylog/internal/models"
)

// SQLiteStore is the durable RecordStore and SessionLedger, backed by a
// single SQLite file under the data directory.
type SQLiteStore struct {
	db *gorm.DB
}

// Open opens (creating if needed) the database at path and runs
// migrations
func Open(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.StudyRecord{},
		&models.StudySession{},
		&models.Subject{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Append adds one completed record to the log
func (s *SQLiteStore) Append(record *models.StudyRecord) error {
	if err := s.db.Create(record).Error; err != nil {
		return unavailable("append record", err)
	}
	return nil
}

// ReadAll returns the full record log
func (s *SQLiteStore) ReadAll() ([]models.StudyRecord, error) {
	var records []models.StudyRecord
	if err := s.db.Order("date ASC, created_at ASC").Find(&records).Error; err != nil {
		return nil, unavailable("read records", err)
	}
	return records, nil
}

// ListSubjects returns the stored subject vocabulary, alphabetically
func (s *SQLiteStore) ListSubjects() ([]string, error) {
	var names []string
	if err := s.db.Model(&models.Subject{}).Order("name ASC").Pluck("name", &names).Error; err != nil {
		return nil, unavailable("list subjects", err)
	}
	return names, nil
}

// AddSubject adds a name to the vocabulary, ignoring duplicates
func (s *SQLiteStore) AddSubject(name string) error {
	subject := models.Subject{Name: name}
	if err := s.db.Where("name = ?", name).FirstOrCreate(&subject).Error; err != nil {
		return unavailable("add subject", err)
	}
	return nil
}

// SeedSubjects fills an empty vocabulary with the given defaults. A
// non-empty vocabulary is left alone.
func (s *SQLiteStore) SeedSubjects(names []string) error {
	var count int64
	if err := s.db.Model(&models.Subject{}).Count(&count).Error; err != nil {
		return unavailable("count subjects", err)
	}
	if count > 0 {
		return nil
	}
	for _, name := range names {
		if err := s.AddSubject(name); err != nil {
			return err
		}
	}
	return nil
}

// SaveActive persists a newly started session. Refuses to create a
// second active row.
func (s *SQLiteStore) SaveActive(session *models.StudySession) error {
	var existing models.StudySession
	err := s.db.Where("stopped_at IS NULL").First(&existing).Error
	if err == nil {
		return fmt.Errorf("a session for %q is already active", existing.Subject)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return unavailable("check active session", err)
	}

	if err := s.db.Create(session).Error; err != nil {
		return unavailable("save session", err)
	}
	return nil
}

// Active returns the running session, if any. No active session is not
// an error.
func (s *SQLiteStore) Active() (*models.StudySession, error) {
	var session models.StudySession
	err := s.db.Where("stopped_at IS NULL").First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, unavailable("find active session", err)
	}
	return &session, nil
}

// Finish marks a session as stopped
func (s *SQLiteStore) Finish(session *models.StudySession) error {
	if err := s.db.Save(session).Error; err != nil {
		return unavailable("finish session", err)
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(ErrUnavailable, err))
}
