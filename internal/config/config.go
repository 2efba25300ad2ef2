package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultSubjects is the built-in vocabulary used when neither the store
// nor subjects.yaml provides one
var DefaultSubjects = []string{"Languages", "Law", "Math", "Science"}

// Config is everything tunable from the environment
type Config struct {
	DataDir          string        `env:"STUDYLOG_DATA_DIR"`
	MinDuration      time.Duration `env:"STUDYLOG_MIN_DURATION" envDefault:"10s"`
	WindowDays       int           `env:"STUDYLOG_WINDOW_DAYS" envDefault:"30"`
	FreeTextSubjects bool          `env:"STUDYLOG_FREE_SUBJECTS" envDefault:"false"`
	RetryAttempts    int           `env:"STUDYLOG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay   time.Duration `env:"STUDYLOG_RETRY_DELAY" envDefault:"250ms"`

	// Subjects is the default vocabulary, loaded from subjects.yaml in
	// the data dir when present. Only used to seed an empty store.
	Subjects []string
}

// Load reads configuration from the environment and the optional
// subjects.yaml file in the data directory
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".studylog")
	}

	subjects, err := loadSubjectsFile(filepath.Join(cfg.DataDir, "subjects.yaml"))
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		subjects = DefaultSubjects
	}
	cfg.Subjects = subjects

	return cfg, nil
}

// DatabasePath returns the SQLite file location under the data dir
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "studylog.db")
}

type subjectsFile struct {
	Subjects []string `yaml:"subjects"`
}

// loadSubjectsFile reads the optional subjects.yaml. A missing file is
// fine; a malformed one is an error the user should hear about.
func loadSubjectsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file subjectsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file.Subjects, nil
}
