package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/lfmoreira/studylog/internal/config"
	"github.com/lfmoreira/studylog/internal/store"
	"github.com/lfmoreira/studylog/internal/timer"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "studylog",
	Short: "A CLI study-time tracker",
	Long: `studylog tracks how long you study each subject.
Start a timer, stop it, and review per-subject and weekly reports
computed from your full session history.`,
}

// subjectAdder is the slice of the store that manages the vocabulary
type subjectAdder interface {
	AddSubject(name string) error
}

var (
	cfg      *config.Config
	records  store.RecordStore
	ledger   store.SessionLedger
	subjects subjectAdder
)

// initApp loads config and wires the storage stack: the SQLite store
// behind the retry decorator, or a throwaway in-memory store with
// --memory
func initApp() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if useMemory {
		mem := store.NewMemoryStore()
		mem.SetSubjects(cfg.Subjects)
		records = mem
		ledger = mem
		subjects = mem
		return nil
	}

	sqlite, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	if err := sqlite.SeedSubjects(cfg.Subjects); err != nil {
		return fmt.Errorf("failed to seed subjects: %w", err)
	}

	records = store.WithRetry(sqlite, cfg.RetryAttempts, cfg.RetryBaseDelay)
	ledger = sqlite
	subjects = sqlite
	return nil
}

// withApp wraps a command function to initialize config and storage first
func withApp(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := initApp(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fn(cmd, args)
	}
}

// vocabulary returns the allowed subject list: the store's when it has
// one, the configured defaults otherwise
func vocabulary() []string {
	names, err := records.ListSubjects()
	if err != nil {
		log.Printf("list subjects: %v (falling back to configured defaults)", err)
		return cfg.Subjects
	}
	if len(names) == 0 {
		return cfg.Subjects
	}
	return names
}

// newTimer builds a SessionTimer from the loaded configuration
func newTimer() *timer.Timer {
	return timer.New(
		timer.WithMinDuration(cfg.MinDuration),
		timer.WithSubjects(vocabulary()),
		timer.WithFreeText(cfg.FreeTextSubjects),
	)
}

var useMemory bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("studylog %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&useMemory, "memory", false, "Track in memory only, nothing written to disk")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
