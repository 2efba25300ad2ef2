package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lfmoreira/studylog/internal/timer"
	"github.com/lfmoreira/studylog/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start [subject]",
	Short: "Start a study session",
	Long: `Start a study session. Without a subject argument an interactive
picker opens; with --no-ui the subject is required.

Examples:
  studylog start          # Pick a subject, then run the timer UI
  studylog start Math     # Start studying Math
  studylog start Math --no-ui`,
	Args: cobra.MaximumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		active, err := ledger.Active()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if active != nil {
			fmt.Printf("Already studying %s (since %s). Stop it first with 'studylog stop'.\n",
				active.Subject, active.StartedAt.Format("15:04:05"))
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")

		var subject string
		if len(args) == 1 {
			subject = args[0]
		} else {
			if noUI {
				fmt.Println("Error: a subject is required with --no-ui")
				return
			}
			subject, err = tui.RunSubjectPicker(vocabulary(), cfg.FreeTextSubjects)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if subject == "" {
				fmt.Println("Cancelled.")
				return
			}
		}

		t := newTimer()
		session, err := t.Start(subject)
		if err != nil {
			printStartError(err, subject)
			return
		}

		if err := ledger.SaveActive(session); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if noUI {
			fmt.Printf("📚 Studying %s\n", session.Subject)
			fmt.Printf("Started at: %s\n", session.StartedAt.Format("15:04:05"))
			return
		}

		stopping, err := tui.RunTimer(t)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if stopping {
			finishSession(t)
		} else {
			fmt.Printf("\n💡 Timer keeps running for %s.\n", session.Subject)
			fmt.Printf("   Use 'studylog status' to check it or 'studylog stop' to stop.\n")
		}
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the current study session",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		active, err := ledger.Active()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if active == nil {
			fmt.Println("No active study session.")
			return
		}

		t := newTimer()
		if err := t.Restore(active); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		finishSession(t)
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current study session",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		active, err := ledger.Active()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if active == nil {
			fmt.Println("No active study session.")
			return
		}

		t := newTimer()
		if err := t.Restore(active); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		elapsed, skewed := t.Elapsed(time.Now())
		fmt.Printf("📚 Studying %s\n", active.Subject)
		fmt.Printf("Started at: %s\n", active.StartedAt.Format("15:04:05"))
		fmt.Printf("Elapsed: %s\n", formatDuration(elapsed))
		if skewed {
			fmt.Println("⚠ The system clock moved backwards; elapsed time is clamped to zero.")
		}
	}),
}

// finishSession stops the timer and persists the outcome. The session is
// deactivated in the ledger no matter what happens to the record: a
// storage failure must never leave the timer stuck active.
func finishSession(t *timer.Timer) {
	session := t.Session()
	record, stopErr := t.Stop(time.Now())

	if err := ledger.Finish(session); err != nil {
		fmt.Printf("⚠ Could not update the session ledger: %v\n", err)
	}

	switch {
	case errors.Is(stopErr, timer.ErrTooShort):
		fmt.Printf("⏹️  Stopped %s — under the %s minimum, nothing recorded.\n",
			session.Subject, cfg.MinDuration)

	case stopErr != nil:
		fmt.Printf("Error: %v\n", stopErr)

	default:
		if err := records.Append(record); err != nil {
			fmt.Printf("⚠ Could not reach storage: %v\n", err)
			fmt.Printf("Unsaved record: %s %s–%s, %.2f min of %s. Add it manually once storage is back.\n",
				record.Date.Format("2006-01-02"), record.StartTime, record.EndTime,
				record.DurationMinutes, record.Subject)
			return
		}
		fmt.Printf("⏹️  Stopped %s\n", record.Subject)
		fmt.Printf("📊 Recorded %.2f minutes (%s–%s)\n", record.DurationMinutes, record.StartTime, record.EndTime)
	}
}

func printStartError(err error, subject string) {
	switch {
	case errors.Is(err, timer.ErrUnknownSubject):
		fmt.Printf("Error: %q is not in your subject list. See 'studylog subjects'.\n", subject)
	case errors.Is(err, timer.ErrEmptySubject):
		fmt.Println("Error: subject must not be empty.")
	case errors.Is(err, timer.ErrSessionActive):
		fmt.Println("Error: a study session is already active. Stop it first with 'studylog stop'.")
	default:
		fmt.Printf("Error: %v\n", err)
	}
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Start without the interactive timer")
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	return fmt.Sprintf("%.0fs", d.Seconds())
}
