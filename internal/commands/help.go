package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for studylog",
	Long:  `Display detailed help for all studylog commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
███████╗████████╗██╗   ██╗██████╗ ██╗   ██╗
██╔════╝╚══██╔══╝██║   ██║██╔══██╗╚██╗ ██╔╝
███████╗   ██║   ██║   ██║██║  ██║ ╚████╔╝
╚════██║   ██║   ██║   ██║██║  ██║  ╚██╔╝
███████║   ██║   ╚██████╔╝██████╔╝   ██║
╚══════╝   ╚═╝    ╚═════╝ ╚═════╝    ╚═╝

studylog - CLI study-time tracker

COMMANDS:

  start [subject]         Start a study session
    --no-ui               Plain start, subject required

    Without a subject, an interactive picker opens:
      ↑/↓           Choose a subject
      /             Type a free-text subject (when enabled)
      enter         Start the timer

    While the timer runs:
      s             Stop and save
      esc/q         Leave the timer running

  stop                    Stop the current session
                          Sessions under the minimum duration
                          (10s by default) are discarded.

  status                  Show the running session and elapsed time

  subjects                List the allowed subjects
  subjects add <name>     Add a subject to the list

  report                  Total study time per subject
  week                    Study time per weekday
    -w, --window          Trailing window: 30, 30d, 4w, '7 days'
  stats                   Session count, averages, sessions per day

  version                 Show version information
  help                    Show this help

FLAGS:

  --memory                Track in memory only, nothing written to disk

ENVIRONMENT:

  STUDYLOG_DATA_DIR       Data directory (default ~/.studylog)
  STUDYLOG_MIN_DURATION   Minimum recordable session (default 10s)
  STUDYLOG_WINDOW_DAYS    Default weekly-report window (default 30)
  STUDYLOG_FREE_SUBJECTS  Allow subjects outside the list (default false)
  STUDYLOG_RETRY_ATTEMPTS Storage retry attempts (default 3)
  STUDYLOG_RETRY_DELAY    Storage retry base delay (default 250ms)

Subjects can also be configured in <data dir>/subjects.yaml:

  subjects:
    - Math
    - Law

`)
}
