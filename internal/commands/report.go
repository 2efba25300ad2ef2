package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lfmoreira/studylog/internal/parser"
	"github.com/lfmoreira/studylog/internal/report"
)

// shortAverageMinutes is the advisory threshold for the stats view
const shortAverageMinutes = 15

var summaryCache *report.Cache

// refreshCache pulls the full record log into the summary cache. On a
// storage failure a previously primed cache is served stale with a
// warning instead of failing the whole report.
func refreshCache() (*report.Cache, error) {
	if summaryCache == nil {
		summaryCache = report.NewCache(records)
	}
	if err := summaryCache.Refresh(); err != nil {
		if summaryCache.Primed() {
			fmt.Println("⚠ Storage unreachable, showing the last loaded data.")
			return summaryCache, nil
		}
		return nil, err
	}
	return summaryCache, nil
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Total study time per subject",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		cache, err := refreshCache()
		if err != nil {
			fmt.Printf("Error reading records: %v\n", err)
			return
		}

		summaries := cache.BySubject()
		if len(summaries) == 0 {
			fmt.Println("No study sessions recorded yet. Use 'studylog start' to begin.")
			return
		}

		fmt.Printf("%-25s %12s %10s\n", "SUBJECT", "MINUTES", "HOURS")
		fmt.Println(strings.Repeat("-", 49))
		for _, s := range summaries {
			fmt.Printf("%-25s %12.2f %10.2f\n", truncate(s.Subject, 25), s.TotalMinutes, s.TotalHours)
		}
	}),
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Study time per weekday over the trailing window",
	Long: `Show how study time spreads across the days of the week, counting
sessions from the trailing window (30 days by default).

Examples:
  studylog week
  studylog week --window 7d
  studylog week --window "2 weeks"`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		windowDays := cfg.WindowDays
		if flag, _ := cmd.Flags().GetString("window"); flag != "" {
			parsed, err := parser.ParseWindow(flag)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			windowDays = parsed
		}

		cache, err := refreshCache()
		if err != nil {
			fmt.Printf("Error reading records: %v\n", err)
			return
		}

		fmt.Printf("Last %d days\n\n", windowDays)
		fmt.Printf("%-12s %12s %10s\n", "WEEKDAY", "MINUTES", "HOURS")
		fmt.Println(strings.Repeat("-", 36))
		for _, s := range cache.ByWeekday(time.Now(), windowDays) {
			fmt.Printf("%-12s %12.2f %10.2f\n", s.Weekday, s.TotalMinutes, s.TotalHours)
		}
	}),
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Overall study statistics",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		cache, err := refreshCache()
		if err != nil {
			fmt.Printf("Error reading records: %v\n", err)
			return
		}

		stats := cache.Stats()
		fmt.Printf("Total study time:  %.2f hours\n", stats.TotalHours)
		fmt.Printf("Sessions:          %d\n", stats.SessionCount)
		fmt.Printf("Average session:   %.2f minutes\n", stats.AverageMinutes)
		fmt.Printf("Sessions per day:  %.2f\n", stats.SessionsPerDay)

		if stats.SessionCount > 0 && stats.AverageMinutes < shortAverageMinutes {
			fmt.Println("\n💡 Your average session is quite short. Longer blocks tend to stick better.")
		}
	}),
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	weekCmd.Flags().StringP("window", "w", "", "Trailing window (30, 30d, 4w, '7 days')")
}
