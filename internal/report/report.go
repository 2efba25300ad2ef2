package report

import (
	"math"
	"sort"
	"time"

	"github.com/lfmoreira/studylog/internal/models"
)

// DefaultWindowDays is the trailing window for the weekly pattern view
const DefaultWindowDays = 30

// Monday-first, matching how the weekly pattern is presented
var weekdayLabels = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// SummarizeBySubject groups the record log by subject (exact match) and
// sums study time. Output is ordered by descending total minutes, ties
// broken by subject name, so reports are reproducible. An empty log
// yields an empty summary, not an error.
func SummarizeBySubject(records []models.StudyRecord) []models.SubjectSummary {
	totals := make(map[string]float64)
	for _, rec := range records {
		totals[rec.Subject] += safeMinutes(rec)
	}

	summaries := make([]models.SubjectSummary, 0, len(totals))
	for subject, minutes := range totals {
		summaries = append(summaries, models.SubjectSummary{
			Subject:      subject,
			TotalMinutes: minutes,
			TotalHours:   minutes / 60,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalMinutes != summaries[j].TotalMinutes {
			return summaries[i].TotalMinutes > summaries[j].TotalMinutes
		}
		return summaries[i].Subject < summaries[j].Subject
	})
	return summaries
}

// SummarizeByWeekday sums study time per day of the week over the
// trailing window ending at now. The result always has exactly seven
// entries, Monday through Sunday, zero-filled for weekdays without
// records, so downstream rendering never special-cases missing days.
func SummarizeByWeekday(records []models.StudyRecord, now time.Time, windowDays int) []models.WeekdaySummary {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	cutoff := today.AddDate(0, 0, -windowDays)

	var totals [7]float64
	for _, rec := range records {
		if rec.Date.Before(cutoff) {
			continue
		}
		totals[mondayIndex(rec.Date.Weekday())] += safeMinutes(rec)
	}

	summaries := make([]models.WeekdaySummary, 7)
	for i, label := range weekdayLabels {
		summaries[i] = models.WeekdaySummary{
			Weekday:      label,
			TotalMinutes: totals[i],
			TotalHours:   totals[i] / 60,
		}
	}
	return summaries
}

// ComputeStats derives the overall figures across the whole record log
func ComputeStats(records []models.StudyRecord) models.Stats {
	stats := models.Stats{SessionCount: len(records)}
	if len(records) == 0 {
		return stats
	}

	days := make(map[string]struct{})
	var totalMinutes float64
	for _, rec := range records {
		totalMinutes += safeMinutes(rec)
		days[rec.Date.Format("2006-01-02")] = struct{}{}
	}

	stats.TotalHours = totalMinutes / 60
	stats.AverageMinutes = totalMinutes / float64(stats.SessionCount)
	if len(days) > 0 {
		stats.SessionsPerDay = float64(stats.SessionCount) / float64(len(days))
	}
	return stats
}

// safeMinutes returns the record's duration, or zero when the stored
// value is unusable (negative, NaN, infinite). One bad row must not
// poison a whole report.
func safeMinutes(rec models.StudyRecord) float64 {
	v := rec.DurationMinutes
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// mondayIndex maps time.Weekday (Sunday = 0) onto the Monday-first order
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
