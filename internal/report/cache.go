package report

import (
	"sync"
	"time"

	"github.com/lfmoreira/studylog/internal/models"
)

// Source is where the cache pulls the full record log from
type Source interface {
	ReadAll() ([]models.StudyRecord, error)
}

// Cache holds the last successfully read record log and derives summaries
// from it on demand. The log is the source of truth: Refresh always
// replaces the snapshot wholesale, never patches it in place, so a failed
// read leaves the previous snapshot intact and summaries are at worst
// stale, never corrupted.
type Cache struct {
	mu     sync.Mutex
	source Source

	records []models.StudyRecord
	primed  bool
}

// NewCache creates an empty cache backed by the given source
func NewCache(source Source) *Cache {
	return &Cache{source: source}
}

// Refresh replaces the cached snapshot with a fresh read of the full
// log. On failure the previous snapshot is kept and the error returned.
func (c *Cache) Refresh() error {
	records, err := c.source.ReadAll()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.records = records
	c.primed = true
	c.mu.Unlock()
	return nil
}

// Primed reports whether at least one Refresh has succeeded
func (c *Cache) Primed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.primed
}

// BySubject summarizes the cached snapshot per subject
func (c *Cache) BySubject() []models.SubjectSummary {
	return SummarizeBySubject(c.snapshot())
}

// ByWeekday summarizes the cached snapshot per weekday over the window
func (c *Cache) ByWeekday(now time.Time, windowDays int) []models.WeekdaySummary {
	return SummarizeByWeekday(c.snapshot(), now, windowDays)
}

// Stats computes overall figures from the cached snapshot
func (c *Cache) Stats() models.Stats {
	return ComputeStats(c.snapshot())
}

func (c *Cache) snapshot() []models.StudyRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.records
}
