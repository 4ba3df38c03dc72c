package convert

import (
	"sync"
	"time"
)

// Failure identifies one file that could not be converted.
type Failure struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// Stats aggregates the counters shared by every conversion in one run.
// All mutation goes through its methods under the mutex; concurrent tasks
// never touch fields directly.
type Stats struct {
	mu              sync.Mutex
	totalFiles      int
	processed       int
	skipped         int
	failed          []Failure
	totalInputBytes int64
	savedBytes      int64
	startTime       time.Time
	endTime         time.Time
}

// NewStats opens the counters for a run covering totalFiles entries and
// records the start time.
func NewStats(totalFiles int) *Stats {
	return &Stats{
		totalFiles: totalFiles,
		startTime:  time.Now(),
	}
}

// AddSkips folds n pre-counted skips from discovery into the totals.
func (s *Stats) AddSkips(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipped += n
}

// RecordSkip counts a task whose output was already current.
func (s *Stats) RecordSkip() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipped++
}

// RecordSuccess counts a published conversion. The saving may be negative
// when the conversion grew the file; it is recorded as-is.
func (s *Stats) RecordSuccess(inputBytes, outputBytes int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed++
	s.totalInputBytes += inputBytes
	s.savedBytes += inputBytes - outputBytes
}

// RecordFailure captures one file's terminal error.
func (s *Stats) RecordFailure(file string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = append(s.failed, Failure{File: file, Error: err.Error()})
}

// Finish stamps the end time.
func (s *Stats) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endTime = time.Now()
}

// Snapshot copies the current counters. The failed list is duplicated so
// callers never alias the guarded slice.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	failed := make([]Failure, len(s.failed))
	copy(failed, s.failed)
	return Snapshot{
		TotalFiles:      s.totalFiles,
		Processed:       s.processed,
		Skipped:         s.skipped,
		Failed:          failed,
		TotalInputBytes: s.totalInputBytes,
		SavedBytes:      s.savedBytes,
		StartTime:       s.startTime,
		EndTime:         s.endTime,
	}
}

// Snapshot is a point-in-time copy of a run's counters.
type Snapshot struct {
	TotalFiles      int
	Processed       int
	Skipped         int
	Failed          []Failure
	TotalInputBytes int64
	SavedBytes      int64
	StartTime       time.Time
	EndTime         time.Time
}
