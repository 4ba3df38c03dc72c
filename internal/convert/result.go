package convert

import (
	"time"

	"webpify/internal/display"
)

// Result is the immutable end-of-run report.
type Result struct {
	TotalFiles      int           `json:"total_files"`
	Processed       int           `json:"processed"`
	Skipped         int           `json:"skipped"`
	Failed          []Failure     `json:"failed"`
	TotalInputBytes int64         `json:"total_input_bytes"`
	SavedBytes      int64         `json:"saved_bytes"`
	Elapsed         time.Duration `json:"elapsed_ns"`
	Duration        string        `json:"duration"`
	TotalInput      string        `json:"total_input"`
	Saved           string        `json:"saved"`
	Ratio           string        `json:"ratio"`
}

// Finalize renders a completed run's counters into the report handed to
// callers. The ratio is saved bytes over total input bytes, 0% for an
// empty input set.
func Finalize(snap Snapshot) *Result {
	var elapsed time.Duration
	if !snap.EndTime.IsZero() {
		elapsed = snap.EndTime.Sub(snap.StartTime)
	}
	return &Result{
		TotalFiles:      snap.TotalFiles,
		Processed:       snap.Processed,
		Skipped:         snap.Skipped,
		Failed:          snap.Failed,
		TotalInputBytes: snap.TotalInputBytes,
		SavedBytes:      snap.SavedBytes,
		Elapsed:         elapsed,
		Duration:        display.Duration(elapsed),
		TotalInput:      display.Bytes(snap.TotalInputBytes),
		Saved:           display.SignedBytes(snap.SavedBytes),
		Ratio:           display.Percent(snap.SavedBytes, snap.TotalInputBytes),
	}
}

// Succeeded reports whether the run completed without any per-file
// failure.
func (r *Result) Succeeded() bool {
	return len(r.Failed) == 0
}
