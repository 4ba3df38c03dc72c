package convert

import (
	"context"
	"sync"

	"log/slog"

	"webpify/internal/config"
	"webpify/internal/logging"
	"webpify/internal/scan"
	"webpify/internal/services/codec"
)

// Progress is a wave-boundary observation. Completed and SavedBytes only
// ever grow between observations.
type Progress struct {
	Wave       int
	Waves      int
	Completed  int
	Total      int
	SavedBytes int64
}

// ProgressFunc receives an observation after each wave barrier.
type ProgressFunc func(Progress)

// Runner executes a conversion plan in waves.
type Runner struct {
	logger      *slog.Logger
	converter   *Converter
	concurrency int
	progress    ProgressFunc
	sampler     *logging.ProgressSampler
}

// NewRunner builds a Runner over cfg and the codec service. A
// non-positive configured concurrency derives the wave size from the
// machine's CPU count.
func NewRunner(logger *slog.Logger, cfg *config.Config, service codec.Service) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	concurrency := cfg.Conversion.MaxConcurrency
	if concurrency < 1 {
		concurrency = config.AutoConcurrency()
	}
	return &Runner{
		logger:      logging.NewComponentLogger(logger, "batch"),
		converter:   NewConverter(logger, cfg, service),
		concurrency: concurrency,
		sampler:     logging.NewProgressSampler(0),
	}
}

// SetProgress registers an observer for wave-boundary progress.
func (r *Runner) SetProgress(fn ProgressFunc) {
	r.progress = fn
}

// SetForce disables the skip policy for the whole run.
func (r *Runner) SetForce(force bool) {
	r.converter.SetForce(force)
}

// Concurrency returns the effective wave size.
func (r *Runner) Concurrency() int {
	return r.concurrency
}

// Run drives every task in plan to a terminal state and finalizes the
// report. Tasks run in waves of the configured concurrency with a hard
// barrier between waves; wave N+1 never starts before every task of wave
// N finished. Per-file failures fold into the result. Only cancellation
// surfaces as an error, and it is observed between waves, so no wave is
// ever abandoned half-launched.
func (r *Runner) Run(ctx context.Context, plan *scan.Plan) (*Result, error) {
	stats := NewStats(plan.Total())
	stats.AddSkips(len(plan.Skips))

	total := len(plan.Tasks)
	waves := 0
	if r.concurrency > 0 {
		waves = (total + r.concurrency - 1) / r.concurrency
	}

	r.sampler.Reset()
	r.logger.Info("conversion starting",
		logging.Int("tasks", total),
		logging.Int("pre_skipped", len(plan.Skips)),
		logging.Int("concurrency", r.concurrency),
		logging.Int("waves", waves))

	tasks := plan.Tasks
	completed := 0
	for wave := 1; len(tasks) > 0; wave++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		size := r.concurrency
		if size > len(tasks) {
			size = len(tasks)
		}
		current := tasks[:size]
		tasks = tasks[size:]

		var wg sync.WaitGroup
		for _, task := range current {
			wg.Add(1)
			go func(task scan.Task) {
				defer wg.Done()
				outcome := r.converter.Convert(ctx, task)
				switch {
				case outcome.Skipped:
					stats.RecordSkip()
				case outcome.Err != nil:
					stats.RecordFailure(outcome.Task.Input, outcome.Err)
				default:
					stats.RecordSuccess(outcome.InputBytes, outcome.OutputBytes)
				}
			}(task)
		}
		wg.Wait()

		completed += size
		r.observe(wave, waves, completed, total, stats)
	}

	stats.Finish()
	return Finalize(stats.Snapshot()), nil
}

func (r *Runner) observe(wave, waves, completed, total int, stats *Stats) {
	snap := stats.Snapshot()
	percent := 100.0
	if total > 0 {
		percent = float64(completed) / float64(total) * 100
	}
	if r.sampler.ShouldLog(percent, "convert") {
		r.logger.Info("wave complete",
			logging.Int(logging.FieldWave, wave),
			logging.Int("waves", waves),
			logging.Int("completed", completed),
			logging.Int("total", total),
			logging.Int64("saved_bytes", snap.SavedBytes))
	}
	if r.progress != nil {
		r.progress(Progress{
			Wave:       wave,
			Waves:      waves,
			Completed:  completed,
			Total:      total,
			SavedBytes: snap.SavedBytes,
		})
	}
}
