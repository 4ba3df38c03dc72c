package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/google/uuid"

	"webpify/internal/config"
	"webpify/internal/fileutil"
	"webpify/internal/logging"
	"webpify/internal/scan"
	"webpify/internal/services"
	"webpify/internal/services/codec"
)

// Outcome reports one task's terminal state.
type Outcome struct {
	Task        scan.Task
	Skipped     bool
	InputBytes  int64
	OutputBytes int64
	Err         error
}

// Converter publishes WebP files for individual tasks.
type Converter struct {
	logger     *slog.Logger
	service    codec.Service
	quality    int
	autoRotate bool
	lossless   bool
	force      bool
}

// NewConverter builds a Converter bound to cfg's conversion settings.
func NewConverter(logger *slog.Logger, cfg *config.Config, service codec.Service) *Converter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Converter{
		logger:     logging.NewComponentLogger(logger, "convert"),
		service:    service,
		quality:    config.ClampQuality(cfg.Conversion.Quality),
		autoRotate: cfg.Conversion.AutoRotate,
		lossless:   cfg.Conversion.Lossless,
	}
}

// SetForce disables the skip policy so current outputs convert again.
func (c *Converter) SetForce(force bool) {
	c.force = force
}

// Convert runs one task through the skip policy, the codec, and the
// atomic publish. Every failure is contained in the returned Outcome;
// nothing ever appears at the output path except a fully validated file.
func (c *Converter) Convert(ctx context.Context, task scan.Task) Outcome {
	if !c.force && !ShouldConvert(task.Input, task.Output) {
		c.logger.Debug("output current, skipping",
			logging.String(logging.FieldInput, task.Input),
			logging.String(logging.FieldOutput, task.Output))
		return Outcome{Task: task, Skipped: true}
	}

	inputInfo, err := os.Stat(task.Input)
	if err != nil {
		return c.fail(task, "", services.Wrap(services.ErrTransient, "convert", "stat input", task.Input, err))
	}

	temp := tempPath(task.Output)
	if err := fileutil.EnsureDir(filepath.Dir(task.Output)); err != nil {
		return c.fail(task, "", services.Wrap(services.ErrTransient, "convert", "prepare output", filepath.Dir(task.Output), err))
	}

	if err := ctx.Err(); err != nil {
		return c.fail(task, "", err)
	}
	payload, err := c.encode(ctx, task.Input)
	if err != nil {
		return c.fail(task, "", err)
	}
	if err := os.WriteFile(temp, payload, 0o644); err != nil {
		return c.fail(task, temp, services.Wrap(services.ErrTransient, "convert", "write temp", temp, err))
	}

	tempInfo, err := os.Stat(temp)
	if err != nil {
		return c.fail(task, temp, services.Wrap(services.ErrTransient, "convert", "stat temp", temp, err))
	}
	if tempInfo.Size() == 0 {
		return c.fail(task, temp, services.Wrap(services.ErrEmptyOutput, "convert", "validate", task.Input, nil))
	}

	if info, err := os.Lstat(task.Output); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return c.fail(task, temp, services.Wrap(services.ErrSymlinkOverwrite, "convert", "publish", task.Output, nil))
	}

	if err := ctx.Err(); err != nil {
		return c.fail(task, temp, err)
	}
	if err := os.Rename(temp, task.Output); err != nil {
		return c.fail(task, temp, services.Wrap(services.ErrTransient, "convert", "publish", task.Output, err))
	}

	outputBytes := int64(len(payload))
	c.logger.Info("converted",
		logging.String(logging.FieldInput, task.Input),
		logging.String(logging.FieldOutput, task.Output),
		logging.Int64("input_bytes", inputInfo.Size()),
		logging.Int64("output_bytes", outputBytes))
	return Outcome{Task: task, InputBytes: inputInfo.Size(), OutputBytes: outputBytes}
}

// encode probes the source's color space and asks the codec for WebP
// bytes. RGB and Display-P3 sources normalize to sRGB before encoding.
func (c *Converter) encode(ctx context.Context, input string) ([]byte, error) {
	meta, err := c.service.Probe(ctx, input)
	if err != nil {
		return nil, services.Wrap(services.ErrCodec, "convert", "probe", input, err)
	}
	opts := codec.Options{
		Quality:      c.quality,
		AutoRotate:   c.autoRotate,
		Effort:       codec.DefaultEffort,
		AlphaQuality: codec.FullAlphaQuality,
		Lossless:     c.lossless,
	}
	if codec.NormalizesToSRGB(meta.ColorSpace) {
		opts.TargetColorSpace = codec.ColorSpaceSRGB
	}
	payload, err := c.service.Encode(ctx, input, opts)
	if err != nil {
		return nil, services.Wrap(services.ErrCodec, "convert", "encode", input, err)
	}
	return payload, nil
}

// fail removes the temp file when one was created and records the error.
// Cleanup is best effort; its own failures never replace err.
func (c *Converter) fail(task scan.Task, temp string, err error) Outcome {
	if temp != "" {
		_ = os.Remove(temp)
	}
	c.logger.Warn("conversion failed",
		logging.String(logging.FieldInput, task.Input),
		logging.Error(err))
	return Outcome{Task: task, Err: err}
}

// tempPath builds a hidden sibling of output with a random suffix. Living
// in the same directory keeps the final rename on one filesystem.
func tempPath(output string) string {
	return filepath.Join(filepath.Dir(output),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(output), uuid.NewString()))
}
