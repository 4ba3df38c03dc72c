package preflight

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"log/slog"

	"golang.org/x/sys/unix"

	"webpify/internal/display"
	"webpify/internal/fileutil"
	"webpify/internal/logging"
	"webpify/internal/services"
)

// DefaultHeadroom is the multiple of the input tree's size that must be
// free on the output filesystem. The margin absorbs temp files and
// sources that keep growing during the run.
const DefaultHeadroom = 1.2

// statfsFunc allows tests to stub filesystem stats.
type statfsFunc func(path string) (total uint64, free uint64, err error)

// Checker validates a conversion's directories and disk headroom.
type Checker struct {
	logger   *slog.Logger
	headroom float64
	statfs   statfsFunc
}

// NewChecker builds a Checker. Headroom values below 1.0 fall back to
// DefaultHeadroom.
func NewChecker(logger *slog.Logger, headroom float64) *Checker {
	if logger == nil {
		logger = logging.NewNop()
	}
	if headroom < 1.0 {
		headroom = DefaultHeadroom
	}
	return &Checker{
		logger:   logging.NewComponentLogger(logger, "preflight"),
		headroom: headroom,
		statfs:   realStatfs,
	}
}

// Check validates inputDir and outputDir for a directory-to-directory
// run. The output directory is created when absent. Failure aborts the
// run before any file is listed.
func (c *Checker) Check(ctx context.Context, inputDir, outputDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkReadableDir(inputDir); err != nil {
		return err
	}
	if err := checkWritableDir(outputDir); err != nil {
		return err
	}
	return c.checkSpace(inputDir, outputDir)
}

// checkReadableDir verifies path is a directory this process can list.
func checkReadableDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return services.Wrap(services.ErrPreflight, "preflight", "input", path, err)
	}
	if !info.IsDir() {
		return services.Wrap(services.ErrPreflight, "preflight", "input",
			fmt.Sprintf("%s is not a directory", path), nil)
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return services.Wrap(services.ErrPreflight, "preflight", "input",
			fmt.Sprintf("%s is not readable", path), err)
	}
	return nil
}

// checkWritableDir creates path when absent and verifies this process can
// write into it.
func checkWritableDir(path string) error {
	if err := fileutil.EnsureDir(path); err != nil {
		return services.Wrap(services.ErrPreflight, "preflight", "output", path, err)
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return services.Wrap(services.ErrPreflight, "preflight", "output",
			fmt.Sprintf("%s is not writable", path), err)
	}
	return nil
}

// checkSpace compares the output filesystem's available space against the
// input tree's size times the headroom margin.
func (c *Checker) checkSpace(inputDir, outputDir string) error {
	inputSize, err := fileutil.DirSize(inputDir)
	if err != nil {
		return services.Wrap(services.ErrPreflight, "preflight", "size input", inputDir, err)
	}
	_, free, err := c.statfs(outputDir)
	if err != nil {
		return services.Wrap(services.ErrPreflight, "preflight", "statfs", outputDir, err)
	}
	required := uint64(float64(inputSize) * c.headroom)
	if free < required {
		return services.Wrap(services.ErrInsufficientSpace, "preflight", "disk",
			fmt.Sprintf("%s free on %s, need %s", display.Bytes(int64(free)), outputDir, display.Bytes(int64(required))), nil)
	}
	c.logger.Debug("disk headroom ok",
		logging.String("input_size", display.Bytes(inputSize)),
		logging.String("free", display.Bytes(int64(free))),
		logging.String("required", display.Bytes(int64(required))),
	)
	return nil
}

func realStatfs(path string) (uint64, uint64, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, 0, err
	}
	total := stat.Blocks * uint64(stat.Bsize)
	free := stat.Bavail * uint64(stat.Bsize)
	return total, free, nil
}
