package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks inputs that are neither regular files nor directories.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoImages marks runs whose discovery produced zero convertible files.
	ErrNoImages = errors.New("no eligible images")
	// ErrPreflight marks failed access checks on the input or output directory.
	ErrPreflight = errors.New("preflight failed")
	// ErrInsufficientSpace marks output filesystems without conversion headroom.
	ErrInsufficientSpace = errors.New("insufficient disk space")
	// ErrLocked marks output trees already claimed by another run.
	ErrLocked = errors.New("output directory locked")
	// ErrCodec marks decode or encode failures for a single file.
	ErrCodec = errors.New("codec error")
	// ErrEmptyOutput marks conversions whose encoded payload was zero bytes.
	ErrEmptyOutput = errors.New("empty encoder output")
	// ErrSymlinkOverwrite marks refusals to replace a symlink at the output path.
	ErrSymlinkOverwrite = errors.New("refused symlink overwrite")
	// ErrTransient marks unexpected per-file failures (IO errors and the like).
	ErrTransient = errors.New("transient failure")
)

// Severity partitions errors by blast radius: a per-file failure is recorded
// and the batch continues, while a run failure aborts the conversion outright.
type Severity int

const (
	SeverityFile Severity = iota
	SeverityRun
)

// String renders the severity for logs and reports.
func (s Severity) String() string {
	if s == SeverityRun {
		return "run"
	}
	return "file"
}

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later severity classification. The marker should
// be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Classify maps an error to the severity the runner should apply when the
// operation fails.
func Classify(err error) Severity {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrNoImages),
		errors.Is(err, ErrPreflight),
		errors.Is(err, ErrInsufficientSpace),
		errors.Is(err, ErrLocked):
		return SeverityRun
	default:
		return SeverityFile
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
