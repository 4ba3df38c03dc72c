package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"webpify/internal/imagefile"
	"webpify/internal/logging"
	"webpify/internal/services"
)

// Task pairs one source image with its conversion destination.
type Task struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Skip records an entry excluded during discovery. Skipped entries still
// count toward the run totals.
type Skip struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Skip reasons recorded during discovery.
const (
	ReasonNotImage = "not a convertible image"
	ReasonSameFile = "output path equals input"
)

// Plan is the ordered outcome of discovery across all inputs.
type Plan struct {
	Tasks []Task `json:"tasks"`
	Skips []Skip `json:"skips"`
}

// Total returns the number of files the run accounts for.
func (p *Plan) Total() int {
	return len(p.Tasks) + len(p.Skips)
}

// PreflightFunc validates a directory-to-directory conversion before the
// input directory is listed.
type PreflightFunc func(ctx context.Context, inputDir, outputDir string) error

// Options control how inputs expand into tasks.
type Options struct {
	// OutputDir designates a separate output root. Empty selects
	// same-directory mode.
	OutputDir string
	// Recursive descends into subdirectories of directory inputs.
	Recursive bool
}

// Scanner turns the paths a user names into the plan a run executes.
type Scanner struct {
	logger    *slog.Logger
	preflight PreflightFunc
}

// NewScanner builds a Scanner. A nil preflight disables the
// directory-to-directory check.
func NewScanner(logger *slog.Logger, preflight PreflightFunc) *Scanner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Scanner{
		logger:    logging.NewComponentLogger(logger, "scan"),
		preflight: preflight,
	}
}

// Discover stats each input in order, expands directories, and pairs every
// convertible file with its output path. Directory inputs with a separate
// output root run the preflight check before listing. A plan accounting
// for zero files fails the run.
func (s *Scanner) Discover(ctx context.Context, inputs []string, opts Options) (*Plan, error) {
	plan := &Plan{}
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(input)
		if err != nil {
			return nil, services.Wrap(services.ErrInvalidInput, "scan", "stat", input, err)
		}
		switch {
		case info.Mode().IsRegular():
			s.addFile(plan, input, opts)
		case info.IsDir():
			if err := s.addDirectory(ctx, plan, input, opts); err != nil {
				return nil, err
			}
		default:
			return nil, services.Wrap(services.ErrInvalidInput, "scan", "stat",
				fmt.Sprintf("%s is neither a regular file nor a directory", input), nil)
		}
	}
	if plan.Total() == 0 {
		return nil, services.Wrap(services.ErrNoImages, "scan", "discover", "no convertible images found", nil)
	}
	s.logger.Info("discovery complete",
		logging.Int("tasks", len(plan.Tasks)),
		logging.Int("pre_skipped", len(plan.Skips)),
	)
	return plan, nil
}

func (s *Scanner) addFile(plan *Plan, input string, opts Options) {
	if !imagefile.IsImage(input) {
		s.logger.Warn("skipping non-image input",
			logging.String(logging.FieldInput, input),
			logging.String(logging.FieldReason, ReasonNotImage))
		plan.Skips = append(plan.Skips, Skip{Path: input, Reason: ReasonNotImage})
		return
	}
	output := imagefile.OutputPath(input, opts.OutputDir)
	if samePath(input, output) {
		s.logger.Warn("skipping image that would overwrite itself",
			logging.String(logging.FieldInput, input),
			logging.String(logging.FieldReason, ReasonSameFile))
		plan.Skips = append(plan.Skips, Skip{Path: input, Reason: ReasonSameFile})
		return
	}
	plan.Tasks = append(plan.Tasks, Task{Input: input, Output: output})
}

func (s *Scanner) addDirectory(ctx context.Context, plan *Plan, dir string, opts Options) error {
	if opts.OutputDir != "" && s.preflight != nil {
		if err := s.preflight(ctx, dir, opts.OutputDir); err != nil {
			return err
		}
	}
	if opts.Recursive {
		return s.walkTree(ctx, plan, dir, opts)
	}
	return s.listDir(ctx, plan, dir, opts)
}

// listDir collects the immediate children of dir in listing order.
func (s *Scanner) listDir(ctx context.Context, plan *Plan, dir string, opts Options) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return services.Wrap(services.ErrPreflight, "scan", "list", dir, err)
	}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || isHidden(entry.Name()) || !entry.Type().IsRegular() {
			continue
		}
		input := filepath.Join(dir, entry.Name())
		s.addEntry(plan, input, imagefile.OutputPath(input, opts.OutputDir))
	}
	return nil
}

// walkTree collects regular files under root, mirroring each entry's
// relative subdirectory under the output root when one is set. Hidden
// files and hidden directories are not descended into.
func (s *Scanner) walkTree(ctx context.Context, plan *Plan, root string, opts Options) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return services.Wrap(services.ErrPreflight, "scan", "walk", path, walkErr)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && isHidden(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if isHidden(d.Name()) || !d.Type().IsRegular() {
			return nil
		}
		output, err := s.mirrorOutput(root, path, opts)
		if err != nil {
			return err
		}
		s.addEntry(plan, path, output)
		return nil
	})
}

func (s *Scanner) mirrorOutput(root, path string, opts Options) (string, error) {
	if opts.OutputDir == "" {
		return imagefile.WebPName(path), nil
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", services.Wrap(services.ErrPreflight, "scan", "relativize", path, err)
	}
	return filepath.Join(opts.OutputDir, imagefile.WebPName(rel)), nil
}

func (s *Scanner) addEntry(plan *Plan, input, output string) {
	if !imagefile.IsImage(input) {
		s.logger.Debug("ignoring non-image entry",
			logging.String(logging.FieldInput, input),
			logging.String(logging.FieldReason, ReasonNotImage))
		plan.Skips = append(plan.Skips, Skip{Path: input, Reason: ReasonNotImage})
		return
	}
	if samePath(input, output) {
		s.logger.Warn("skipping image that would overwrite itself",
			logging.String(logging.FieldInput, input),
			logging.String(logging.FieldReason, ReasonSameFile))
		plan.Skips = append(plan.Skips, Skip{Path: input, Reason: ReasonSameFile})
		return
	}
	plan.Tasks = append(plan.Tasks, Task{Input: input, Output: output})
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
