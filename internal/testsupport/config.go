package testsupport

import (
	"path/filepath"
	"testing"

	"webpify/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a normalized config seeded with a unique log directory
// per test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Conversion.MaxConcurrency = 2
	cfg.Logging.Dir = filepath.Join(t.TempDir(), "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithQuality sets the WebP quality factor on the test config.
func WithQuality(quality int) ConfigOption {
	return func(c *config.Config) {
		c.Conversion.Quality = config.ClampQuality(quality)
	}
}

// WithConcurrency overrides the scheduler width on the test config.
func WithConcurrency(n int) ConfigOption {
	return func(c *config.Config) {
		c.Conversion.MaxConcurrency = n
	}
}
