package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeConversion()
	c.normalizeOutput()
	return c.normalizeLogging()
}

func (c *Config) normalizeConversion() {
	// Out-of-range quality is clamped rather than rejected.
	c.Conversion.Quality = ClampQuality(c.Conversion.Quality)
	if c.Conversion.MaxConcurrency <= 0 {
		c.Conversion.MaxConcurrency = AutoConcurrency()
	}
}

func (c *Config) normalizeOutput() {
	if c.Output.SpaceHeadroom == 0 {
		c.Output.SpaceHeadroom = defaultSpaceHeadroom
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		expanded, err := expandPath(c.Logging.Dir)
		if err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
		c.Logging.Dir = expanded
	} else {
		c.Logging.Dir = ""
	}
	return nil
}
