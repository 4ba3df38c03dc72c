package config

import "errors"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConversion(); err != nil {
		return err
	}
	return c.validateOutput()
}

func (c *Config) validateConversion() error {
	if c.Conversion.Quality < minQuality || c.Conversion.Quality > maxQuality {
		return errors.New("conversion.quality must be between 1 and 100")
	}
	if c.Conversion.MaxConcurrency < 1 {
		return errors.New("conversion.max_concurrency must be at least 1")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.SpaceHeadroom < 1.0 {
		return errors.New("output.space_headroom must be at least 1.0")
	}
	return nil
}
