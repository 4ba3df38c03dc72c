package config

import "runtime"

const (
	defaultQuality        = 90
	defaultSpaceHeadroom  = 1.2
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	minQuality            = 1
	maxQuality            = 100
	maxAutoConcurrency    = 4
	defaultAutoRotate     = true
	defaultOutputLocking  = true
	defaultLosslessEncode = false
)

// Default returns a Config populated with repository defaults. MaxConcurrency
// is left at zero so normalize can derive it from the host CPU count.
func Default() Config {
	return Config{
		Conversion: Conversion{
			Quality:        defaultQuality,
			MaxConcurrency: 0,
			Lossless:       defaultLosslessEncode,
			AutoRotate:     defaultAutoRotate,
		},
		Output: Output{
			SpaceHeadroom: defaultSpaceHeadroom,
			Lock:          defaultOutputLocking,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// AutoConcurrency reports the scheduler width used when max_concurrency is not
// set: one below the host CPU count, clamped to [1, 4].
func AutoConcurrency() int {
	n := runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}
	if n > maxAutoConcurrency {
		n = maxAutoConcurrency
	}
	return n
}

// ClampQuality forces a quality factor into the valid 1-100 range. Flag
// overrides go through the same clamp as file values.
func ClampQuality(quality int) int {
	if quality < minQuality {
		return minQuality
	}
	if quality > maxQuality {
		return maxQuality
	}
	return quality
}
