// Package locate implements the engine that locates fixed patterns in
// vectorized UTF-8 subjects and reports match boundaries in codepoint
// coordinates.
//
// A call proceeds in three steps:
//   - the recycling rule fixes the vectorized length L of the call
//   - subjects and patterns are validated and compiled into containers
//   - every vectorized position i in [0, L) is searched with the matcher of
//     pattern i mod |patterns| over subject i mod |subjects|, and the byte
//     ranges found are converted to 1-based codepoint positions
//
// The engine can split the loop over several goroutines. Positions sharing a
// pattern matcher are always processed by the same goroutine.
package locate

import "runtime"

// Config controls engine execution.
//
// Configuration affects how a call runs, never what it returns: results are
// identical for every valid Config.
//
// Example:
//
//	config := locate.DefaultConfig()
//	config.Workers = runtime.GOMAXPROCS(0)
//	engine, err := locate.New(config)
type Config struct {
	// Workers is the maximum number of goroutines searching concurrently.
	// Default: 1 (sequential)
	Workers int

	// MinParallelLength is the vectorized length below which a call always
	// runs sequentially, whatever Workers says.
	// Default: 1024
	MinParallelLength int

	// StrictRecycling makes a recycling mismatch (a nonzero length that does
	// not divide the longest) fatal. When false the mismatch is logged as a
	// warning and the call proceeds with the longest length.
	// Default: true
	StrictRecycling bool

	// Logger receives structured diagnostics. Nil means NoopLogger().
	Logger *Logger

	// Metrics receives one observation per call. Nil means no metrics.
	Metrics MetricsCollector
}

// DefaultConfig returns the sequential, strict configuration.
func DefaultConfig() Config {
	return Config{
		Workers:           1,
		MinParallelLength: 1024,
		StrictRecycling:   true,
	}
}

// ParallelConfig returns DefaultConfig with one worker per available CPU.
func ParallelConfig() Config {
	c := DefaultConfig()
	c.Workers = runtime.GOMAXPROCS(0)
	return c
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - Workers: 1 to 1,024
//   - MinParallelLength: >= 0
func (c Config) Validate() error {
	if c.Workers < 1 || c.Workers > 1_024 {
		return &ConfigError{
			Field:   "Workers",
			Message: "must be between 1 and 1,024",
		}
	}
	if c.MinParallelLength < 0 {
		return &ConfigError{
			Field:   "MinParallelLength",
			Message: "must not be negative",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "locate: invalid config: " + e.Field + ": " + e.Message
}
