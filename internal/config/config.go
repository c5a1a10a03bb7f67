// Package config handles application configuration and setup
package config

import (
	"runtime"

	"github.com/retroenv/lc3disasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with the level selected by the debug and
// quiet flags. Debug takes precedence over quiet.
func CreateLogger(flags options.Flags) *log.Logger {
	cfg := log.DefaultConfig()
	if flags.Debug {
		cfg.Level = log.DebugLevel
	} else if flags.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// DecodeWorkers returns the number of decoding workers to use for the
// configured worker count, 0 selects one worker per CPU.
func DecodeWorkers(configured int) int {
	if configured > 0 {
		return configured
	}
	return runtime.NumCPU()
}
