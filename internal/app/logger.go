// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/coffee-builder/config"
	"github.com/guttosm/coffee-builder/internal/logger"
)

// InitializeLogger initializes the global logger from the log configuration.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
