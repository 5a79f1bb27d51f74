package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// setupLogger logs to stderr so stdout stays machine readable.
func setupLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: level == log.DebugLevel,
		TimeFormat:      time.TimeOnly,
		Prefix:          "handclass",
	})
}
