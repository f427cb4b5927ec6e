// Package logger is a thin component-tagged facade over log/slog. Core
// packages log through it instead of printing, so hosts can silence or
// redirect engine diagnostics without touching engine code.
package logger

import (
	"log/slog"
	"os"
)

var (
	level = new(slog.LevelVar)
	log   = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
)

// SetDebug toggles debug-level output.
func SetDebug(enabled bool) {
	if enabled {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// SetOutput replaces the destination logger. Tests use this to capture or
// silence output.
func SetOutput(l *slog.Logger) {
	if l != nil {
		log = l
	}
}

func attrs(component string, fields map[string]interface{}) []any {
	out := make([]any, 0, 2+2*len(fields))
	out = append(out, "component", component)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}

// InfoCF logs at info level with a component tag and structured fields.
func InfoCF(component, msg string, fields map[string]interface{}) {
	log.Info(msg, attrs(component, fields)...)
}

// WarnCF logs at warn level with a component tag and structured fields.
func WarnCF(component, msg string, fields map[string]interface{}) {
	log.Warn(msg, attrs(component, fields)...)
}

// ErrorCF logs at error level with a component tag and structured fields.
func ErrorCF(component, msg string, fields map[string]interface{}) {
	log.Error(msg, attrs(component, fields)...)
}

// DebugCF logs at debug level with a component tag and structured fields.
func DebugCF(component, msg string, fields map[string]interface{}) {
	log.Debug(msg, attrs(component, fields)...)
}
