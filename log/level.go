// Package log provides ndnlite's leveled structured logging: a thin
// wrapper over the standard library's log/slog with a call-site surface
// of the form log.Warn(obj, "msg", "k", v).
package log

import (
	"fmt"
	"strings"
)

// Level extends slog's four levels with Trace below and Fatal above,
// sharing slog's numeric spacing so the two scales interoperate.
type Level int

const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelFatal Level = 12
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

var levelValues = func() map[string]Level {
	m := make(map[string]Level, len(levelNames))
	for level, name := range levelNames {
		m[name] = level
	}
	return m
}()

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	if level, ok := levelValues[strings.ToUpper(s)]; ok {
		return level, nil
	}
	return LevelInfo, fmt.Errorf("log: invalid level %q", s)
}

// String renders the level the way config files and log lines do.
func (level Level) String() string {
	if name, ok := levelNames[level]; ok {
		return name
	}
	return "UNKNOWN"
}
