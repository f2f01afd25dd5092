// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Level is the level of a logger.
type Level int8

const (
	// Trace is the trace level.
	Trace = Level(zerolog.TraceLevel)
	// Debug is the debug level.
	Debug = Level(zerolog.DebugLevel)
	// Info is the info level.
	Info = Level(zerolog.InfoLevel)
	// Warn is the warn level.
	Warn = Level(zerolog.WarnLevel)
	// Error is the error level.
	Error = Level(zerolog.ErrorLevel)
)

// ParseLevel parses a level string such as "debug".
func ParseLevel(s string) (Level, error) {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return Info, fmt.Errorf("parsing log level: %w", err)
	}
	return Level(level), nil
}

func (l Level) String() string {
	return zerolog.Level(l).String()
}
