// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package log provides the logger used across the repository.
// It is a thin wrapper around zerolog keeping a single global writer,
// from which per-package child loggers are derived.
package log

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	globalMutex sync.Mutex
	global      = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger().Level(zerolog.InfoLevel)
)

// Logger logs messages for a single subsystem.
// The zero value is not usable; construct it with NewFromGlobal.
type Logger struct {
	zl zerolog.Logger
}

// Option modifies a logger derived from the global logger.
type Option func(zl zerolog.Logger) zerolog.Logger

// AddContext adds the key value pair to every message
// logged by the derived logger.
func AddContext(key, value string) Option {
	return func(zl zerolog.Logger) zerolog.Logger {
		return zl.With().Str(key, value).Logger()
	}
}

// SetLevel overrides the level of the derived logger.
func SetLevel(level Level) Option {
	return func(zl zerolog.Logger) zerolog.Logger {
		return zl.Level(zerolog.Level(level))
	}
}

// NewFromGlobal derives a child logger from the global logger.
func NewFromGlobal(options ...Option) Logger {
	globalMutex.Lock()
	defer globalMutex.Unlock()

	zl := global
	for _, option := range options {
		zl = option(zl)
	}
	return Logger{zl: zl}
}

// PatchGlobal changes the global logger, affecting loggers
// derived from it after this call. It is meant to be called
// once at program start, before child loggers are created.
func PatchGlobal(options ...Option) {
	globalMutex.Lock()
	defer globalMutex.Unlock()

	for _, option := range options {
		global = option(global)
	}
}

// Trace logs at the trace level.
func (l Logger) Trace(msg string) { l.zl.Trace().Msg(msg) }

// Tracef formats and logs at the trace level.
func (l Logger) Tracef(format string, args ...interface{}) { l.zl.Trace().Msgf(format, args...) }

// Debug logs at the debug level.
func (l Logger) Debug(msg string) { l.zl.Debug().Msg(msg) }

// Debugf formats and logs at the debug level.
func (l Logger) Debugf(format string, args ...interface{}) { l.zl.Debug().Msgf(format, args...) }

// Info logs at the info level.
func (l Logger) Info(msg string) { l.zl.Info().Msg(msg) }

// Infof formats and logs at the info level.
func (l Logger) Infof(format string, args ...interface{}) { l.zl.Info().Msgf(format, args...) }

// Warn logs at the warn level.
func (l Logger) Warn(msg string) { l.zl.Warn().Msg(msg) }

// Warnf formats and logs at the warn level.
func (l Logger) Warnf(format string, args ...interface{}) { l.zl.Warn().Msgf(format, args...) }

// Error logs at the error level.
func (l Logger) Error(msg string) { l.zl.Error().Msg(msg) }

// Errorf formats and logs at the error level.
func (l Logger) Errorf(format string, args ...interface{}) { l.zl.Error().Msgf(format, args...) }
