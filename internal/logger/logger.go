// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used by the registry server, its workers and the verifier client.
//
// Logger embeds zerolog.Logger, so the zerolog API (Debug, Info, Warn, Error,
// ...) is available directly. Request-scoped loggers are attached to contexts
// by the HTTP middleware and recovered with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout with a "role" field
// (e.g. "server", "audit") on every entry.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewFileLogger returns a logger that appends to path, creating parent
// directories as needed. It is used by interactive programs whose stdout
// belongs to the terminal UI. Falls back to discarding output when the file
// cannot be opened.
func NewFileLogger(role string, path string) *Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return newLogger(io.Discard, role)
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return newLogger(io.Discard, role)
	}

	return newLogger(logFile, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards everything. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched without affecting l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithCertificate returns a child logger tagged with the certificate id and
// code. Empty values are omitted.
func (l *Logger) WithCertificate(id, code string) *Logger {
	ctx := l.With()
	if id != "" {
		ctx = ctx.Str("certificate_id", id)
	}
	if code != "" {
		ctx = ctx.Str("unique_code", code)
	}
	return &Logger{ctx.Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. If none is attached zerolog
// hands back its disabled logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
