// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Mark Feghali

package logging

import (
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// DefaultLevel keeps a normal run silent apart from warnings and errors
const DefaultLevel = zerolog.WarnLevel

// New creates a logr.Logger writing to w at the given level.
// Output is human readable when w is a terminal, JSON otherwise.
func New(w io.Writer, level zerolog.Level) logr.Logger {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"

	zl := zerolog.New(w)
	if IsTerminal(w) {
		zl = zl.Output(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		})
	}
	zl = zl.Level(level).With().Timestamp().Logger()

	return zerologr.New(&zl)
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
