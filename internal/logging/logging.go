// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the diagnostic logger. Status lines meant for the
// operator go to stdout separately; this logger writes to stderr.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// New returns a sugared zap logger. Verbose mode logs everything from
// debug level up in the development format; otherwise only warnings and
// errors are emitted. Output is JSON unless stderr is a terminal.
func New(verbose bool) *zap.SugaredLogger {
	return newLogger(verbose, term.IsTerminal(int(os.Stderr.Fd())))
}

func newLogger(verbose, tty bool) *zap.SugaredLogger {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	if tty {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	} else {
		cfg.Encoding = "json"
	}

	return zap.Must(cfg.Build()).Sugar()
}
