// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wrgl/txview/pkg/conf"
)

type loggerKey struct{}

func SetLogger(ctx context.Context, logger *logr.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the logger set up for cmd, or a logger that discards
// everything if SetupLogger was never called.
func GetLogger(cmd *cobra.Command) logr.Logger {
	if ctx := cmd.Context(); ctx != nil {
		if v := ctx.Value(loggerKey{}); v != nil {
			return *v.(*logr.Logger)
		}
	}
	return logr.Discard()
}

func AddLoggerFlags(flags *pflag.FlagSet) {
	flags.Int("log-verbosity", 0, "log verbosity. Higher value means more log")
	flags.String("log-file", "", "output logs to specified file")
}

// SetupLogger creates the command logger. Flags take precedence over the
// log section of c. When no log file is given, logs go to stderr, unless
// quiet is set in which case they are discarded.
func SetupLogger(cmd *cobra.Command, c *conf.Config, quiet bool) (cleanup func(), err error) {
	if cmd.Context() != nil && cmd.Context().Value(loggerKey{}) != nil {
		return nil, nil
	}
	verbosity, err := cmd.Flags().GetInt("log-verbosity")
	if err != nil {
		return nil, err
	}
	if !cmd.Flags().Changed("log-verbosity") {
		verbosity = c.LogVerbosity()
	}
	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return nil, err
	}
	if logFile == "" {
		logFile = c.LogFile()
	}
	var out io.Writer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		out = f
		cleanup = func() {
			f.Close()
		}
	} else if quiet {
		out = io.Discard
	} else {
		out = cmd.ErrOrStderr()
	}
	logger := stdr.New(log.New(out, "", log.LstdFlags)).V(1)
	stdr.SetVerbosity(verbosity)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(SetLogger(ctx, &logger))
	return cleanup, nil
}
