// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/xcopy/pkg/config"
	"github.com/walteh/xcopy/pkg/log"
	"github.com/walteh/xcopy/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// Process exit codes
const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

const usageText = `Usage:
xcopy [flags] <srcdir> <dstdir>
Will NOT overwrite existing files. Copies all files
from a source directory to a destination
directory. Will create destination
directory structure as needed.

Flags:
  -c, --config string     config file (.yaml, .yml, .json or .hcl)
  -d, --debug             enable debug logging
  -x, --exclude strings   glob pattern to leave out, repeatable
  -j, --jobs int          directories copied at once (default 1)
      --no-color          disable colored output`

var errUsage = errors.Base("invalid usage")

// rootFlags holds the values of the command line flags
type rootFlags struct {
	configFile string
	debug      bool
	jobs       int
	exclude    []string
	noColor    bool
}

// run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		log.New(stdout, stderr).Println(usageText)
		return exitUsage
	default:
		log.New(stdout, stderr).Error(ctx, "xcopy failed", err)
		return exitFatal
	}
}

// newRootCmd creates the xcopy command
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "xcopy [flags] <srcdir> <dstdir>",
		Short: "Recursively copy a directory without overwriting existing files",
		Long: `xcopy copies all files from a source directory to a destination
directory, creating the destination directory structure as needed.
Files that already exist at the destination are never overwritten;
they are reported and skipped.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.Errorf("%w: expected 2 arguments, got %d", errUsage, len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context(), flags.configFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			if cfg.NoColor {
				log.DisableColor()
			}
			ctx := setupLogging(cmd.Context(), cfg, stderr)
			zerolog.Ctx(ctx).Debug().
				Str("location", cfg.Location()).
				Str("config", cfg.String()).
				Msg("configuration loaded")
			ctx = log.NewContext(ctx, log.New(stdout, stderr))

			return runCopy(ctx, args[0], args[1], cfg)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Errorf("%w: %v", errUsage, err)
	})
	addRootFlags(cmd, flags)

	return cmd
}

// addRootFlags adds the flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", "config file (.yaml, .yml, .json or .hcl)")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 1, "directories copied at once")
	cmd.Flags().StringSliceVarP(&flags.exclude, "exclude", "x", nil, "glob pattern to leave out, repeatable")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")
}

// apply overrides cfg with the flags set on the command line
func (f *rootFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("debug") {
		cfg.Debug = f.debug
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = f.noColor
	}
	cfg.Exclude = append(cfg.Exclude, f.exclude...)

	if err := cfg.Validate(); err != nil {
		return errors.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

// setupLogging configures zerolog for the run
func setupLogging(ctx context.Context, cfg *config.Config, stderr io.Writer) context.Context {
	level := zerolog.WarnLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: cfg.NoColor}).
		Level(level).
		With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// runCopy prints the header, copies the tree and prints the summary
func runCopy(ctx context.Context, src, dst string, cfg *config.Config) error {
	logger := log.FromContext(ctx)

	copier := operation.New(src, dst, operation.Options{
		Reporter: logger,
		Jobs:     cfg.Jobs,
		Exclude:  cfg.Exclude,
	})

	logger.Header(ctx, copier.Source(), copier.Dest())

	report, err := copier.Run(ctx)
	if err != nil {
		return errors.Errorf("copying tree: %w", err)
	}

	logger.Summary(ctx, report.Counts())
	return nil
}
