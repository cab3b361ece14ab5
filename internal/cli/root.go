// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package cli implements the gid command.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/pion/gid/internal/config"
	"github.com/pion/logging"
	"github.com/spf13/cobra"
)

var errInvalidInput = errors.New("invalid identifiers")

// app is the state shared by the subcommands once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg           *config.Config
	loggerFactory logging.LoggerFactory
	log           logging.LeveledLogger
}

// NewRootCommand constructs the gid command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "gid",
		Short:         "Convert and generate 128-bit identifiers",
		Long:          "gid converts identifiers between hex and 22 character base62, and generates new ones.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "disable, error, warn, info, debug or trace")

	root.AddCommand(newEncodeCommand())
	root.AddCommand(newDecodeCommand(a))
	root.AddCommand(newConvertCommand(a))
	root.AddCommand(newNewCommand(a))

	return root
}

// load resolves the configuration. Only flags set on the command line
// override the file and environment.
func (a *app) load(cmd *cobra.Command) error {
	overrides := map[string]any{}
	if cmd.Flags().Changed("log-level") {
		overrides["log_level"] = a.logLevel
	}
	for flag, key := range map[string]string{
		"upper":  "upper",
		"kind":   "new.kind",
		"count":  "new.count",
		"format": "new.format",
		"node":   "new.node",
		"key":    "new.key",
		"name":   "new.name",
	} {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		overrides[key] = f.Value.String()
	}

	cfg, err := config.Load(a.configPath, overrides)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.loggerFactory = &logging.DefaultLoggerFactory{
		Writer:          cmd.ErrOrStderr(),
		DefaultLogLevel: level,
		ScopeLevels:     map[string]logging.LogLevel{},
	}
	a.log = a.loggerFactory.NewLogger("cli")
	if a.configPath != "" {
		a.log.Debugf("Loaded config from %s", a.configPath)
	}

	return nil
}

// inputs returns args, or the non-empty lines of stdin when args is empty.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	return lines, nil
}

// each applies conv to every input, printing results to stdout and failures
// to stderr. It fails if any input failed.
func each(cmd *cobra.Command, args []string, conv func(string) (string, error)) error {
	in, err := inputs(cmd, args)
	if err != nil {
		return err
	}

	failed := 0
	for _, s := range in {
		out, err := conv(s)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", s, err)

			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidInput, failed, len(in))
	}

	return nil
}
