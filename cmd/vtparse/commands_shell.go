package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/vtparse/vtparse/internal/screen"
	"github.com/vtparse/vtparse/internal/vtparse"
)

func newRunCmd(state *appState, showScreen *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run -- <cmd...>",
		Short: "Run a command under the parser, without interactive raw mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.ArgsLenAtDash() == -1 {
				return errors.New("run requires -- before the command")
			}
			runArgs := cmd.Flags().Args()
			if len(runArgs) == 0 {
				return errors.New("run requires a command after --")
			}
			command := exec.Command(runArgs[0], runArgs[1:]...)
			return runWithParser(cmd.Context(), state.cfg, state.cfgPath, command, state.logger, false, state.cfg.Trace.Enabled, *showScreen)
		},
	}
}

func newTraceCmd(state *appState, showScreen *bool) *cobra.Command {
	var fixtures []string

	cmd := &cobra.Command{
		Use:   "trace -- <cmd...>",
		Short: "Run a command under the parser, logging every event to stderr",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(fixtures) > 0 {
				return runTraceFixtures(state, fixtures, *showScreen)
			}
			var command *exec.Cmd
			if cmd.ArgsLenAtDash() == -1 {
				command = defaultShellCommand()
			} else {
				runArgs := cmd.Flags().Args()
				if len(runArgs) == 0 {
					return errors.New("trace requires a command after --")
				}
				var err error
				command, err = shellCommandFromArgs(runArgs)
				if err != nil {
					return err
				}
			}
			return runWithParser(cmd.Context(), state.cfg, state.cfgPath, command, state.logger, true, true, *showScreen)
		},
	}

	cmd.Flags().StringSliceVar(&fixtures, "fixtures", nil, "replay each file's bytes through one shared parser instead of a PTY session, resetting between files")

	return cmd
}

// runTraceFixtures replays each fixture file through a single Parser/
// TraceListener pair, calling parser.Reset() between files the way a
// benchmark reuses one buffer across independent test cases and resets it
// after each: one allocation, many independent runs.
func runTraceFixtures(state *appState, paths []string, showScreen bool) error {
	scr := screen.New(state.cfg.Screen.Width, state.cfg.Screen.Height, state.logger)
	listener := &vtparse.TraceListener{Listener: scr, Logger: state.logger}
	parser := vtparse.NewParser(listener, state.cfg.Parser.MaxCharCount)
	parser.SetUnicodeFastPath(state.cfg.Parser.UnicodeFastPath)

	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("trace fixture %s: %w", path, err)
		}
		state.logger.Infof("trace: fixture %d/%d %s (%d bytes)", i+1, len(paths), path, len(data))
		parser.ParseFragment(data)
		parser.Reset()
	}

	if showScreen {
		printScreen(scr, state.cfg.Screen.Width)
	}
	return nil
}
