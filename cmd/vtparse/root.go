package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vtparse/vtparse/internal/config"
	"github.com/vtparse/vtparse/internal/debug"
)

func newRootCmd(state *appState) *cobra.Command {
	var (
		cfgPath     string
		debugFlag   bool
		traceFlag   bool
		noInitHints bool
		showScreen  bool
	)

	rootCmd := &cobra.Command{
		Use:          "vtparse",
		Short:        "Drive a child shell through a VT/ANSI input parser",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolvedPath, err := resolveConfigPath(cfgPath)
			if err != nil {
				return err
			}
			cfg, found, err := config.Load(resolvedPath)
			if err != nil {
				return err
			}
			applyOverrides(&cfg, debugFlag, traceFlag)
			state.cfg = cfg
			state.cfgFound = found
			state.logger = debug.New(cfg.Debug.Enabled)
			state.cfgPath = resolvedPath
			if !found && !noInitHints && cmd.Name() != "init" {
				fmt.Fprintln(os.Stderr, "vtparse: no config found; run `vtparse init`")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithParser(cmd.Context(), state.cfg, state.cfgPath, defaultShellCommand(), state.logger, true, state.cfg.Trace.Enabled, showScreen)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable sanitized debug logging")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "log every parser event to stderr")
	rootCmd.PersistentFlags().BoolVar(&noInitHints, "no-init-hints", false, "suppress init guidance")
	rootCmd.PersistentFlags().BoolVar(&showScreen, "show-screen", false, "render the parsed screen grid after the session ends")

	rootCmd.AddCommand(newRunCmd(state, &showScreen))
	rootCmd.AddCommand(newTraceCmd(state, &showScreen))
	rootCmd.AddCommand(newInitCmd(&cfgPath))
	rootCmd.AddCommand(newResetCmd(&cfgPath))
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newStatusCmd(state))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func applyOverrides(cfg *config.Config, debugFlag, traceFlag bool) {
	if debugFlag {
		cfg.Debug.Enabled = true
	}
	if traceFlag {
		cfg.Trace.Enabled = true
	}
}
