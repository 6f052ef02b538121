package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vtparse/vtparse/internal/termcaps"
)

func newStatusCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the resolved config and terminal capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(state)
		},
	}
}

func runStatus(state *appState) error {
	caps := termcaps.Probe()
	fmt.Printf("config_path=%s\n", state.cfgPath)
	fmt.Printf("config_found=%t\n", state.cfgFound)
	fmt.Printf("screen=%dx%d theme=%s\n", state.cfg.Screen.Width, state.cfg.Screen.Height, state.cfg.Screen.Theme)
	fmt.Printf("parser_max_char_count=%s\n", humanize.Comma(int64(state.cfg.Parser.MaxCharCount)))
	fmt.Printf("parser_unicode_fast_path=%t\n", state.cfg.Parser.UnicodeFastPath)
	fmt.Printf("trace_enabled=%t\n", state.cfg.Trace.Enabled)
	fmt.Printf("debug_enabled=%t\n", state.cfg.Debug.Enabled)
	fmt.Printf("term=%s\n", caps.TermName)
	fmt.Printf("color_profile=%v\n", caps.ColorProfile)
	fmt.Printf("true_color=%t\n", caps.TrueColor)
	fmt.Printf("alt_screen=%t\n", caps.AltScreen)
	return nil
}
