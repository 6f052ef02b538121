package main

import (
	"errors"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/vtparse/vtparse/internal/config"
	"github.com/vtparse/vtparse/internal/screen"
	"github.com/vtparse/vtparse/internal/vtparse"
)

// newCopyCmd parses an escape-laden file (or stdin) through a Parser/Screen
// pair and copies the resulting plain text to the system clipboard, the
// way a terminal multiplexer's copy mode strips attributes before handing
// text to the OS.
func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy [file]",
		Short: "Render an escape sequence stream and copy its visible text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			data, err := io.ReadAll(in)
			if err != nil {
				return err
			}

			cfg := config.DefaultConfig()
			scr := screen.New(cfg.Screen.Width, cfg.Screen.Height, nil)
			parser := vtparse.NewParser(scr, cfg.Parser.MaxCharCount)
			parser.SetUnicodeFastPath(cfg.Parser.UnicodeFastPath)
			parser.ParseFragment(data)

			text := scr.Text()
			if text == "" {
				return errors.New("nothing to copy: rendered screen is empty")
			}
			return clipboard.WriteAll(text)
		},
	}
	return cmd
}
