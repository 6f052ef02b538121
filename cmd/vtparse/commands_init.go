package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/vtparse/vtparse/internal/config"
	"github.com/vtparse/vtparse/internal/screen"
	"github.com/vtparse/vtparse/internal/theme"
	"github.com/vtparse/vtparse/internal/vtparse"
)

func newInitCmd(cfgPath *string) *cobra.Command {
	var useDefaults bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Run the first-time setup wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(*cfgPath)
			if err != nil {
				return err
			}

			cfg := config.DefaultConfig()
			if useDefaults {
				if exists(path) {
					fmt.Printf("Config exists, overwriting: %s\n", path)
				}
				return finishInit(path, cfg)
			}

			overwrite := false
			widthStr := strconv.Itoa(cfg.Screen.Width)
			heightStr := strconv.Itoa(cfg.Screen.Height)
			themeName := cfg.Screen.Theme
			unicodeFastPath := cfg.Parser.UnicodeFastPath
			maxCharStr := strconv.Itoa(cfg.Parser.MaxCharCount)
			traceEnabled := cfg.Trace.Enabled
			debugEnabled := cfg.Debug.Enabled

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().Title("Config exists. Overwrite?").Value(&overwrite),
				).WithHideFunc(func() bool { return !exists(path) }),
				huh.NewGroup(
					huh.NewInput().Title("Screen width").Value(&widthStr).Validate(positiveInt),
					huh.NewInput().Title("Screen height").Value(&heightStr).Validate(positiveInt),
				),
				huh.NewGroup(
					huh.NewSelect[string]().Title("Color theme").Value(&themeName).Options(
						huh.NewOption("Latte", "latte"),
						huh.NewOption("Frappe", "frappe"),
						huh.NewOption("Macchiato", "macchiato"),
						huh.NewOption("Mocha (default)", "mocha"),
					),
				),
				huh.NewGroup(
					huh.NewConfirm().Title("Use the grapheme/width-aware fast path for UTF-8 text?").Value(&unicodeFastPath),
				),
				huh.NewGroup(
					huh.NewInput().Title("Max display cells per fast-path print batch").Value(&maxCharStr).Validate(positiveInt),
				),
				huh.NewGroup(
					huh.NewConfirm().Title("Enable event tracing by default?").Value(&traceEnabled),
				),
				huh.NewGroup(
					huh.NewConfirm().Title("Enable sanitized debug logging by default?").Value(&debugEnabled),
				),
			).WithTheme(theme.Form())

			if err := runForm(form); err != nil {
				return err
			}
			if exists(path) && !overwrite {
				return errors.New("init cancelled")
			}

			width, _ := strconv.Atoi(widthStr)
			height, _ := strconv.Atoi(heightStr)
			maxChars, _ := strconv.Atoi(maxCharStr)
			cfg.Screen.Width = width
			cfg.Screen.Height = height
			cfg.Screen.Theme = themeName
			cfg.Parser.UnicodeFastPath = unicodeFastPath
			cfg.Parser.MaxCharCount = maxChars
			cfg.Trace.Enabled = traceEnabled
			cfg.Debug.Enabled = debugEnabled

			return finishInit(path, cfg)
		},
	}
	cmd.Flags().BoolVar(&useDefaults, "default", false, "write default config without prompts")
	return cmd
}

func positiveInt(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return errors.New("enter a positive integer")
	}
	return nil
}

func finishInit(path string, cfg config.Config) error {
	if err := runSelfTest(cfg); err != nil {
		return err
	}
	if err := config.Write(path, cfg); err != nil {
		return err
	}
	fmt.Printf("Wrote config to %s\n", path)
	return nil
}

// runSelfTest feeds config.SelfTestFixture() through a fresh Parser/Screen
// pair and fails if the fixture doesn't render any visible text, so a
// broken config is never written to disk as if it worked.
func runSelfTest(cfg config.Config) error {
	scr := screen.New(cfg.Screen.Width, cfg.Screen.Height, nil)
	parser := vtparse.NewParser(scr, cfg.Parser.MaxCharCount)
	parser.SetUnicodeFastPath(cfg.Parser.UnicodeFastPath)
	parser.ParseFragment(config.SelfTestFixture())
	if strings.TrimSpace(scr.Text()) == "" {
		return errors.New("self-test failed: fixture produced no visible output")
	}
	fmt.Println("Self-test output:")
	fmt.Println(scr.Text())
	return nil
}
