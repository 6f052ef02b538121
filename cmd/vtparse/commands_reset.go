package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vtparse/vtparse/internal/theme"
)

func newResetCmd(cfgPath *string) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove the vtparse config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(*cfgPath)
			if err != nil {
				return err
			}
			if !yes {
				if !term.IsTerminal(int(os.Stdin.Fd())) {
					return errors.New("reset requires --yes when not running interactively")
				}
				confirm := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().Title("Remove the vtparse config file?").Value(&confirm),
				)).WithTheme(theme.Form())
				if err := form.Run(); err != nil {
					return err
				}
				if !confirm {
					return errors.New("reset cancelled")
				}
			}

			removed, err := removeConfigFile(path)
			if err != nil {
				return err
			}
			if removed {
				fmt.Printf("Removed config: %s\n", path)
			} else {
				fmt.Printf("Config not found: %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip confirmation prompt")
	return cmd
}

func removeConfigFile(path string) (bool, error) {
	if !exists(path) {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, err
	}
	dir := filepath.Dir(path)
	if isDirEmpty(dir) {
		_ = os.Remove(dir)
	}
	return true, nil
}

func isDirEmpty(path string) bool {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false
	}
	return len(entries) == 0
}
