package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/vtparse/vtparse/internal/config"
	"github.com/vtparse/vtparse/internal/debug"
	"github.com/vtparse/vtparse/internal/ptywrap"
	"github.com/vtparse/vtparse/internal/screen"
	"github.com/vtparse/vtparse/internal/vtparse"
)

// parserWriter adapts a vtparse.Parser to io.Writer so ptywrap can feed it
// PTY output directly, the same way ptywrap.Options.Output accepts any
// writer.
type parserWriter struct {
	parser *vtparse.Parser
}

func (w parserWriter) Write(p []byte) (int, error) {
	w.parser.ParseFragment(p)
	return len(p), nil
}

func runWithParser(ctx context.Context, cfg config.Config, cfgPath string, command *exec.Cmd, logger *debug.Logger, interactive, trace, showScreen bool) error {
	command.Env = os.Environ()
	if cfgPath != "" && os.Getenv("VTPARSE_CONFIG") == "" {
		command.Env = append(command.Env, "VTPARSE_CONFIG="+cfgPath)
	}

	scr := screen.New(cfg.Screen.Width, cfg.Screen.Height, logger)
	var listener vtparse.EventListener = scr
	if trace {
		listener = &vtparse.TraceListener{Listener: scr, Logger: logger}
	}
	parser := vtparse.NewParser(listener, cfg.Parser.MaxCharCount)
	parser.SetUnicodeFastPath(cfg.Parser.UnicodeFastPath)

	out := io.MultiWriter(os.Stdout, parserWriter{parser: parser})
	exitCode, err := ptywrap.RunCommand(ctx, command, ptywrap.Options{
		RawMode: interactive,
		Output:  out,
	})
	if showScreen {
		printScreen(scr, cfg.Screen.Width)
	}
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return &exitCodeError{code: exitCode}
	}
	return nil
}

func defaultShellCommand() *exec.Cmd {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return exec.Command(shell, "-l", "-i")
}

func shellCommandFromArgs(args []string) (*exec.Cmd, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("run requires a command after --")
	}
	if len(args) == 1 && looksLikeShell(args[0]) {
		return exec.Command(args[0], "-l", "-i"), nil
	}
	return exec.Command(args[0], args[1:]...), nil
}

func looksLikeShell(path string) bool {
	base := path
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		base = path[idx+1:]
	}
	switch base {
	case "zsh", "bash", "fish", "sh":
		return true
	default:
		return false
	}
}
