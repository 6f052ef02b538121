package main

import (
	"fmt"

	"github.com/vtparse/vtparse/internal/config"
	"github.com/vtparse/vtparse/internal/debug"
)

type appState struct {
	cfg      config.Config
	cfgFound bool
	logger   *debug.Logger
	cfgPath  string
}

type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.code)
}
