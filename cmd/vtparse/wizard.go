package main

import (
	"github.com/charmbracelet/huh"
)

func runForm(form *huh.Form) error {
	return form.Run()
}
