// Package termcaps probes what the attached terminal supports, as a
// one-shot capability check. Its only caller is `vtparse status`, which
// prints the result; PTY sessions do not consult it.
package termcaps

import (
	"os"

	"github.com/muesli/termenv"
	"github.com/xo/terminfo"
)

// Capabilities summarizes what the demo harness can rely on.
type Capabilities struct {
	ColorProfile termenv.Profile
	TrueColor    bool
	AltScreen    bool
	TermName     string
}

// Probe inspects the current process's stdout for terminal capabilities.
func Probe() Capabilities {
	profile := termenv.ColorProfile()
	caps := Capabilities{
		ColorProfile: profile,
		TrueColor:    profile == termenv.TrueColor,
		TermName:     os.Getenv("TERM"),
	}
	if ti, err := terminfo.LoadFromEnv(); err == nil {
		caps.AltScreen = string(ti.Strings[terminfo.EnterCaMode]) != "" && string(ti.Strings[terminfo.ExitCaMode]) != ""
	}
	return caps
}
