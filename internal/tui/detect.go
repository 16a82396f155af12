package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how output is presented.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, scripts, and redirected output.
	ModePlain Mode = iota
	// ModeStyled is used when a human is at the terminal.
	ModeStyled
)

// DetectMode determines whether the summary should be styled.
//
// Returns ModePlain if:
//   - ERRCOLLECT_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stderr is not a terminal
//
// Returns ModeStyled otherwise.
func DetectMode() Mode {
	return detectMode(os.Getenv, term.IsTerminal(int(os.Stderr.Fd())))
}

func detectMode(getenv func(string) string, stderrIsTerminal bool) Mode {
	if getenv("ERRCOLLECT_NON_INTERACTIVE") == "1" {
		return ModePlain
	}
	if getenv("CI") != "" {
		return ModePlain
	}
	if getenv("NO_COLOR") != "" {
		return ModePlain
	}
	if !stderrIsTerminal {
		return ModePlain
	}
	return ModeStyled
}
