// Package term owns terminal color state and the lipgloss styles shared by
// logging and the interactive picker.
//
// [Configure] runs once during startup. When colors are disabled the
// lipgloss renderer is switched to the ASCII profile, so every style renders
// as plain text and callers never branch on color themselves.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/backmassage/camswap/internal/config"
)

// Level styles. Colors follow the classic bold-bright ANSI palette.
var (
	Info    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	Success = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	Warn    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	Error   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	Debug   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	Accent  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
)

// Configure resolves the color mode and sets the global lipgloss profile.
func Configure(mode config.ColorMode) {
	if resolve(mode) {
		lipgloss.SetColorProfile(termenv.ANSI256)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
