// Package apio holds the terminal plumbing shared by argparse and its example
// programs: output writers, color capability detection, styles and a small
// leveled logger.
package apio

import (
	stdio "io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// IOManager centralizes output streams and terminal capabilities.
type IOManager struct {
	out stdio.Writer
	err stdio.Writer

	forceColor         bool
	noColor            bool
	forceColorLevel    int
	hasForceColorLevel bool
}

// New returns a manager bound to process stdout and stderr.
func New() *IOManager {
	return &IOManager{out: os.Stdout, err: os.Stderr}
}

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto goes back to environment heuristics.
func (m *IOManager) ColorAuto() *IOManager { m.noColor = false; m.forceColor = false; return m }

// ForceColorLevel pins the color level (0=none, 1=16, 2=256, 3=truecolor).
func (m *IOManager) ForceColorLevel(level int) *IOManager {
	m.forceColorLevel = level
	m.hasForceColorLevel = true
	return m
}

func (m *IOManager) Out() stdio.Writer { return m.out }
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether the configured output is a terminal.
func (m *IOManager) IsTTY() bool { return isTerminal(m.out) }

// Width returns the output terminal width, falling back to $COLUMNS and then 80.
func (m *IOManager) Width() int {
	if f, ok := m.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if w, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return 80
}

// SupportsColor reports whether ANSI sequences should be emitted.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

// ColorLevel returns 0 for none, 1 for basic, 2 for 256 colors, and 3 for truecolor.
func (m *IOManager) ColorLevel() int {
	if m.hasForceColorLevel {
		return m.forceColorLevel
	}
	if !m.SupportsColor() {
		return 0
	}
	if ct := os.Getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		return 3
	}
	t := os.Getenv("TERM")
	if strings.Contains(t, "truecolor") || strings.Contains(t, "24bit") {
		return 3
	}
	if strings.Contains(t, "256color") {
		return 2
	}
	return 1
}

// Colorize wraps s with the given SGR code. Without color support s is returned unchanged.
func (m *IOManager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when color is supported.
func (m *IOManager) Bold(s string) string { return m.Colorize(s, "1") }

// Faint returns s in faint intensity when color is supported.
func (m *IOManager) Faint(s string) string { return m.Colorize(s, "2") }

func isTerminal(w stdio.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
