package apio

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorSpec is a color in one of three spaces: basic (16), indexed (256) or truecolor.
type ColorSpec struct {
	kind    int // 1=basic, 2=indexed, 3=truecolor
	index   int
	r, g, b uint8
}

var (
	Red     = basic(1)
	Green   = basic(2)
	Yellow  = basic(3)
	Blue    = basic(4)
	Magenta = basic(5)
	Cyan    = basic(6)

	BrightBlack   = basic(8)
	BrightRed     = basic(9)
	BrightGreen   = basic(10)
	BrightYellow  = basic(11)
	BrightBlue    = basic(12)
	BrightMagenta = basic(13)
	BrightCyan    = basic(14)
)

func basic(i int) ColorSpec { return ColorSpec{kind: 1, index: i} }

// Indexed returns a 256-color palette spec (0-255).
func Indexed(i int) ColorSpec { return ColorSpec{kind: 2, index: i} }

// Truecolor returns a 24-bit RGB color spec.
func Truecolor(r, g, b uint8) ColorSpec { return ColorSpec{kind: 3, r: r, g: g, b: b} }

// Style is a fluent builder for a foreground color and text attributes.
type Style struct {
	fg                     *ColorSpec
	bold, faint, underline bool
}

func NewStyle() *Style                 { return &Style{} }
func (s *Style) Fg(c ColorSpec) *Style { s.fg = &c; return s }
func (s *Style) Bold() *Style          { s.bold = true; return s }
func (s *Style) Faint() *Style         { s.faint = true; return s }
func (s *Style) Underline() *Style     { s.underline = true; return s }

// Sprint returns text styled for m, or text unchanged when color is off.
func (s *Style) Sprint(m *IOManager, text string) string {
	if m == nil || !m.SupportsColor() {
		return text
	}
	seq := s.sgr(m.ColorLevel())
	if seq == "" {
		return text
	}
	return "\x1b[" + seq + "m" + text + "\x1b[0m"
}

// Sprintf formats with fmt.Sprintf and then applies the style.
func (s *Style) Sprintf(m *IOManager, format string, a ...any) string {
	return s.Sprint(m, fmt.Sprintf(format, a...))
}

func (s *Style) sgr(level int) string {
	codes := make([]string, 0, 4)
	if s.bold {
		codes = append(codes, "1")
	}
	if s.faint {
		codes = append(codes, "2")
	}
	if s.underline {
		codes = append(codes, "4")
	}
	if s.fg != nil {
		if c := fgCode(*s.fg, level); c != "" {
			codes = append(codes, c)
		}
	}
	return strings.Join(codes, ";")
}

// fgCode degrades colors the terminal cannot show to no color at all.
func fgCode(c ColorSpec, level int) string {
	switch c.kind {
	case 1:
		idx := min(max(c.index, 0), 15)
		if idx < 8 {
			return strconv.Itoa(30 + idx)
		}
		return strconv.Itoa(90 + idx - 8)
	case 2:
		if level >= 2 {
			return "38;5;" + strconv.Itoa(c.index)
		}
	case 3:
		if level >= 3 {
			return fmt.Sprintf("38;2;%d;%d;%d", c.r, c.g, c.b)
		}
	}
	return ""
}

// Theme provides the semantic colors used by the logger and help output.
type Theme struct {
	Primary, Success, Warning, Error, Info, Debug, Muted ColorSpec
}

// DefaultTheme16 uses only the basic 16 colors.
func DefaultTheme16() Theme {
	return Theme{
		Primary: BrightBlue,
		Success: BrightGreen,
		Warning: BrightYellow,
		Error:   BrightRed,
		Info:    BrightCyan,
		Debug:   BrightMagenta,
		Muted:   BrightBlack,
	}
}

// DefaultThemeTruecolor uses 24-bit colors.
func DefaultThemeTruecolor() Theme {
	return Theme{
		Primary: Truecolor(92, 148, 252),
		Success: Truecolor(80, 250, 123),
		Warning: Truecolor(255, 184, 108),
		Error:   Truecolor(255, 85, 85),
		Info:    Truecolor(139, 233, 253),
		Debug:   Truecolor(189, 147, 249),
		Muted:   Truecolor(128, 128, 128),
	}
}

// DefaultTheme picks a theme for the color level of m.
func DefaultTheme(m *IOManager) Theme {
	switch m.ColorLevel() {
	case 3:
		return DefaultThemeTruecolor()
	case 2:
		t := DefaultTheme16()
		t.Debug = Indexed(141)
		return t
	default:
		return DefaultTheme16()
	}
}
