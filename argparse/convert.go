package argparse

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const asciiSpace = " \t\n\v\f\r"

// Field limits for values split out of a delimited token.
const (
	maxIntField    = 32
	maxDoubleField = 64
	maxBoolText    = 64
)

func parseInt(name, s string) (int, *Error) {
	n, err := strconv.ParseInt(strings.Trim(s, asciiSpace), 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, newError(Range, name, "Integer value out of range")
		}
		return 0, newError(Type, name, "Invalid integer value")
	}
	return int(n), nil
}

func parseDouble(name, s string) (float64, *Error) {
	s = strings.Trim(s, asciiSpace)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, newError(Type, name, "Invalid floating-point value")
	}
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || (f == 0 && nonzeroMantissa(s)) {
		return 0, newError(Range, name, "Floating-point value out of range")
	}
	return f, nil
}

// nonzeroMantissa reports whether a syntactically valid float has a nonzero
// digit before its exponent. ParseFloat rounds underflow to zero silently.
func nonzeroMantissa(s string) bool {
	s = strings.TrimLeft(s, "+-")
	hex := len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
	if hex {
		s = s[2:]
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case !hex && (c == 'e' || c == 'E'), hex && (c == 'p' || c == 'P'):
			return false
		case c >= '1' && c <= '9':
			return true
		case hex && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
			return true
		}
	}
	return false
}

// parseBool accepts the empty string as true, which is how a bare glued flag
// ("--verbose=") is read.
func parseBool(name, s string) (bool, *Error) {
	if s == "" {
		return true, nil
	}
	if len(s) >= maxBoolText {
		return false, newError(Range, name, "Boolean value too long")
	}
	switch strings.ToLower(s) {
	case "true", "1", "yes", "on", "enable", "enabled":
		return true, nil
	case "false", "0", "no", "off", "disable", "disabled":
		return false, nil
	}
	return false, newError(Type, name,
		"Invalid boolean value. Use: true/false, yes/no, 1/0, on/off, enable/disable")
}

// splitFields appends the non-empty delim-separated fields of s to dst.
// Runs of delimiters count as one.
func splitFields(dst []string, s string, delim byte) []string {
	for s != "" {
		i := strings.IndexByte(s, delim)
		if i < 0 {
			return append(dst, s)
		}
		if i > 0 {
			dst = append(dst, s[:i])
		}
		s = s[i+1:]
	}
	return dst
}

// checkField enforces the per-field limits of delimited numeric lists.
func checkField(name string, typ ArgType, field string) *Error {
	switch {
	case typ == IntList && len(field) >= maxIntField:
		return newError(Range, name, "List value too long for integer parsing")
	case typ == DoubleList && len(field) >= maxDoubleField:
		return newError(Range, name, "List value too long for double parsing")
	}
	return nil
}

func listElemError(name string, err *Error) *Error {
	if err.Category == Range {
		return newError(Range, name, "List value out of range")
	}
	return newError(Type, name, "Invalid list value")
}

// checkedMul multiplies sizes, reporting overflow instead of wrapping.
func checkedMul(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}
