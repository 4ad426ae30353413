package argparse

import "strings"

// Spec declares one option. It is the input of Parser.Register.
type Spec struct {
	Short    string // e.g. "-n"
	Long     string // e.g. "--numbers"
	Type     ArgType
	Help     string
	Required bool
	Default  any

	// Suffix enables the glued form: with '=' the option accepts "--long=VALUE".
	Suffix byte
	// Delimiter splits list tokens: with ',' "1,2,3" yields three values.
	Delimiter byte
}

// Info is the read-only view of a registered option, in registration order.
type Info struct {
	Short     string
	Long      string
	Type      ArgType
	Help      string
	Required  bool
	Suffix    byte
	Delimiter byte
	Set       bool
}

// Argument is a registered option together with its value store.
type Argument struct {
	short     string
	long      string
	typ       ArgType
	help      string
	required  bool
	set       bool
	suffix    byte
	delimiter byte
	val       value
}

// name is how diagnostics refer to the option: the short name when there is one.
func (a *Argument) name() string {
	if a.short != "" {
		return a.short
	}
	return a.long
}

func (a *Argument) info() Info {
	return Info{
		Short:     a.short,
		Long:      a.long,
		Type:      a.typ,
		Help:      a.help,
		Required:  a.required,
		Suffix:    a.suffix,
		Delimiter: a.delimiter,
		Set:       a.set,
	}
}

// matchesGlued reports whether token is "<prefix>NAME<suffix>VALUE" for one of
// a's names and returns VALUE. Leading non-alphanumeric bytes are ignored on
// both sides, so "-round=5" and "--round=5" both match "--round".
func (a *Argument) matchesGlued(token string) (string, bool) {
	if a.suffix == 0 {
		return "", false
	}
	pos := strings.IndexByte(token, a.suffix)
	if pos <= 0 {
		return "", false
	}
	start := stripPrefix(token)
	if start >= pos {
		return "", false
	}
	key := token[start:pos]
	for _, n := range [2]string{a.short, a.long} {
		if n != "" && n[stripPrefix(n):] == key {
			return token[pos+1:], true
		}
	}
	return "", false
}

// stripPrefix returns the offset of the first ASCII letter or digit in s.
func stripPrefix(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			return i
		}
	}
	return len(s)
}
