package argparse

import (
	"strings"

	"github.com/dzonerzy/go-argparse/internal/pool"
)

// consumeList collects the values that follow the list option at argv[i] and
// returns the index of the last token taken. Collection stops at the end of
// argv or at the next token that is itself an option.
func (p *Parser) consumeList(a *Argument, argv []string, i int) (int, *Error) {
	fields := pool.GetFields()
	defer pool.PutFields(fields)

	name := a.name()
	j := i + 1
	for ; j < len(argv) && !p.isOption(argv[j]); j++ {
		tok := argv[j]
		if a.delimiter == 0 || strings.IndexByte(tok, a.delimiter) < 0 {
			*fields = append(*fields, tok)
			continue
		}

		n := len(*fields)
		*fields = splitFields(*fields, tok, a.delimiter)
		if len(*fields) == n {
			return i, newError(Syntax, name, "List requires values")
		}
		for _, f := range (*fields)[n:] {
			if err := checkField(name, a.typ, f); err != nil {
				return i, err
			}
		}
	}

	if len(*fields) == 0 {
		return i, newError(Syntax, name, "List argument requires values")
	}
	if err := commitList(a, *fields); err != nil {
		return i, err
	}
	return j - 1, nil
}

// assignGluedList splits the remainder of a glued list token. Without a
// configured delimiter the fields are space separated.
func (p *Parser) assignGluedList(a *Argument, raw string) *Error {
	fields := pool.GetFields()
	defer pool.PutFields(fields)

	delim := a.delimiter
	if delim == 0 {
		delim = ' '
	}
	*fields = splitFields(*fields, raw, delim)

	name := a.name()
	for _, f := range *fields {
		if err := checkField(name, a.typ, f); err != nil {
			return err
		}
	}
	if len(*fields) == 0 {
		return newError(Syntax, name, "List requires values")
	}
	return commitList(a, *fields)
}

// commitList converts every field first and appends only when all succeed.
func commitList(a *Argument, fields []string) *Error {
	name := a.name()
	var err *Error
	switch l := a.val.(type) {
	case *list[int]:
		err = appendAll(l, fields, func(f string) (int, *Error) {
			n, err := parseInt(name, f)
			if err != nil {
				return 0, listElemError(name, err)
			}
			return n, nil
		})
	case *list[float64]:
		err = appendAll(l, fields, func(f string) (float64, *Error) {
			d, err := parseDouble(name, f)
			if err != nil {
				return 0, listElemError(name, err)
			}
			return d, nil
		})
	case *list[string]:
		err = appendAll(l, fields, func(f string) (string, *Error) {
			return strings.Clone(f), nil
		})
	default:
		err = newError(Internal, name, "Invalid list type")
	}
	if err != nil {
		return err
	}
	a.set = true
	return nil
}

func appendAll[T int | float64 | string](l *list[T], fields []string, conv func(string) (T, *Error)) *Error {
	staged := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := conv(f)
		if err != nil {
			return err
		}
		staged = append(staged, v)
	}
	l.items = append(l.items, staged...)
	return nil
}
