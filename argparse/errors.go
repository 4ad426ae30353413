package argparse

import (
	"errors"
	"path"
	"runtime"
	"syscall"
)

// Category classifies every outcome recorded by a Parser.
type Category int

const (
	Success Category = iota
	Memory
	Syntax
	Type
	Required
	Validation
	Internal
	Config
	Range
	UnknownArg
	Duplicate
	HelpRequested
)

var categoryNames = [...]string{
	Success:       "SUCCESS",
	Memory:        "MEMORY_ERROR",
	Syntax:        "SYNTAX_ERROR",
	Type:          "TYPE_ERROR",
	Required:      "REQUIRED_ERROR",
	Validation:    "VALIDATION_ERROR",
	Internal:      "INTERNAL_ERROR",
	Config:        "CONFIG_ERROR",
	Range:         "RANGE_ERROR",
	UnknownArg:    "UNKNOWN_ARGUMENT",
	Duplicate:     "DUPLICATE_ARGUMENT",
	HelpRequested: "HELP_REQUESTED",
}

func (c Category) String() string {
	if c < Success || c > HelpRequested {
		return "UNKNOWN_ERROR"
	}
	return categoryNames[c]
}

// Fatal reports whether parsing must stop. Only Success and HelpRequested are not fatal.
func (c Category) Fatal() bool { return c != Success && c != HelpRequested }

// Errno is the OS error code mirrored for c.
func (c Category) Errno() syscall.Errno {
	switch c {
	case Success, HelpRequested:
		return 0
	case Memory:
		return syscall.ENOMEM
	case Range:
		return syscall.ERANGE
	case Duplicate:
		return syscall.EEXIST
	default:
		return syscall.EINVAL
	}
}

// Error is the single error type produced by this package.
type Error struct {
	Category Category
	Errno    syscall.Errno
	Arg      string // offending option name or token, may be empty
	Detail   string

	// Suggestion holds a close registered name for unexpected tokens.
	Suggestion string

	// Func and Line locate where the error was raised.
	Func string
	Line int

	base *Error
}

// Error renders "[CATEGORY] Argument 'NAME': detail." and drops the clauses
// that have nothing to show.
func (e *Error) Error() string {
	cat := e.Category.String()
	switch {
	case e.Detail != "" && e.Arg != "":
		return "[" + cat + "] Argument '" + e.Arg + "': " + e.Detail + "."
	case e.Detail != "":
		return "[" + cat + "] " + e.Detail + "."
	case e.Arg != "":
		return "[" + cat + "] Argument '" + e.Arg + "'."
	default:
		return "[" + cat + "]"
	}
}

// Is matches the sentinel an error was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.base != nil && e.base == t
}

// Fatal reports whether the error stops parsing.
func (e *Error) Fatal() bool { return e.Category.Fatal() }

var (
	// ErrHelpRequested is returned when a help alias appears on the command line.
	ErrHelpRequested = &Error{Category: HelpRequested, Detail: "Help requested by user"}

	// ErrNoArguments is returned when argv holds only the program name.
	ErrNoArguments = &Error{Category: HelpRequested, Detail: "No arguments provided, showing help"}
)

// IsHelp reports whether err is a help outcome rather than a failure.
func IsHelp(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Category == HelpRequested
}

// CategoryOf returns the category carried by err, Success for nil and
// Internal for foreign errors.
func CategoryOf(err error) Category {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return Internal
}

// newError builds an error located at its caller.
func newError(cat Category, arg, detail string) *Error {
	e := &Error{Category: cat, Errno: cat.Errno(), Arg: arg, Detail: detail}
	e.locate(1)
	return e
}

// overflowError is a Range error mirrored as EOVERFLOW.
func overflowError(arg, detail string) *Error {
	e := &Error{Category: Range, Errno: syscall.EOVERFLOW, Arg: arg, Detail: detail}
	e.locate(1)
	return e
}

// derive copies a sentinel so the copy carries its own location.
func derive(sentinel *Error) *Error {
	e := *sentinel
	e.Errno = sentinel.Category.Errno()
	e.base = sentinel
	e.locate(1)
	return &e
}

func (e *Error) locate(skip int) {
	pc, _, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return
	}
	e.Line = line
	if fn := runtime.FuncForPC(pc); fn != nil {
		e.Func = path.Base(fn.Name())
	}
}
