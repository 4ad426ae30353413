package argparse

import (
	"errors"
	"os"

	apio "github.com/dzonerzy/go-argparse/io"
)

// ExitError requests a specific exit code for the wrapped error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds the codes used when no category override matches.
type ExitCodeDefaults struct {
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2
	ValidationError int // default: 3
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ValidationError: 3}
}

// ExitCodeManager maps parse outcomes to process exit codes.
type ExitCodeManager struct {
	byCategory map[Category]int
	defaults   ExitCodeDefaults
}

func newExitCodeManager() *ExitCodeManager {
	return &ExitCodeManager{
		byCategory: make(map[Category]int),
		defaults:   defaultExitDefaults(),
	}
}

// DefineCategory overrides the exit code for one category.
func (e *ExitCodeManager) DefineCategory(c Category, code int) *ExitCodeManager {
	e.byCategory[c] = code
	return e
}

// Default replaces the default codes.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager { e.defaults = d; return e }

// Resolve converts err to an exit code.
// Precedence:
//  1. ExitError (requested code)
//  2. DefineCategory override
//  3. category default (misuse, validation, general)
//
// Errors from other packages resolve to GeneralError.
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var pe *Error
	if !errors.As(err, &pe) {
		return e.defaults.GeneralError
	}
	if code, ok := e.byCategory[pe.Category]; ok {
		return code
	}
	switch pe.Category {
	case Success, HelpRequested:
		return e.defaults.Success
	case Syntax, Required, UnknownArg, Duplicate:
		return e.defaults.MisusageError
	case Validation, Type, Range:
		return e.defaults.ValidationError
	default:
		return e.defaults.GeneralError
	}
}

// ExitCode resolves err with the parser's exit code mapping.
func (p *Parser) ExitCode(err error) int {
	p.clearError()
	return p.exit.Resolve(err)
}

// osExit is replaced in tests.
var osExit = os.Exit

// ParseAndExit parses argv and terminates the process unless parsing
// succeeded. Help outcomes exit with the success code; fatal errors are
// logged, followed by a suggestion when one exists and the help text.
func (p *Parser) ParseAndExit(argv []string) {
	if code, done := p.handle(p.Parse(argv)); done {
		osExit(code)
	}
}

// handle reports the exit code for err and whether the process should stop.
func (p *Parser) handle(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	if IsHelp(err) {
		return p.exit.Resolve(err), true
	}

	log := p.logger
	if log == nil {
		log = apio.NewLogger(p.io).WithFormat(apio.LogFormatPlain)
	}
	log.Error("%s", err.Error())

	var pe *Error
	if errors.As(err, &pe) && pe.Suggestion != "" {
		log.Info("Did you mean '%s'?", pe.Suggestion)
	}
	_ = p.renderHelp(p.io.Out())
	return p.exit.Resolve(err), true
}
