package argparse

import "syscall"

// The last-error record mirrors the error returned by the most recent public
// call. It belongs to one Parser, so parsers used from different goroutines
// never observe each other's outcomes.

// LastError returns the outcome of the last call, or nil when it succeeded.
func (p *Parser) LastError() *Error { return p.last }

// LastErrorCode returns the category of the last outcome.
func (p *Parser) LastErrorCode() Category {
	if p.last == nil {
		return Success
	}
	return p.last.Category
}

// LastErrno returns the OS error code mirrored for the last outcome.
func (p *Parser) LastErrno() syscall.Errno {
	if p.last == nil {
		return 0
	}
	return p.last.Errno
}

// LastErrorMessage returns the formatted message of the last outcome, or "".
func (p *Parser) LastErrorMessage() string {
	if p.last == nil {
		return ""
	}
	return p.last.Error()
}

// ErrorOccurred reports whether the last call recorded anything, help included.
func (p *Parser) ErrorOccurred() bool { return p.last != nil }

// ClearError resets the record to Success.
func (p *Parser) ClearError() { p.clearError() }

func (p *Parser) clearError() { p.last = nil }

// record stores err and returns it as an error, or nil without the typed-nil trap.
func (p *Parser) record(err *Error) error {
	if err == nil {
		return nil
	}
	p.last = err
	if err.Fatal() {
		p.debugf("%s", err.Error())
	}
	return err
}
