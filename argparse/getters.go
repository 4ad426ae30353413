package argparse

import (
	"unsafe"
)

// GetInt returns the value of an Int option: the parsed value, or the
// registered default until one is parsed. ok is false for unknown names
// (UnknownArg) and options of another type (Type).
func (p *Parser) GetInt(name string) (int, bool) { return getScalar[int](p, name) }

// GetDouble is GetInt for Double options.
func (p *Parser) GetDouble(name string) (float64, bool) { return getScalar[float64](p, name) }

// GetString is GetInt for String options.
func (p *Parser) GetString(name string) (string, bool) { return getScalar[string](p, name) }

// GetBool is GetInt for Bool options.
func (p *Parser) GetBool(name string) (bool, bool) { return getScalar[bool](p, name) }

func getScalar[T int | float64 | bool | string](p *Parser, name string) (T, bool) {
	var zero T
	p.clearError()
	a, err := p.find(name)
	if err != nil {
		p.record(err)
		return zero, false
	}
	s, ok := a.val.(*scalar[T])
	if !ok {
		p.record(newError(Type, name, "Argument type mismatch"))
		return zero, false
	}
	return s.v, true
}

// GetIntList returns a copy of the values collected by an IntList option, or
// nil when there are none. The caller owns the returned slice.
func (p *Parser) GetIntList(name string) []int { return getList[int](p, name) }

// GetDoubleList is GetIntList for DoubleList options.
func (p *Parser) GetDoubleList(name string) []float64 { return getList[float64](p, name) }

// GetStringList is GetIntList for StringList options.
func (p *Parser) GetStringList(name string) []string { return getList[string](p, name) }

func getList[T int | float64 | string](p *Parser, name string) []T {
	p.clearError()
	a, err := p.find(name)
	if err != nil {
		p.record(err)
		return nil
	}
	l, ok := a.val.(*list[T])
	if !ok {
		p.record(newError(Type, name, "Argument type mismatch"))
		return nil
	}
	if len(l.items) == 0 {
		return nil
	}

	var zero T
	if _, ok := checkedMul(len(l.items), int(unsafe.Sizeof(zero))); !ok {
		p.record(overflowError(name, "List size overflow"))
		return nil
	}
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// ListCount returns the number of values held by a list option.
func (p *Parser) ListCount(name string) int {
	p.clearError()
	a, err := p.find(name)
	if err != nil {
		p.record(err)
		return 0
	}
	n := listLen(a.val)
	if n < 0 {
		p.record(newError(Type, name, "Argument is not a list"))
		return 0
	}
	return n
}

// IsSet reports whether a value for name was supplied on the command line.
func (p *Parser) IsSet(name string) bool {
	p.clearError()
	a, err := p.find(name)
	if err != nil {
		p.record(err)
		return false
	}
	return a.set
}

// ProgramName returns argv[0] of the last Parse call.
func (p *Parser) ProgramName() string {
	p.clearError()
	return p.program
}

func (p *Parser) Description() string {
	p.clearError()
	return p.description
}

// Arguments returns every registered option in registration order.
func (p *Parser) Arguments() []Info {
	p.clearError()
	out := make([]Info, len(p.reg.args))
	for i, a := range p.reg.args {
		out[i] = a.info()
	}
	return out
}

func (p *Parser) find(name string) (*Argument, *Error) {
	if err := p.usable(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, newError(Internal, "", "Argument name is empty")
	}
	a, ok := p.reg.lookup(name)
	if !ok {
		return nil, newError(UnknownArg, name, "Argument not found")
	}
	return a, nil
}
