package argparse

import (
	"slices"

	"github.com/dzonerzy/go-argparse/internal/hashidx"
)

// DefaultHashThreshold is the option count at which name lookups move from a
// linear scan to the hash index.
const DefaultHashThreshold = 16

// helpAliases are the tokens that request help while help is enabled.
var helpAliases = [...]string{"-h", "-H", "--help", "--HELP", "/?", "/help", "/HELP"}

func isHelpAlias(s string) bool {
	for _, h := range helpAliases {
		if s == h {
			return true
		}
	}
	return false
}

// registry owns the ordered options. The index, once built, maps every
// registered name to a position in args.
type registry struct {
	args      []*Argument
	index     *hashidx.Table
	threshold int
	glued     int // options with a suffix byte

	logf func(format string, args ...any)
}

func (r *registry) lookup(name string) (*Argument, bool) {
	if name == "" {
		return nil, false
	}
	if r.index != nil {
		pos, ok := r.index.Lookup(name)
		if !ok {
			return nil, false
		}
		return r.args[pos], true
	}
	return r.scan(name)
}

func (r *registry) scan(name string) (*Argument, bool) {
	for _, a := range r.args {
		if a.short == name || a.long == name {
			return a, true
		}
	}
	return nil, false
}

func (r *registry) has(name string) bool {
	_, ok := r.lookup(name)
	return ok
}

// add appends a fully built option. On failure the registry is left exactly
// as it was.
func (r *registry) add(a *Argument) *Error {
	for _, n := range [2]string{a.short, a.long} {
		if r.has(n) {
			return newError(Duplicate, n, "Argument already registered")
		}
	}

	pos := len(r.args)
	r.args = append(r.args, a)

	if r.index != nil {
		if err := r.insert(r.index, a, pos); err != nil {
			r.index.Remove(a.short)
			r.index.Remove(a.long)
			r.truncate(pos)
			return overflowError(a.name(), "Hash index capacity overflow")
		}
	} else if len(r.args) >= r.threshold {
		if err := r.build(); err != nil {
			r.truncate(pos)
			return overflowError(a.name(), "Hash index capacity overflow")
		}
	}

	if a.suffix != 0 {
		r.glued++
	}
	return nil
}

func (r *registry) truncate(n int) {
	clear(r.args[n:])
	r.args = r.args[:n]
}

// remove drops the option at pos. Positions shift, so the index is rebuilt.
func (r *registry) remove(pos int) {
	if r.args[pos].suffix != 0 {
		r.glued--
	}
	r.args = slices.Delete(r.args, pos, pos+1)
	if r.index != nil {
		r.index = nil
		if len(r.args) >= r.threshold {
			// A failed rebuild leaves the linear scan in charge, which is still correct.
			_ = r.build()
		}
	}
}

func (r *registry) setThreshold(n int) *Error {
	r.threshold = n
	if r.index == nil && len(r.args) >= n {
		if err := r.build(); err != nil {
			return overflowError("", "Hash index capacity overflow")
		}
	}
	return nil
}

// build indexes every registered name and only publishes the table when all
// inserts succeed.
func (r *registry) build() error {
	t := hashidx.New()
	t.OnResize = func(oldCap, newCap int) {
		r.logf("hash index resized from %d to %d buckets", oldCap, newCap)
	}
	for pos, a := range r.args {
		if err := r.insert(t, a, pos); err != nil {
			return err
		}
	}
	r.index = t
	r.logf("hash index built for %d names (%d buckets)", t.Len(), t.Cap())
	return nil
}

func (r *registry) insert(t *hashidx.Table, a *Argument, pos int) error {
	for _, n := range [2]string{a.short, a.long} {
		if n == "" {
			continue
		}
		if err := t.Insert(n, pos); err != nil {
			return err
		}
	}
	return nil
}

// names returns every registered name in registration order.
func (r *registry) names() []string {
	out := make([]string, 0, 2*len(r.args))
	for _, a := range r.args {
		if a.short != "" {
			out = append(out, a.short)
		}
		if a.long != "" {
			out = append(out, a.long)
		}
	}
	return out
}
