package argparse

import (
	"strings"

	"github.com/dzonerzy/go-argparse/internal/fuzzy"
	apio "github.com/dzonerzy/go-argparse/io"
)

// Parser holds the registered options, their values and the outcome of the
// last call. A Parser is not safe for concurrent use; independent parsers
// share nothing.
type Parser struct {
	description string
	program     string

	reg         registry
	helpEnabled bool

	io     *apio.IOManager
	logger *apio.Logger
	exit   *ExitCodeManager

	last   *Error
	closed bool
}

// New creates a parser with the built-in help option (-h, --help) registered.
func New(description string) *Parser {
	p := &Parser{
		description: strings.Clone(description),
		helpEnabled: true,
		io:          apio.New(),
		exit:        newExitCodeManager(),
	}
	p.reg = registry{threshold: DefaultHashThreshold, logf: p.debugf}
	_ = p.reg.add(&Argument{
		short: "-h",
		long:  "--help",
		typ:   Bool,
		help:  "Show this help message and exit",
		val:   &scalar[bool]{},
	})
	return p
}

// DisableHelp removes the built-in help option. Help aliases are then treated
// like any other token and may be registered by the caller.
func (p *Parser) DisableHelp() *Parser {
	p.clearError()
	if !p.helpEnabled {
		return p
	}
	p.helpEnabled = false
	for pos, a := range p.reg.args {
		if a.short == "-h" && a.long == "--help" {
			p.reg.remove(pos)
			break
		}
	}
	return p
}

// HashThreshold sets the option count at which the hash index is built.
func (p *Parser) HashThreshold(n int) *Parser {
	p.clearError()
	if err := p.reg.setThreshold(n); err != nil {
		p.record(err)
	}
	return p
}

// IO replaces the streams used for help output.
func (p *Parser) IO(m *apio.IOManager) *Parser {
	p.clearError()
	if m != nil {
		p.io = m
	}
	return p
}

// Logger attaches a logger. Registration and parse internals are logged at Debug.
func (p *Parser) Logger(l *apio.Logger) *Parser {
	p.clearError()
	p.logger = l
	return p
}

// ExitCodes exposes the exit code mapping used by ExitCode and ParseAndExit.
func (p *Parser) ExitCodes() *ExitCodeManager {
	p.clearError()
	return p.exit
}

func (p *Parser) debugf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(format, args...)
	}
}

// Register adds the option described by s.
func (p *Parser) Register(s Spec) error {
	p.clearError()
	return p.record(p.register(s))
}

func (p *Parser) register(s Spec) *Error {
	if err := p.usable(); err != nil {
		return err
	}
	if s.Short == "" && s.Long == "" {
		return newError(Internal, "", "Both short and long names are empty")
	}
	name := s.Short
	if name == "" {
		name = s.Long
	}
	if !s.Type.valid() {
		return newError(Internal, name, "Unknown argument type")
	}
	if s.Short == s.Long {
		return newError(Duplicate, name, "Argument already registered")
	}
	if p.helpEnabled && (isHelpAlias(s.Short) || isHelpAlias(s.Long)) {
		return newError(Duplicate, name, "Conflicts with the built-in help option")
	}
	if s.Delimiter != 0 && !s.Type.IsList() {
		return newError(Internal, name, "Delimiter requires a list type")
	}

	val, ok := newValue(s.Type, s.Default)
	if !ok {
		return newError(Internal, name, "Default value does not match argument type")
	}

	a := &Argument{
		short:     strings.Clone(s.Short),
		long:      strings.Clone(s.Long),
		typ:       s.Type,
		help:      strings.Clone(s.Help),
		required:  s.Required,
		suffix:    s.Suffix,
		delimiter: s.Delimiter,
		val:       val,
	}
	if err := p.reg.add(a); err != nil {
		return err
	}
	p.debugf("registered %s (%s)", a.name(), a.typ)
	return nil
}

// Add registers a scalar or list option. def seeds the value until one is parsed.
func (p *Parser) Add(short, long string, typ ArgType, help string, required bool, def any) error {
	return p.Register(Spec{Short: short, Long: long, Type: typ, Help: help, Required: required, Default: def})
}

// AddWithSuffix registers an option that also accepts the glued form NAME<suffix>VALUE.
func (p *Parser) AddWithSuffix(short, long string, typ ArgType, help string, required bool, def any, suffix byte) error {
	return p.Register(Spec{
		Short: short, Long: long, Type: typ, Help: help,
		Required: required, Default: def, Suffix: suffix,
	})
}

// AddList registers a list option. A zero delimiter means one value per token.
func (p *Parser) AddList(short, long string, typ ArgType, help string, required bool, delimiter byte) error {
	return p.AddListWithSuffix(short, long, typ, help, required, 0, delimiter)
}

// AddListWithSuffix registers a list option that also accepts the glued form.
func (p *Parser) AddListWithSuffix(short, long string, typ ArgType, help string, required bool, suffix, delimiter byte) error {
	if !typ.IsList() {
		p.clearError()
		name := long
		if name == "" {
			name = short
		}
		return p.record(newError(Internal, name, "Invalid list type"))
	}
	return p.Register(Spec{
		Short: short, Long: long, Type: typ, Help: help,
		Required: required, Suffix: suffix, Delimiter: delimiter,
	})
}

// Parse scans argv (program name first). It returns nil, a help outcome
// (ErrHelpRequested or ErrNoArguments, see IsHelp) or the first fatal *Error.
// Values parsed before a fatal error stay committed; the failing option's do not.
func (p *Parser) Parse(argv []string) error {
	p.clearError()
	return p.record(p.parse(argv))
}

func (p *Parser) parse(argv []string) *Error {
	if err := p.usable(); err != nil {
		return err
	}
	if len(argv) == 0 {
		return newError(Internal, "", "Invalid parser or argv")
	}
	p.program = strings.Clone(argv[0])

	if len(argv) == 1 {
		p.renderHelp(p.io.Out())
		return derive(ErrNoArguments)
	}

	for i := 1; i < len(argv); i++ {
		next, err := p.dispatch(argv, i)
		if err != nil {
			return err
		}
		i = next
	}

	for _, a := range p.reg.args {
		if a.required && !a.set {
			return newError(Required, a.name(), "Required argument not provided")
		}
	}
	p.debugf("parsed %d tokens", len(argv)-1)
	return nil
}

// dispatch handles argv[i] and returns the index of the last token it consumed.
func (p *Parser) dispatch(argv []string, i int) (int, *Error) {
	tok := argv[i]

	if a, v, ok := p.glued(tok); ok {
		if a.typ.IsList() {
			return i, p.assignGluedList(a, v)
		}
		return i, p.assign(a, v)
	}

	if p.helpEnabled && isHelpAlias(tok) {
		p.renderHelp(p.io.Out())
		return i, derive(ErrHelpRequested)
	}

	a, ok := p.reg.lookup(tok)
	if !ok {
		err := newError(Syntax, tok, "Unexpected value (did you forget an option?)")
		err.Suggestion = p.suggest(tok)
		return i, err
	}

	switch {
	case a.typ == Bool:
		return i, p.assign(a, "")
	case a.typ.IsList():
		return p.consumeList(a, argv, i)
	case i+1 >= len(argv):
		return i, newError(Syntax, a.name(), "Option requires a value but none provided")
	case p.reg.has(argv[i+1]):
		return i, newError(Syntax, a.name(), "Option requires a value")
	}
	return i + 1, p.assign(a, argv[i+1])
}

// glued finds the first option, in registration order, whose glued form matches tok.
func (p *Parser) glued(tok string) (*Argument, string, bool) {
	if p.reg.glued == 0 {
		return nil, "", false
	}
	for _, a := range p.reg.args {
		if v, ok := a.matchesGlued(tok); ok {
			return a, v, true
		}
	}
	return nil, "", false
}

// isOption reports whether tok would be handled as an option rather than a value.
func (p *Parser) isOption(tok string) bool {
	if p.reg.has(tok) || (p.helpEnabled && isHelpAlias(tok)) {
		return true
	}
	_, _, ok := p.glued(tok)
	return ok
}

// assign converts raw into a's scalar store.
func (p *Parser) assign(a *Argument, raw string) *Error {
	name := a.name()
	switch v := a.val.(type) {
	case *scalar[int]:
		n, err := parseInt(name, raw)
		if err != nil {
			return err
		}
		v.v = n
	case *scalar[float64]:
		f, err := parseDouble(name, raw)
		if err != nil {
			return err
		}
		v.v = f
	case *scalar[string]:
		v.v = strings.Clone(raw)
	case *scalar[bool]:
		b, err := parseBool(name, raw)
		if err != nil {
			return err
		}
		v.v = b
	default:
		return newError(Internal, name, "Unknown argument type")
	}
	a.set = true
	return nil
}

// suggest returns the closest registered name for option-looking tokens.
func (p *Parser) suggest(tok string) string {
	if tok == "" || (tok[0] != '-' && tok[0] != '/') {
		return ""
	}
	return fuzzy.FindBestOption(tok, p.reg.names(), 2)
}

// Close releases the index, the value stores and the definitions. Any later
// call on p reports an Internal error.
func (p *Parser) Close() error {
	if p.closed {
		return nil
	}
	p.reg.index = nil
	for _, a := range p.reg.args {
		a.val = nil
	}
	p.reg.truncate(0)
	p.program, p.description = "", ""
	p.closed = true
	p.last = nil
	return nil
}

func (p *Parser) usable() *Error {
	if p.closed {
		return newError(Internal, "", "Parser is closed")
	}
	return nil
}
