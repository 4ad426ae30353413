package argparse

import (
	"io"

	"gopkg.in/yaml.v3"
)

type manifest struct {
	Program     string           `yaml:"program,omitempty"`
	Description string           `yaml:"description,omitempty"`
	Arguments   []manifestOption `yaml:"arguments"`
}

type manifestOption struct {
	Short     string `yaml:"short,omitempty"`
	Long      string `yaml:"long,omitempty"`
	Type      string `yaml:"type"`
	Help      string `yaml:"help,omitempty"`
	Required  bool   `yaml:"required"`
	Suffix    string `yaml:"suffix,omitempty"`
	Delimiter string `yaml:"delimiter,omitempty"`
}

// WriteManifest writes the registered options as a YAML document, in
// registration order, for documentation and completion generators.
func (p *Parser) WriteManifest(w io.Writer) error {
	p.clearError()
	if err := p.usable(); err != nil {
		return p.record(err)
	}

	m := manifest{
		Program:     p.program,
		Description: p.description,
		Arguments:   make([]manifestOption, 0, len(p.reg.args)),
	}
	for _, a := range p.reg.args {
		m.Arguments = append(m.Arguments, manifestOption{
			Short:     a.short,
			Long:      a.long,
			Type:      a.typ.String(),
			Help:      a.help,
			Required:  a.required,
			Suffix:    byteString(a.suffix),
			Delimiter: byteString(a.delimiter),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return p.record(newError(Internal, "", "Failed to encode manifest: "+err.Error()))
	}
	if err := enc.Close(); err != nil {
		return p.record(newError(Internal, "", "Failed to encode manifest: "+err.Error()))
	}
	return nil
}

func byteString(b byte) string {
	if b == 0 {
		return ""
	}
	return string([]byte{b})
}
