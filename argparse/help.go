package argparse

import (
	"bytes"
	"io"

	"github.com/dzonerzy/go-argparse/internal/pool"
	apio "github.com/dzonerzy/go-argparse/io"
)

// PrintHelp writes the help text to the configured output.
func (p *Parser) PrintHelp() { _ = p.WriteHelp(p.io.Out()) }

// WriteHelp writes the help text to w:
//
//	Usage: PROG [OPTIONS]
//
//	DESCRIPTION
//
//	  -n, --numbers VALUE1 VALUE2 ...
//	    Numbers to average [required]
func (p *Parser) WriteHelp(w io.Writer) error {
	p.clearError()
	if err := p.usable(); err != nil {
		return p.record(err)
	}
	if err := p.renderHelp(w); err != nil {
		return p.record(newError(Internal, "", "Failed to write help: "+err.Error()))
	}
	return nil
}

func (p *Parser) renderHelp(w io.Writer) error {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	p.formatHelp(buf)
	_, err := w.Write(buf.Bytes())
	return err
}

func (p *Parser) formatHelp(buf *bytes.Buffer) {
	theme := apio.DefaultTheme(p.io)
	heading := apio.NewStyle().Bold()
	option := apio.NewStyle().Fg(theme.Primary)
	muted := apio.NewStyle().Fg(theme.Muted)

	buf.WriteString(heading.Sprint(p.io, "Usage:"))
	buf.WriteString(" " + p.program + " [OPTIONS]\n\n")

	if p.description != "" {
		buf.WriteString(p.description)
		buf.WriteString("\n\n")
	}

	for _, a := range p.reg.args {
		names := a.short
		if a.long != "" {
			if names != "" {
				names += ", "
			}
			names += a.long
		}

		buf.WriteString("  ")
		buf.WriteString(option.Sprint(p.io, names))
		if ph := a.typ.placeholder(); ph != "" {
			buf.WriteString(" " + ph)
		}
		buf.WriteString("\n    ")
		buf.WriteString(a.help)
		if a.required {
			buf.WriteString(" " + muted.Sprint(p.io, "[required]"))
		}
		buf.WriteByte('\n')
	}
}
