package tagwriter

import (
	"bufio"
	"strings"
)

var (
	escQuot = "&quot;"
	escApos = "&apos;"
	escAmp  = "&amp;"
	escLt   = "&lt;"
	escGt   = "&gt;"
)

// escaped marks the bytes which have syntactical meaning in XML and HTML.
// Everything else is passed through untouched; the caller is expected to
// supply correctly encoded text.
var escaped = [256]bool{
	'&':  true,
	'<':  true,
	'>':  true,
	'\'': true,
	'"':  true,
}

type printer struct {
	*bufio.Writer
}

// return the bufio Writer's cached write error
func (p *printer) cachedWriteError() error {
	_, err := p.Write(nil)
	return err
}

func escapeFor(c byte) string {
	switch c {
	case '&':
		return escAmp
	case '<':
		return escLt
	case '>':
		return escGt
	case '\'':
		return escApos
	case '"':
		return escQuot
	}
	return ""
}

func (p printer) escapeString(s string) {
	last := 0
	for i := 0; i < len(s); i++ {
		if !escaped[s[i]] {
			continue
		}
		p.WriteString(s[last:i])
		p.WriteString(escapeFor(s[i]))
		last = i + 1
	}
	p.WriteString(s[last:])
}

// printAttrs writes attrs in order. It returns the index of the first
// attribute without a name, or -1 if every attribute was written.
func (p printer) printAttrs(attrs []Attr) int {
	for i, a := range attrs {
		if a.Name == "" {
			return i
		}
		p.WriteByte(' ')
		p.WriteString(a.Name)
		if !a.Bare {
			p.WriteString(`="`)
			p.escapeString(a.Value)
			p.WriteByte('"')
		}
	}
	return -1
}

// EscapeString returns s with the five XML metacharacters replaced by their
// named entities:
//
//	&  &amp;
//	<  &lt;
//	>  &gt;
//	'  &apos;
//	"  &quot;
//
// Escaping is not idempotent; already escaped text is escaped again.
func EscapeString(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if escaped[s[i]] {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + n*5)
	last := 0
	for i := 0; i < len(s); i++ {
		if !escaped[s[i]] {
			continue
		}
		sb.WriteString(s[last:i])
		sb.WriteString(escapeFor(s[i]))
		last = i + 1
	}
	sb.WriteString(s[last:])
	return sb.String()
}
