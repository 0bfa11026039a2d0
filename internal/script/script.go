// Package script reads render scripts: XML documents describing a sequence of
// tagwriter calls. Scripts let pages and feeds be described in files and
// rendered by the tagwriter command.
//
//	<script name="hello" closing-slash="false">
//	  <command action="raw">&lt;!doctype html&gt;</command>
//	  <command action="start" name="html"><attr name="lang">en</attr></command>
//	  <command action="elem" name="title">Hello &amp; welcome</command>
//	  <command action="empty" name="br"/>
//	  <command action="end-all"/>
//	</script>
package script

import (
	"encoding/xml"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/sternenseemann/tagwriter"
)

const (
	actionRaw          = "raw"
	actionText         = "text"
	actionStart        = "start"
	actionEmpty        = "empty"
	actionElem         = "elem"
	actionEnd          = "end"
	actionEndAll       = "end-all"
	actionEndIncluding = "end-including"
	actionCData        = "cdata"
	actionCDataStart   = "cdata-start"
	actionCDataEnd     = "cdata-end"
)

// Ext is the file extension of script files.
const Ext = ".xml"

var wsStrip = regexp.MustCompile(`[\n\r\t ]+`)

// Script represents a render script.
type Script struct {
	XMLName xml.Name `xml:"script"`
	Name    string   `xml:"name,attr"`

	// If set, overrides the closing slash setting passed to Run.
	ClosingSlash *bool `xml:"closing-slash,attr"`

	// Media type served for the document. See MediaType.
	ContentType string `xml:"content-type,attr"`

	// Output charset, looked up in the WHATWG encoding index. Empty means
	// UTF-8.
	Encoding string `xml:"encoding,attr"`

	Commands []Command `xml:"command"`
}

// Command is a single call on the tagwriter.Writer.
type Command struct {
	XMLName xml.Name `xml:"command"`
	Action  string   `xml:"action,attr"`
	Name    string   `xml:"name,attr"`
	WS      string   `xml:"ws,attr"`
	Content string   `xml:",chardata"`
	Attrs   []Attr   `xml:"attr"`
}

// Attr is an attribute of a start, empty or elem command.
type Attr struct {
	Name  string `xml:"name,attr"`
	Bare  bool   `xml:"bare,attr"`
	Value string `xml:",chardata"`
}

// CommandError is returned when a command can't be executed.
type CommandError struct {
	Script  string
	Index   int
	Command Command
	Msg     string
}

// Error implements error.
func (e *CommandError) Error() string {
	return fmt.Sprintf("script %s: command %d (%s): %s", e.Script, e.Index, e.Command.Action, e.Msg)
}

// CleanContent returns the command's text, with runs of whitespace collapsed
// if ws="strip" was given.
func (c Command) CleanContent() string {
	r := c.Content
	if c.WS == "strip" {
		r = wsStrip.ReplaceAllString(strings.TrimSpace(r), " ")
	}
	return r
}

func (c Command) attrs() []tagwriter.Attr {
	if len(c.Attrs) == 0 {
		return nil
	}
	out := make([]tagwriter.Attr, len(c.Attrs))
	for i, a := range c.Attrs {
		out[i] = tagwriter.Attr{Name: a.Name, Value: a.Value, Bare: a.Bare}
	}
	return out
}

// Load decodes a script.
func Load(r io.Reader) (*Script, error) {
	var s Script
	if err := xml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	return &s, nil
}

// LoadFile decodes the script at path. If the script has no name, the file
// name without its extension is used.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// MediaType returns the Content-Type for the rendered document. Without an
// explicit content type, scripts without closing slashes are served as HTML
// and everything else as XML.
func (s *Script) MediaType(closingSlash bool) string {
	ct := s.ContentType
	if ct == "" {
		if s.ClosingSlash != nil {
			closingSlash = *s.ClosingSlash
		}
		if closingSlash {
			ct = "application/xml"
		} else {
			ct = "text/html"
		}
	}
	if _, params, err := mime.ParseMediaType(ct); err == nil {
		if _, ok := params["charset"]; ok {
			return ct
		}
	}
	charset := "utf-8"
	if s.Encoding != "" {
		charset = strings.ToLower(s.Encoding)
	}
	return ct + "; charset=" + charset
}

// NewWriter opens a tagwriter.Writer configured for the script. The script's
// own settings take precedence over options.
func (s *Script) NewWriter(out io.Writer, options ...tagwriter.Option) (*tagwriter.Writer, error) {
	if s.ClosingSlash != nil {
		options = append(options, tagwriter.WithClosingSlash(*s.ClosingSlash))
	}
	if s.Encoding == "" || strings.EqualFold(s.Encoding, "utf-8") {
		return tagwriter.Open(out, options...), nil
	}
	enc, err := htmlindex.Get(s.Encoding)
	if err != nil {
		return nil, fmt.Errorf("script %s: unsupported encoding %q: %w", s.Name, s.Encoding, err)
	}
	return tagwriter.OpenEncoding(out, enc.NewEncoder(), options...), nil
}

// Run renders the script to out using a fresh Writer, then tears the Writer
// down.
func (s *Script) Run(out io.Writer, options ...tagwriter.Option) error {
	w, err := s.NewWriter(out, options...)
	if err != nil {
		return err
	}
	if err := s.Exec(w); err != nil {
		w.Teardown()
		return err
	}
	return w.Teardown()
}

// Exec executes every command against w.
func (s *Script) Exec(w *tagwriter.Writer) error {
	for i, command := range s.Commands {
		if err := s.exec(w, command); err != nil {
			return &CommandError{Script: s.Name, Index: i, Command: command, Msg: err.Error()}
		}
	}
	return nil
}

func (s *Script) exec(w *tagwriter.Writer, command Command) error {
	switch command.Action {
	case actionStart, actionEmpty, actionElem:
	default:
		if len(command.Attrs) > 0 {
			return fmt.Errorf("attributes not allowed")
		}
	}

	switch command.Action {
	case actionRaw:
		w.WriteRaw(command.CleanContent())
	case actionText:
		w.WriteText(command.CleanContent())
	case actionStart:
		w.StartElem(command.Name, command.attrs()...)
	case actionEmpty:
		w.WriteEmpty(command.Name, command.attrs()...)
	case actionElem:
		w.WriteElem(command.Name, command.CleanContent(), command.attrs()...)
	case actionEnd:
		w.EndElem(command.Name)
	case actionEndAll:
		w.EndAll()
	case actionEndIncluding:
		w.EndIncluding(command.Name)
	case actionCData:
		w.WriteCData(command.CleanContent())
	case actionCDataStart:
		w.StartCData()
	case actionCDataEnd:
		w.EndCData()
	default:
		return fmt.Errorf("unknown action %q\n%s", command.Action, spew.Sdump(command))
	}
	return nil
}
