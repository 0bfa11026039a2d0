package script

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sternenseemann/tagwriter"
	tt "github.com/sternenseemann/tagwriter/testtool"
)

func load(t *testing.T, src string) *Script {
	t.Helper()
	s, err := Load(strings.NewReader(src))
	tt.OK(t, err)
	return s
}

func TestRunPage(t *testing.T) {
	s, err := LoadFile("testdata/page.xml")
	tt.OK(t, err)
	tt.Equals(t, "page", s.Name)

	var b bytes.Buffer
	dc := &tagwriter.Collector{}
	tt.OK(t, s.Run(&b, tagwriter.WithReporter(dc)))
	tt.Equals(t, strings.Join([]string{
		`<!doctype html><html lang="en"><head><meta charset="utf-8"><title>lol this is my site</title></head>`,
		`<body><script src="app.js" async></script><pre>&gt;&gt;sophisticated&lt;&lt; technology</pre></body></html>`,
	}, ""), b.String())
	tt.Equals(t, 0, dc.Len())
	tt.Equals(t, "text/html; charset=utf-8", s.MediaType(true))
}

func TestRunFeed(t *testing.T) {
	s, err := LoadFile("testdata/feed.xml")
	tt.OK(t, err)
	tt.Equals(t, "rss", s.Name)

	var b bytes.Buffer
	dc := &tagwriter.Collector{}
	tt.OK(t, s.Run(&b, tagwriter.WithReporter(dc)))
	tt.Equals(t, strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8" ?>`,
		`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom"><channel><title>Fish &amp; Chips</title>`,
		`<description><![CDATA[<p>raw</p>]]></description><atom:link rel="self" href="/rss.xml"/>`,
		`<item><description><![CDATA[<b>bold</b>]]></description></item></channel></rss>`,
	}, ""), b.String())
	tt.Equals(t, 0, dc.Len())
	tt.Equals(t, "application/rss+xml; charset=utf-8", s.MediaType(false))
}

func TestRunReportsDiagnostics(t *testing.T) {
	s := load(t, `<script>
		<command action="start" name="a"/>
		<command action="end" name="b"/>
		<command action="start" name=""/>
	</script>`)

	var b bytes.Buffer
	dc := &tagwriter.Collector{}
	tt.OK(t, s.Run(&b, tagwriter.WithReporter(dc)))
	tt.Equals(t, "<a>", b.String())
	tt.Equals(t, 3, dc.Len())
	tt.Equals(t, 1, dc.Count(tagwriter.StructuralNesting))
	tt.Equals(t, 1, dc.Count(tagwriter.InvalidArgument))
	tt.Equals(t, 1, dc.Count(tagwriter.UnclosedTags))
}

func TestRunClosingSlashOverride(t *testing.T) {
	s := load(t, `<script closing-slash="true"><command action="empty" name="br"/></script>`)
	var b bytes.Buffer
	tt.OK(t, s.Run(&b, tagwriter.WithHTML()))
	tt.Equals(t, "<br/>", b.String())
	tt.Equals(t, "application/xml; charset=utf-8", s.MediaType(false))

	s = load(t, `<script><command action="empty" name="br"/></script>`)
	b.Reset()
	tt.OK(t, s.Run(&b, tagwriter.WithHTML()))
	tt.Equals(t, "<br>", b.String())
}

func TestRunEncoding(t *testing.T) {
	s := load(t, `<script encoding="iso-8859-1"><command action="elem" name="p">Résumé 😀</command></script>`)
	var b bytes.Buffer
	tt.OK(t, s.Run(&b))
	tt.Equals(t, []byte{'<', 'p', '>', 'R', 0xE9, 's', 'u', 'm', 0xE9, ' ', '&', '#', '1', '2', '8', '5', '1', '2', ';', '<', '/', 'p', '>'}, b.Bytes())
	tt.Equals(t, "application/xml; charset=iso-8859-1", s.MediaType(true))
}

func TestRunUnknownEncoding(t *testing.T) {
	s := load(t, `<script name="x" encoding="klingon"/>`)
	err := s.Run(&bytes.Buffer{})
	tt.Assert(t, err != nil)
	tt.Pattern(t, `unsupported encoding "klingon"`, err.Error())
}

func TestRunUnknownAction(t *testing.T) {
	s := load(t, `<script name="x">
		<command action="start" name="a"/>
		<command action="explode" name="a"/>
	</script>`)
	var b bytes.Buffer
	err := s.Run(&b)
	var cerr *CommandError
	tt.Assert(t, errors.As(err, &cerr))
	tt.Equals(t, 1, cerr.Index)
	tt.Equals(t, "explode", cerr.Command.Action)
	tt.Pattern(t, `^script x: command 1 \(explode\): unknown action "explode"`, err.Error())
	tt.Equals(t, "<a>", b.String())
}

func TestRunAttrsNotAllowed(t *testing.T) {
	s := load(t, `<script name="x"><command action="end" name="a"><attr name="b"/></command></script>`)
	err := s.Run(&bytes.Buffer{})
	tt.Assert(t, err != nil)
	tt.Pattern(t, `attributes not allowed`, err.Error())
}

func TestCleanContent(t *testing.T) {
	tt.Equals(t, "a b c", Command{WS: "strip", Content: "\n  a \t b\n\nc  "}.CleanContent())
	tt.Equals(t, " a  b ", Command{Content: " a  b "}.CleanContent())
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(strings.NewReader("<script>"))
	tt.Assert(t, err != nil)

	_, err = LoadFile("testdata/missing.xml")
	tt.Assert(t, err != nil)
}
