/*
Package tagwriter provides a small, forward-only way to generate XML and HTML
documents from trusted data while keeping track of which elements are open.

Its main advantage over writing markup with fmt.Fprintf is that it remembers
the open tags. That lets it close them for you (EndAll, EndIncluding) and
refuse to write a closing tag which would break the nesting of the document
(EndElem).


Creating

tagwriter.Writer takes any io.Writer, along with a variable list of options.

	b := &bytes.Buffer{}
	w := tagwriter.Open(b)
	defer w.Teardown()

Options follow Dave Cheney's functional options pattern
(https://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis):

	w := tagwriter.Open(b, tagwriter.WithHTML(), tagwriter.WithWarnings(os.Stderr))

Provided options are:
  - WithClosingSlash(bool)
  - WithHTML()
  - WithWarnings(io.Writer)
  - WithLogger(*slog.Logger)
  - WithReporter(Reporter)
  - WithBufferSize(int)

A Writer belongs to one document and one goroutine. Documents generated
concurrently each need their own Writer.


Overview

An HTML5 page looks like this:

	w := tagwriter.Open(os.Stdout, tagwriter.WithHTML())
	defer w.Teardown()

	w.WriteRaw("<!doctype html>")
	w.StartElem("html", tagwriter.A("lang", "en"))
	w.StartElem("head")
	w.WriteEmpty("meta", tagwriter.A("charset", "utf-8"))
	w.WriteElem("title", "lol this is my site")
	w.EndElem("head")
	w.StartElem("body")
	w.StartElem("script", tagwriter.A("src", "app.js"), tagwriter.BareAttr("async"))
	w.EndElem("script")
	w.EndAll()

Becomes:

	<!doctype html><html lang="en"><head><meta charset="utf-8"><title>lol this is my site</title></head><body><script src="app.js" async></script></body></html>

The output is always "minified": nothing is indented.


Escaping

WriteText and attribute values are escaped. Only the five characters with
syntactical meaning in XML are replaced: & < > ' and ". Everything else is
written as is, so it must already be correctly encoded. Escaping is not
idempotent; escape raw content exactly once.

Attribute and element names are never escaped or checked.

WriteRaw writes its argument verbatim. It is meant for trusted, pre-rendered
markup, and for the content of CDATA sections:

	w.StartElem("description")
	w.StartCData()
	w.WriteRaw(entryHTML)
	w.EndCData()
	w.EndElem("description")


Ending elements

There are several ways to end an element:

	- EndElem(name) closes name if it is the innermost open element.
	- EndAll() closes every open element.
	- EndIncluding(name) closes elements until one called name was closed.
	- Teardown() forgets any open elements without closing them.

EndIncluding stops at the innermost element with a matching name, which
might not be the one you meant if elements with the same name are nested.


Diagnostics

Writer methods do not return errors for misuse. A close that would break the
nesting, a close with nothing open, a missing name or an attribute without a
name is skipped, the Writer stays consistent and a Diagnostic is passed to
every configured sink. Without sinks, diagnostics are dropped.

The worst outcome of an ignored diagnostic is a document with missing closing
tags. Use a Collector to turn diagnostics into an error:

	dc := &tagwriter.Collector{}
	w := tagwriter.Open(b, tagwriter.WithReporter(dc))
	...
	if err := dc.Err(); err != nil {
		return err
	}

Teardown reports any elements left open, innermost first:

	tagwriter: unclosed tags remaining: article main body html


Flush

Output is buffered. Teardown and EndAllFlush flush it; otherwise call Flush.
Errors from the underlying io.Writer are held by the buffer and returned from
Flush, Teardown and Err.


Encodings

tagwriter supports encoders from the golang.org/x/text/encoding package.
UTF-8 strings written in from Go will be converted on the fly, and characters
the encoding can't represent become numeric character references:

	enc := charmap.Windows1252.NewEncoder()
	w := tagwriter.OpenEncoding(b, enc)
*/
package tagwriter
