package tagwriter

import (
	"bufio"
	"io"
	"log/slog"

	"golang.org/x/text/encoding"
)

const (
	initialNodeDepth = 8
	defaultBufsize   = 2048
)

// Writer writes XML or HTML to an io.Writer and keeps track of which
// elements are open.
//
// A Writer belongs to a single document: it must not be shared between
// goroutines. Generate documents concurrently by giving each one its own
// Writer.
type Writer struct {
	printer printer
	stack   tagStack

	reporters []Reporter

	// Write a slash before the ">" of empty elements, i.e. "<br/>" rather
	// than "<br>". Defaults to true. HTML5 void elements don't need it.
	ClosingSlash bool

	// Determines how much memory the internal buffer will use. Set to 0 to use
	// the default.
	InitialBufSize int
}

// Option is an option to the Writer.
type Option func(w *Writer)

// WithClosingSlash controls whether WriteEmpty writes "<tag/>" (true) or
// "<tag>" (false).
func WithClosingSlash(slash bool) Option {
	return func(w *Writer) {
		w.ClosingSlash = slash
	}
}

// WithHTML configures the Writer for HTML5 output, where void elements are
// written without a closing slash:
//
//	w := tagwriter.Open(b, tagwriter.WithHTML())
func WithHTML() Option {
	return WithClosingSlash(false)
}

// WithWarnings writes a line to out for every diagnostic:
//
//	w := tagwriter.Open(b, tagwriter.WithWarnings(os.Stderr))
func WithWarnings(out io.Writer) Option {
	return func(w *Writer) {
		if out != nil {
			w.reporters = append(w.reporters, warningReporter{w: out})
		}
	}
}

// WithLogger logs every diagnostic at slog.LevelWarn.
func WithLogger(log *slog.Logger) Option {
	return func(w *Writer) {
		if log != nil {
			w.reporters = append(w.reporters, logReporter{log: log})
		}
	}
}

// WithReporter passes every diagnostic to r.
func WithReporter(r Reporter) Option {
	return func(w *Writer) {
		if r != nil {
			w.reporters = append(w.reporters, r)
		}
	}
}

// WithBufferSize sets the size of the Writer's output buffer.
func WithBufferSize(size int) Option {
	return func(w *Writer) {
		w.InitialBufSize = size
	}
}

func newWriter(w io.Writer, options ...Option) *Writer {
	xw := &Writer{}
	xw.stack = newTagStack()
	xw.ClosingSlash = true
	for _, o := range options {
		o(xw)
	}
	if xw.InitialBufSize <= 0 {
		xw.InitialBufSize = defaultBufsize
	}
	xw.printer = printer{Writer: bufio.NewWriterSize(w, xw.InitialBufSize)}
	return xw
}

// Open creates a Writer with an empty tag stack which writes UTF-8 to w.
func Open(w io.Writer, options ...Option) *Writer {
	return newWriter(w, options...)
}

// OpenEncoding opens the Writer using the supplied encoding.
//
// This example opens a writer producing windows-1252:
//
//	enc := charmap.Windows1252.NewEncoder()
//	w := tagwriter.OpenEncoding(b, enc)
//
// You should still write UTF-8 strings to the writer - they are converted
// on the fly to the target encoding. Characters the encoding can't represent
// are written as numeric character references.
func OpenEncoding(w io.Writer, encoder *encoding.Encoder, options ...Option) *Writer {
	enc := encoding.HTMLEscapeUnsupported(encoder).Writer(w)
	return newWriter(enc, options...)
}

// Depth returns the number of open elements.
func (w *Writer) Depth() int {
	return w.stack.len()
}

// Current returns the name of the innermost open element. ok is false if no
// element is open.
func (w *Writer) Current() (name string, ok bool) {
	return w.stack.peek()
}

// OpenTags returns the names of the open elements, innermost first.
func (w *Writer) OpenTags() []string {
	return w.stack.innermost()
}

// Flush ensures the output buffer accumulated inside the Writer is fully
// written to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.printer.Flush()
}

// Err returns the first error encountered writing to the underlying
// io.Writer, if any.
func (w *Writer) Err() error {
	return w.printer.cachedWriteError()
}

// Teardown finishes the document. If elements are still open, a single
// UnclosedTags diagnostic naming them innermost first is reported and they
// are forgotten; no closing tags are written. Output written before the call
// is flushed, and any write error encountered is returned.
//
// The Writer may be reused afterwards as if it had just been opened.
func (w *Writer) Teardown() error {
	if w.stack.len() > 0 {
		w.report(Diagnostic{Kind: UnclosedTags, Index: -1})
		w.stack.clear()
	}
	return w.printer.Flush()
}

func (w *Writer) report(d Diagnostic) {
	if len(w.reporters) == 0 {
		return
	}
	if d.Open == nil {
		d.Open = w.stack.innermost()
	}
	for _, r := range w.reporters {
		r.Report(d)
	}
}
