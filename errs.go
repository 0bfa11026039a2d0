package tagwriter

import (
	"errors"
	"fmt"
)

/*
Collector is a Reporter which holds on to every diagnostic it receives, so
that code which generates a document can turn a misuse of the Writer into an
error after the fact rather than checking after every call.

The Writer never stops writing because of a diagnostic, so a procedure can
run to the end and then decide what to do:

	func page(out io.Writer) (err error) {
		dc := &tagwriter.Collector{}
		defer dc.Set(&err)

		w := tagwriter.Open(out, tagwriter.WithReporter(dc), tagwriter.WithHTML())
		defer w.Teardown()

		w.StartElem("html")
		w.StartElem("body")
		w.EndElem("html") // refused: body is still open
		w.EndAll()
		return
	}

If you want to panic instead, substitute `defer dc.Set(&err)` with `defer
dc.Panic()`.
*/
type Collector struct {
	Diagnostics []Diagnostic
}

// Report satisfies the Reporter interface.
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int { return len(c.Diagnostics) }

// Count returns the number of collected diagnostics of the given kind.
func (c *Collector) Count(kind DiagnosticKind) int {
	n := 0
	for _, d := range c.Diagnostics {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// Reset discards all collected diagnostics.
func (c *Collector) Reset() {
	c.Diagnostics = c.Diagnostics[:0]
}

// Err returns nil if nothing was collected. Otherwise it returns an error
// wrapping every diagnostic; errors.As can be used to retrieve them.
func (c *Collector) Err() error {
	if len(c.Diagnostics) == 0 {
		return nil
	}
	return &CollectedError{Diagnostics: append([]Diagnostic(nil), c.Diagnostics...)}
}

// Set assigns the collector's error to an external error variable, unless
// that variable already holds an error.
//
// This should be called in a defer with a named return:
//
//	func feed() (err error) {
//		dc := &tagwriter.Collector{}
//		defer dc.Set(&err)
//		...
//	}
func (c *Collector) Set(err *error) {
	if *err != nil {
		return
	}
	if cerr := c.Err(); cerr != nil {
		*err = cerr
	}
}

// Panic causes the collector to panic if any diagnostic has been collected.
func (c *Collector) Panic() {
	if err := c.Err(); err != nil {
		panic(err)
	}
}

// CollectedError is returned by Collector.Err.
type CollectedError struct {
	Diagnostics []Diagnostic
}

// Error implements the error interface.
func (e *CollectedError) Error() string {
	if len(e.Diagnostics) == 1 {
		return e.Diagnostics[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", e.Diagnostics[0].Error(), len(e.Diagnostics)-1)
}

// Unwrap allows errors.Is and errors.As to inspect each diagnostic.
func (e *CollectedError) Unwrap() []error {
	errs := make([]error, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		errs[i] = d
	}
	return errs
}

// IsKind reports whether err is, or wraps, a Diagnostic of the given kind.
func IsKind(err error, kind DiagnosticKind) bool {
	var d Diagnostic
	if errors.As(err, &d) && d.Kind == kind {
		return true
	}
	var ce *CollectedError
	if errors.As(err, &ce) {
		for _, d := range ce.Diagnostics {
			if d.Kind == kind {
				return true
			}
		}
	}
	return false
}
