package tagwriter

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DiagnosticKind classifies a contract violation reported by the Writer.
type DiagnosticKind int

// Range of allowed DiagnosticKind values.
const (
	// StructuralNesting is raised when EndElem is called with a tag that is
	// not the innermost open tag, or EndIncluding runs out of open tags
	// without finding its target.
	StructuralNesting DiagnosticKind = iota

	// EmptyStack is raised when a tag is closed but nothing is open.
	EmptyStack

	// InvalidArgument is raised for a missing tag name or an attribute
	// without a name.
	InvalidArgument

	// UnclosedTags is raised by Teardown when tags were left open.
	UnclosedTags

	diagnosticKindLength int = iota
)

var diagnosticKindName = [diagnosticKindLength]string{
	StructuralNesting: "nesting",
	EmptyStack:        "empty-stack",
	InvalidArgument:   "argument",
	UnclosedTags:      "unclosed",
}

// Name returns a stable name for the DiagnosticKind, suitable for use as a
// metric label. If the kind is invalid, Name() will be empty.
func (k DiagnosticKind) Name() string {
	if k >= 0 && int(k) < diagnosticKindLength {
		return diagnosticKindName[k]
	}
	return ""
}

// String returns a human-readable representation of the DiagnosticKind.
func (k DiagnosticKind) String() string {
	s := k.Name()
	if s == "" {
		s = "<unknown>"
	}
	return fmt.Sprintf("%s(%d)", s, int(k))
}

// Diagnostic describes a request the Writer refused to carry out, or tags
// left open at Teardown. Diagnostics are never returned from Writer methods;
// they are handed to the sinks configured with WithWarnings, WithLogger and
// WithReporter.
type Diagnostic struct {
	Kind DiagnosticKind

	// Tag is the tag name the caller asked for, if any.
	Tag string

	// Open is a snapshot of the open tags at the time of the diagnostic,
	// innermost first.
	Open []string

	// Index of the offending attribute for InvalidArgument diagnostics
	// raised while writing attributes, otherwise -1.
	Index int

	// set when EndIncluding exhausted the stack
	exhausted bool
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	switch d.Kind {
	case StructuralNesting:
		if d.exhausted {
			return fmt.Sprintf("tagwriter: hit end of tag stack while searching for tag %s to close", d.Tag)
		}
		return fmt.Sprintf("tagwriter: refusing to close tag %s, unclosed tags remaining", d.Tag)
	case EmptyStack:
		return fmt.Sprintf("tagwriter: refusing to close tag %s, no tags left to be closed", d.Tag)
	case InvalidArgument:
		if d.Index >= 0 {
			return fmt.Sprintf("tagwriter: attribute %d of tag %s has no name", d.Index, d.Tag)
		}
		return "tagwriter: got no tag name"
	case UnclosedTags:
		return "tagwriter: unclosed tags remaining: " + strings.Join(d.Open, " ")
	}
	return fmt.Sprintf("tagwriter: %s", d.Kind)
}

// Reporter receives diagnostics from a Writer.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

// Report satisfies the Reporter interface.
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// warningReporter writes one line per diagnostic.
type warningReporter struct {
	w io.Writer
}

func (r warningReporter) Report(d Diagnostic) {
	io.WriteString(r.w, d.Error()+"\n")
}

type logReporter struct {
	log *slog.Logger
}

func (r logReporter) Report(d Diagnostic) {
	attrs := []any{slog.String("kind", d.Kind.Name())}
	if d.Tag != "" {
		attrs = append(attrs, slog.String("tag", d.Tag))
	}
	if len(d.Open) > 0 {
		attrs = append(attrs, slog.Any("open", d.Open))
	}
	if d.Index >= 0 {
		attrs = append(attrs, slog.Int("attr", d.Index))
	}
	r.log.Warn(d.Error(), attrs...)
}
