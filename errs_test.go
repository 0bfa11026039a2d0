package tagwriter

import (
	"errors"
	"fmt"
	"testing"

	tt "github.com/sternenseemann/tagwriter/testtool"
)

func TestCollectorSet(t *testing.T) {
	dc := &Collector{}
	result := func() (err error) {
		defer dc.Set(&err)
		w := openNull(WithReporter(dc))
		w.StartElem("a")
		w.EndElem("b")
		return
	}()
	tt.Assert(t, result != nil)
	tt.Assert(t, IsKind(result, StructuralNesting))
	tt.Assert(t, !IsKind(result, EmptyStack))
	tt.Equals(t, "tagwriter: refusing to close tag b, unclosed tags remaining", result.Error())
}

func TestCollectorSetOK(t *testing.T) {
	dc := &Collector{}
	result := func() (err error) {
		defer dc.Set(&err)
		w := openNull(WithReporter(dc))
		w.StartElem("a")
		w.EndElem("a")
		return
	}()
	tt.Equals(t, nil, result)
}

func TestCollectorSetKeepsExisting(t *testing.T) {
	in := fmt.Errorf("yep")
	dc := &Collector{}
	result := func() (err error) {
		defer dc.Set(&err)
		dc.Report(Diagnostic{Kind: EmptyStack, Tag: "a", Index: -1})
		return in
	}()
	tt.Assert(t, result == in)
}

func TestCollectorMultiple(t *testing.T) {
	dc := &Collector{}
	w := openNull(WithReporter(dc))
	w.EndElem("a")
	w.StartElem("b")
	w.EndElem("c")
	tt.OK(t, w.Teardown())

	tt.Equals(t, 3, dc.Len())
	tt.Equals(t, 1, dc.Count(EmptyStack))
	tt.Equals(t, 1, dc.Count(StructuralNesting))
	tt.Equals(t, 1, dc.Count(UnclosedTags))

	err := dc.Err()
	tt.Equals(t, "tagwriter: refusing to close tag a, no tags left to be closed (and 2 more)", err.Error())
	tt.Assert(t, IsKind(err, UnclosedTags))

	var d Diagnostic
	tt.Assert(t, errors.As(err, &d))
	tt.Equals(t, EmptyStack, d.Kind)

	dc.Reset()
	tt.Equals(t, 0, dc.Len())
	tt.OK(t, dc.Err())
}

func TestCollectorPanic(t *testing.T) {
	dc := &Collector{}
	result := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = r.(error)
			}
		}()
		func() {
			defer dc.Panic()
			openNull(WithReporter(dc)).EndElem("a")
		}()
		return
	}()
	tt.Assert(t, IsKind(result, EmptyStack))
}

func TestDiagnosticKindName(t *testing.T) {
	tt.Equals(t, "nesting", StructuralNesting.Name())
	tt.Equals(t, "empty-stack", EmptyStack.Name())
	tt.Equals(t, "argument", InvalidArgument.Name())
	tt.Equals(t, "unclosed", UnclosedTags.Name())
	tt.Equals(t, "", DiagnosticKind(99).Name())
	tt.Equals(t, "", DiagnosticKind(-1).Name())
	tt.Equals(t, "nesting(0)", StructuralNesting.String())
	tt.Equals(t, "<unknown>(99)", DiagnosticKind(99).String())
}
