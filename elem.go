package tagwriter

// StartElem writes an opening tag with the given attributes and pushes the
// element onto the stack:
//
//	w.StartElem("html", tagwriter.A("lang", "en"))
//	// <html lang="en">
//
// Attribute values are escaped, names are not. If an attribute has no name,
// it and all following attributes are dropped and an InvalidArgument
// diagnostic is reported; the tag itself is still written and pushed.
func (w *Writer) StartElem(name string, attrs ...Attr) {
	if name == "" {
		w.report(Diagnostic{Kind: InvalidArgument, Index: -1})
		return
	}
	w.printer.WriteByte('<')
	w.printer.WriteString(name)
	w.writeAttrs(name, attrs)
	w.printer.WriteByte('>')
	w.stack.push(name)
}

// WriteEmpty writes an element which has no children and needs no closing
// tag, like "<br/>". The slash is only written if ClosingSlash is set.
// The stack is not touched.
func (w *Writer) WriteEmpty(name string, attrs ...Attr) {
	if name == "" {
		w.report(Diagnostic{Kind: InvalidArgument, Index: -1})
		return
	}
	w.printer.WriteByte('<')
	w.printer.WriteString(name)
	w.writeAttrs(name, attrs)
	if w.ClosingSlash {
		w.printer.WriteString("/>")
	} else {
		w.printer.WriteByte('>')
	}
}

// WriteElem writes a complete element containing escaped text:
//
//	w.WriteElem("title", "Fish & Chips")
//	// <title>Fish &amp; Chips</title>
func (w *Writer) WriteElem(name string, text string, attrs ...Attr) {
	if name == "" {
		w.report(Diagnostic{Kind: InvalidArgument, Index: -1})
		return
	}
	w.StartElem(name, attrs...)
	w.WriteText(text)
	w.EndElem(name)
}

func (w *Writer) writeAttrs(name string, attrs []Attr) {
	if len(attrs) == 0 {
		return
	}
	if bad := w.printer.printAttrs(attrs); bad >= 0 {
		w.report(Diagnostic{Kind: InvalidArgument, Tag: name, Index: bad})
	}
}

// EndElem writes the closing tag for name if, and only if, name is the
// innermost open element.
//
// If nothing is open, or another element is open inside name, nothing is
// written, the stack is left as it is and an EmptyStack or StructuralNesting
// diagnostic is reported. EndElem therefore never writes a closing tag that
// breaks the nesting of the document, though it can't stop elements from
// being left open, and it will always blame the close even when the real
// mistake was a missing StartElem.
func (w *Writer) EndElem(name string) {
	if name == "" {
		w.report(Diagnostic{Kind: InvalidArgument, Index: -1})
		return
	}
	current, ok := w.stack.peek()
	if !ok {
		w.report(Diagnostic{Kind: EmptyStack, Tag: name, Index: -1})
		return
	}
	if current != name {
		w.report(Diagnostic{Kind: StructuralNesting, Tag: name, Index: -1})
		return
	}
	w.writeEnd(w.stack.pop())
}

// EndAll closes every open element, innermost first. It does nothing if no
// element is open.
func (w *Writer) EndAll() {
	for w.stack.len() > 0 {
		w.writeEnd(w.stack.pop())
	}
}

// EndAllFlush closes every open element and calls Flush().
func (w *Writer) EndAllFlush() error {
	w.EndAll()
	return w.Flush()
}

// EndIncluding closes open elements, innermost first, until an element
// called name has been closed.
//
// The search stops at the first match, so if elements with the same name
// are nested, only the innermost one is closed:
//
//	w.StartElem("a")
//	w.StartElem("b")
//	w.StartElem("a")
//	w.StartElem("c")
//	w.EndIncluding("a")
//	// <a><b><a><c></c></a>
//
// If no element called name is open, every element is closed and a
// StructuralNesting diagnostic is reported. If nothing is open at all, an
// EmptyStack diagnostic is reported.
func (w *Writer) EndIncluding(name string) {
	if name == "" {
		w.report(Diagnostic{Kind: InvalidArgument, Index: -1})
		return
	}
	if w.stack.len() == 0 {
		w.report(Diagnostic{Kind: EmptyStack, Tag: name, Index: -1})
		return
	}
	for w.stack.len() > 0 {
		current := w.stack.pop()
		w.writeEnd(current)
		if current == name {
			return
		}
	}
	w.report(Diagnostic{Kind: StructuralNesting, Tag: name, Index: -1, exhausted: true})
}

func (w *Writer) writeEnd(name string) {
	w.printer.WriteString("</")
	w.printer.WriteString(name)
	w.printer.WriteByte('>')
}
