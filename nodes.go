package tagwriter

// WriteText writes text with the XML metacharacters escaped. See
// EscapeString for the exact rules.
func (w *Writer) WriteText(text string) {
	w.printer.escapeString(text)
}

// WriteRaw writes a raw string to the output. This can be any string
// whatsoever - it does not have to be valid XML and will be written exactly as
// it is declared. Use it for trusted, pre-rendered markup and for the inside
// of CDATA sections.
func (w *Writer) WriteRaw(raw string) {
	w.printer.WriteString(raw)
}

// StartCData writes the "<![CDATA[" marker. Content must be written with
// WriteRaw; CDATA sections are not tracked on the stack.
func (w *Writer) StartCData() {
	w.printer.WriteString("<![CDATA[")
}

// EndCData writes the "]]>" marker.
func (w *Writer) EndCData() {
	w.printer.WriteString("]]>")
}

// WriteCData writes a complete CDATA section. content is written as is, so
// it must not contain "]]>".
func (w *Writer) WriteCData(content string) {
	w.StartCData()
	w.WriteRaw(content)
	w.EndCData()
}
