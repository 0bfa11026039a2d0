package tagwriter

import (
	"bytes"
	"io"
)

type DodgyWriter struct {
	writer     io.Writer
	shouldFail func(b []byte) (fail bool, len int, err error)
}

func (d *DodgyWriter) Write(b []byte) (len int, err error) {
	if fail, len, err := d.shouldFail(b); fail {
		return len, err
	}
	return d.writer.Write(b)
}

func open(o ...Option) (*bytes.Buffer, *Writer) {
	b := &bytes.Buffer{}
	w := Open(b, o...)
	return b, w
}

// openCollect opens a Writer which reports to a fresh Collector.
func openCollect(o ...Option) (*bytes.Buffer, *Writer, *Collector) {
	dc := &Collector{}
	b, w := open(append(o, WithReporter(dc))...)
	return b, w, dc
}

func openNull(o ...Option) *Writer {
	return Open(io.Discard, o...)
}

func str(b *bytes.Buffer, w *Writer) string {
	must(w.Flush())
	return b.String()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
