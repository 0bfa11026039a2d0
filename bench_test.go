package tagwriter

import (
	"encoding/xml"
	"io"
	"testing"
)

func BenchmarkWriterGeneral(b *testing.B) {
	for i := 0; i < b.N; i++ {
		w := Open(io.Discard)

		w.WriteRaw(`<?xml version="1.0" encoding="UTF-8"?>`)
		w.StartElem("foo")
		w.StartElem("bar", A("a", "true"))
		w.StartElem("baz")
		w.WriteEmpty("test", BareAttr("foo"))
		w.WriteEmpty("test")
		w.WriteEmpty("test")
		w.WriteEmpty("test")
		w.WriteEmpty("test")
		w.WriteElem("comment", "this is  a comment")
		w.WriteCData("pants pants revolution")
		w.EndElem("baz")
		w.EndAll()
		w.Teardown()
	}
}

type Outer struct {
	Name   string  `xml:"name,attr"`
	Inners []Inner `xml:"inner"`
}

type Inner struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

func makeStruct(cnt int) *Outer {
	names := []string{"foo", "bar", "baz", "qux", "pants", "trou"}
	values := []string{"yep", "nup", "wahey", "ding", "dong"}
	o := &Outer{Name: "hi", Inners: make([]Inner, cnt)}
	for i := 0; i < cnt; i++ {
		o.Inners[i] = Inner{Name: names[i%len(names)], Value: values[i%len(values)]}
	}
	return o
}

func BenchmarkWriterHuge(b *testing.B) {
	benchmarkWriter(b, 30000)
}

func BenchmarkWriterSmall(b *testing.B) {
	benchmarkWriter(b, 10)
}

func BenchmarkEncodingXMLHuge(b *testing.B) {
	benchmarkEncodingXML(b, 30000)
}

func BenchmarkEncodingXMLSmall(b *testing.B) {
	benchmarkEncodingXML(b, 10)
}

func benchmarkWriter(b *testing.B, cnt int) {
	o := makeStruct(cnt)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := Open(io.Discard)
		w.StartElem("outer", A("name", o.Name))
		for _, inner := range o.Inners {
			w.WriteEmpty("inner", A("name", inner.Name), A("value", inner.Value))
		}
		w.EndElem("outer")
		w.Teardown()
	}
}

func benchmarkEncodingXML(b *testing.B, cnt int) {
	o := makeStruct(cnt)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		enc := xml.NewEncoder(io.Discard)
		if err := enc.Encode(o); err != nil {
			b.Fatal(err)
		}
	}
}
