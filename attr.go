package tagwriter

import "strconv"

// Attr is a single attribute written inside an element's opening tag.
//
// Name is written exactly as given; Value is escaped. If Bare is set the
// attribute is written without a value, which is how HTML boolean attributes
// like "async" or "checked" are expressed.
type Attr struct {
	Name  string
	Value string
	Bare  bool
}

// A is shorthand for Attr{Name: name, Value: value}.
func A(name, value string) Attr { return Attr{Name: name, Value: value} }

// BareAttr returns a valueless attribute.
func BareAttr(name string) Attr { return Attr{Name: name, Bare: true} }

func (a Attr) Bool(v bool) Attr     { a.Value = strconv.FormatBool(v); a.Bare = false; return a }
func (a Attr) Int(v int) Attr       { a.Value = strconv.FormatInt(int64(v), 10); a.Bare = false; return a }
func (a Attr) Int64(v int64) Attr   { a.Value = strconv.FormatInt(v, 10); a.Bare = false; return a }
func (a Attr) Uint(v uint) Attr     { a.Value = strconv.FormatUint(uint64(v), 10); a.Bare = false; return a }
func (a Attr) Uint64(v uint64) Attr { a.Value = strconv.FormatUint(v, 10); a.Bare = false; return a }
func (a Attr) Float32(v float32) Attr {
	a.Value = strconv.FormatFloat(float64(v), 'g', -1, 32)
	a.Bare = false
	return a
}
func (a Attr) Float64(v float64) Attr {
	a.Value = strconv.FormatFloat(v, 'g', -1, 64)
	a.Bare = false
	return a
}
