package param

import (
	"sort"
	"strings"
)

const (
	// Charset is the name of the charset parameter that may be present in the
	// Content-type header.
	Charset = "charset"

	// Boundary is the name of the boundary parameter that may be present in
	// the Content-type header.
	Boundary = "boundary"

	// Filename is the name of the filename parameter that may be present in
	// the Content-disposition header.
	Filename = "filename"
)

// Value represents a parsed parameterized header field body, such as is used
// in the Content-type and Content-disposition headers. A Value object is
// immutable: you cannot change it in place. However, a Modify() function is
// provided to perform transformation of a Value into a new Value.
type Value struct {
	v  string
	ps *List
}

// ParseValue takes a parameterized header field body, parses it as a Value
// and returns it. The primary value is whatever precedes the first top-level
// semicolon; the rest is parsed as a semicolon-delimited parameter list with
// names folded to lower case, so parameter lookup is case-insensitive.
//
// The only error this can return is a failure to decode an RFC 2231 extended
// parameter, as described on Parser.Parse.
func ParseValue(v string) (*Value, error) {
	s := newScanner(v, []rune{';'})
	s.scan()
	primary := strings.TrimSpace(s.text())

	ps, err := Parser{LowerCaseNames: true}.Parse(v[s.pos:], ';')
	if err != nil {
		return nil, err
	}

	return &Value{primary, ps}, nil
}

// New creates a new parameterized header field body with the given primary
// value. Parameters may be supplied as one or more maps, which are flattened
// into a single parameter list with the names sorted.
func New(v string, ps ...map[string]string) *Value {
	l := newList()
	for _, m := range ps {
		ks := make([]string, 0, len(m))
		for k := range m {
			ks = append(ks, k)
		}
		sort.Strings(ks)
		for _, k := range ks {
			l.set(k, m[k])
		}
	}
	return &Value{v, l}
}

// Modifier is a modification to apply to a Value when calling the Modify()
// function.
type Modifier func(*Value)

// Change is a Modifier that replaces the primary value of the Value.
func Change(value string) Modifier {
	return func(pv *Value) {
		pv.v = value
	}
}

// Set is a Modifier that sets a parameter with the given name on the Value.
func Set(name, value string) Modifier {
	return func(pv *Value) {
		pv.ps.set(name, value)
	}
}

// Delete is a Modifier that removes the parameter with the given name from
// the Value.
func Delete(name string) Modifier {
	return func(pv *Value) {
		pv.ps.del(name)
	}
}

// Modify clones a Value, applies the given modifications (if any) and returns
// the new Value. You can pass multiple changes to this function:
//
//	v, _ := param.ParseValue("multipart/mixed; boundary=abc123; charset=latin1")
//	nv := param.Modify(v, param.Change("multipart/alternative"), param.Set("charset", "utf-8"))
func Modify(pv *Value, changes ...Modifier) *Value {
	copy := pv.Clone()
	for _, change := range changes {
		change(copy)
	}
	return copy
}

// Value returns the primary value of the Value. This is the value before the
// first semicolon.
func (pv *Value) Value() string {
	return pv.v
}

// Disposition is a synonym for Value() and returns the Content-disposition,
// either "inline" or "attachment".
func (pv *Value) Disposition() string {
	return pv.v
}

// MediaType is a synonym for Value() and returns the Content-type value,
// e.g., "text/html", "image/jpeg", "multipart/mixed", etc.
func (pv *Value) MediaType() string {
	return pv.v
}

// Type is only intended for use with the Content-type header. It searches the
// MediaType() for a slash. If found, it will return the string before that
// slash. If no slash is found, it returns an empty string.
//
// For example, if MediaType() returns "image/jpeg", this method will return
// "image".
func (pv *Value) Type() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[:ix]
	}
	return ""
}

// Subtype is only intended for use with the Content-type header. It searches
// the MediaType() for a slash. If found, it will return the string after that
// slash. If no slash is found, it returns an empty string.
//
// For example, if MediaType() returns "text/html", this method will return
// "html".
func (pv *Value) Subtype() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[ix+1:]
	}
	return ""
}

// List returns the parameters of this Value in source order, including the
// distinction between valueless parameters and parameters with empty values.
func (pv *Value) List() *List {
	return pv.ps
}

// Parameters returns the parameters encoded on this Value as a map. The map
// is a copy and safe to modify. A parameter present without a value appears
// with an empty string.
func (pv *Value) Parameters() map[string]string {
	return pv.ps.Map()
}

// Parameter returns the value of the parameter with the given name.
func (pv *Value) Parameter(k string) string {
	v, _ := pv.ps.Get(k)
	return v
}

// Filename returns the value of the "filename" parameter. It is intended for
// use with the Content-disposition header.
func (pv *Value) Filename() string {
	return pv.Parameter(Filename)
}

// Charset returns the value of the "charset" parameter. It is intended for
// use with the Content-type header.
func (pv *Value) Charset() string {
	return pv.Parameter(Charset)
}

// Boundary returns the value of the "boundary" parameter. It is intended for
// use with the Content-type header.
func (pv *Value) Boundary() string {
	return pv.Parameter(Boundary)
}

// String returns the serialized value of the Value including the primary
// value and all parameters, with the parameters in sorted name order. Values
// that cannot be written bare are quoted with backslash escaping, and values
// containing non-ASCII text are written as RFC 2231 extended parameters.
func (pv *Value) String() string {
	parts := make([]string, 0, pv.ps.Len()+1)
	parts = append(parts, pv.v)

	ps := make([]Param, len(pv.ps.params))
	copy(ps, pv.ps.params)
	sort.Slice(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })

	for _, p := range ps {
		parts = append(parts, formatParam(p))
	}

	return strings.Join(parts, "; ")
}

// Bytes returns the serialized value of the Value including the primary value
// and all parameters.
func (pv *Value) Bytes() []byte {
	return []byte(pv.String())
}

// Clone returns a deep copy of the Value.
func (pv *Value) Clone() *Value {
	return &Value{pv.v, pv.ps.clone()}
}

// formatParam writes one parameter back out. The choice of form depends on
// the value: a plain token is written bare, non-ASCII text becomes an RFC
// 2231 extended parameter, and anything else is quoted.
func formatParam(p Param) string {
	switch {
	case !p.HasValue:
		return p.Name
	case isToken(p.Value):
		return p.Name + "=" + p.Value
	case !isASCII(p.Value):
		if ev, err := EncodeExtended("UTF-8", "", p.Value); err == nil {
			return p.Name + "*=" + ev
		}
		fallthrough
	default:
		return p.Name + "=" + quote(p.Value)
	}
}

// quote wraps a value in double quotes, protecting any quote or backslash
// characters inside it.
func quote(v string) string {
	var sb strings.Builder
	sb.Grow(len(v) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(v); i++ {
		if v[i] == '"' || v[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(v[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// isToken reports whether the value consists only of RFC 2045 token
// characters and may be written without quoting.
func isToken(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c <= ' ' || c > '~' || strings.IndexByte("()<>@,;:\\\"/[]?=", c) >= 0 {
			return false
		}
	}
	return true
}

func isASCII(v string) bool {
	for i := 0; i < len(v); i++ {
		if v[i] > '\x7f' {
			return false
		}
	}
	return true
}
