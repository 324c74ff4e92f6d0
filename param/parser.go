package param

import (
	"fmt"
	"strings"
)

// Param is a single parameter extracted from a parameter list. A parameter
// that appeared without any value, or whose value trimmed away to nothing,
// has HasValue unset.
type Param struct {
	Name     string
	Value    string
	HasValue bool
}

// List is the ordered result of parsing a parameter list. Parameters are kept
// in source order and names are unique: when a producer repeats a name, the
// first occurrence wins and the rest are dropped.
type List struct {
	params []Param
	index  map[string]int
}

func newList() *List {
	return &List{index: map[string]int{}}
}

// add inserts a parameter unless one with the same name is already present.
func (l *List) add(p Param) {
	if _, ok := l.index[p.Name]; ok {
		return
	}
	l.index[p.Name] = len(l.params)
	l.params = append(l.params, p)
}

// set inserts a parameter or replaces the value of an existing one in place.
func (l *List) set(name, value string) {
	if i, ok := l.index[name]; ok {
		l.params[i].Value = value
		l.params[i].HasValue = true
		return
	}
	l.add(Param{Name: name, Value: value, HasValue: true})
}

// del removes the named parameter, closing the gap it leaves in the order.
func (l *List) del(name string) {
	i, ok := l.index[name]
	if !ok {
		return
	}
	l.params = append(l.params[:i], l.params[i+1:]...)
	delete(l.index, name)
	for n, j := range l.index {
		if j > i {
			l.index[n] = j - 1
		}
	}
}

func (l *List) clone() *List {
	c := &List{
		params: make([]Param, len(l.params)),
		index:  make(map[string]int, len(l.index)),
	}
	copy(c.params, l.params)
	for n, i := range l.index {
		c.index[n] = i
	}
	return c
}

// Len returns the number of parameters in the list.
func (l *List) Len() int {
	return len(l.params)
}

// Has reports whether a parameter with the given name is present, whether or
// not it carries a value.
func (l *List) Has(name string) bool {
	_, ok := l.index[name]
	return ok
}

// Get returns the value of the named parameter. The boolean is false both
// when the name is missing entirely and when it is present without a value.
// Use Lookup to tell those two cases apart.
func (l *List) Get(name string) (string, bool) {
	if i, ok := l.index[name]; ok {
		return l.params[i].Value, l.params[i].HasValue
	}
	return "", false
}

// Lookup returns the named parameter and whether it is present at all.
func (l *List) Lookup(name string) (Param, bool) {
	if i, ok := l.index[name]; ok {
		return l.params[i], true
	}
	return Param{}, false
}

// Params returns the parameters in source order. Do not modify the returned
// slice.
func (l *List) Params() []Param {
	return l.params
}

// Map returns the parameters as a plain map, losing order and the distinction
// between a valueless parameter and one with an empty value. The returned map
// is a copy and safe to modify.
func (l *List) Map() map[string]string {
	m := make(map[string]string, len(l.params))
	for _, p := range l.params {
		m[p.Name] = p.Value
	}
	return m
}

// Parser holds the configuration for parsing parameter lists. The zero value
// is ready to use. A Parser is passed around by value, so every call to Parse
// works from its own configuration snapshot and a single Parser may be shared
// freely between goroutines.
type Parser struct {
	// LowerCaseNames folds every parameter name to lower case before it is
	// stored, allowing case-insensitive retrieval of names such as "charset".
	LowerCaseNames bool

	// KeepEncodedWords disables the MIME encoded-word pass over parameter
	// values, storing text such as "=?utf-8?B?...?=" verbatim instead of
	// decoding it.
	KeepEncodedWords bool

	// CharsetDecoder, when set, overrides the package-level CharsetDecoder
	// for values parsed by this Parser.
	CharsetDecoder Decoder
}

// Parse splits the input into name=value parameters on the given delimiters
// and returns them in source order. A delimiter inside a double-quoted span,
// or directly behind a backslash, does not split. Calling Parse with no
// delimiters at all is allowed and treats the whole input as one parameter.
//
// Parsing is deliberately forgiving: tokens that carry no usable name are
// dropped, a parameter with no "=" (or with nothing after it) is recorded as
// present without a value, and a dangling quote runs to the end of the input.
// The only error Parse can return is the failure to decode an RFC 2231
// extended value, which happens when its declared charset is unknown to the
// configured Decoder.
func (p Parser) Parse(input string, delims ...rune) (*List, error) {
	ps := newList()
	s := newScanner(input, delims)
	for s.scan() {
		name, value, hasValue := splitToken(s.text())
		if name == "" {
			continue
		}
		if p.LowerCaseNames {
			name = strings.ToLower(name)
		}

		switch {
		case hasValue && strings.HasSuffix(name, "*"):
			decoded, ok, err := decodeExtended(value, p.decoder())
			if err != nil {
				return nil, fmt.Errorf("decoding parameter %q: %w", name, err)
			}
			if ok {
				name = strings.TrimSuffix(name, "*")
				value = decoded
			}
		case hasValue && !p.KeepEncodedWords:
			value = decodeWords(value, p.decoder())
		}

		ps.add(Param{Name: name, Value: value, HasValue: hasValue})
	}
	return ps, nil
}

func (p Parser) decoder() Decoder {
	if p.CharsetDecoder != nil {
		return p.CharsetDecoder
	}
	return CharsetDecoder
}

// Parse parses a parameter list with the zero Parser configuration.
func Parse(input string, delims ...rune) (*List, error) {
	return Parser{}.Parse(input, delims...)
}

// splitToken breaks one raw token into a trimmed name and an optional
// unquoted value. An empty name means the token carried nothing usable and
// must be dropped. A value that trims or unquotes away to nothing is treated
// as absent rather than empty.
func splitToken(tok string) (name, value string, hasValue bool) {
	eq := indexUnquotedEquals(tok)
	if eq < 0 {
		return strings.TrimSpace(tok), "", false
	}

	name = strings.TrimSpace(tok[:eq])
	value = unquote(strings.TrimSpace(tok[eq+1:]))
	if value == "" {
		return name, "", false
	}
	return name, value, true
}
