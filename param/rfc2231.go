package param

import (
	"fmt"
	"strings"
)

// decodeExtended decodes an RFC 2231 extended parameter value of the form
// charset'lang'percent-bytes. The boolean result is false when the value does
// not follow that shape (fewer than two single quotes), in which case the
// caller keeps the raw value. Producers that hang a bare "*" on a parameter
// name without meaning RFC 2231 by it are common enough that this cannot be
// an error.
//
// An error is only returned when the named charset has no decoder.
func decodeExtended(v string, decode Decoder) (string, bool, error) {
	charset, rest, ok := strings.Cut(v, "'")
	if !ok {
		return "", false, nil
	}
	_, data, ok := strings.Cut(rest, "'")
	if !ok {
		return "", false, nil
	}

	// The middle field is a language tag and carries no bytes to decode, so
	// it is dropped here. Further single quotes belong to the data.
	text, err := decode(charset, percentDecode(data))
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

// percentDecode turns %XX triplets into raw bytes. Anything that is not a
// well-formed triplet, including a dangling "%", passes through as a literal
// byte.
func percentDecode(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if ok1 && ok2 {
				out = append(out, hi<<4|lo)
				i += 2
				continue
			}
		}
		out = append(out, s[i])
	}
	return out
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// EncodeExtended performs the inverse of the decoding the parser applies to
// extended parameters: text is converted into the given charset and every
// byte outside the RFC 5987 attr-char set is percent-encoded, producing a
// charset'lang'percent-bytes value suitable for a name ending in "*". The
// lang field may be empty.
//
// The conversion into charset is done by the configured CharsetEncoder, so
// writing exotic charsets requires the encoding subpackage.
func EncodeExtended(charset, lang, text string) (string, error) {
	b, err := CharsetEncoder(charset, text)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(charset) + len(lang) + 2 + 3*len(b))
	sb.WriteString(charset)
	sb.WriteByte('\'')
	sb.WriteString(lang)
	sb.WriteByte('\'')
	for _, c := range b {
		if isAttrChar(c) {
			sb.WriteByte(c)
		} else {
			fmt.Fprintf(&sb, "%%%02X", c)
		}
	}
	return sb.String(), nil
}

// attr-char from RFC 5987 section 3.2.1.
func isAttrChar(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		strings.IndexByte("!#$&+-.^_`|~", c) >= 0
}
