package param

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Encoder represents the character encoding function used when writing
// parameter values out in a declared character set, such as when building an
// RFC 2231 extended value. If the target charset is not supported, bytes
// should be returned as nil and an error should be returned.
type Encoder func(charset, s string) ([]byte, error)

// Decoder represents the character decoding function used to transform the
// raw bytes of an RFC 2231 extended value (or the innards of a MIME
// encoded-word) into native unicode. Any byte invalid for the source
// character encoding should become unicode.ReplacementChar rather than an
// error.
//
// If the source charset is not supported, an error should be returned. The
// parser surfaces that error to its caller instead of degrading, because
// returning still-encoded bytes as if they were text would corrupt values
// such as file names.
type Decoder func(charset string, b []byte) (string, error)

var (
	// CharsetEncoder is the Encoder used when a parameter value has to be
	// written in a particular character set. You may replace this with a
	// custom encoder, or to gain support for a wide variety of encodings,
	// blank import the encoding subpackage:
	//  import _ "github.com/go-mime/headerparams/param/encoding"
	CharsetEncoder Encoder = DefaultCharsetEncoder

	// CharsetDecoder is the Decoder used to turn the encoded bytes of
	// extended parameter values into unicode. You may replace this with a
	// custom decoder, or to gain support for a wide variety of encodings,
	// blank import the encoding subpackage:
	//  import _ "github.com/go-mime/headerparams/param/encoding"
	CharsetDecoder Decoder = DefaultCharsetDecoder
)

// DefaultCharsetEncoder is the default encoder. It is able to handle
// us-ascii, iso-8859-1 (a.k.a. latin1), and utf-8 only. Anything else will
// result in an error.
//
// When outputting us-ascii, any character present that does not fit in
// us-ascii will be replaced with "\x1a", the ASCII SUB character.
func DefaultCharsetEncoder(charset, s string) ([]byte, error) {
	switch strings.ToLower(charset) {
	case "us-ascii", "":
		var buf strings.Builder
		for _, c := range s {
			if c > unicode.MaxASCII {
				buf.WriteByte('\x1a') // ASCII substitution char
			} else {
				buf.WriteRune(c)
			}
		}
		return []byte(buf.String()), nil
	case "iso-8859-1", "latin1", "utf-8":
		return []byte(s), nil
	default:
		return nil, fmt.Errorf("unsupported byte encoding %q", charset)
	}
}

// DefaultCharsetDecoder is the default decoder. It is able to handle
// us-ascii, iso-8859-1 (a.k.a. latin1), and utf-8 only. Anything else will
// result in an error. Charset names are matched case-insensitively.
//
// When us-ascii is input, any 8-bit byte (i.e., bytes greater than 0x7f) will
// be translated into unicode.ReplacementChar. When utf-8 is input, invalid
// byte sequences come through as unicode.ReplacementChar as well.
func DefaultCharsetDecoder(charset string, b []byte) (string, error) {
	switch strings.ToLower(charset) {
	case "us-ascii", "":
		var s strings.Builder
		for _, c := range b {
			if c > unicode.MaxASCII {
				s.WriteRune(unicode.ReplacementChar)
			} else {
				s.WriteByte(c)
			}
		}
		return s.String(), nil
	case "iso-8859-1", "latin1":
		var s strings.Builder
		for _, c := range b {
			s.WriteRune(rune(c))
		}
		return s.String(), nil
	case "utf-8":
		var s strings.Builder
		for len(b) > 0 {
			r, size := utf8.DecodeRune(b)
			s.WriteRune(r)
			b = b[size:]
		}
		return s.String(), nil
	default:
		return "", fmt.Errorf("unsupported byte encoding %q", charset)
	}
}

// CharsetDecoderToCharsetReader transforms a Decoder defined here into the
// interface used by mime.WordDecoder.
func CharsetDecoderToCharsetReader(decode Decoder) func(string, io.Reader) (io.Reader, error) {
	return func(charset string, r io.Reader) (io.Reader, error) {
		bs, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		s, err := decode(charset, bs)
		if err != nil {
			return nil, err
		}

		return strings.NewReader(s), nil
	}
}
