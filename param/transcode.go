package param

import (
	"mime"
	"strings"
)

// Encode transforms a string into a MIME encoded-word. It will always output
// b-type (base64) encoding using utf-8 as the character set.
func Encode(s string) string {
	return mime.BEncoding.Encode("utf-8", s)
}

// Decode looks for MIME encoded-words in the given string and decodes them
// into native unicode using the package CharsetDecoder. A string containing
// no encoded-words comes back unchanged.
func Decode(s string) (string, error) {
	dec := &mime.WordDecoder{
		CharsetReader: CharsetDecoderToCharsetReader(CharsetDecoder),
	}

	if strings.Contains(s, "=?") {
		return dec.DecodeHeader(s)
	}

	return s, nil
}

// decodeWords runs the MIME encoded-word decoder over a parameter value.
// Producers that stuff encoded-words into quoted parameter values predate RFC
// 2231 and never went away, so every plain value that looks like it holds one
// gets a decode attempt. Failure keeps the raw value: an undecodable
// encoded-word is still a perfectly good opaque string, unlike an extended
// value whose bytes are known to be in some other charset.
func decodeWords(v string, dec Decoder) string {
	if !strings.Contains(v, "=?") {
		return v
	}

	wd := &mime.WordDecoder{
		CharsetReader: CharsetDecoderToCharsetReader(dec),
	}
	s, err := wd.DecodeHeader(v)
	if err != nil {
		return v
	}
	return s
}
