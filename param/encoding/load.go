// Package encoding provides a replacement encoder and decoder for use with
// param.CharsetEncoder and param.CharsetDecoder. This loads all the encodings
// provided with:
//
// * golang.org/x/text/encoding/ianaindex
//
// This will make the size of your compiled binaries considerably larger. But
// it will also give your code the ability to encode and decode pretty much
// any character set it might encounter in the wild wild world of header
// values.
package encoding

import (
	"fmt"

	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/go-mime/headerparams/param"
)

func init() {
	param.CharsetEncoder = CharsetEncoder
	param.CharsetDecoder = CharsetDecoder
}

// CharsetEncoder provides a replacement encoder for param.CharsetEncoder,
// which can encode a wide range of rare and unusual character sets.
func CharsetEncoder(charset, s string) ([]byte, error) {
	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return nil, err
	}

	if e == nil {
		return nil, fmt.Errorf("no encoding found for charset %q", charset)
	}

	es, err := e.NewEncoder().String(s)
	if err != nil {
		return nil, err
	}

	return []byte(es), nil
}

// CharsetDecoder provides a replacement decoder for param.CharsetDecoder,
// which can decode a wide range of rare and unusual character sets.
func CharsetDecoder(charset string, b []byte) (string, error) {
	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return "", err
	}

	if e == nil {
		return "", fmt.Errorf("no encoding found for charset %q", charset)
	}

	eb, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}

	return string(eb), nil
}
