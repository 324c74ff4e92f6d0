package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mime/headerparams/param"
	_ "github.com/go-mime/headerparams/param/encoding"
)

func TestParseEncodedWordValue(t *testing.T) {
	t.Parallel()

	// two adjacent encoded-words in two different charsets, stuffed into a
	// quoted filename
	s := "form-data; name=\"file\"; filename=\"=?ISO-8859-1?B?SWYgeW91IGNhbiByZWFkIHRoaXMgeW8=?= " +
		"=?ISO-8859-2?B?dSB1bmRlcnN0YW5kIHRoZSBleGFtcGxlLg==?=\"\r\n"
	ps, err := param.Parse(s, ',', ';')
	require.NoError(t, err)

	v, ok := ps.Get("filename")
	assert.True(t, ok)
	assert.Equal(t, "If you can read this you understand the example.", v)
}

func TestParseEncodedWordKept(t *testing.T) {
	t.Parallel()

	s := `attachment; filename="=?utf-8?B?cMOidMOpLnBuZw==?="`

	// with the pass disabled the raw encoded-word is stored
	p := param.Parser{KeepEncodedWords: true}
	ps, err := p.Parse(s, ';')
	require.NoError(t, err)
	v, ok := ps.Get("filename")
	assert.True(t, ok)
	assert.Equal(t, "=?utf-8?B?cMOidMOpLnBuZw==?=", v)

	// an undecodable encoded-word keeps the raw value rather than erroring
	ps, err = param.Parse(`attachment; filename="=?x-unknown-charset?B?cGxhaW4=?="`, ';')
	require.NoError(t, err)
	v, ok = ps.Get("filename")
	assert.True(t, ok)
	assert.Equal(t, "=?x-unknown-charset?B?cGxhaW4=?=", v)
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	enc := param.Encode("pâté.png")
	assert.Equal(t, "=?utf-8?b?cMOidMOpLnBuZw==?=", enc)

	dec, err := param.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, "pâté.png", dec)

	// nothing encoded means nothing to do
	dec, err = param.Decode("plain text")
	require.NoError(t, err)
	assert.Equal(t, "plain text", dec)
}
