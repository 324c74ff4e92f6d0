package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mime/headerparams/param"
)

func TestParseExtendedValues(t *testing.T) {
	t.Parallel()

	// UTF-8 charset with an empty language tag
	s := "form-data; name=\"file\"; filename*=UTF-8''%E3%81%93%E3%82%93%E3%81%AB%E3%81%A1%E3%81%AF\r\n"
	ps, err := param.Parse(s, ',', ';')
	require.NoError(t, err)
	v, ok := ps.Get("filename")
	assert.True(t, ok)
	assert.Equal(t, "こんにちは", v)

	s = "form-data; name=\"file\"; filename*=UTF-8''%70%C3%A2%74%C3%A9\r\n"
	ps, err = param.Parse(s, ',', ';')
	require.NoError(t, err)
	v, ok = ps.Get("filename")
	assert.True(t, ok)
	assert.Equal(t, "pâté", v)

	// a language tag is allowed and dropped
	ps, err = param.Parse("attachment; filename*=utf-8'en'%C2%A3%20rates.txt", ';')
	require.NoError(t, err)
	v, ok = ps.Get("filename")
	assert.True(t, ok)
	assert.Equal(t, "£ rates.txt", v)
}

func TestParseExtendedValueFallbacks(t *testing.T) {
	t.Parallel()

	// "*" not at the end of the name never triggers decoding
	ps, err := param.Parse("form-data; name=\"file\"; file*name=UTF-8''%61%62%63", ',', ';')
	require.NoError(t, err)
	v, ok := ps.Get("file*name")
	assert.True(t, ok)
	assert.Equal(t, "UTF-8''%61%62%63", v)

	// a value without the charset'lang'data shape is kept as-is, with the
	// starred name intact
	ps, err = param.Parse("form-data; name=\"file\"; filename*=a'bc", ',', ';')
	require.NoError(t, err)
	assert.False(t, ps.Has("filename"))
	v, ok = ps.Get("filename*")
	assert.True(t, ok)
	assert.Equal(t, "a'bc", v)

	// a name without the trailing "*" keeps its quoted-looking value
	ps, err = param.Parse("form-data; name=\"file\"; filename=a'b'c", ',', ';')
	require.NoError(t, err)
	v, ok = ps.Get("filename")
	assert.True(t, ok)
	assert.Equal(t, "a'b'c", v)
}

func TestParseExtendedValueMalformedPercent(t *testing.T) {
	t.Parallel()

	// bytes that are not part of a %XX triplet pass through literally
	ps, err := param.Parse("attachment; filename*=UTF-8''abc%ZZdef%", ';')
	require.NoError(t, err)
	v, ok := ps.Get("filename")
	assert.True(t, ok)
	assert.Equal(t, "abc%ZZdef%", v)
}

func TestParseExtendedValueBadCharset(t *testing.T) {
	t.Parallel()

	p := param.Parser{CharsetDecoder: param.DefaultCharsetDecoder}
	_, err := p.Parse("attachment; filename*=x-unknown-charset''%61%62", ';')
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"filename*"`)
}

func TestEncodeExtended(t *testing.T) {
	t.Parallel()

	ev, err := param.EncodeExtended("UTF-8", "", "pâté")
	require.NoError(t, err)
	assert.Equal(t, "UTF-8''p%C3%A2t%C3%A9", ev)

	ev, err = param.EncodeExtended("UTF-8", "en", "£ rates")
	require.NoError(t, err)
	assert.Equal(t, "UTF-8'en'%C2%A3%20rates", ev)

	// the encode round-trips through the parser's decode
	ps, err := param.Parse("attachment; filename*="+ev, ';')
	require.NoError(t, err)
	v, ok := ps.Get("filename")
	assert.True(t, ok)
	assert.Equal(t, "£ rates", v)
}
