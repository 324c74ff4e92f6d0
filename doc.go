// Package headerparams parses the delimiter-separated name=value parameter
// lists found inside HTTP-style header field values, such as the ones carried
// by the Content-type and Content-disposition headers. The caller is expected
// to have isolated the header value already; splitting the field name off the
// field body is deliberately left out of this library.
//
// The real work lives in the param subpackage. A param.Parser walks the input
// once with a quote- and escape-aware tokenizer, so a delimiter inside a
// double-quoted value never splits, and a backslash protects exactly the next
// character. Each token is split into a name and an optional value, quotes
// are stripped from quoted values, and RFC 2231 extended parameters (those
// whose names end in "*", carrying charset'lang'percent-bytes values) are
// decoded into native unicode. Values holding MIME encoded-words are decoded
// as well, since producers stuff those into quoted filenames regardless of
// what any RFC has to say about it.
//
// Header producers in the wild are sloppy, so the parser is built to be
// liberal: tokens with no usable name are dropped, dangling quotes are
// tolerated, a parameter without a value is recorded as present-but-valueless
// rather than rejected. The one thing that will produce an error is an
// extended value declaring a charset the configured decoder has never heard
// of, because handing encoded bytes back as if they were text would quietly
// corrupt things like file names downstream.
//
// Out of the box only us-ascii, iso-8859-1 and utf-8 are decodable. Blank
// import param/encoding to swap in decoders for pretty much every character
// set registered with IANA, at some cost in binary size.
//
// On top of the parser, param.Value models a whole parameterized field body
// (primary value plus parameters) with accessors for the common Content-type
// and Content-disposition parameters and a writer that quotes and encodes
// parameters as needed on output.
package headerparams
