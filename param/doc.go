// Package param provides a tool for dealing with the parameter lists found in
// parameterized headers. These include the Content-type and
// Content-disposition headers. In addition to the low-level Parser, it
// provides a Value type for working with a complete parameterized field body
// and helper methods for breaking down the MIME types that get set in the
// Content-type header.
package param
