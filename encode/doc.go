// Package encode renders document trees back to JSON text.
//
// The walk is a fixed pre-order visit: a container is entered, its
// children rendered in sibling order, then the container is closed. Commas
// are emitted before any node with a previous sibling, so a trailing comma
// can never appear.
//
// Output is compact by default. Pretty mode places each child on its own
// line, indents by a configurable unit per depth and joins lines with a
// configurable break string:
//
//	encode.Encode(node, w, encode.Pretty(), encode.Indent("  "))
//
// Number text uses the shortest representation that round-trips a float64;
// the exact notation is not guaranteed, only the decoded value.
package encode
