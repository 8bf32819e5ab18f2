// Package jdom is an in-memory JSON document model: parse JSON text into a
// mutable tree, query and mutate it with typed accessors, and serialize it
// back to text.
//
// The Document type holds at most one top-level value and ties the pieces
// together:
//
//	doc, err := jdom.ParseDocument([]byte(`{"a":1}`))
//	obj, err := doc.Object()
//	obj.SetFieldNumber("a", 3)
//	err = doc.Encode(os.Stdout, encode.Pretty())
//
// Trees are built from ir.Node values (package ir), produced by package
// parse and rendered by package encode. On top of the core model, the
// package offers RFC 6902 / RFC 7386 patching, line-based diffs, JSONPath
// queries, expression filters and YAML interop.
//
// Everything here is single-threaded: a tree has one logical owner at a
// time and concurrent access must be serialized by the caller. Deep clones
// (ir.Node.Clone, Document.Clone) are the mechanism for safe cross-tree or
// cross-goroutine reuse.
package jdom
