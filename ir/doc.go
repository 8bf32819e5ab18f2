// Package ir defines the tree representation for JSON documents.
//
// # Overview
//
// All documents, whether parsed from text or built programmatically, are
// trees of Node values. A node has a fixed Kind, an optional name (its key
// when the parent is an object), a scalar payload for leaf kinds, and an
// ordered list of children for container kinds.
//
// Children are held in an intrusive doubly linked list. Structural edits
// given a node reference (Append, InsertBefore, ReplaceChild, RemoveChild)
// are O(1); lookups by key or position are linear scans. There is no
// secondary index, so iteration always follows insertion order.
//
// # Creating nodes
//
// Constructor functions are the only way to create nodes:
//
//	obj := ir.NewObject()
//	obj.SetFieldString("name", "alice")
//	arr := ir.NewArray()
//	arr.PushNumber(42)
//
// # Ownership
//
// A node belongs to at most one parent. Detaching operations return the
// removed subtree to the caller. Attaching an already attached node is a
// caller bug and panics; use Clone to reuse a value across trees. The
// Set/Push/Insert accessor helpers clone internally, while their Link
// counterparts take ownership of the argument.
//
// # Errors
//
// Recoverable conditions (missing keys, out-of-range indices, kind
// mismatches) are reported as wrapped ErrNotFound, ErrIndexOutOfRange and
// ErrTypeMismatch values.
//
// Nodes are not safe for concurrent use; clone a subtree to hand it to
// another goroutine.
package ir
