package jdom

import (
	"fmt"
	"io"

	"github.com/keelson/jdom/encode"
	"github.com/keelson/jdom/ir"
	"github.com/keelson/jdom/parse"
)

// Document is the root container of a tree. It owns at most one top-level
// value and provides the parse and serialize entry points.
//
// A Document is not safe for concurrent use.
type Document struct {
	root *ir.Node
}

func New() *Document {
	return &Document{root: ir.NewRoot()}
}

// ParseDocument parses one JSON value and returns a document owning it.
func ParseDocument(data []byte, opts ...parse.ParseOption) (*Document, error) {
	d := New()
	if err := d.Parse(data, opts...); err != nil {
		return nil, err
	}
	return d, nil
}

// Parse replaces the document's content with the value parsed from data.
// On error the prior content is left untouched.
func (d *Document) Parse(data []byte, opts ...parse.ParseOption) error {
	node, err := parse.Parse(data, opts...)
	if err != nil {
		return err
	}
	d.LinkValue(node)
	return nil
}

// Root returns the document's root node.
func (d *Document) Root() *ir.Node { return d.root }

// Value returns the top-level value, or nil when the document is empty.
func (d *Document) Value() *ir.Node { return d.root.FirstChild() }

// Object returns the top-level value when it is an object.
func (d *Document) Object() (*ir.Node, error) {
	v := d.root.FirstChild()
	if v == nil || v.Kind() != ir.ObjectKind {
		return nil, fmt.Errorf("%w: document root is not an object", ir.ErrTypeMismatch)
	}
	return v, nil
}

// Array returns the top-level value when it is an array.
func (d *Document) Array() (*ir.Node, error) {
	v := d.root.FirstChild()
	if v == nil || v.Kind() != ir.ArrayKind {
		return nil, fmt.Errorf("%w: document root is not an array", ir.ErrTypeMismatch)
	}
	return v, nil
}

// LinkValue installs v as the top-level value, taking ownership and
// discarding any prior content. It panics if v is already attached.
func (d *Document) LinkValue(v *ir.Node) *ir.Node {
	if old := d.root.FirstChild(); old != nil {
		d.root.RemoveChild(old)
	}
	d.root.Append(v)
	return v
}

// SetValue clones v and installs the clone as the top-level value,
// returning the clone.
func (d *Document) SetValue(v *ir.Node) *ir.Node {
	return d.LinkValue(v.Clone())
}

// CreateObject installs a fresh empty object as the top-level value and
// returns it.
func (d *Document) CreateObject() *ir.Node {
	return d.LinkValue(ir.NewObject())
}

// CreateArray installs a fresh empty array as the top-level value and
// returns it.
func (d *Document) CreateArray() *ir.Node {
	return d.LinkValue(ir.NewArray())
}

// Clone returns a fully independent copy of the document.
func (d *Document) Clone() *Document {
	res := New()
	if v := d.Value(); v != nil {
		res.LinkValue(v.Clone())
	}
	return res
}

// Equal reports whether two documents hold structurally identical trees.
func (d *Document) Equal(other *Document) bool {
	return ir.Equal(d.root, other.root)
}

// Encode renders the document to w. An empty document produces no output.
func (d *Document) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(d.root, w, opts...)
}

// String returns the compact encoding of the document.
func (d *Document) String() string {
	return encode.MustString(d.root)
}
