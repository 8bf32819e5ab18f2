package ir

import "fmt"

// Typed accessors over the node primitives. Lookups are linear scans over
// the child list; failures are reported as wrapped ErrNotFound,
// ErrIndexOutOfRange and ErrTypeMismatch values and never mutate the tree.
// Set-style helpers clone their argument so one source value can populate
// several trees; Link-style helpers take ownership of an unattached node.

// Field returns the child of an object node with the given key.
func (n *Node) Field(name string) (*Node, error) {
	if n.kind != ObjectKind {
		return nil, fmt.Errorf("%w: %s is not an object", ErrTypeMismatch, n.kind)
	}
	for c := n.firstChild; c != nil; c = c.next {
		if c.name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (n *Node) FieldObject(name string) (*Node, error) {
	v, err := n.Field(name)
	if err != nil {
		return nil, err
	}
	return v.asKind(ObjectKind)
}

func (n *Node) FieldArray(name string) (*Node, error) {
	v, err := n.Field(name)
	if err != nil {
		return nil, err
	}
	return v.asKind(ArrayKind)
}

func (n *Node) FieldString(name string) (string, error) {
	v, err := n.Field(name)
	if err != nil {
		return "", err
	}
	return v.StringVal()
}

func (n *Node) FieldNumber(name string) (float64, error) {
	v, err := n.Field(name)
	if err != nil {
		return 0, err
	}
	return v.NumberVal()
}

func (n *Node) FieldBool(name string) (bool, error) {
	v, err := n.Field(name)
	if err != nil {
		return false, err
	}
	return v.BoolVal()
}

func (n *Node) IsNullField(name string) (bool, error) {
	v, err := n.Field(name)
	if err != nil {
		return false, err
	}
	return v.IsNull(), nil
}

// LinkField installs v under the given key, taking ownership. An existing
// child with the same key is replaced in place; otherwise v is appended.
// It panics if v is already attached.
func (n *Node) LinkField(name string, v *Node) error {
	if n.kind != ObjectKind {
		return fmt.Errorf("%w: %s is not an object", ErrTypeMismatch, n.kind)
	}
	v.checkDetached("LinkField")
	for c := n.firstChild; c != nil; c = c.next {
		if c.name == name {
			n.ReplaceChild(c, v)
			return nil
		}
	}
	n.AppendNamed(name, v)
	return nil
}

// SetField clones v and installs the clone under the given key, returning
// the clone.
func (n *Node) SetField(name string, v *Node) (*Node, error) {
	c := v.Clone()
	if err := n.LinkField(name, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (n *Node) SetFieldString(name, v string) error {
	return n.LinkField(name, NewString(v))
}

func (n *Node) SetFieldNumber(name string, v float64) error {
	return n.LinkField(name, NewNumber(v))
}

func (n *Node) SetFieldBool(name string, v bool) error {
	return n.LinkField(name, NewBool(v))
}

func (n *Node) SetFieldNull(name string) error {
	return n.LinkField(name, NewNull())
}

// CreateObject installs a fresh empty object under the given key and
// returns it.
func (n *Node) CreateObject(name string) (*Node, error) {
	o := NewObject()
	if err := n.LinkField(name, o); err != nil {
		return nil, err
	}
	return o, nil
}

// CreateArray installs a fresh empty array under the given key and returns
// it.
func (n *Node) CreateArray(name string) (*Node, error) {
	a := NewArray()
	if err := n.LinkField(name, a); err != nil {
		return nil, err
	}
	return a, nil
}

// RemoveField detaches and discards the child with the given key. Removing
// an absent key is not an error.
func (n *Node) RemoveField(name string) error {
	if n.kind != ObjectKind {
		return fmt.Errorf("%w: %s is not an object", ErrTypeMismatch, n.kind)
	}
	for c := n.firstChild; c != nil; c = c.next {
		if c.name == name {
			n.RemoveChild(c)
			return nil
		}
	}
	return nil
}

// Index returns the i-th child of an array node.
func (n *Node) Index(i int) (*Node, error) {
	if n.kind != ArrayKind {
		return nil, fmt.Errorf("%w: %s is not an array", ErrTypeMismatch, n.kind)
	}
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	j := 0
	for c := n.firstChild; c != nil; c = c.next {
		if j == i {
			return c, nil
		}
		j++
	}
	return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
}

func (n *Node) IndexObject(i int) (*Node, error) {
	v, err := n.Index(i)
	if err != nil {
		return nil, err
	}
	return v.asKind(ObjectKind)
}

func (n *Node) IndexArray(i int) (*Node, error) {
	v, err := n.Index(i)
	if err != nil {
		return nil, err
	}
	return v.asKind(ArrayKind)
}

func (n *Node) IndexString(i int) (string, error) {
	v, err := n.Index(i)
	if err != nil {
		return "", err
	}
	return v.StringVal()
}

func (n *Node) IndexNumber(i int) (float64, error) {
	v, err := n.Index(i)
	if err != nil {
		return 0, err
	}
	return v.NumberVal()
}

func (n *Node) IndexBool(i int) (bool, error) {
	v, err := n.Index(i)
	if err != nil {
		return false, err
	}
	return v.BoolVal()
}

func (n *Node) IsNullIndex(i int) (bool, error) {
	v, err := n.Index(i)
	if err != nil {
		return false, err
	}
	return v.IsNull(), nil
}

// LinkBack appends v to an array node, taking ownership. It panics if v is
// already attached.
func (n *Node) LinkBack(v *Node) error {
	if n.kind != ArrayKind {
		return fmt.Errorf("%w: %s is not an array", ErrTypeMismatch, n.kind)
	}
	n.Append(v)
	return nil
}

// Push clones v and appends the clone, returning it.
func (n *Node) Push(v *Node) (*Node, error) {
	c := v.Clone()
	if err := n.LinkBack(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (n *Node) PushString(v string) error  { return n.LinkBack(NewString(v)) }
func (n *Node) PushNumber(v float64) error { return n.LinkBack(NewNumber(v)) }
func (n *Node) PushBool(v bool) error      { return n.LinkBack(NewBool(v)) }
func (n *Node) PushNull() error            { return n.LinkBack(NewNull()) }

// PushObject appends a fresh empty object and returns it.
func (n *Node) PushObject() (*Node, error) {
	o := NewObject()
	if err := n.LinkBack(o); err != nil {
		return nil, err
	}
	return o, nil
}

// PushArray appends a fresh empty array and returns it.
func (n *Node) PushArray() (*Node, error) {
	a := NewArray()
	if err := n.LinkBack(a); err != nil {
		return nil, err
	}
	return a, nil
}

// LinkBefore splices v in front of the i-th child, taking ownership.
func (n *Node) LinkBefore(v *Node, i int) error {
	anchor, err := n.Index(i)
	if err != nil {
		return err
	}
	n.InsertBefore(anchor, v)
	return nil
}

// InsertAt clones v and splices the clone in front of the i-th child,
// returning the clone.
func (n *Node) InsertAt(i int, v *Node) (*Node, error) {
	c := v.Clone()
	if err := n.LinkBefore(c, i); err != nil {
		return nil, err
	}
	return c, nil
}

func (n *Node) InsertStringAt(i int, v string) error {
	return n.LinkBefore(NewString(v), i)
}

func (n *Node) InsertNumberAt(i int, v float64) error {
	return n.LinkBefore(NewNumber(v), i)
}

func (n *Node) InsertBoolAt(i int, v bool) error {
	return n.LinkBefore(NewBool(v), i)
}

func (n *Node) InsertNullAt(i int) error {
	return n.LinkBefore(NewNull(), i)
}

// InsertObjectAt splices a fresh empty object in front of the i-th child
// and returns it.
func (n *Node) InsertObjectAt(i int) (*Node, error) {
	o := NewObject()
	if err := n.LinkBefore(o, i); err != nil {
		return nil, err
	}
	return o, nil
}

// InsertArrayAt splices a fresh empty array in front of the i-th child and
// returns it.
func (n *Node) InsertArrayAt(i int) (*Node, error) {
	a := NewArray()
	if err := n.LinkBefore(a, i); err != nil {
		return nil, err
	}
	return a, nil
}

// LinkAt replaces the i-th child with v, taking ownership of v and
// discarding the old child.
func (n *Node) LinkAt(v *Node, i int) error {
	old, err := n.Index(i)
	if err != nil {
		return err
	}
	n.ReplaceChild(old, v)
	return nil
}

// SetAt clones v and replaces the i-th child with the clone, returning the
// clone.
func (n *Node) SetAt(i int, v *Node) (*Node, error) {
	c := v.Clone()
	if err := n.LinkAt(c, i); err != nil {
		return nil, err
	}
	return c, nil
}

func (n *Node) SetStringAt(i int, v string) error {
	return n.LinkAt(NewString(v), i)
}

func (n *Node) SetNumberAt(i int, v float64) error {
	return n.LinkAt(NewNumber(v), i)
}

func (n *Node) SetBoolAt(i int, v bool) error {
	return n.LinkAt(NewBool(v), i)
}

func (n *Node) SetNullAt(i int) error {
	return n.LinkAt(NewNull(), i)
}

// RemoveAt detaches and discards the i-th child.
func (n *Node) RemoveAt(i int) error {
	v, err := n.Index(i)
	if err != nil {
		return err
	}
	n.RemoveChild(v)
	return nil
}

func (n *Node) asKind(k Kind) (*Node, error) {
	if n.kind != k {
		return nil, fmt.Errorf("%w: %s is not a %s", ErrTypeMismatch, n.kind, k)
	}
	return n, nil
}
