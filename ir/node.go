package ir

import "fmt"

// Node is a single value in a document tree. Its kind is fixed at
// construction; structure and payload are mutated through methods.
//
// Children form an intrusive doubly linked list: every node carries its
// parent and sibling links, which makes append, positional insert, replace
// and detach O(1) given the node, at the cost of O(n) lookups by name or
// index. Documents are built by streaming append during parse and iterated
// in insertion order, so the list wins over an indexed container.
//
// A node has at most one parent. Structural methods panic when asked to
// attach an already attached node or to operate on a node that is not a
// child of the receiver; these are caller bugs, not input errors.
type Node struct {
	kind Kind
	name string

	parent     *Node
	firstChild *Node
	lastChild  *Node
	prev, next *Node
	nChildren  int

	str string
	num float64
	b   bool
}

func NewRoot() *Node   { return &Node{kind: RootKind} }
func NewObject() *Node { return &Node{kind: ObjectKind} }
func NewArray() *Node  { return &Node{kind: ArrayKind} }
func NewNull() *Node   { return &Node{kind: NullKind} }

func NewString(v string) *Node {
	return &Node{kind: StringKind, str: v}
}

func NewNumber(v float64) *Node {
	return &Node{kind: NumberKind, num: v}
}

func NewBool(v bool) *Node {
	return &Node{kind: BoolKind, b: v}
}

func (n *Node) Kind() Kind { return n.kind }

// Name returns the node's key in its parent object. It is empty for array
// and root children.
func (n *Node) Name() string { return n.name }

func (n *Node) Parent() *Node      { return n.parent }
func (n *Node) FirstChild() *Node  { return n.firstChild }
func (n *Node) LastChild() *Node   { return n.lastChild }
func (n *Node) NextSibling() *Node { return n.next }
func (n *Node) PrevSibling() *Node { return n.prev }

// Len returns the number of children.
func (n *Node) Len() int { return n.nChildren }

func (n *Node) IsNull() bool { return n.kind == NullKind }

// StringVal returns the string payload, or ErrTypeMismatch for non-string
// nodes.
func (n *Node) StringVal() (string, error) {
	if n.kind != StringKind {
		return "", fmt.Errorf("%w: %s is not a string", ErrTypeMismatch, n.kind)
	}
	return n.str, nil
}

// NumberVal returns the numeric payload, or ErrTypeMismatch for non-number
// nodes.
func (n *Node) NumberVal() (float64, error) {
	if n.kind != NumberKind {
		return 0, fmt.Errorf("%w: %s is not a number", ErrTypeMismatch, n.kind)
	}
	return n.num, nil
}

// BoolVal returns the boolean payload, or ErrTypeMismatch for non-bool
// nodes.
func (n *Node) BoolVal() (bool, error) {
	if n.kind != BoolKind {
		return false, fmt.Errorf("%w: %s is not a bool", ErrTypeMismatch, n.kind)
	}
	return n.b, nil
}

func (n *Node) SetString(v string) error {
	if n.kind != StringKind {
		return fmt.Errorf("%w: %s is not a string", ErrTypeMismatch, n.kind)
	}
	n.str = v
	return nil
}

func (n *Node) SetNumber(v float64) error {
	if n.kind != NumberKind {
		return fmt.Errorf("%w: %s is not a number", ErrTypeMismatch, n.kind)
	}
	n.num = v
	return nil
}

func (n *Node) SetBool(v bool) error {
	if n.kind != BoolKind {
		return fmt.Errorf("%w: %s is not a bool", ErrTypeMismatch, n.kind)
	}
	n.b = v
	return nil
}

// Append makes child the last child of n. It panics if child is attached,
// if n is a leaf, or if n is a non-empty root (roots hold a single value).
func (n *Node) Append(child *Node) {
	n.checkContainer("Append")
	child.checkDetached("Append")
	if n.kind == RootKind && n.nChildren != 0 {
		panic("jdom: Append called on a non-empty root")
	}
	n.appendNode(child)
}

// AppendNamed appends child under the given object key without checking key
// uniqueness. It is the raw operation the parser builds objects with;
// use LinkField for replace-in-place semantics.
func (n *Node) AppendNamed(name string, child *Node) {
	if n.kind != ObjectKind {
		panic("jdom: AppendNamed called on a " + n.kind.String() + " node")
	}
	child.checkDetached("AppendNamed")
	child.name = name
	n.appendNode(child)
}

// InsertBefore splices child immediately before anchor, which must be a
// child of n. It panics on linkage violations.
func (n *Node) InsertBefore(anchor, child *Node) {
	n.checkContainer("InsertBefore")
	child.checkDetached("InsertBefore")
	if anchor.parent != n {
		panic("jdom: InsertBefore called for a non-child anchor")
	}
	child.parent = n
	child.prev = anchor.prev
	child.next = anchor
	anchor.prev = child
	if child.prev != nil {
		child.prev.next = child
	} else {
		n.firstChild = child
	}
	n.nChildren++
}

// ReplaceChild puts repl in old's exact position (same parent, same
// neighbors, same name) and returns old, detached. The caller owns the
// returned subtree.
func (n *Node) ReplaceChild(old, repl *Node) *Node {
	n.checkContainer("ReplaceChild")
	repl.checkDetached("ReplaceChild")
	if old.parent != n {
		panic("jdom: ReplaceChild called for a non-child node")
	}
	repl.parent = n
	repl.prev = old.prev
	repl.next = old.next
	repl.name = old.name
	if old.prev != nil {
		old.prev.next = repl
	} else {
		n.firstChild = repl
	}
	if old.next != nil {
		old.next.prev = repl
	} else {
		n.lastChild = repl
	}
	old.parent = nil
	old.prev = nil
	old.next = nil
	old.name = ""
	return old
}

// RemoveChild unlinks child from n and returns it. The caller owns the
// returned subtree.
func (n *Node) RemoveChild(child *Node) *Node {
	if child.parent != n {
		panic("jdom: RemoveChild called for a non-child node")
	}
	if child.next != nil {
		child.next.prev = child.prev
	} else {
		n.lastChild = child.prev
	}
	if child.prev != nil {
		child.prev.next = child.next
	} else {
		n.firstChild = child.next
	}
	child.parent = nil
	child.prev = nil
	child.next = nil
	child.name = ""
	n.nChildren--
	return child
}

// Clone returns a deep copy of the subtree rooted at n. The copy is
// detached and unnamed; child keys are preserved. No state is shared with
// the source.
func (n *Node) Clone() *Node {
	dst := &Node{
		kind: n.kind,
		str:  n.str,
		num:  n.num,
		b:    n.b,
	}
	for c := n.firstChild; c != nil; c = c.next {
		cc := c.Clone()
		cc.name = c.name
		dst.appendNode(cc)
	}
	return dst
}

// Visit walks the subtree in document order. f is called before and after
// each node's children with post=false and post=true respectively; for leaf
// kinds the two calls are adjacent. Returning false from the pre call skips
// the children.
func (n *Node) Visit(f func(n *Node, post bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for c := n.firstChild; c != nil; c = c.next {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}

// Root returns the topmost ancestor of n.
func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

func (n *Node) appendNode(child *Node) {
	if n.lastChild == nil {
		n.firstChild = child
		n.lastChild = child
	} else {
		n.lastChild.next = child
		child.prev = n.lastChild
		n.lastChild = child
	}
	child.parent = n
	n.nChildren++
}

func (n *Node) checkContainer(op string) {
	if n.kind.IsLeaf() {
		panic("jdom: " + op + " called on a " + n.kind.String() + " node")
	}
}

func (n *Node) checkDetached(op string) {
	if n.parent != nil || n.prev != nil || n.next != nil {
		panic("jdom: " + op + " called for an attached node")
	}
}
