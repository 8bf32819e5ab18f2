package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Names do not participate at the top level; object comparison orders by
// child key, then child value, in sibling order.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.kind)
	rankB := rank(b.kind)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.kind {
	case NumberKind:
		return cmp.Compare(a.num, b.num)
	case StringKind:
		return strings.Compare(a.str, b.str)
	case BoolKind:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case ObjectKind:
		return compareChildren(a, b, true)
	case ArrayKind, RootKind:
		return compareChildren(a, b, false)
	case NullKind:
		return 0
	}
	return 0
}

// Equal reports whether two subtrees have identical structure, keys, order
// and scalar payloads.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a kind.
// Order: Null < Bool < Number < String < Array < Object < Root
func rank(k Kind) int {
	switch k {
	case NullKind:
		return 0
	case BoolKind:
		return 1
	case NumberKind:
		return 2
	case StringKind:
		return 3
	case ArrayKind:
		return 4
	case ObjectKind:
		return 5
	case RootKind:
		return 6
	}
	return 7
}

func compareChildren(a, b *Node, named bool) int {
	ca, cb := a.firstChild, b.firstChild
	for ca != nil && cb != nil {
		if named {
			if c := strings.Compare(ca.name, cb.name); c != 0 {
				return c
			}
		}
		if c := Compare(ca, cb); c != 0 {
			return c
		}
		ca = ca.next
		cb = cb.next
	}
	if ca != nil {
		return 1
	}
	if cb != nil {
		return -1
	}
	return 0
}
