package ir

import (
	"fmt"
	"maps"
	"slices"
)

// ToAny converts a subtree to plain Go values: objects become
// map[string]any (insertion order is lost), arrays []any, numbers float64,
// null nil. A root node converts to its single value, or nil when empty.
// The result shares no state with the tree.
func ToAny(n *Node) any {
	switch n.kind {
	case NullKind:
		return nil
	case BoolKind:
		return n.b
	case NumberKind:
		return n.num
	case StringKind:
		return n.str
	case ArrayKind:
		res := make([]any, 0, n.nChildren)
		for c := n.firstChild; c != nil; c = c.next {
			res = append(res, ToAny(c))
		}
		return res
	case ObjectKind:
		res := make(map[string]any, n.nChildren)
		for c := n.firstChild; c != nil; c = c.next {
			res[c.name] = ToAny(c)
		}
		return res
	case RootKind:
		if n.firstChild == nil {
			return nil
		}
		return ToAny(n.firstChild)
	}
	return nil
}

// FromAny builds a detached subtree from plain Go values. Maps produce
// objects with sorted keys, since Go map iteration order would otherwise
// leak into the tree.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case float64:
		return NewNumber(t), nil
	case float32:
		return NewNumber(float64(t)), nil
	case int:
		return NewNumber(float64(t)), nil
	case int8:
		return NewNumber(float64(t)), nil
	case int16:
		return NewNumber(float64(t)), nil
	case int32:
		return NewNumber(float64(t)), nil
	case int64:
		return NewNumber(float64(t)), nil
	case uint:
		return NewNumber(float64(t)), nil
	case uint8:
		return NewNumber(float64(t)), nil
	case uint16:
		return NewNumber(float64(t)), nil
	case uint32:
		return NewNumber(float64(t)), nil
	case uint64:
		return NewNumber(float64(t)), nil
	case []any:
		arr := NewArray()
		for _, el := range t {
			c, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			arr.Append(c)
		}
		return arr, nil
	case map[string]any:
		obj := NewObject()
		for _, key := range slices.Sorted(maps.Keys(t)) {
			c, err := FromAny(t[key])
			if err != nil {
				return nil, err
			}
			obj.AppendNamed(key, c)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("%w: cannot represent %T", ErrTypeMismatch, v)
	}
}
