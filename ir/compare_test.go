package ir

import "testing"

func obj(kvs ...any) *Node {
	res := NewObject()
	for i := 0; i < len(kvs); i += 2 {
		res.AppendNamed(kvs[i].(string), kvs[i+1].(*Node))
	}
	return res
}

func arr(nodes ...*Node) *Node {
	res := NewArray()
	for _, n := range nodes {
		res.Append(n)
	}
	return res
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Kind ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", NewNull(), NewBool(false), -1},
		{"Bool < Number", NewBool(true), NewNumber(1), -1},
		{"Number < String", NewNumber(1), NewString("a"), -1},
		{"String < Array", NewString("a"), arr(), -1},
		{"Array < Object", arr(), NewObject(), -1},

		{"false < true", NewBool(false), NewBool(true), -1},
		{"true > false", NewBool(true), NewBool(false), 1},
		{"true == true", NewBool(true), NewBool(true), 0},

		{"1 < 2", NewNumber(1), NewNumber(2), -1},
		{"-1 < 0.5", NewNumber(-1), NewNumber(0.5), -1},
		{"a < b", NewString("a"), NewString("b"), -1},
		{"null == null", NewNull(), NewNull(), 0},

		{"empty arrays equal", arr(), arr(), 0},
		{"short array < long array", arr(NewNumber(1)), arr(NewNumber(1), NewNumber(2)), -1},
		{"array element comparison", arr(NewNumber(1)), arr(NewNumber(2)), -1},

		{"empty objects equal", NewObject(), NewObject(), 0},
		{"object key comparison", obj("a", NewNumber(1)), obj("b", NewNumber(1)), -1},
		{"object value comparison", obj("a", NewNumber(1)), obj("a", NewNumber(2)), -1},
		{"object size comparison", obj("a", NewNumber(1)), obj("a", NewNumber(1), "b", NewNumber(2)), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare = %d, want %d", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("reversed Compare = %d, want %d", got, -tt.expected)
			}
		})
	}
}

func TestEqualIgnoresIdentity(t *testing.T) {
	a := obj("x", arr(NewNumber(1), NewString("s")))
	b := obj("x", arr(NewNumber(1), NewString("s")))
	if !Equal(a, b) {
		t.Error("structurally identical trees compare unequal")
	}
	b.FirstChild().PushNull()
	if Equal(a, b) {
		t.Error("different trees compare equal")
	}
}
