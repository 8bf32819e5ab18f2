package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToAny(t *testing.T) {
	root := NewRoot()
	top := NewObject()
	root.Append(top)
	top.SetFieldString("name", "alice")
	top.SetFieldNumber("age", 30)
	top.SetFieldNull("extra")
	xs, err := top.CreateArray("xs")
	if err != nil {
		t.Fatal(err)
	}
	xs.PushNumber(1)
	xs.PushBool(true)

	got := ToAny(root)
	want := map[string]any{
		"name":  "alice",
		"age":   float64(30),
		"extra": nil,
		"xs":    []any{float64(1), true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAnyRoundTrip(t *testing.T) {
	src := map[string]any{
		"b":    true,
		"n":    3.5,
		"i":    int64(7),
		"s":    "str",
		"null": nil,
		"arr":  []any{"x", float64(2)},
	}
	node, err := FromAny(src)
	if err != nil {
		t.Fatal(err)
	}
	// int payloads come back as float64
	want := map[string]any{
		"b":    true,
		"n":    3.5,
		"i":    float64(7),
		"s":    "str",
		"null": nil,
		"arr":  []any{"x", float64(2)},
	}
	if diff := cmp.Diff(want, ToAny(node)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAnySortsKeys(t *testing.T) {
	node, err := FromAny(map[string]any{"c": 1, "a": 2, "b": 3})
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		keys = append(keys, c.Name())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, keys); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAnyRejectsUnknownTypes(t *testing.T) {
	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("FromAny accepted a struct")
	}
	if _, err := FromAny(map[int]any{1: "x"}); err == nil {
		t.Error("FromAny accepted non-string map keys")
	}
}
