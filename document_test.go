package jdom

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/keelson/jdom/encode"
	"github.com/keelson/jdom/ir"
	"github.com/keelson/jdom/parse"
)

func mustParse(t *testing.T, data string) *Document {
	t.Helper()
	d, err := ParseDocument([]byte(data))
	if err != nil {
		t.Fatalf("ParseDocument(%q): %v", data, err)
	}
	return d
}

func TestParseDocument(t *testing.T) {
	d := mustParse(t, `{"a":1}`)
	if d.Value().Kind() != ir.ObjectKind {
		t.Fatalf("value kind = %s", d.Value().Kind())
	}
	if d.Value().Parent() != d.Root() {
		t.Error("value not attached to the document root")
	}
	if got := d.String(); got != `{"a":1}` {
		t.Errorf("String() = %s", got)
	}
}

func TestParseReplacesContent(t *testing.T) {
	d := mustParse(t, `{"a":1}`)
	if err := d.Parse([]byte(`[1,2]`)); err != nil {
		t.Fatal(err)
	}
	if got := d.String(); got != `[1,2]` {
		t.Errorf("String() = %s", got)
	}
	if d.Root().Len() != 1 {
		t.Errorf("root has %d children", d.Root().Len())
	}
}

func TestParseErrorLeavesDocument(t *testing.T) {
	d := mustParse(t, `{"a":1}`)
	if err := d.Parse([]byte(`{"a":`)); err == nil {
		t.Fatal("bad input accepted")
	}
	if got := d.String(); got != `{"a":1}` {
		t.Errorf("content changed after failed parse: %s", got)
	}
}

func TestParseDocumentOptions(t *testing.T) {
	if _, err := ParseDocument([]byte(`1 x`), parse.RequireEOF()); !errors.Is(err, parse.ErrTrailingData) {
		t.Errorf("got %v, want ErrTrailingData", err)
	}
}

func TestObjectArrayAccess(t *testing.T) {
	d := mustParse(t, `{"a":1}`)
	if _, err := d.Object(); err != nil {
		t.Errorf("Object() = %v", err)
	}
	if _, err := d.Array(); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("Array() on object doc = %v", err)
	}

	empty := New()
	if _, err := empty.Object(); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("Object() on empty doc = %v", err)
	}
	if empty.Value() != nil {
		t.Error("empty document has a value")
	}
}

func TestSetValueClones(t *testing.T) {
	src := ir.NewObject()
	src.SetFieldNumber("n", 1)

	d := New()
	installed := d.SetValue(src)
	if installed == src {
		t.Fatal("SetValue linked the original")
	}
	src.SetFieldNumber("n", 2)
	if f, err := installed.FieldNumber("n"); err != nil || f != 1 {
		t.Errorf("clone changed with the original: %v, %v", f, err)
	}
}

func TestLinkValueTakesOwnership(t *testing.T) {
	v := ir.NewString("x")
	d := New()
	if got := d.LinkValue(v); got != v {
		t.Error("LinkValue did not return the linked node")
	}
	if v.Parent() != d.Root() {
		t.Error("linked value has wrong parent")
	}
}

func TestCreateContainers(t *testing.T) {
	d := New()
	obj := d.CreateObject()
	obj.SetFieldBool("ok", true)
	if got := d.String(); got != `{"ok":true}` {
		t.Errorf("String() = %s", got)
	}
	d.CreateArray().PushNumber(1)
	if got := d.String(); got != `[1]` {
		t.Errorf("String() = %s", got)
	}
}

func TestCloneAndEqual(t *testing.T) {
	d := mustParse(t, `{"a":[1,{"b":null}]}`)
	c := d.Clone()
	if !d.Equal(c) {
		t.Fatal("clone differs from original")
	}
	c.Value().SetFieldNumber("extra", 1)
	if d.Equal(c) {
		t.Error("documents still equal after modifying the clone")
	}

	if !New().Equal(New()) {
		t.Error("empty documents differ")
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`null`,
		`{"a":1,"b":[true,null,"s"],"c":{}}`,
		`[0.5,-12,1e+20]`,
		`"\u0001"`,
	}
	for _, in := range inputs {
		d := mustParse(t, in)
		if got := d.String(); got != in {
			t.Errorf("round trip of %s produced %s", in, got)
		}
	}
}

func TestRoundTripExtremeExponents(t *testing.T) {
	// decoding accumulates digits by hand, so reparsing the serialized form
	// of an extreme exponent can land an ulp off the original; the value
	// survives, the exact text need not
	for _, in := range []string{`1e+100`, `1e-100`, `2.5e-200`} {
		d := mustParse(t, in)
		orig, err := d.Value().NumberVal()
		if err != nil {
			t.Fatal(err)
		}
		back := mustParse(t, d.String())
		got, err := back.Value().NumberVal()
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-orig) > math.Abs(orig)*1e-15 {
			t.Errorf("round trip of %s drifted: %v -> %v", in, orig, got)
		}
	}
}

func TestPrettyRoundTrip(t *testing.T) {
	d := mustParse(t, `{"a":1,"b":[true,null,"s"],"c":{}}`)
	var sb strings.Builder
	if err := d.Encode(&sb, encode.Pretty()); err != nil {
		t.Fatal(err)
	}
	back := mustParse(t, sb.String())
	if !d.Equal(back) {
		t.Errorf("pretty output parsed to a different tree:\n%s", sb.String())
	}
}
