package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/keelson/jdom/ir"
)

func sampleObject() *ir.Node {
	top := ir.NewObject()
	top.SetFieldNumber("a", 1)
	arr, err := top.CreateArray("b")
	if err != nil {
		panic(err)
	}
	arr.PushBool(true)
	arr.PushNull()
	return top
}

func TestEncodeCompact(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"null", ir.NewNull(), `null`},
		{"true", ir.NewBool(true), `true`},
		{"false", ir.NewBool(false), `false`},
		{"integer", ir.NewNumber(42), `42`},
		{"fraction", ir.NewNumber(0.5), `0.5`},
		{"negative", ir.NewNumber(-12.5), `-12.5`},
		{"large exponent", ir.NewNumber(1e6), `1e+06`},
		{"string", ir.NewString("hello"), `"hello"`},
		{"empty object", ir.NewObject(), `{}`},
		{"empty array", ir.NewArray(), `[]`},
		{"object", sampleObject(), `{"a":1,"b":[true,null]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MustString(tt.node); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodePretty(t *testing.T) {
	want := `{
   "a" : 1,
   "b" : [
      true,
      null
   ]
}`
	if got := MustString(sampleObject(), Pretty()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodePrettyIndentAndLineBreak(t *testing.T) {
	arr := ir.NewArray()
	arr.PushNumber(1)
	arr.PushNumber(2)
	want := "[\r\n\t1,\r\n\t2\r\n]"
	got := MustString(arr, Pretty(), Indent("\t"), LineBreak("\r\n"))
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeRoot(t *testing.T) {
	root := ir.NewRoot()
	var buf bytes.Buffer
	if err := Encode(root, &buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty root produced %q", buf.String())
	}

	root.Append(ir.NewNumber(7))
	if got := MustString(root); got != "7" {
		t.Errorf("got %s, want 7", got)
	}
}

func TestEncodeNil(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(nil, &buf); !errors.Is(err, ErrEncoding) {
		t.Errorf("got %v, want ErrEncoding", err)
	}
}

func TestEncodeEscaping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a\"b", `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\nb\tc", `"a\nb\tc"`},
		{"\b\f\r", `"\b\f\r"`},
		{"ctrl\x01\x1f", `"ctrl\u0001\u001f"`},
		{"héllo", `"héllo"`},
		{"\U0001F600", "\"\U0001F600\""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := MustString(ir.NewString(tt.in)); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeEscapesKeys(t *testing.T) {
	top := ir.NewObject()
	top.SetFieldNumber("ta\tb", 1)
	if got := MustString(top); got != `{"ta\tb":1}` {
		t.Errorf("got %s", got)
	}
}

func TestColorsForWriter(t *testing.T) {
	if c := ColorsForWriter(&bytes.Buffer{}); c != nil {
		t.Error("got colors for a non-terminal writer")
	}
}

func TestEncodeWithColors(t *testing.T) {
	// color escapes wrap the payload, the text itself survives
	colors := NewColors()
	var buf bytes.Buffer
	if err := Encode(sampleObject(), &buf, WithColors(colors)); err != nil {
		t.Fatal(err)
	}
	for _, frag := range []string{`"a"`, "1", "true", "null"} {
		if !bytes.Contains(buf.Bytes(), []byte(frag)) {
			t.Errorf("output missing %s: %q", frag, buf.String())
		}
	}

	// nil colors means plain output
	if got := MustString(sampleObject(), WithColors(nil)); got != `{"a":1,"b":[true,null]}` {
		t.Errorf("got %s", got)
	}
}

func TestColorsPercentEscaping(t *testing.T) {
	colors := NewColors()
	got := colors.Color(ir.StringKind, ValueColor, `"100%"`)
	if !bytes.Contains([]byte(got), []byte(`100%`)) {
		t.Errorf("percent sign mangled: %q", got)
	}

	// containers have no value formatter, so this goes through Default
	got = colors.Color(ir.ObjectKind, ValueColor, "{%d}")
	if got != "{%d}" {
		t.Errorf("default formatter mangled percent signs: %q", got)
	}
}
