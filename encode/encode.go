package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/keelson/jdom/ir"
)

// EncState carries the serializer configuration and the current indent
// depth of the walk.
type EncState struct {
	depth     int
	pretty    bool
	indent    string
	lineBreak string

	Color func(ir.Kind, ColorAttr, string) string
}

// Encode renders the subtree rooted at node to w. The default is compact
// single-line output; see Pretty, Indent and LineBreak. A root node is
// rendered as its single value, and an empty root produces no output.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:    "   ",
		lineBreak: "\n",
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	if node.Kind() == ir.RootKind {
		if node.FirstChild() == nil {
			return nil
		}
		node = node.FirstChild()
	}
	return encode(node, w, es)
}

func encode(n *ir.Node, w io.Writer, es *EncState) error {
	if n.PrevSibling() != nil {
		if err := writeSep(w, n.Kind(), ",", es); err != nil {
			return err
		}
		if err := writeLineBreak(w, es); err != nil {
			return err
		}
	}
	if err := writeIndent(w, es); err != nil {
		return err
	}
	if err := writeName(n, w, es); err != nil {
		return err
	}

	switch n.Kind() {
	case ir.ObjectKind, ir.ArrayKind:
		opener, closer := "{", "}"
		if n.Kind() == ir.ArrayKind {
			opener, closer = "[", "]"
		}
		if err := writeSep(w, n.Kind(), opener, es); err != nil {
			return err
		}
		if err := writeLineBreak(w, es); err != nil {
			return err
		}
		es.depth++
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if err := encode(c, w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := writeLineBreak(w, es); err != nil {
			return err
		}
		if err := writeIndent(w, es); err != nil {
			return err
		}
		return writeSep(w, n.Kind(), closer, es)
	case ir.StringKind:
		s, err := n.StringVal()
		if err != nil {
			return err
		}
		return writeValue(w, n.Kind(), string(appendEscaped(nil, s)), es)
	case ir.NumberKind:
		f, err := n.NumberVal()
		if err != nil {
			return err
		}
		return writeValue(w, n.Kind(), strconv.FormatFloat(f, 'g', -1, 64), es)
	case ir.BoolKind:
		b, err := n.BoolVal()
		if err != nil {
			return err
		}
		if b {
			return writeValue(w, n.Kind(), "true", es)
		}
		return writeValue(w, n.Kind(), "false", es)
	case ir.NullKind:
		return writeValue(w, n.Kind(), "null", es)
	default:
		return fmt.Errorf("%w: cannot encode a %s node", ErrEncoding, n.Kind())
	}
}

// writeName emits the escaped key and separator for object children.
func writeName(n *ir.Node, w io.Writer, es *EncState) error {
	p := n.Parent()
	if p == nil || p.Kind() != ir.ObjectKind {
		return nil
	}
	name := string(appendEscaped(nil, n.Name()))
	if es.Color != nil {
		name = es.Color(n.Kind(), FieldColor, name)
	}
	if err := writeString(w, name); err != nil {
		return err
	}
	if es.pretty {
		return writeSep(w, n.Kind(), " : ", es)
	}
	return writeSep(w, n.Kind(), ":", es)
}

func writeValue(w io.Writer, k ir.Kind, s string, es *EncState) error {
	if es.Color != nil {
		s = es.Color(k, ValueColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, k ir.Kind, s string, es *EncState) error {
	if es.Color != nil {
		s = es.Color(k, SepColor, s)
	}
	return writeString(w, s)
}

func writeLineBreak(w io.Writer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	return writeString(w, es.lineBreak)
}

func writeIndent(w io.Writer, es *EncState) error {
	if !es.pretty || es.depth == 0 {
		return nil
	}
	return writeString(w, strings.Repeat(es.indent, es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

const hexDigits = "0123456789abcdef"

// appendEscaped appends s as a quoted JSON string literal. Bytes above
// 0x1F other than quote and backslash pass through untouched; payloads are
// assumed to be valid UTF-8 already.
func appendEscaped(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c > 31 && c != '"' && c != '\\' {
			dst = append(dst, c)
			continue
		}
		switch c {
		case '\\':
			dst = append(dst, '\\', '\\')
		case '"':
			dst = append(dst, '\\', '"')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0x0F])
		}
	}
	return append(dst, '"')
}
