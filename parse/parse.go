// Package parse provides JSON parsing support.
package parse

import (
	"bytes"
	"fmt"

	"github.com/keelson/jdom/ir"
)

// Parse consumes one JSON value from the start of d and returns the
// detached tree built from it. By default content after the value is left
// unexamined, matching the grammar's entry point; pass RequireEOF to reject
// it. The first error aborts parsing and no partial tree is returned.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{buf: d}
	root := ir.NewRoot()
	if err := p.value(root, ""); err != nil {
		return nil, err
	}
	if pOpts.requireEOF {
		p.whitespace()
		if p.off < len(p.buf) {
			return nil, p.errf(ErrTrailingData, "%q", p.cur())
		}
	}
	return root.RemoveChild(root.FirstChild()), nil
}

// parser is a cursor over the input buffer. Each grammar production is one
// method that advances the cursor past what it consumed.
type parser struct {
	buf []byte
	off int
}

// cur returns the byte under the cursor, or 0 at end of input.
func (p *parser) cur() byte {
	if p.off < len(p.buf) {
		return p.buf[p.off]
	}
	return 0
}

func (p *parser) whitespace() {
	for p.off < len(p.buf) {
		switch p.buf[p.off] {
		case 0x20, 0x09, 0x0A, 0x0D:
			p.off++
		default:
			return
		}
	}
}

func (p *parser) errf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s (offset %d)", sentinel, fmt.Sprintf(format, args...), p.off)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// value parses one value and links it into parent, under name when parent
// is an object.
func (p *parser) value(parent *ir.Node, name string) error {
	p.whitespace()
	switch c := p.cur(); {
	case c == '{':
		return p.object(parent, name)
	case c == '[':
		return p.array(parent, name)
	case c == '"':
		s, err := p.string()
		if err != nil {
			return err
		}
		link(parent, name, ir.NewString(s))
		return nil
	case c == 't':
		if bytes.HasPrefix(p.buf[p.off:], []byte("true")) {
			link(parent, name, ir.NewBool(true))
			p.off += len("true")
			return nil
		}
	case c == 'f':
		if bytes.HasPrefix(p.buf[p.off:], []byte("false")) {
			link(parent, name, ir.NewBool(false))
			p.off += len("false")
			return nil
		}
	case c == 'n':
		if bytes.HasPrefix(p.buf[p.off:], []byte("null")) {
			link(parent, name, ir.NewNull())
			p.off += len("null")
			return nil
		}
	case c == '-' || isDigit(c):
		f, err := p.number()
		if err != nil {
			return err
		}
		link(parent, name, ir.NewNumber(f))
		return nil
	}
	return p.errf(ErrUnexpectedChar, "%q", p.cur())
}

func link(parent *ir.Node, name string, n *ir.Node) {
	if parent.Kind() == ir.ObjectKind {
		parent.AppendNamed(name, n)
	} else {
		parent.Append(n)
	}
}

func (p *parser) object(parent *ir.Node, name string) error {
	p.off++ // '{'
	obj := ir.NewObject()
	link(parent, name, obj)

	p.whitespace()
	if p.cur() == '}' {
		p.off++
		return nil
	}
	for {
		p.whitespace()
		if p.cur() == '}' {
			return p.errf(ErrExpectedDelimiter, "trailing ',' before '}'")
		}
		if p.cur() != '"' {
			return p.errf(ErrUnexpectedChar, "expected object key, got %q", p.cur())
		}
		key, err := p.string()
		if err != nil {
			return err
		}
		p.whitespace()
		if p.cur() != ':' {
			return p.errf(ErrExpectedDelimiter, "expected ':' before object value")
		}
		p.off++
		if err := p.value(obj, key); err != nil {
			return err
		}
		p.whitespace()
		switch p.cur() {
		case ',':
			p.off++
		case '}':
			p.off++
			return nil
		default:
			return p.errf(ErrExpectedDelimiter, "expected '}' or ',' after object element")
		}
	}
}

func (p *parser) array(parent *ir.Node, name string) error {
	p.off++ // '['
	arr := ir.NewArray()
	link(parent, name, arr)

	p.whitespace()
	if p.cur() == ']' {
		p.off++
		return nil
	}
	for {
		p.whitespace()
		if p.cur() == ']' {
			return p.errf(ErrExpectedDelimiter, "trailing ',' before ']'")
		}
		if err := p.value(arr, ""); err != nil {
			return err
		}
		p.whitespace()
		switch p.cur() {
		case ',':
			p.off++
		case ']':
			p.off++
			return nil
		default:
			return p.errf(ErrExpectedDelimiter, "expected ']' or ',' after array element")
		}
	}
}
