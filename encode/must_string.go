package encode

import (
	"bytes"

	"github.com/keelson/jdom/ir"
)

// MustString encodes node to a string, panicking on error. Encoding only
// fails on writer errors or corrupt trees, so this is safe for in-memory
// use.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
