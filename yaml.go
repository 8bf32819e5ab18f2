package jdom

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/keelson/jdom/ir"
)

// ParseYAML converts a YAML document into a detached tree via its plain-Go
// form. Object key order follows the sorted-key convention of ir.FromAny,
// not the source order.
func ParseYAML(data []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return ir.FromAny(v)
}

// EncodeYAML renders a subtree as YAML.
func EncodeYAML(n *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(ir.ToAny(n))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
