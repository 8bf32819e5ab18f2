package jdom

import (
	"fmt"

	"github.com/theory/jsonpath"

	"github.com/keelson/jdom/debug"
	"github.com/keelson/jdom/ir"
)

// Query selects values from the document with a JSONPath expression (RFC
// 9535), e.g. "$.user.name" or "$.items[0]". Matches are returned as
// detached trees built from the selected values; they share no state with
// the document. An expression matching nothing fails with ir.ErrNotFound.
func (d *Document) Query(pathExpr string) ([]*ir.Node, error) {
	path, err := jsonpath.Parse(pathExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSONPath %s: %v", ErrQuery, pathExpr, err)
	}
	results := path.Select(ir.ToAny(d.root))
	if debug.Query() {
		debug.Logf("query %s: %d results\n", pathExpr, len(results))
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no match for %s", ir.ErrNotFound, pathExpr)
	}
	nodes := make([]*ir.Node, len(results))
	for i, r := range results {
		n, err := ir.FromAny(r)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return nodes, nil
}

// QueryString returns the first match of the expression, converting
// non-string scalars with fmt.Sprintf.
func (d *Document) QueryString(pathExpr string) (string, error) {
	nodes, err := d.Query(pathExpr)
	if err != nil {
		return "", err
	}
	n := nodes[0]
	if s, err := n.StringVal(); err == nil {
		return s, nil
	}
	return fmt.Sprintf("%v", ir.ToAny(n)), nil
}
