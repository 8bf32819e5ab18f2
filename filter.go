package jdom

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/keelson/jdom/ir"
)

// FilterArray returns the children of arr for which the expression
// evaluates to true. Each element's plain-Go form is the expression
// environment, so object elements expose their fields by name:
//
//	adults, err := jdom.FilterArray(users, "age >= 18")
//
// The returned nodes are the array's own children, still attached.
func FilterArray(arr *ir.Node, expression string) ([]*ir.Node, error) {
	if arr.Kind() != ir.ArrayKind {
		return nil, fmt.Errorf("%w: %s is not an array", ir.ErrTypeMismatch, arr.Kind())
	}
	program, err := expr.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	var res []*ir.Node
	for c := arr.FirstChild(); c != nil; c = c.NextSibling() {
		out, err := vm.Run(program, ir.ToAny(c))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQuery, err)
		}
		keep, ok := out.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: expression returned %T, want bool", ErrQuery, out)
		}
		if keep {
			res = append(res, c)
		}
	}
	return res, nil
}
