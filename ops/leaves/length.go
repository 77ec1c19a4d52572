package leaves

import (
	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	// Registered under the canonical names min_length/max_length; the
	// parser's "min length N"/"max length N" keyword-phrase surface
	// syntax is normalized to these at parse time.
	ops.RegisterLeaf("min_length", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("min_length", args, 1); err != nil {
			return nil, 0, err
		}
		n, err := argInt("min_length", args, 0)
		if err != nil {
			return nil, 0, err
		}
		return filter(func(s string) bool { return len([]rune(s)) >= n }), ops.Filter, nil
	})
	ops.RegisterLeaf("max_length", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("max_length", args, 1); err != nil {
			return nil, 0, err
		}
		n, err := argInt("max_length", args, 0)
		if err != nil {
			return nil, 0, err
		}
		return filter(func(s string) bool { return len([]rune(s)) <= n }), ops.Filter, nil
	})
}
