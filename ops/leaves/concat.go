package leaves

import (
	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	ops.RegisterLeaf("append", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("append", args, 1); err != nil {
			return nil, 0, err
		}
		suffix, err := argString("append", args, 0)
		if err != nil {
			return nil, 0, err
		}
		return transform(func(s string) string { return s + suffix }), ops.Transformer, nil
	})

	ops.RegisterLeaf("prepend", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("prepend", args, 1); err != nil {
			return nil, 0, err
		}
		prefix, err := argString("prepend", args, 0)
		if err != nil {
			return nil, 0, err
		}
		return transform(func(s string) string { return prefix + s }), ops.Transformer, nil
	})
}
