package leaves

import (
	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	ops.RegisterLeaf("reverse", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("reverse", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(reverseString), ops.Transformer, nil
	})

	ops.RegisterLeaf("rotate", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("rotate", args, 1); err != nil {
			return nil, 0, err
		}
		n, err := argInt("rotate", args, 0)
		if err != nil {
			return nil, 0, err
		}
		return transform(func(s string) string {
			return rotateString(s, n)
		}), ops.Transformer, nil
	})
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func rotateString(s string, n int) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	n = ((n % len(r)) + len(r)) % len(r)
	return string(r[n:]) + string(r[:n])
}
