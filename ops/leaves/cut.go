package leaves

import (
	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	// cut N keeps the first N runes (negative N keeps the last -N runes),
	// matching original_source/operations/cut.py's slice semantics.
	ops.RegisterLeaf("cut", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("cut", args, 1); err != nil {
			return nil, 0, err
		}
		n, err := argInt("cut", args, 0)
		if err != nil {
			return nil, 0, err
		}
		return transform(func(s string) string {
			r := []rune(s)
			if n >= 0 {
				keep := n
				if keep > len(r) {
					keep = len(r)
				}
				return string(r[:keep])
			}
			start := len(r) + n
			if start < 0 {
				start = 0
			}
			return string(r[start:])
		}), ops.Transformer, nil
	})

	// segments N splits the entry into consecutive chunks of N runes.
	ops.RegisterLeaf("segments", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("segments", args, 1); err != nil {
			return nil, 0, err
		}
		n, err := argInt("segments", args, 0)
		if err != nil {
			return nil, 0, err
		}
		if n <= 0 {
			n = 1
		}
		return leaf(ops.Extractor, func(_ *runtime.Environment, s string) ilist.Result {
			r := []rune(s)
			var out ilist.IList
			for i := 0; i < len(r); i += n {
				end := i + n
				if end > len(r) {
					end = len(r)
				}
				out = append(out, string(r[i:end]))
			}
			if len(out) == 0 {
				return ilist.NA
			}
			return ilist.Of(out)
		}), ops.Extractor, nil
	})
}
