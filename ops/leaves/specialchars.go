package leaves

import (
	"strings"
	"unicode"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

func isSpecialChar(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func init() {
	ops.RegisterLeaf("get_sc", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("get_sc", args, 0); err != nil {
			return nil, 0, err
		}
		return leaf(ops.Extractor, func(_ *runtime.Environment, s string) ilist.Result {
			var out ilist.IList
			for _, r := range s {
				if isSpecialChar(r) {
					out = append(out, string(r))
				}
			}
			if len(out) == 0 {
				return ilist.NA
			}
			return ilist.Of(out)
		}), ops.Extractor, nil
	})

	ops.RegisterLeaf("remove_sc", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("remove_sc", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(func(s string) string {
			var b strings.Builder
			for _, r := range s {
				if !isSpecialChar(r) {
					b.WriteRune(r)
				}
			}
			return b.String()
		}), ops.Transformer, nil
	})

	ops.RegisterLeaf("is_sc", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("is_sc", args, 0); err != nil {
			return nil, 0, err
		}
		return filter(func(s string) bool {
			for _, r := range s {
				if isSpecialChar(r) {
					return true
				}
			}
			return false
		}), ops.Filter, nil
	})
}
