package leaves

import (
	"regexp"
	"strings"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/ops"
)

var wsRun = regexp.MustCompile(`\s+`)

func init() {
	ops.RegisterLeaf("remove_ws", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("remove_ws", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(func(s string) string {
			return wsRun.ReplaceAllString(s, "")
		}), ops.Transformer, nil
	})
	ops.RegisterLeaf("fold_whitespace", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("fold_whitespace", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(func(s string) string {
			return wsRun.ReplaceAllString(s, " ")
		}), ops.Transformer, nil
	})
	ops.RegisterLeaf("strip", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("strip", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(strings.TrimSpace), ops.Transformer, nil
	})
}
