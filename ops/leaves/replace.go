package leaves

import (
	"fmt"
	"strings"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	ops.RegisterLeaf("replace", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("replace", args, 2); err != nil {
			return nil, 0, err
		}
		from, err := argString("replace", args, 0)
		if err != nil {
			return nil, 0, err
		}
		to, err := argString("replace", args, 1)
		if err != nil {
			return nil, 0, err
		}
		return transform(func(s string) string {
			return strings.ReplaceAll(s, from, to)
		}), ops.Transformer, nil
	})

	ops.RegisterLeaf("multi_replace", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("multi_replace", args, 1); err != nil {
			return nil, 0, err
		}
		if args[0].Kind != ast.LitList {
			return nil, 0, fmt.Errorf("multi_replace: argument must be a list of [from, to] pairs")
		}
		type pair struct{ from, to string }
		pairs := make([]pair, 0, len(args[0].List))
		for _, item := range args[0].List {
			if item.Kind != ast.LitList || len(item.List) != 2 ||
				item.List[0].Kind != ast.LitString || item.List[1].Kind != ast.LitString {
				return nil, 0, fmt.Errorf("multi_replace: each list element must be a [\"from\", \"to\"] pair")
			}
			pairs = append(pairs, pair{item.List[0].Str, item.List[1].Str})
		}
		return transform(func(s string) string {
			for _, p := range pairs {
				s = strings.ReplaceAll(s, p.from, p.to)
			}
			return s
		}), ops.Transformer, nil
	})

	ops.RegisterLeaf("omit", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("omit", args, 1); err != nil {
			return nil, 0, err
		}
		substr, err := argString("omit", args, 0)
		if err != nil {
			return nil, 0, err
		}
		return transform(func(s string) string {
			return strings.ReplaceAll(s, substr, "")
		}), ops.Transformer, nil
	})
}
