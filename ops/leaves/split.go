package leaves

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	ops.RegisterLeaf("split", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("split", args, 1); err != nil {
			return nil, 0, err
		}
		sep, err := argString("split", args, 0)
		if err != nil {
			return nil, 0, err
		}
		return leaf(ops.Extractor, func(_ *runtime.Environment, s string) ilist.Result {
			parts := strings.Split(s, sep)
			if len(parts) <= 1 {
				// Separator not found (original_source/operations/split.py:
				// "all_segments will have at least two elements if a split
				// char is found").
				return ilist.NA
			}
			out := make(ilist.IList, 0, len(parts))
			for _, p := range parts {
				if p != "" {
					out = append(out, p)
				}
			}
			if len(out) == 0 {
				return ilist.NA
			}
			return ilist.Of(out)
		}), ops.Extractor, nil
	})

	ops.RegisterLeaf("sub_split", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("sub_split", args, 1); err != nil {
			return nil, 0, err
		}
		pattern, err := argString("sub_split", args, 0)
		if err != nil {
			return nil, 0, err
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, 0, fmt.Errorf("sub_split: invalid pattern %q: %v", pattern, err)
		}
		return leaf(ops.Extractor, func(_ *runtime.Environment, s string) ilist.Result {
			parts := re.Split(s, -1)
			out := make(ilist.IList, 0, len(parts))
			for _, p := range parts {
				if p != "" {
					out = append(out, p)
				}
			}
			if len(out) == 0 {
				return ilist.NA
			}
			return ilist.Of(out)
		}), ops.Extractor, nil
	})
}
