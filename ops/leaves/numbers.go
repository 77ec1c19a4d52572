package leaves

import (
	"regexp"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

var numberRun = regexp.MustCompile(`[0-9]+`)

func init() {
	ops.RegisterLeaf("get_no", registerGetNumbers)
	ops.RegisterLeaf("get_numbers", registerGetNumbers)

	ops.RegisterLeaf("remove_no", registerRemoveNumbers)
	ops.RegisterLeaf("remove_numbers", registerRemoveNumbers)

	// number yields one candidate per fixed numeric suffix (1 to 4
	// digits) appended to the entry; a common mangling rule distilled from
	// original_source/operations/number.py's "try common trailing year
	// and PIN digits" behavior, simplified to a fixed, deterministic set.
	ops.RegisterLeaf("number", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("number", args, 0); err != nil {
			return nil, 0, err
		}
		suffixes := []string{"1", "12", "123", "1234", "01", "2024", "2025"}
		return leaf(ops.Extractor, func(_ *runtime.Environment, s string) ilist.Result {
			out := make(ilist.IList, 0, len(suffixes))
			for _, suf := range suffixes {
				out = append(out, s+suf)
			}
			return ilist.Of(out)
		}), ops.Extractor, nil
	})
}

func registerGetNumbers(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
	if err := requireArgs("get_numbers", args, 0); err != nil {
		return nil, 0, err
	}
	return leaf(ops.Extractor, func(_ *runtime.Environment, s string) ilist.Result {
		matches := numberRun.FindAllString(s, -1)
		if len(matches) == 0 {
			return ilist.NA
		}
		return ilist.Of(ilist.IList(matches))
	}), ops.Extractor, nil
}

func registerRemoveNumbers(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
	if err := requireArgs("remove_numbers", args, 0); err != nil {
		return nil, 0, err
	}
	return transform(func(s string) string {
		return numberRun.ReplaceAllString(s, "")
	}), ops.Transformer, nil
}
