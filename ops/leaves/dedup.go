package leaves

import (
	"strings"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	// deduplicate collapses any run of repeated characters down to one,
	// e.g. "aaabbbccc" -> "abc". This is the leaf spec.md §8's restart
	// worked example runs to a fixed point.
	ops.RegisterLeaf("deduplicate", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("deduplicate", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(collapseRuns(1)), ops.Transformer, nil
	})

	// detriplicate collapses any run of 3-or-more repeated characters
	// down to 2, e.g. "aaabbbccc" -> "aabbcc".
	ops.RegisterLeaf("detriplicate", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("detriplicate", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(collapseRuns(2)), ops.Transformer, nil
	})
}

// collapseRuns returns a function collapsing every maximal run of an
// identical rune down to at most keep occurrences.
func collapseRuns(keep int) func(string) string {
	return func(s string) string {
		var b strings.Builder
		b.Grow(len(s))
		runes := []rune(s)
		i := 0
		for i < len(runes) {
			j := i
			for j < len(runes) && runes[j] == runes[i] {
				j++
			}
			n := j - i
			if n > keep {
				n = keep
			}
			for k := 0; k < n; k++ {
				b.WriteRune(runes[i])
			}
			i = j
		}
		return b.String()
	}
}
