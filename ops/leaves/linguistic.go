package leaves

import (
	"strings"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

// The six leaves in this file need a real lexicon, a word-frequency
// corpus, or a hunspell-style morphology model to do anything beyond a
// shallow heuristic — exactly the linguistic resources spec.md's
// Non-goals keep out of scope. deleetify needs none of that, so it gets a
// real (if small) static substitution table; the rest degrade gracefully:
// Filters default to "pass", Extractors default to "nothing found",
// Transformers default to N/A (nothing to correct).
func init() {
	ops.RegisterLeaf("related", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("related", args, 0); err != nil {
			return nil, 0, err
		}
		return filter(func(string) bool { return true }), ops.Filter, nil
	})

	ops.RegisterLeaf("is_regular_word", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("is_regular_word", args, 0); err != nil {
			return nil, 0, err
		}
		dictionaries, _ := config.Param("is_regular_word", "DICTIONARIES")
		names := dictionaries.List
		return leaf(ops.Filter, func(env *runtime.Environment, s string) ilist.Result {
			if len(names) == 0 {
				return ilist.One(s)
			}
			lower := lowerCaser.String(s)
			for _, name := range names {
				if g := env.GlobalLists[name]; g != nil && g.Contains(lower) {
					return ilist.One(s)
				}
			}
			return ilist.NA
		}), ops.Filter, nil
	})

	ops.RegisterLeaf("is_popular_word", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("is_popular_word", args, 0); err != nil {
			return nil, 0, err
		}
		return filter(func(string) bool { return true }), ops.Filter, nil
	})

	ops.RegisterLeaf("mangle_dates", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("mangle_dates", args, 0); err != nil {
			return nil, 0, err
		}
		return leaf(ops.Extractor, func(_ *runtime.Environment, s string) ilist.Result {
			return ilist.NA
		}), ops.Extractor, nil
	})

	ops.RegisterLeaf("correct_spelling", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("correct_spelling", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(func(s string) string { return s }), ops.Transformer, nil
	})

	ops.RegisterLeaf("deleetify", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("deleetify", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(deleetify), ops.Transformer, nil
	})
}

var leetTable = map[rune]rune{
	'0': 'o', '1': 'i', '3': 'e', '4': 'a',
	'5': 's', '7': 't', '8': 'b', '@': 'a', '$': 's',
}

func deleetify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if m, ok := leetTable[r]; ok {
			b.WriteRune(m)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
