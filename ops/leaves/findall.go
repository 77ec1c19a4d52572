package leaves

import (
	"fmt"
	"regexp"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	ops.RegisterLeaf("find_all", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("find_all", args, 1); err != nil {
			return nil, 0, err
		}
		pattern, err := argString("find_all", args, 0)
		if err != nil {
			return nil, 0, err
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, 0, err
		}
		return leaf(ops.Extractor, func(_ *runtime.Environment, s string) ilist.Result {
			matches := re.FindAllString(s, -1)
			if len(matches) == 0 {
				return ilist.NA
			}
			return ilist.Of(ilist.IList(matches))
		}), ops.Extractor, nil
	})

	// map replaces every occurrence of a source character with each of
	// the target characters in turn, branching the ilist at every hit
	// (original_source/operations/map.py's Map.process): `map "ab" "xy"`
	// on "cab" produces "cxx", "cyx", "cxy", "cyy".
	ops.RegisterLeaf("map", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("map", args, 2); err != nil {
			return nil, 0, err
		}
		sourceChars, err := argString("map", args, 0)
		if err != nil {
			return nil, 0, err
		}
		targetChars, err := argString("map", args, 1)
		if err != nil {
			return nil, 0, err
		}
		if sourceChars == "" {
			return nil, 0, fmt.Errorf("map: source characters must not be empty")
		}
		if targetChars == "" {
			return nil, 0, fmt.Errorf("map: target characters must not be empty")
		}
		source := make(map[rune]bool)
		for _, r := range sourceChars {
			source[r] = true
		}
		targets := []rune(targetChars)
		return leaf(ops.Extractor, func(_ *runtime.Environment, s string) ilist.Result {
			entries := []string{""}
			hit := false
			for _, c := range s {
				if source[c] {
					hit = true
					next := make([]string, 0, len(entries)*len(targets))
					for _, t := range targets {
						for _, e := range entries {
							next = append(next, e+string(t))
						}
					}
					entries = next
					continue
				}
				for i, e := range entries {
					entries[i] = e + string(c)
				}
			}
			if !hit {
				return ilist.NA
			}
			return ilist.Of(ilist.IList(entries))
		}), ops.Extractor, nil
	})
}
