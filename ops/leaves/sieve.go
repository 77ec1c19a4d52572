package leaves

import (
	"hash/fnv"
	"strconv"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/ops"
)

// sieve is a configurable pass/reject filter driven by a
// `config sieve rate N` binding, N being an integer percentage or a string
// holding a fraction such as "0.5" (original_source/operations/
// sieve.py and its sieve/ probability tables). Lacking the original's
// frequency corpus, DJ's sieve keeps the deterministic-threshold shape of
// the original but drives it off a stable hash of the entry rather than a
// learned frequency table, so the same entry always sieves the same way
// within a run.
func init() {
	ops.RegisterLeaf("sieve", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("sieve", args, 0); err != nil {
			return nil, 0, err
		}
		rate := 1.0
		if v, ok := config.Param("sieve", "rate"); ok {
			if v.IsInt {
				rate = float64(v.Int) / 100
			} else if v.Str != "" {
				if f, err := strconv.ParseFloat(v.Str, 64); err == nil {
					rate = f
				}
			}
		}
		return filter(func(s string) bool {
			if rate >= 1 {
				return true
			}
			if rate <= 0 {
				return false
			}
			h := fnv.New32a()
			h.Write([]byte(s))
			frac := float64(h.Sum32()%10000) / 10000
			return frac < rate
		}), ops.Filter, nil
	})
}
