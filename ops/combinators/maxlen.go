package combinators

import (
	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	for _, name := range []string{"ilist_max", "iset_max"} {
		ops.RegisterCombinator(name, func(node *ast.CombinatorOp, build ops.BuildFunc) (ops.ListOp, error) {
			n := 0
			if node.IntArg != nil {
				n = *node.IntArg
			}
			return &maxLenOp{cmp: node.StrArg, n: n}, nil
		})
	}
}

// maxLenOp tests the current ilist's *element count* (not any single
// string's length -- that is min_length/max_length, a per-element Filter
// leaf) against a bound, rejecting the whole ilist if it fails.
type maxLenOp struct {
	cmp string // "<" or "<="
	n   int
}

func (o *maxLenOp) Kind() ops.Kind { return ops.MetaOperation }

func (o *maxLenOp) ApplyList(_ *runtime.Environment, in ilist.IList) ilist.IList {
	ok := len(in) <= o.n
	if o.cmp == "<" {
		ok = len(in) < o.n
	}
	if ok {
		return in
	}
	return ilist.IList{}
}
