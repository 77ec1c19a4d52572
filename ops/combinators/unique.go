package combinators

import (
	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	for _, name := range []string{"ilist_unique", "iset_unique"} {
		ops.RegisterCombinator(name, func(*ast.CombinatorOp, ops.BuildFunc) (ops.ListOp, error) {
			return &uniqueOp{}, nil
		})
	}

	for _, name := range []string{"select_longest", "ilist_select_longest", "iset_select_longest"} {
		ops.RegisterCombinator(name, func(*ast.CombinatorOp, ops.BuildFunc) (ops.ListOp, error) {
			return &longestOp{}, nil
		})
	}
}

// uniqueOp drops repeated elements from the current ilist, keeping the
// first occurrence of each.
type uniqueOp struct{}

func (o *uniqueOp) Kind() ops.Kind { return ops.MetaOperation }

func (o *uniqueOp) ApplyList(_ *runtime.Environment, in ilist.IList) ilist.IList {
	return ilist.Dedup(in)
}

// longestOp reduces the current ilist to its single longest element
// (original_source/operations/select_longest.py,
// ilist_select_longest.py).
type longestOp struct{}

func (o *longestOp) Kind() ops.Kind { return ops.MetaOperation }

func (o *longestOp) ApplyList(_ *runtime.Environment, in ilist.IList) ilist.IList {
	s, ok := ilist.Longest(in)
	if !ok {
		return ilist.IList{}
	}
	return ilist.IList{s}
}
