package combinators

import (
	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	ops.RegisterCombinator("ilist_foreach", func(node *ast.CombinatorOp, build ops.BuildFunc) (ops.ListOp, error) {
		chain, err := build(node.Clauses[0])
		if err != nil {
			return nil, err
		}
		return &foreachOp{chain}, nil
	})
}

// foreachOp runs its operand chain against each element of the current
// ilist independently and concatenates the results, letting a chain that
// contains its own combinators run at the original per-element
// granularity instead of the already-split current ilist.
type foreachOp struct{ chain ops.Chain }

func (o *foreachOp) Kind() ops.Kind { return ops.MetaOperation }

func (o *foreachOp) ApplyList(env *runtime.Environment, in ilist.IList) ilist.IList {
	var out ilist.IList
	for _, s := range in {
		out = append(out, o.chain.Eval(env, ilist.IList{s})...)
	}
	return out
}
