package combinators

import (
	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	ops.RegisterCombinator("or", func(node *ast.CombinatorOp, build ops.BuildFunc) (ops.ListOp, error) {
		chains := make([]ops.Chain, len(node.Clauses))
		for i, c := range node.Clauses {
			chain, err := build(c)
			if err != nil {
				return nil, err
			}
			chains[i] = chain
		}
		return &orOp{chains}, nil
	})
}

// orOp tries each operand chain in order against the current ilist and
// keeps the first one whose result is non-empty.
type orOp struct{ chains []ops.Chain }

func (o *orOp) Kind() ops.Kind { return ops.MetaOperation }

func (o *orOp) ApplyList(env *runtime.Environment, in ilist.IList) ilist.IList {
	for _, c := range o.chains {
		out := c.Eval(env, in)
		if len(out) > 0 {
			return out
		}
	}
	return ilist.IList{}
}
