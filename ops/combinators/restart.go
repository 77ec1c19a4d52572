package combinators

import (
	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	ops.RegisterCombinator("restart", func(node *ast.CombinatorOp, build ops.BuildFunc) (ops.ListOp, error) {
		filter, err := build(node.Clauses[0])
		if err != nil {
			return nil, err
		}
		body, err := build(node.Clauses[1])
		if err != nil {
			return nil, err
		}
		bound := 1
		if node.IntArg != nil {
			bound = *node.IntArg
		}
		return &restartOp{bound: bound, filter: filter, body: body}, nil
	})
}

// restartOp re-applies its body chain to a single element, up to bound
// times, as long as the filter chain keeps passing the element produced
// by the previous pass:
//
//	current := element
//	for pass := 0; pass < bound; pass++ {
//	    if filter(current) rejects { break }
//	    next := body(current)
//	    if next is empty { break }
//	    current = next[0]
//	}
//
// This is the algorithm spec.md §8's worked example
// (`restart 1 (min length 8, deduplicate)` on "aaabbbccc" -> "abc") walks
// through by hand: the filter is checked before each body application,
// and the pass count bounds the number of body applications, not the
// number of filter checks.
type restartOp struct {
	bound        int
	filter, body ops.Chain
}

func (o *restartOp) Kind() ops.Kind { return ops.MetaOperation }

func (o *restartOp) ApplyList(env *runtime.Environment, in ilist.IList) ilist.IList {
	out := make(ilist.IList, 0, len(in))
	for _, s := range in {
		out = append(out, o.runOne(env, s))
	}
	return out
}

func (o *restartOp) runOne(env *runtime.Environment, s string) string {
	env.Restart.Push(o.bound)
	defer env.Restart.Pop()

	current := s
	for pass := 0; pass < o.bound; pass++ {
		if len(o.filter.Eval(env, ilist.IList{current})) == 0 {
			break
		}
		next := o.body.Eval(env, ilist.IList{current})
		if len(next) == 0 {
			break
		}
		current = next[0]
		env.Restart.Tick()
	}
	return current
}
