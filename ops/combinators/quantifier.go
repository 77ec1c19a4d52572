package combinators

import (
	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	ops.RegisterCombinator("ilist_if_all", buildQuantifier(true))
	ops.RegisterCombinator("ilist_if_any", buildQuantifier(false))
}

func buildQuantifier(all bool) ops.CombinatorBuilder {
	return func(node *ast.CombinatorOp, build ops.BuildFunc) (ops.ListOp, error) {
		chain, err := build(node.Clauses[0])
		if err != nil {
			return nil, err
		}
		return &quantifierOp{
			chain:     chain,
			all:       all,
			passEmpty: sentinelPasses(node.NilSet, node.NilFalse),
			passNA:    sentinelPasses(node.NASet, node.NAFalse),
		}, nil
	}
}

// quantifierOp tests every element of the current ilist against its own
// chain and keeps the whole ilist unchanged if enough elements "survive"
// (produce a non-empty result); otherwise it rejects the whole ilist.
// The "N/A = ..." and "[] = ..." sentinel clauses decide whether an
// element whose sub-chain came back N/A, respectively legitimately
// empty, counts as surviving (spec.md §4.7); EvalWithNA is what makes
// the two outcomes distinguishable here instead of both collapsing to
// the same zero-length ilist.
type quantifierOp struct {
	chain     ops.Chain
	all       bool // true: ilist_if_all, false: ilist_if_any
	passEmpty bool
	passNA    bool
}

func (o *quantifierOp) Kind() ops.Kind { return ops.MetaOperation }

func (o *quantifierOp) ApplyList(env *runtime.Environment, in ilist.IList) ilist.IList {
	if len(in) == 0 {
		if o.all {
			return in
		}
		return ilist.IList{}
	}
	count := 0
	for _, s := range in {
		out, isNA := o.chain.EvalWithNA(env, ilist.IList{s})
		var survived bool
		switch {
		case len(out) > 0:
			survived = true
		case isNA:
			survived = o.passNA
		default:
			survived = o.passEmpty
		}
		if survived {
			count++
		}
	}
	pass := count == len(in)
	if !o.all {
		pass = count > 0
	}
	if pass {
		return in
	}
	return ilist.IList{}
}
