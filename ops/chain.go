package ops

import (
	"fmt"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
)

// Chain is a compiled, evaluable operand sequence.
type Chain []Op

// Eval runs the chain against an ilist, threading the two-level
// semantics of spec.md §4.5: ElementOps are mapped across the current
// ilist one element at a time; ListOps consume and replace the whole
// current ilist.
func (c Chain) Eval(env *runtime.Environment, in ilist.IList) ilist.IList {
	cur := in
	for _, op := range c {
		switch o := op.(type) {
		case ElementOp:
			cur = ilist.MapElements(cur, func(s string) ilist.Result { return o.ApplyElement(env, s) })
		case ListOp:
			cur = o.ApplyList(env, cur)
		}
	}
	return cur
}

// EvalWithNA behaves like Eval but additionally reports whether the
// chain's last step is an ElementOp that returned N/A for every element
// it was given, the "did this chain apply at all" signal
// ilist_if_all/ilist_if_any's N/A sentinel clause needs (spec.md §4.7).
// A chain ending in a ListOp, or one whose last step never ran because
// an earlier step already emptied the ilist, reports isNA = false: there
// is nothing ambiguous about an ilist that was already empty going in.
func (c Chain) EvalWithNA(env *runtime.Environment, in ilist.IList) (out ilist.IList, isNA bool) {
	cur := in
	for i, op := range c {
		last := i == len(c)-1
		elementOp, ok := op.(ElementOp)
		if !ok {
			cur = op.(ListOp).ApplyList(env, cur)
			continue
		}
		if !last || len(cur) == 0 {
			cur = ilist.MapElements(cur, func(s string) ilist.Result { return elementOp.ApplyElement(env, s) })
			continue
		}
		results := ilist.MapElementsKeepingNA(cur, func(s string) ilist.Result { return elementOp.ApplyElement(env, s) })
		allNA := true
		cur = nil
		for _, r := range results {
			if r.IsNA() {
				continue
			}
			allNA = false
			for _, v := range r.List() {
				if v != "" {
					cur = append(cur, v)
				}
			}
		}
		return cur, allNA
	}
	return cur, false
}

// Build compiles resolved AST operations (macros already expanded, config
// already bound by package resolve) into an evaluable Chain.
func Build(nodes []ast.Op) (Chain, error) {
	chain := make(Chain, 0, len(nodes))
	for _, n := range nodes {
		op, err := buildOne(n)
		if err != nil {
			return nil, err
		}
		chain = append(chain, op)
	}
	return chain, nil
}

func buildOne(n ast.Op) (Op, error) {
	switch node := n.(type) {
	case *ast.LeafOp:
		builder, ok := LookupLeaf(node.Name)
		if !ok {
			return nil, fmt.Errorf("%d:%d: unknown operation %q", node.Pos.Line, node.Pos.Column, node.Name)
		}
		base, kind, err := builder(node.Args)
		if err != nil {
			return nil, fmt.Errorf("%d:%d: %s: %w", node.Pos.Line, node.Pos.Column, node.Name, err)
		}
		return WrapElement(base, kind, node.Mod)
	case *ast.CombinatorOp:
		builder, ok := LookupCombinator(node.Name)
		if !ok {
			return nil, fmt.Errorf("%d:%d: unknown combinator %q", node.Pos.Line, node.Pos.Column, node.Name)
		}
		base, err := builder(node, Build)
		if err != nil {
			return nil, fmt.Errorf("%d:%d: %s: %w", node.Pos.Line, node.Pos.Column, node.Name, err)
		}
		return WrapList(base, node.Mod)
	case *ast.BlockOp:
		inner, err := Build(node.Inner)
		if err != nil {
			return nil, err
		}
		base := &blockOp{inner: inner, sink: node.Sink}
		return WrapList(base, node.Mod)
	case *ast.MacroInvocation:
		return nil, fmt.Errorf("%d:%d: unresolved macro invocation %q (resolve should have expanded it)", node.Pos.Line, node.Pos.Column, node.Name)
	default:
		return nil, fmt.Errorf("ops: unknown AST node type %T", n)
	}
}

// blockOp runs its inner chain on every element of the current ilist
// independently, then routes each element's outcome to the block's sink
// (if any) and/or back into the pipeline, per spec.md §4.6.
type blockOp struct {
	inner Chain
	sink  ast.Sink
}

func (b *blockOp) Kind() Kind { return MetaOperation }

func (b *blockOp) ApplyList(env *runtime.Environment, in ilist.IList) ilist.IList {
	var passthrough ilist.IList
	var target *runtime.NamedList
	if b.sink.Kind != ast.SinkNone {
		target = env.NamedLists[b.sink.List]
	}
	for _, s := range in {
		produced := b.inner.Eval(env, ilist.IList{s})
		survived := len(produced) > 0
		switch b.sink.Kind {
		case ast.SinkNone:
			passthrough = append(passthrough, produced...)
		case ast.SinkAppend:
			appendAll(target, produced)
		case ast.SinkSurvived:
			if survived {
				appendAll(target, []string{s})
			}
		case ast.SinkTee:
			appendAll(target, produced)
			passthrough = append(passthrough, produced...)
		case ast.SinkTeeSurvived:
			if survived {
				appendAll(target, []string{s})
			}
			passthrough = append(passthrough, produced...)
		}
	}
	return passthrough
}

func appendAll(l *runtime.NamedList, items []string) {
	if l == nil {
		return
	}
	for _, s := range items {
		l.Append(s)
	}
}
