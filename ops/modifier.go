package ops

import (
	"fmt"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
)

// WrapElement applies one of the four modifiers from spec.md §4.4 to a
// leaf's ElementOp:
//
//   - '+' additive: keeps the unmodified input alongside whatever the
//     base op produces, so nothing already in the ilist is lost.
//   - '*' single application: the base op's result if it applied
//     (≠ N/A), the unmodified input otherwise.
//   - '!' negate: only legal on Filter-kind ops; inverts pass <-> reject.
//   - '~' crystallize: substitutes the original input in place of N/A
//     or an empty result, so an op that "doesn't apply" or yields
//     nothing here never drops the element outright.
func WrapElement(base ElementOp, kind Kind, mod ast.Modifier) (ElementOp, error) {
	switch mod {
	case ast.ModNone:
		return base, nil
	case ast.ModPlus:
		return &additiveElementOp{base}, nil
	case ast.ModStar:
		return &keepIfNAElementOp{base}, nil
	case ast.ModBang:
		if kind != Filter {
			return nil, fmt.Errorf("modifier '!' only applies to Filter operations, not %s", kind)
		}
		return &negateElementOp{base}, nil
	case ast.ModTilde:
		return &crystallizeElementOp{base}, nil
	}
	return base, fmt.Errorf("unknown modifier %q", mod)
}

// WrapList applies the same four modifiers to a combinator's ListOp.
// There is no Filter-kind ListOp, so '!' is always rejected here. '*' is
// defined by spec.md §4.4 only for Transformer/Extractor leaves, so it
// is rejected here too rather than invented as a list-level fixpoint.
// resolve's modifier-legality pass already rejects '*' on a combinator;
// it does not check '*' on a block, so for blocks WrapList is where '*'
// is rejected.
func WrapList(base ListOp, mod ast.Modifier) (ListOp, error) {
	switch mod {
	case ast.ModNone:
		return base, nil
	case ast.ModPlus:
		return &additiveListOp{base}, nil
	case ast.ModStar:
		return nil, fmt.Errorf("modifier '*' only applies to Transformer/Extractor operations, not a combinator")
	case ast.ModBang:
		return nil, fmt.Errorf("modifier '!' only applies to Filter operations")
	case ast.ModTilde:
		return &crystallizeListOp{base}, nil
	}
	return base, fmt.Errorf("unknown modifier %q", mod)
}

// --- element-op wrappers -----------------------------------------------

type additiveElementOp struct{ ElementOp }

func (o *additiveElementOp) ApplyElement(env *runtime.Environment, s string) ilist.Result {
	r := o.ElementOp.ApplyElement(env, s)
	if r.IsNA() {
		return ilist.One(s)
	}
	out := ilist.IList{s}
	for _, v := range r.List() {
		if v != s {
			out = append(out, v)
		}
	}
	return ilist.Of(out)
}

// keepIfNAElementOp implements the '*' modifier law of spec §4.4:
// *op(x) = op(x) if op(x) != N/A, else {x}. A single application, not a
// fixpoint (original_source/dj_ops.py's KeepOnlyIfNotApplicableModifier
// applies the base op exactly once per element).
type keepIfNAElementOp struct{ ElementOp }

func (o *keepIfNAElementOp) ApplyElement(env *runtime.Environment, s string) ilist.Result {
	r := o.ElementOp.ApplyElement(env, s)
	if r.IsNA() {
		return ilist.One(s)
	}
	return r
}

type negateElementOp struct{ ElementOp }

func (o *negateElementOp) ApplyElement(env *runtime.Environment, s string) ilist.Result {
	r := o.ElementOp.ApplyElement(env, s)
	if r.IsNA() {
		return ilist.One(s)
	}
	return ilist.NA
}

type crystallizeElementOp struct{ ElementOp }

func (o *crystallizeElementOp) ApplyElement(env *runtime.Environment, s string) ilist.Result {
	r := o.ElementOp.ApplyElement(env, s)
	if r.IsNA() || r.Len() == 0 {
		return ilist.One(s)
	}
	return r
}

// --- list-op wrappers -----------------------------------------------

type additiveListOp struct{ ListOp }

func (o *additiveListOp) ApplyList(env *runtime.Environment, in ilist.IList) ilist.IList {
	out := o.ListOp.ApplyList(env, in)
	seen := make(map[string]bool, len(in)+len(out))
	merged := make(ilist.IList, 0, len(in)+len(out))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	for _, s := range out {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	return merged
}

type crystallizeListOp struct{ ListOp }

func (o *crystallizeListOp) ApplyList(env *runtime.Environment, in ilist.IList) ilist.IList {
	out := o.ListOp.ApplyList(env, in)
	if len(out) == 0 {
		return in
	}
	return out
}

