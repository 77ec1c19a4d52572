// Package ops defines the runtime operation model: the Transformer /
// Extractor / Filter / MetaOperation taxonomy of spec.md §4.3, the
// modifier-wrapping rules of §4.4, and the registries that
// ops/leaves and ops/combinators populate via init().
package ops

import (
	"fmt"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
)

// Kind classifies a leaf operation.
type Kind int

const (
	Transformer Kind = iota // one string in, one string, an empty list, or N/A out
	Extractor                // one string in, zero or more strings out
	Filter                   // passes the input unchanged, or N/A
	MetaOperation            // operates on a whole ilist, not one element
)

func (k Kind) String() string {
	switch k {
	case Transformer:
		return "transformer"
	case Extractor:
		return "extractor"
	case Filter:
		return "filter"
	case MetaOperation:
		return "meta"
	}
	return "unknown"
}

// Op is a single evaluable step. The two concrete shapes are ElementOp
// (applied to one string at a time, and automatically mapped across the
// current ilist by Chain.Eval) and ListOp (applied to the whole current
// ilist at once, for the combinators).
type Op interface {
	Kind() Kind
}

// ElementOp is a Transformer, Extractor or Filter leaf, after modifier
// wrapping.
type ElementOp interface {
	Op
	ApplyElement(env *runtime.Environment, s string) ilist.Result
}

// ListOp is a MetaOperation combinator, or a block, after modifier
// wrapping.
type ListOp interface {
	Op
	ApplyList(env *runtime.Environment, in ilist.IList) ilist.IList
}

// LeafBuilder constructs a leaf's ElementOp from its parsed arguments.
type LeafBuilder func(args []ast.Literal) (ElementOp, Kind, error)

var leafRegistry = map[string]LeafBuilder{}

// RegisterLeaf adds a leaf operation to the global registry. Called from
// ops/leaves' init functions.
func RegisterLeaf(name string, b LeafBuilder) {
	if _, exists := leafRegistry[name]; exists {
		panic(fmt.Sprintf("ops: leaf %q registered twice", name))
	}
	leafRegistry[name] = b
}

// LookupLeaf returns the builder for a leaf op-name, if registered.
func LookupLeaf(name string) (LeafBuilder, bool) {
	b, ok := leafRegistry[name]
	return b, ok
}

// CombinatorBuilder constructs a combinator's ListOp from its AST node.
// build lets a combinator compile its own operand chains (ilist_if_all's
// inner chain, restart's filter/body chains, ...).
type CombinatorBuilder func(node *ast.CombinatorOp, build BuildFunc) (ListOp, error)

// BuildFunc compiles a slice of resolved ast.Op into an evaluable Chain.
type BuildFunc func([]ast.Op) (Chain, error)

var combinatorRegistry = map[string]CombinatorBuilder{}

// RegisterCombinator adds a combinator to the global registry. Called
// from ops/combinators' init functions.
func RegisterCombinator(name string, b CombinatorBuilder) {
	if _, exists := combinatorRegistry[name]; exists {
		panic(fmt.Sprintf("ops: combinator %q registered twice", name))
	}
	combinatorRegistry[name] = b
}

// LookupCombinator returns the builder for a combinator name, if
// registered.
func LookupCombinator(name string) (CombinatorBuilder, bool) {
	b, ok := combinatorRegistry[name]
	return b, ok
}
