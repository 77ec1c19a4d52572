package combinators

import (
	"strings"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

func init() {
	ops.RegisterCombinator("ilist_concat", func(node *ast.CombinatorOp, build ops.BuildFunc) (ops.ListOp, error) {
		return &concatOp{sep: node.StrArg}, nil
	})
}

// concatOp joins every element of the current ilist into a single
// element, separated by sep (the empty string by default).
type concatOp struct{ sep string }

func (o *concatOp) Kind() ops.Kind { return ops.MetaOperation }

func (o *concatOp) ApplyList(_ *runtime.Environment, in ilist.IList) ilist.IList {
	if len(in) == 0 {
		return in
	}
	return ilist.IList{strings.Join(in, o.sep)}
}
