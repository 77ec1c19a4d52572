package leaves

import (
	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/djerr"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

// report, write, classify and result are spec.md §4.8's output sinks.
// Unlike a block's sink they are ordinary leaves (bare op-name plus
// literal arguments, no braces), implemented as Transformers. report,
// result and write are pass-through: the side effect happens in
// ApplyElement and the element flows on unchanged, which composes
// correctly with the two-level pipeline's element-wise mapping since the
// emission order then matches the ilist's own order. classify has no side
// effect; it prepends its tag to the element.
func init() {
	ops.RegisterLeaf("report", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("report", args, 0); err != nil {
			return nil, 0, err
		}
		return leaf(ops.Transformer, func(env *runtime.Environment, s string) ilist.Result {
			env.Output.Report(s)
			return ilist.One(s)
		}), ops.Transformer, nil
	})

	ops.RegisterLeaf("result", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("result", args, 0); err != nil {
			return nil, 0, err
		}
		return leaf(ops.Transformer, func(env *runtime.Environment, s string) ilist.Result {
			env.Output.Report(s)
			return ilist.One(s)
		}), ops.Transformer, nil
	})

	ops.RegisterLeaf("write", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		path, err := argString("write", args, 0)
		if err != nil {
			return nil, 0, err
		}
		if err := requireArgs("write", args, 1); err != nil {
			return nil, 0, err
		}
		return leaf(ops.Transformer, func(env *runtime.Environment, s string) ilist.Result {
			if err := env.Output.Write(path, s); err != nil {
				panic(djerr.IOError("write %q: %v", path, err))
			}
			return ilist.One(s)
		}), ops.Transformer, nil
	})

	ops.RegisterLeaf("classify", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		tag, err := argString("classify", args, 0)
		if err != nil {
			return nil, 0, err
		}
		if err := requireArgs("classify", args, 1); err != nil {
			return nil, 0, err
		}
		return transform(func(s string) string { return tag + s }), ops.Transformer, nil
	})
}
