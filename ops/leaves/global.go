package leaves

import (
	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

// glist_in/gset_in/glist_drop test or remove entries against a *global*
// list (loaded once from disk via the `global_list`/`global_set` header
// directive), distinct from the per-entry named lists of ops/chain.go's
// blockOp. (original_source/operations/glist_in.py, gset_in.py,
// glist_drop.py)
func init() {
	ops.RegisterLeaf("glist_in", globalMembershipLeaf(true))
	ops.RegisterLeaf("gset_in", globalMembershipLeaf(true))
	ops.RegisterLeaf("glist_drop", globalMembershipLeaf(false))
}

func globalMembershipLeaf(keepOnMatch bool) ops.LeafBuilder {
	return func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("glist_in/gset_in/glist_drop", args, 1); err != nil {
			return nil, 0, err
		}
		name, err := argString("glist_in/gset_in/glist_drop", args, 0)
		if err != nil {
			return nil, 0, err
		}
		return leaf(ops.Filter, func(env *runtime.Environment, s string) ilist.Result {
			g := env.GlobalLists[name]
			found := g != nil && g.Contains(s)
			if found == keepOnMatch {
				return ilist.One(s)
			}
			return ilist.NA
		}), ops.Filter, nil
	}
}
