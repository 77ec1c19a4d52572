// Package resolve turns a parsed ast.Script into one ready for
// ops.Build: every `do NAME` macro invocation expanded (with cycle
// detection), every `use`/sink/global-list name reference checked
// against its declaration, and the header's `config` directives bound
// into a djconfig.Config.
package resolve

import (
	"fmt"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/djconfig"
	"github.com/dictionaryjuggler/dj/ops"
)

// Error is a fatal semantic error: an undeclared name, a macro cycle, a
// duplicate declaration.
type Error struct{ Msg string }

func (e *Error) Error() string { return e.Msg }

func errorf(format string, args ...interface{}) error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

// Resolve validates script and binds its `config` directives into cfg,
// returning the macro-expanded script. cfg is typically already
// populated with CLI-derived switches (djconfig.Config's Verbose,
// DedupeGlobal, ...); Resolve only ever adds to its params table.
func Resolve(script *ast.Script, cfg *djconfig.Config) (*ast.Script, error) {
	declared := make(map[string]ast.ListDecl)
	for _, l := range script.Header.Lists {
		if _, dup := declared[l.Name]; dup {
			return nil, errorf("list %q declared twice", l.Name)
		}
		declared[l.Name] = l
	}

	globalDeclared := make(map[string]ast.GlobalListDecl)
	for _, g := range script.Header.GlobalLists {
		if _, dup := globalDeclared[g.Name]; dup {
			return nil, errorf("global list %q declared twice", g.Name)
		}
		globalDeclared[g.Name] = g
	}

	macros := make(map[string]ast.MacroDef)
	for _, m := range script.Header.Macros {
		if _, dup := macros[m.Name]; dup {
			return nil, errorf("macro %q defined twice", m.Name)
		}
		macros[m.Name] = m
	}

	exp := &expander{macros: macros, expanding: map[string]bool{}}

	for i := range script.Header.Macros {
		body, err := exp.expandAll(script.Header.Macros[i].Body)
		if err != nil {
			return nil, err
		}
		script.Header.Macros[i].Body = body
	}

	for i, stmt := range script.Body {
		for _, name := range stmt.UseNames {
			if _, ok := declared[name]; !ok {
				return nil, errorf("%d:%d: use %s: no such declared list", stmt.Pos.Line, stmt.Pos.Column, name)
			}
		}
		expanded, err := exp.expandAll(stmt.Ops)
		if err != nil {
			return nil, err
		}
		if err := validateChain(expanded, declared, globalDeclared); err != nil {
			return nil, err
		}
		script.Body[i].Ops = expanded
	}

	for _, c := range script.Header.Configs {
		cfg.SetParam(c.OpName, c.Param, literalToValue(c.Value))
	}

	return script, nil
}

// expander replaces every MacroInvocation with a fresh clone of its
// macro's body, recursively, detecting self- or mutually-recursive
// macros before they blow the stack.
type expander struct {
	macros    map[string]ast.MacroDef
	expanding map[string]bool
}

func (e *expander) expandAll(nodes []ast.Op) ([]ast.Op, error) {
	out := make([]ast.Op, 0, len(nodes))
	for _, n := range nodes {
		expanded, err := e.expandOne(n)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

func (e *expander) expandOne(op ast.Op) ([]ast.Op, error) {
	switch o := op.(type) {
	case *ast.MacroInvocation:
		def, ok := e.macros[o.Name]
		if !ok {
			return nil, errorf("%d:%d: do %s: no such macro", o.Pos.Line, o.Pos.Column, o.Name)
		}
		if e.expanding[o.Name] {
			return nil, errorf("%d:%d: macro %q recurses into itself", o.Pos.Line, o.Pos.Column, o.Name)
		}
		e.expanding[o.Name] = true
		body, err := e.expandAll(ast.CloneAll(def.Body))
		e.expanding[o.Name] = false
		if err != nil {
			return nil, err
		}
		if o.Mod == ast.ModNone {
			return body, nil
		}
		// "preserving modifier on the invocation" (spec.md §4.2): the
		// macro body, however many ops it expands to, is the base
		// operation the invocation's modifier wraps — exactly what a
		// sinkless block already does for a multi-op inner chain, so
		// reuse it rather than losing the modifier on expansion.
		return []ast.Op{&ast.BlockOp{Mod: o.Mod, Inner: body, Pos: o.Pos}}, nil
	case *ast.BlockOp:
		inner, err := e.expandAll(o.Inner)
		if err != nil {
			return nil, err
		}
		c := *o
		c.Inner = inner
		return []ast.Op{&c}, nil
	case *ast.CombinatorOp:
		c := *o
		c.Clauses = make([][]ast.Op, len(o.Clauses))
		for i, clause := range o.Clauses {
			expanded, err := e.expandAll(clause)
			if err != nil {
				return nil, err
			}
			c.Clauses[i] = expanded
		}
		return []ast.Op{&c}, nil
	default:
		return []ast.Op{op}, nil
	}
}

var globalLeafArgNames = map[string]bool{
	"glist_in": true, "gset_in": true, "glist_drop": true,
}

// validateChain walks a resolved chain checking every sink's and every
// global-list leaf's name against its declaration, and every modifier
// against the kind of operation it's attached to (spec.md §4.2: "Verifies:
// modifier legality").
func validateChain(nodes []ast.Op, declared map[string]ast.ListDecl, globalDeclared map[string]ast.GlobalListDecl) error {
	for _, op := range nodes {
		switch o := op.(type) {
		case *ast.LeafOp:
			builder, ok := ops.LookupLeaf(o.Name)
			if !ok {
				return errorf("%d:%d: unknown operation %q", o.Pos.Line, o.Pos.Column, o.Name)
			}
			_, kind, err := builder(o.Args)
			if err != nil {
				return errorf("%d:%d: %s: %v", o.Pos.Line, o.Pos.Column, o.Name, err)
			}
			if err := checkLeafModifier(o.Mod, kind, o.Name, o.Pos); err != nil {
				return err
			}
			if globalLeafArgNames[o.Name] && len(o.Args) == 1 && o.Args[0].Kind == ast.LitString {
				if _, ok := globalDeclared[o.Args[0].Str]; !ok {
					return errorf("%d:%d: %s %q: no such declared global list", o.Pos.Line, o.Pos.Column, o.Name, o.Args[0].Str)
				}
			}
		case *ast.BlockOp:
			if o.Mod == ast.ModBang {
				return errorf("%d:%d: modifier '!' only applies to Filter operations, not a block", o.Pos.Line, o.Pos.Column)
			}
			if o.Sink.Kind != ast.SinkNone {
				if _, ok := declared[o.Sink.List]; !ok {
					return errorf("%d:%d: sink targets undeclared list %q", o.Pos.Line, o.Pos.Column, o.Sink.List)
				}
			}
			if err := validateChain(o.Inner, declared, globalDeclared); err != nil {
				return err
			}
		case *ast.CombinatorOp:
			if err := checkCombinatorModifier(o.Mod, o.Name, o.Pos); err != nil {
				return err
			}
			for _, c := range o.Clauses {
				if err := validateChain(c, declared, globalDeclared); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// checkLeafModifier enforces spec.md §4.4's per-kind modifier table for a
// single leaf: '+'/'*' only wrap a Transformer or Extractor; '!'/'~' only
// wrap a Filter.
func checkLeafModifier(mod ast.Modifier, kind ops.Kind, name string, pos ast.Position) error {
	switch mod {
	case ast.ModNone:
		return nil
	case ast.ModPlus, ast.ModStar:
		if kind != ops.Transformer && kind != ops.Extractor {
			return errorf("%d:%d: modifier %q only applies to Transformer/Extractor operations, not %s %q", pos.Line, pos.Column, mod, kind, name)
		}
	case ast.ModBang, ast.ModTilde:
		if kind != ops.Filter {
			return errorf("%d:%d: modifier %q only applies to Filter operations, not %s %q", pos.Line, pos.Column, mod, kind, name)
		}
	}
	return nil
}

// checkCombinatorModifier enforces spec.md §4.4's modifier table for a
// true MetaOperation combinator (or, ilist_if_all, ilist_foreach,
// ilist_concat, ilist_unique/iset_unique, ilist_max/iset_max, ilist_ratio,
// restart, select_longest): only '~' ("Filter or filter-like combinator")
// applies. Unlike a block, a combinator has no homogeneous inner chain of
// its own to aggregate a kind from, so '+'/'*' (Transformer/Extractor-only)
// and '!' (Filter-only) are always illegal here.
func checkCombinatorModifier(mod ast.Modifier, name string, pos ast.Position) error {
	switch mod {
	case ast.ModNone, ast.ModTilde:
		return nil
	default:
		return errorf("%d:%d: modifier %q does not apply to combinator %q", pos.Line, pos.Column, mod, name)
	}
}

func literalToValue(l ast.Literal) djconfig.Value {
	switch l.Kind {
	case ast.LitInt:
		return djconfig.IntValue(l.Int)
	case ast.LitList:
		items := make([]string, 0, len(l.List))
		for _, it := range l.List {
			if it.Kind == ast.LitString {
				items = append(items, it.Str)
			}
		}
		return djconfig.ListValue(items)
	default:
		return djconfig.StringValue(l.Str)
	}
}
