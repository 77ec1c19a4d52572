// Package leaves implements the Transformer, Extractor and Filter leaf
// operations of spec.md §4.3: concrete per-entry string manipulations,
// registered into ops' global registry via init() so that ops.Build can
// find them by name.
package leaves

import (
	"fmt"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/djconfig"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

// config holds the current script's bound configuration, set once by the
// engine before ops.Build compiles the script's chains. Leaves that read
// `config op-name param value` bindings (sieve, is_regular_word) consult
// it at build time, since the binding never changes mid-run.
var config = djconfig.New()

// SetConfig installs the configuration the next Build call's leaves
// should read from.
func SetConfig(c *djconfig.Config) {
	if c == nil {
		c = djconfig.New()
	}
	config = c
}

type elementOpFunc struct {
	kind ops.Kind
	fn   func(env *runtime.Environment, s string) ilist.Result
}

func (o *elementOpFunc) Kind() ops.Kind { return o.kind }
func (o *elementOpFunc) ApplyElement(env *runtime.Environment, s string) ilist.Result {
	return o.fn(env, s)
}

func leaf(kind ops.Kind, fn func(*runtime.Environment, string) ilist.Result) ops.ElementOp {
	return &elementOpFunc{kind: kind, fn: fn}
}

// transform is a convenience for the common Transformer case: fn's
// output replaces the input, N/A if it equals the input verbatim, or
// the empty ilist if it is the empty string (spec §4.3's Transformer
// contract; original_source/operations/lower.py and friends return
// None for an unchanged entry).
func transform(fn func(string) string) ops.ElementOp {
	return leaf(ops.Transformer, func(_ *runtime.Environment, s string) ilist.Result {
		out := fn(s)
		if out == s {
			return ilist.NA
		}
		if out == "" {
			return ilist.Empty()
		}
		return ilist.One(out)
	})
}

// filter is a convenience for a pure predicate: true keeps the element,
// false rejects it as N/A.
func filter(pred func(string) bool) ops.ElementOp {
	return leaf(ops.Filter, func(_ *runtime.Environment, s string) ilist.Result {
		if pred(s) {
			return ilist.One(s)
		}
		return ilist.NA
	})
}

func requireArgs(name string, args []ast.Literal, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: expected %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func argString(name string, args []ast.Literal, i int) (string, error) {
	if i >= len(args) || args[i].Kind != ast.LitString {
		return "", fmt.Errorf("%s: argument %d must be a string", name, i+1)
	}
	return args[i].Str, nil
}

func argInt(name string, args []ast.Literal, i int) (int, error) {
	if i >= len(args) || args[i].Kind != ast.LitInt {
		return 0, fmt.Errorf("%s: argument %d must be an integer", name, i+1)
	}
	return args[i].Int, nil
}

func argStringList(name string, args []ast.Literal, i int) ([]string, error) {
	if i >= len(args) || args[i].Kind != ast.LitList {
		return nil, fmt.Errorf("%s: argument %d must be a list", name, i+1)
	}
	out := make([]string, 0, len(args[i].List))
	for _, item := range args[i].List {
		if item.Kind != ast.LitString {
			return nil, fmt.Errorf("%s: list elements must be strings", name)
		}
		out = append(out, item.Str)
	}
	return out, nil
}
