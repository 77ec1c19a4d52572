// Package engine drives a resolved script over an input dictionary: the
// per-entry state machine of spec.md §4.9 (Reading -> Ignoring? ->
// Executing -> Emitting -> Resetting named lists), and the worker pool
// that parallelises it across entries per §5.
package engine

import (
	"io"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/djconfig"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"

	// Registers every leaf and combinator into ops' global registries via
	// their init() functions.
	_ "github.com/dictionaryjuggler/dj/ops/combinators"
	"github.com/dictionaryjuggler/dj/ops/leaves"
)

// Statement is one compiled top-level chain, ready to run against either
// a raw input entry (UseNames empty) or the concatenation of its named
// sources (UseNames non-empty), per spec.md §4.6.
type Statement struct {
	UseNames []string
	Chain    ops.Chain
}

// Script is a fully compiled, ready-to-run script: its statements split
// into population statements (run first, per entry) and use statements
// (run after, reading what the population statements deposited into
// this entry's named lists), plus the run-wide Template every entry's
// Environment is built from.
type Script struct {
	Population []Statement
	Uses       []Statement
	Template   *runtime.Template
	Config     *djconfig.Config
}

// Compile turns a resolved (macro-expanded, config-bound, validated)
// ast.Script into a Script ready for Run. resolved and cfg are the
// outputs of resolve.Resolve.
func Compile(resolved *ast.Script, cfg *djconfig.Config, stdout io.Writer, dedupeGlobal bool) (*Script, error) {
	leaves.SetConfig(cfg)

	ignore, err := loadIgnore(resolved.Header.Ignore)
	if err != nil {
		return nil, err
	}
	globalLists, err := loadGlobalLists(resolved.Header.GlobalLists)
	if err != nil {
		return nil, err
	}

	listSpecs := make(map[string]runtime.ListSpec, len(resolved.Header.Lists))
	for _, l := range resolved.Header.Lists {
		listSpecs[l.Name] = runtime.ListSpec{Set: l.Set}
	}

	script := &Script{Config: cfg}
	for _, stmt := range resolved.Body {
		chain, err := ops.Build(stmt.Ops)
		if err != nil {
			return nil, err
		}
		compiled := Statement{UseNames: stmt.UseNames, Chain: chain}
		if len(stmt.UseNames) == 0 {
			script.Population = append(script.Population, compiled)
		} else {
			script.Uses = append(script.Uses, compiled)
		}
	}

	output := runtime.NewOutput(stdout, dedupeGlobal)
	for _, path := range resolved.Header.Create {
		if err := output.Create(path); err != nil {
			return nil, err
		}
	}
	script.Template = runtime.NewTemplate(ignore, globalLists, output, listSpecs)
	return script, nil
}
