// Package runtime holds the state an evaluation needs while it walks a
// resolved AST over one dictionary: the ignore set, the script's declared
// named lists and loaded global lists, output sinks, and the
// restart-combinator stack.
package runtime

// ListSpec records a declared `list NAME` / `set NAME` directive's shape,
// used to build a fresh set of per-entry NamedLists for every entry.
type ListSpec struct {
	Set bool
}

// Template holds the run-wide, read-only-after-startup state that every
// entry's Environment is built from: the ignore set, the loaded global
// lists, the output sinks, and the declared named-list shapes (spec.md
// §3's "Global lists and configuration are read-only after startup").
type Template struct {
	Ignore      map[string]bool
	GlobalLists map[string]*GlobalList
	Output      *Output
	ListSpecs   map[string]ListSpec
}

// NewTemplate builds a Template from a script's loaded state.
func NewTemplate(ignore map[string]bool, globalLists map[string]*GlobalList, output *Output, listSpecs map[string]ListSpec) *Template {
	return &Template{Ignore: ignore, GlobalLists: globalLists, Output: output, ListSpecs: listSpecs}
}

// ForEntry builds a fresh Environment for one dictionary entry: its own
// NamedLists (spec.md §3's "Per-entry named lists are allocated when
// declared... and reset at the start of each input entry") and its own
// RestartStack, sharing the template's read-only state. Safe to call
// concurrently from multiple worker goroutines -- nothing it returns is
// shared with any other entry's Environment.
func (t *Template) ForEntry() *Environment {
	lists := make(map[string]*NamedList, len(t.ListSpecs))
	for name, spec := range t.ListSpecs {
		lists[name] = NewNamedList(spec.Set)
	}
	return &Environment{
		Ignore:      t.Ignore,
		NamedLists:  lists,
		GlobalLists: t.GlobalLists,
		Output:      t.Output,
		Restart:     &RestartStack{},
	}
}

// Environment is the per-entry runtime state threaded through the
// evaluation of one dictionary entry.
type Environment struct {
	Ignore      map[string]bool
	NamedLists  map[string]*NamedList
	GlobalLists map[string]*GlobalList
	Output      *Output
	Restart     *RestartStack
}
