package engine

import (
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
)

// processEntry runs one dictionary entry through the whole script,
// per spec.md §4.9: population statements first (in textual order), then
// use statements (also in textual order), each fed the concatenation of
// its named sources, per the contract that "use chains run after the
// chains that populate their sources" (spec.md §4.6).
func processEntry(script *Script, entry string) {
	env := script.Template.ForEntry()

	for _, stmt := range script.Population {
		stmt.Chain.Eval(env, ilist.IList{entry})
	}
	for _, stmt := range script.Uses {
		in := concatNamedLists(env, stmt.UseNames)
		stmt.Chain.Eval(env, in)
	}
}

func concatNamedLists(env *runtime.Environment, names []string) ilist.IList {
	var in ilist.IList
	for _, name := range names {
		if l := env.NamedLists[name]; l != nil {
			in = append(in, l.Items()...)
		}
	}
	return in
}
