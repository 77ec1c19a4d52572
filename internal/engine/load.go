package engine

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

// loadIgnore reads every file named by an `ignore "path"` directive and
// returns the union of their lines (spec.md §3's Ignore set).
func loadIgnore(paths []string) (map[string]bool, error) {
	ignore := make(map[string]bool)
	for _, path := range paths {
		if err := loadLinesInto(path, ignore); err != nil {
			return nil, fmt.Errorf("ignore %q: %w", path, err)
		}
	}
	return ignore, nil
}

func loadLinesInto(path string, into map[string]bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			into[line] = true
		}
	}
	return scanner.Err()
}

// loadGlobalLists loads every `global_list`/`global_set` header directive
// from its file, applying its optional filter sub-pipeline per line, in
// declaration order so a later global list's filter chain may reference
// an earlier one.
func loadGlobalLists(decls []ast.GlobalListDecl) (map[string]*runtime.GlobalList, error) {
	out := make(map[string]*runtime.GlobalList, len(decls))
	for _, decl := range decls {
		items, err := loadGlobalListFile(decl, out)
		if err != nil {
			return nil, fmt.Errorf("global_list %s %q: %w", decl.Name, decl.Path, err)
		}
		out[decl.Name] = runtime.NewGlobalList(decl.Set, items)
	}
	return out, nil
}

func loadGlobalListFile(decl ast.GlobalListDecl, loadedSoFar map[string]*runtime.GlobalList) ([]string, error) {
	f, err := os.Open(decl.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var chain ops.Chain
	if len(decl.Ops) > 0 {
		var err error
		chain, err = ops.Build(decl.Ops)
		if err != nil {
			return nil, err
		}
	}
	env := &runtime.Environment{GlobalLists: loadedSoFar, Restart: &runtime.RestartStack{}}

	var items []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if chain == nil {
			items = append(items, line)
			continue
		}
		items = append(items, chain.Eval(env, ilist.IList{line})...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
