package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dictionaryjuggler/dj/ast"
)

func TestLoadIgnoreUnionsMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.txt")
	p2 := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(p1, []byte("one\ntwo\n"), 0o644))
	require.NoError(t, os.WriteFile(p2, []byte("two\nthree\n\n"), 0o644))

	ignore, err := loadIgnore([]string{p1, p2})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"one": true, "two": true, "three": true}, ignore)
}

func TestLoadIgnoreMissingFileErrors(t *testing.T) {
	_, err := loadIgnore([]string{"/nonexistent/path/ignore.txt"})
	assert.Error(t, err)
}

func TestLoadGlobalListsWithoutFilterKeepsLinesVerbatim(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "common.txt")
	require.NoError(t, os.WriteFile(path, []byte("Alpha\nBeta\n\n"), 0o644))

	out, err := loadGlobalLists([]ast.GlobalListDecl{{Name: "Common", Path: path}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta"}, out["Common"].Items())
}

func TestLoadGlobalListsAppliesFilterChain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "common.txt")
	require.NoError(t, os.WriteFile(path, []byte("Alpha\nBeta\n"), 0o644))

	decl := ast.GlobalListDecl{
		Name: "Common",
		Path: path,
		Ops:  []ast.Op{&ast.LeafOp{Name: "lower"}},
	}
	out, err := loadGlobalLists([]ast.GlobalListDecl{decl})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, out["Common"].Items())
}

func TestLoadGlobalListsLaterListsCanReferenceEarlierOnes(t *testing.T) {
	dir := t.TempDir()
	basePath := filepath.Join(dir, "base.txt")
	derivedPath := filepath.Join(dir, "derived.txt")
	require.NoError(t, os.WriteFile(basePath, []byte("alpha\n"), 0o644))
	require.NoError(t, os.WriteFile(derivedPath, []byte("alpha\nbeta\n"), 0o644))

	decls := []ast.GlobalListDecl{
		{Name: "Base", Path: basePath},
		{Name: "Derived", Path: derivedPath, Ops: []ast.Op{
			&ast.LeafOp{Name: "glist_drop", Args: []ast.Literal{ast.String("Base")}},
		}},
	}
	out, err := loadGlobalLists(decls)
	require.NoError(t, err)
	assert.Equal(t, []string{"beta"}, out["Derived"].Items())
}

func TestLoadGlobalListsMissingFileErrors(t *testing.T) {
	_, err := loadGlobalLists([]ast.GlobalListDecl{{Name: "Gone", Path: "/nonexistent/list.txt"}})
	assert.Error(t, err)
}
