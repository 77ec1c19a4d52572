package leaves

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/runtime"
	"github.com/dictionaryjuggler/dj/ops"
)

func buildLeaf(t *testing.T, name string, args []ast.Literal) ops.ElementOp {
	t.Helper()
	b, ok := ops.LookupLeaf(name)
	require.True(t, ok, "leaf %q not registered", name)
	op, kind, err := b(args)
	require.NoError(t, err)
	assert.Equal(t, ops.Transformer, kind)
	return op
}

func TestReportWritesToStdoutAndPassesThrough(t *testing.T) {
	var buf bytes.Buffer
	output := runtime.NewOutput(&buf, false)
	env := runtime.NewTemplate(nil, nil, output, nil).ForEntry()

	op := buildLeaf(t, "report", nil)
	res := op.ApplyElement(env, "passphrase")

	assert.Equal(t, "passphrase\n", buf.String())
	assert.False(t, res.IsNA())
	assert.Equal(t, []string{"passphrase"}, []string(res.List()))
}

func TestResultBehavesLikeReport(t *testing.T) {
	var buf bytes.Buffer
	output := runtime.NewOutput(&buf, false)
	env := runtime.NewTemplate(nil, nil, output, nil).ForEntry()

	op := buildLeaf(t, "result", nil)
	op.ApplyElement(env, "entry1")
	assert.Equal(t, "entry1\n", buf.String())
}

func TestWriteAppendsToFileAndPassesThrough(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	output := runtime.NewOutput(&bytes.Buffer{}, false)
	env := runtime.NewTemplate(nil, nil, output, nil).ForEntry()

	op := buildLeaf(t, "write", []ast.Literal{{Kind: ast.LitString, Str: path}})
	res := op.ApplyElement(env, "mangled1")
	require.NoError(t, output.Close())

	assert.Equal(t, []string{"mangled1"}, []string(res.List()))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mangled1\n", string(b))
}

func TestWriteRequiresAStringPathArgument(t *testing.T) {
	b, ok := ops.LookupLeaf("write")
	require.True(t, ok)
	_, _, err := b([]ast.Literal{{Kind: ast.LitInt, Int: 3}})
	assert.Error(t, err)
}

func TestClassifyPrependsTagAndPassesThrough(t *testing.T) {
	op := buildLeaf(t, "classify", []ast.Literal{{Kind: ast.LitString, Str: "[leaked]"}})
	env := runtime.NewTemplate(nil, nil, nil, nil).ForEntry()
	res := op.ApplyElement(env, "secret")
	assert.Equal(t, []string{"[leaked]secret"}, []string(res.List()))
}

func TestReportRejectsArguments(t *testing.T) {
	b, ok := ops.LookupLeaf("report")
	require.True(t, ok)
	_, _, err := b([]ast.Literal{{Kind: ast.LitString, Str: "oops"}})
	assert.Error(t, err)
}
