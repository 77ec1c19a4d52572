package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/internal/djconfig"
	_ "github.com/dictionaryjuggler/dj/ops/combinators"
	_ "github.com/dictionaryjuggler/dj/ops/leaves"
	"github.com/dictionaryjuggler/dj/parse"
)

func mustParse(t *testing.T, src string) *ast.Script {
	t.Helper()
	script, err := parse.Parse("test", src)
	require.NoError(t, err)
	return script
}

func TestResolveExpandsMacro(t *testing.T) {
	script := mustParse(t, "def Norm lower strip\n"+
		"do Norm\n")
	resolved, err := Resolve(script, djconfig.New())
	require.NoError(t, err)
	require.Len(t, resolved.Body, 1)
	ops := resolved.Body[0].Ops
	require.Len(t, ops, 2)
	leaf0, ok := ops[0].(*ast.LeafOp)
	require.True(t, ok)
	assert.Equal(t, "lower", leaf0.Name)
	leaf1, ok := ops[1].(*ast.LeafOp)
	require.True(t, ok)
	assert.Equal(t, "strip", leaf1.Name)
}

func TestResolveRejectsUnknownMacro(t *testing.T) {
	script := mustParse(t, "do Missing\n")
	_, err := Resolve(script, djconfig.New())
	require.Error(t, err)
}

func TestResolveDetectsSelfRecursion(t *testing.T) {
	script := mustParse(t, "def Loop lower do Loop\n"+
		"do Loop\n")
	_, err := Resolve(script, djconfig.New())
	require.Error(t, err)
}

func TestResolveValidatesUseAgainstDeclaredList(t *testing.T) {
	script := mustParse(t, "list Survivors\n"+
		"use Missing lower\n")
	_, err := Resolve(script, djconfig.New())
	require.Error(t, err)
}

func TestResolveAcceptsDeclaredUseAndSink(t *testing.T) {
	script := mustParse(t, "list Survivors\n"+
		"{lower}> Survivors\n")
	resolved, err := Resolve(script, djconfig.New())
	require.NoError(t, err)
	require.Len(t, resolved.Body, 1)
}

func TestResolveRejectsUndeclaredSinkTarget(t *testing.T) {
	script := mustParse(t, "{lower}> Ghost\n")
	_, err := Resolve(script, djconfig.New())
	require.Error(t, err)
}

func TestResolveRejectsUndeclaredGlobalListReference(t *testing.T) {
	script := mustParse(t, "glist_in \"Ghost\"\n")
	_, err := Resolve(script, djconfig.New())
	require.Error(t, err)
}

func TestResolveAcceptsDeclaredGlobalListReference(t *testing.T) {
	script := mustParse(t, "global_list Common \"common.txt\"\n"+
		"glist_in \"Common\"\n")
	_, err := Resolve(script, djconfig.New())
	require.NoError(t, err)
}

func TestResolveBindsConfigDirectives(t *testing.T) {
	script := mustParse(t, "config sieve rate 50\n"+
		"lower\n")
	cfg := djconfig.New()
	_, err := Resolve(script, cfg)
	require.NoError(t, err)
	v, ok := cfg.Param("sieve", "rate")
	require.True(t, ok)
	assert.Equal(t, 50, v.Int)
}

func TestResolveExpandsMacroInsideBlock(t *testing.T) {
	script := mustParse(t, "def Norm lower\n"+
		"list Out\n"+
		"{do Norm}> Out\n")
	resolved, err := Resolve(script, djconfig.New())
	require.NoError(t, err)
	block, ok := resolved.Body[0].Ops[0].(*ast.BlockOp)
	require.True(t, ok)
	require.Len(t, block.Inner, 1)
	leaf, ok := block.Inner[0].(*ast.LeafOp)
	require.True(t, ok)
	assert.Equal(t, "lower", leaf.Name)
}

func TestResolveDuplicateListDeclarationErrors(t *testing.T) {
	script := mustParse(t, "list Dup\nlist Dup\nlower\n")
	_, err := Resolve(script, djconfig.New())
	require.Error(t, err)
}

func TestResolveDuplicateMacroDefinitionErrors(t *testing.T) {
	script := mustParse(t, "def Norm lower\ndef Norm upper\ndo Norm\n")
	_, err := Resolve(script, djconfig.New())
	require.Error(t, err)
}

func TestResolveMacroExpansionClonesNodes(t *testing.T) {
	script := mustParse(t, "def Norm lower\n"+
		"do Norm\n"+
		"do Norm\n")
	resolved, err := Resolve(script, djconfig.New())
	require.NoError(t, err)
	require.Len(t, resolved.Body, 2)
	first := resolved.Body[0].Ops[0].(*ast.LeafOp)
	second := resolved.Body[1].Ops[0].(*ast.LeafOp)
	assert.NotSame(t, first, second)
}
