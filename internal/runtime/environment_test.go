package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEntryGivesEachEntryFreshNamedLists(t *testing.T) {
	tmpl := NewTemplate(nil, nil, nil, map[string]ListSpec{
		"Survivors": {Set: false},
	})

	env1 := tmpl.ForEntry()
	env1.NamedLists["Survivors"].Append("alpha")
	require.Equal(t, []string{"alpha"}, env1.NamedLists["Survivors"].Items())

	env2 := tmpl.ForEntry()
	assert.Empty(t, env2.NamedLists["Survivors"].Items())
	assert.NotSame(t, env1.NamedLists["Survivors"], env2.NamedLists["Survivors"])
}

func TestForEntryBuildsSetsFromListSpec(t *testing.T) {
	tmpl := NewTemplate(nil, nil, nil, map[string]ListSpec{
		"Seen": {Set: true},
	})
	env := tmpl.ForEntry()
	env.NamedLists["Seen"].Append("x")
	env.NamedLists["Seen"].Append("x")
	assert.Equal(t, []string{"x"}, env.NamedLists["Seen"].Items())
}

func TestForEntryGivesEachEntryItsOwnRestartStack(t *testing.T) {
	tmpl := NewTemplate(nil, nil, nil, nil)
	env1 := tmpl.ForEntry()
	env1.Restart.Push(3)
	assert.Equal(t, 1, env1.Restart.Depth())

	env2 := tmpl.ForEntry()
	assert.Equal(t, 0, env2.Restart.Depth())
}

func TestForEntrySharesTemplateReadOnlyState(t *testing.T) {
	ignore := map[string]bool{"banned": true}
	globals := map[string]*GlobalList{"Common": NewGlobalList(false, []string{"a"})}
	tmpl := NewTemplate(ignore, globals, nil, nil)

	env := tmpl.ForEntry()
	assert.True(t, env.Ignore["banned"])
	assert.Same(t, globals["Common"], env.GlobalLists["Common"])
}
