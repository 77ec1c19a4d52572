package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamedListAppendsInOrder(t *testing.T) {
	l := NewNamedList(false)
	l.Append("a")
	l.Append("b")
	l.Append("a")
	assert.Equal(t, []string{"a", "b", "a"}, l.Items())
	assert.Equal(t, 3, l.Len())
}

func TestNamedListSetDropsRepeats(t *testing.T) {
	l := NewNamedList(true)
	l.Append("a")
	l.Append("b")
	l.Append("a")
	assert.Equal(t, []string{"a", "b"}, l.Items())
	assert.Equal(t, 2, l.Len())
}

func TestNamedListItemsIsASnapshot(t *testing.T) {
	l := NewNamedList(false)
	l.Append("a")
	snap := l.Items()
	l.Append("b")
	assert.Equal(t, []string{"a"}, snap)
}

func TestGlobalListContainsOnSet(t *testing.T) {
	g := NewGlobalList(true, []string{"x", "y"})
	assert.True(t, g.Contains("x"))
	assert.False(t, g.Contains("z"))
}

func TestGlobalListContainsOnPlainListFallsBackToScan(t *testing.T) {
	g := NewGlobalList(false, []string{"x", "y", "x"})
	assert.True(t, g.Contains("y"))
	assert.False(t, g.Contains("z"))
	assert.Equal(t, []string{"x", "y", "x"}, g.Items())
}
