package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestartStackPushPopDepth(t *testing.T) {
	s := &RestartStack{}
	assert.Equal(t, 0, s.Depth())
	assert.Nil(t, s.Top())

	s.Push(5)
	s.Push(2)
	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, 2, s.Top().Bound)

	s.Pop()
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, 5, s.Top().Bound)
}

func TestRestartStackTickAdvancesInnermostFrame(t *testing.T) {
	s := &RestartStack{}
	s.Push(3)
	s.Push(3)
	s.Tick()
	s.Tick()
	assert.Equal(t, 2, s.Top().Pass)

	s.Pop()
	assert.Equal(t, 0, s.Top().Pass)
}

func TestRestartStackResetClearsAllFrames(t *testing.T) {
	s := &RestartStack{}
	s.Push(1)
	s.Push(1)
	s.Reset()
	assert.Equal(t, 0, s.Depth())
	assert.Nil(t, s.Top())
}
