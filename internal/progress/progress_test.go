package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickRespectsConfiguredPace(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, ^uintptr(0), 10) // an invalid fd, so isTTY is false

	r.Tick(3)
	assert.Empty(t, buf.String(), "should not report before reaching the pace interval")

	r.Tick(10)
	assert.Contains(t, buf.String(), "10 entries")
}

func TestTickDisabledWhenPaceIsZero(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, ^uintptr(0), 0)
	r.Tick(1000)
	assert.Empty(t, buf.String())
}

func TestDoneAlwaysPrintsASummary(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, ^uintptr(0), 0)
	r.Done(42)
	assert.Contains(t, buf.String(), "42 entries processed")
}

func TestNonTTYLinesAreNewlineTerminatedNotRedrawn(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, ^uintptr(0), 1)
	r.Tick(1)
	assert.NotContains(t, buf.String(), "\033[K")
}
