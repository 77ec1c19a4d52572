package runtime

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputReportWritesLineToStdout(t *testing.T) {
	var buf bytes.Buffer
	o := NewOutput(&buf, false)
	o.Report("hello")
	o.Report("world")
	assert.Equal(t, "hello\nworld\n", buf.String())
}

func TestOutputReportOnNilReceiverIsANoop(t *testing.T) {
	var o *Output
	assert.NotPanics(t, func() { o.Report("x") })
}

func TestOutputWriteOnNilReceiverIsANoop(t *testing.T) {
	var o *Output
	err := o.Write("whatever.txt", "x")
	assert.NoError(t, err)
}

func TestOutputWriteAppendsToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	o := NewOutput(&bytes.Buffer{}, false)

	require.NoError(t, o.Write(path, "one"))
	require.NoError(t, o.Write(path, "two"))
	require.NoError(t, o.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(b))
}

func TestOutputCreateTruncatesBeforeWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale data\n"), 0o644))

	o := NewOutput(&bytes.Buffer{}, false)
	require.NoError(t, o.Create(path))
	require.NoError(t, o.Write(path, "fresh"))
	require.NoError(t, o.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(b))
}

func TestOutputDedupeGlobalDropsRepeatsAcrossDestinations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	var buf bytes.Buffer
	o := NewOutput(&buf, true)

	o.Report("dup")
	require.NoError(t, o.Write(path, "dup"))
	require.NoError(t, o.Close())

	assert.Equal(t, "dup\n", buf.String())
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, string(b))
}

func TestOutputWithoutDedupeAllowsRepeats(t *testing.T) {
	var buf bytes.Buffer
	o := NewOutput(&buf, false)
	o.Report("dup")
	o.Report("dup")
	assert.Equal(t, "dup\ndup\n", buf.String())
}
