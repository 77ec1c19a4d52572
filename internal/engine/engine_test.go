package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dictionaryjuggler/dj/internal/djconfig"
	"github.com/dictionaryjuggler/dj/parse"
	"github.com/dictionaryjuggler/dj/resolve"
)

func compileScript(t *testing.T, src string, cfg *djconfig.Config, stdout *bytes.Buffer) *Script {
	t.Helper()
	script, err := parse.Parse("test", src)
	require.NoError(t, err)
	resolved, err := resolve.Resolve(script, cfg)
	require.NoError(t, err)
	compiled, err := Compile(resolved, cfg, stdout, cfg.DedupeGlobal())
	require.NoError(t, err)
	return compiled
}

func TestEndToEndBlockSinkThenUseReport(t *testing.T) {
	src := "list Out\n" +
		"{lower}> Out\n" +
		"use Out report\n"
	var stdout bytes.Buffer
	compiled := compileScript(t, src, djconfig.New(), &stdout)

	require.NoError(t, Run(compiled, strings.NewReader("HELLO\nWORLD\n"), 1, false, nil))

	assert.Equal(t, "hello\nworld\n", stdout.String())
}

func TestEndToEndIgnoredEntryNeverReachesAnyChain(t *testing.T) {
	dir := t.TempDir()
	ignorePath := filepath.Join(dir, "ignore.txt")
	require.NoError(t, os.WriteFile(ignorePath, []byte("banned\n"), 0o644))

	src := "ignore \"" + ignorePath + "\"\n" +
		"report\n"
	var stdout bytes.Buffer
	compiled := compileScript(t, src, djconfig.New(), &stdout)

	require.NoError(t, Run(compiled, strings.NewReader("banned\nallowed\n"), 1, false, nil))

	assert.Equal(t, "allowed\n", stdout.String())
}

func TestEndToEndGlobalListFilterIsAppliedAtLoad(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "common.txt")
	require.NoError(t, os.WriteFile(listPath, []byte("PASSWORD\nhunter2\n"), 0o644))

	src := "global_set Common \"" + listPath + "\" (lower)\n" +
		"glist_in \"Common\"\n" +
		"report\n"
	var stdout bytes.Buffer
	compiled := compileScript(t, src, djconfig.New(), &stdout)

	require.NoError(t, Run(compiled, strings.NewReader("password\nhunter2\nzzz\n"), 1, false, nil))

	// "PASSWORD" is loaded as "password". "hunter2" is already lower case,
	// so lower returns N/A for it and the load chain drops that line.
	assert.Equal(t, "password\n", stdout.String())
}

func TestEndToEndCreateTruncatesThenWriteAppends(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "leaked.txt")
	require.NoError(t, os.WriteFile(outPath, []byte("stale\n"), 0o644))

	src := "create \"" + outPath + "\"\n" +
		"write \"" + outPath + "\"\n"
	var stdout bytes.Buffer
	compiled := compileScript(t, src, djconfig.New(), &stdout)

	require.NoError(t, Run(compiled, strings.NewReader("one\ntwo\n"), 1, false, nil))

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(b))
}

func TestEndToEndNamedListsAreResetBetweenEntries(t *testing.T) {
	src := "list Out\n" +
		"{lower}> Out\n" +
		"use Out report\n"
	var stdout bytes.Buffer
	compiled := compileScript(t, src, djconfig.New(), &stdout)

	require.NoError(t, Run(compiled, strings.NewReader("ONE\nTWO\n"), 1, false, nil))

	// If Out leaked across entries, the second entry's report would also
	// emit "one" a second time.
	assert.Equal(t, "one\ntwo\n", stdout.String())
}

func TestEndToEndParallelProducesSameEmissionsAsSequential(t *testing.T) {
	src := "report\n"
	input := "alpha\nbeta\ngamma\ndelta\n"

	var seqOut bytes.Buffer
	seq := compileScript(t, src, djconfig.New(), &seqOut)
	require.NoError(t, Run(seq, strings.NewReader(input), 1, false, nil))

	var parOut bytes.Buffer
	par := compileScript(t, src, djconfig.New(), &parOut)
	require.NoError(t, Run(par, strings.NewReader(input), 4, false, nil))

	seqLines := strings.Split(strings.TrimSpace(seqOut.String()), "\n")
	parLines := strings.Split(strings.TrimSpace(parOut.String()), "\n")
	assert.ElementsMatch(t, seqLines, parLines)
}

func TestEndToEndGlobalDedupeDropsRepeatEmissions(t *testing.T) {
	src := "report\n"
	cfg := djconfig.New()
	cfg.SetDedupeGlobal(true)
	var stdout bytes.Buffer
	compiled := compileScript(t, src, cfg, &stdout)

	require.NoError(t, Run(compiled, strings.NewReader("dup\ndup\nother\n"), 1, false, nil))

	assert.Equal(t, "dup\nother\n", stdout.String())
}

func TestEndToEndRemoveWsDropsUnchangedEntry(t *testing.T) {
	src := "remove_ws report\n"
	var stdout bytes.Buffer
	compiled := compileScript(t, src, djconfig.New(), &stdout)

	require.NoError(t, Run(compiled, strings.NewReader("abc\na b c\n"), 1, false, nil))

	// "abc" has no whitespace to remove, so remove_ws returns N/A and the
	// entry never reaches report. "a b c" loses its spaces and proceeds.
	assert.Equal(t, "abc\n", stdout.String())
}

func TestEndToEndMapExpandsEachTargetAsAnAlternative(t *testing.T) {
	src := `+split " " +remove_ws *map " " "-_" +lower report` + "\n"
	var stdout bytes.Buffer
	compiled := compileScript(t, src, djconfig.New(), &stdout)

	require.NoError(t, Run(compiled, strings.NewReader("Audi RS\n"), 1, false, nil))

	// +split and +remove_ws keep "Audi RS" alongside "Audi", "RS" and
	// "AudiRS". *map then hits the space in "Audi RS" (it's the only
	// surviving entry that still contains one), so per the '*' law
	// (dj_ops.py's KeepOnlyIfNotApplicableModifier: the original survives
	// only when the wrapped op does not apply) "Audi RS" is replaced by
	// its two alternatives rather than kept alongside them. +lower then
	// doubles every surviving entry.
	want := strings.Join([]string{
		"Audi-RS", "audi-rs", "Audi_RS", "audi_rs",
		"AudiRS", "audirs", "Audi", "audi", "RS", "rs",
	}, "\n") + "\n"
	assert.Equal(t, want, stdout.String())
}

func TestEndToEndRestartStopsOnceFilterNoLongerPasses(t *testing.T) {
	src := "restart 1 ( min length 8 , deduplicate ) report\n"
	var stdout bytes.Buffer
	compiled := compileScript(t, src, djconfig.New(), &stdout)

	require.NoError(t, Run(compiled, strings.NewReader("aaabbbccc\n"), 1, false, nil))

	// "aaabbbccc" (9 chars) passes min_length 8, so deduplicate runs once and
	// produces "abc" (3 chars), which fails min_length 8 and stops the loop.
	assert.Equal(t, "abc\n", stdout.String())
}
