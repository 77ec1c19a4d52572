package engine

import (
	"io"
	"os"

	"github.com/dictionaryjuggler/dj/internal/djconfig"
	"github.com/dictionaryjuggler/dj/internal/djerr"
	"github.com/dictionaryjuggler/dj/internal/progress"
	"github.com/dictionaryjuggler/dj/parse"
	"github.com/dictionaryjuggler/dj/resolve"
)

// RunScript parses, resolves, compiles and runs one script against one
// dictionary, the full pipeline of spec.md §2. Any *djerr.Error panicked
// during compilation or evaluation is recovered here and returned as an
// ordinary error, mirroring the teacher's run.Run defer/recover boundary
// around one script's execution.
func RunScript(name, src string, cfg *djconfig.Config, stdin io.Reader, stdout io.Writer, workers int) (err error) {
	script, perr := parse.Parse(name, src)
	if perr != nil {
		return perr
	}
	resolved, rerr := resolve.Resolve(script, cfg)
	if rerr != nil {
		return rerr
	}

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*djerr.Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()

	compiled, cerr := Compile(resolved, cfg, stdout, cfg.DedupeGlobal())
	if cerr != nil {
		return cerr
	}

	var reporter *progress.Reporter
	if cfg.Progress() {
		pace := cfg.Pace()
		if pace <= 0 {
			pace = 1000
		}
		reporter = progress.New(os.Stderr, os.Stderr.Fd(), pace)
	}
	return Run(compiled, stdin, workers, cfg.Verbose(), reporter)
}
