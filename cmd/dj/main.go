// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dictionaryjuggler/dj/internal/djconfig"
	"github.com/dictionaryjuggler/dj/internal/engine"
	"github.com/dictionaryjuggler/dj/parse"
)

var (
	scriptFile = flag.String("o", "", "script file (else a positional inline script, or one read from stdin if neither is given)")
	dictFile   = flag.String("d", "", "input dictionary path (else standard input)")
	dedupe     = flag.Bool("u", false, "deduplicate all emissions globally (requires enough memory)")
	verbose    = flag.Bool("v", false, "log each input entry as it is processed or ignored")
	timing     = flag.Bool("t", false, "report elapsed processing time when the run ends (no per-operation tracing)")
	prog       = flag.Bool("progress", false, "report a running entry count while processing")
	pace       = flag.Int("pace", 0, "entries between progress reports (default: 1000)")
	jobs       = flag.Int("workers", 1, "number of entries to process concurrently")
)

const (
	exitOK          = 0
	exitRuntimeErr  = 1
	exitParseErr    = 2
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dj: ")

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
	}

	name, src, err := readScript(*scriptFile, flag.Arg(0))
	if err != nil {
		log.Fatalf("%s", err)
	}

	dict, closeDict, err := openDict(*dictFile)
	if err != nil {
		log.Fatalf("%s", err)
	}
	defer closeDict()

	cfg := djconfig.New()
	cfg.SetScriptPath(*scriptFile)
	cfg.SetDictPath(*dictFile)
	cfg.SetDedupeGlobal(*dedupe)
	cfg.SetVerbose(*verbose)
	cfg.SetTiming(*timing)
	cfg.SetTraceOps(*timing && *verbose)
	cfg.SetProgress(*prog)
	cfg.SetPace(*pace)

	start := time.Now()
	err = engine.RunScript(name, src, cfg, dict, os.Stdout, *jobs)
	if *timing {
		log.Printf("elapsed: %s", time.Since(start))
	}
	if err != nil {
		if _, ok := err.(*parse.Error); ok {
			log.Print(err)
			os.Exit(exitParseErr)
		}
		log.Print(err)
		os.Exit(exitRuntimeErr)
	}
	os.Exit(exitOK)
}

// readScript resolves the script source per the CLI contract: -o <path>,
// a positional inline script, or standard input, in that priority order.
func readScript(path, inline string) (name, src string, err error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", "", err
		}
		return path, string(b), nil
	}
	if inline != "" {
		return "<inline>", inline, nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", err
	}
	return "<stdin>", string(b), nil
}

func openDict(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: dj [flags] [inline-script]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(exitParseErr)
}
