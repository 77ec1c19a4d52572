package engine

import (
	"bufio"
	"context"
	"io"
	"log"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/dictionaryjuggler/dj/internal/progress"
)

// Run streams entries from r through script, one goroutine per entry with
// at most workers running at once (spec.md §5's "entries are independent and may be parallelised across
// worker threads"). workers <= 1 runs strictly sequentially, preserving
// the single-threaded ordering guarantee; the worker pool otherwise gives
// no ordering guarantee between entries, only line-atomicity within one
// entry's emissions (enforced by runtime.Output's per-destination mutex).
// reporter is nil when --progress was not requested.
func Run(script *Script, r io.Reader, workers int, verbose bool, reporter *progress.Reporter) error {
	defer func() {
		if err := script.Template.Output.Close(); err != nil && verbose {
			log.Printf("dj: closing output: %v", err)
		}
	}()

	if workers <= 1 {
		return runSequential(script, r, verbose, reporter)
	}
	return runParallel(script, r, workers, verbose, reporter)
}

func runSequential(script *Script, r io.Reader, verbose bool, reporter *progress.Reporter) error {
	scanner := bufio.NewScanner(r)
	count := 0
	for scanner.Scan() {
		count++
		entry := normalizeEntry(scanner.Text())
		if entry == "" {
			continue
		}
		if script.Template.Ignore[entry] {
			if verbose {
				log.Printf("dj: entry %d: ignored %q", count, entry)
			}
			continue
		}
		if verbose {
			log.Printf("dj: entry %d: %q", count, entry)
		}
		processEntry(script, entry)
		if reporter != nil {
			reporter.Tick(count)
		}
	}
	if reporter != nil {
		reporter.Done(count)
	}
	return scanner.Err()
}

func runParallel(script *Script, r io.Reader, workers int, verbose bool, reporter *progress.Reporter) error {
	scanner := bufio.NewScanner(r)
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	count := 0
	for scanner.Scan() {
		count++
		n := count
		entry := normalizeEntry(scanner.Text())
		if entry == "" {
			continue
		}
		if script.Template.Ignore[entry] {
			if verbose {
				log.Printf("dj: entry %d: ignored %q", n, entry)
			}
			continue
		}
		g.Go(func() error {
			if verbose {
				log.Printf("dj: entry %d: %q", n, entry)
			}
			processEntry(script, entry)
			if reporter != nil {
				reporter.Tick(n)
			}
			return nil
		})
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	err := g.Wait()
	if reporter != nil {
		reporter.Done(count)
	}
	return err
}

// normalizeEntry strips the blank-line case and NFC-normalizes the rest,
// so diacritic-sensitive leaves (deleetify, correct_spelling) see a
// canonical form instead of an arbitrarily-decomposed one.
func normalizeEntry(line string) string {
	if line == "" {
		return ""
	}
	return norm.NFC.String(line)
}
