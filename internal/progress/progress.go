// Package progress implements the `--progress`/`--pace` reporting of
// spec.md §6: a redrawn status line when standard error is a terminal,
// or a plain line-per-interval log otherwise. It replaces the teacher's
// hand-rolled tty_unix.go ioctl check with golang.org/x/term's
// cross-platform equivalent.
package progress

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/term"
)

// Reporter prints a running entry count to w every pace entries; with
// pace <= 0, Tick prints nothing and only Done reports.
type Reporter struct {
	w       io.Writer
	isTTY   bool
	pace    int
	started time.Time
	last    int
}

// New builds a Reporter writing to w. fd is the file descriptor backing
// w (typically os.Stderr.Fd()), used only to decide rendering style.
func New(w io.Writer, fd uintptr, pace int) *Reporter {
	return &Reporter{w: w, isTTY: term.IsTerminal(int(fd)), pace: pace, started: time.Now()}
}

// Start resets the reporter's clock; call once before processing begins.
func (r *Reporter) Start() { r.started = time.Now() }

// Tick reports the running count if it has advanced by at least pace
// entries since the last report (pace <= 0 disables reporting).
func (r *Reporter) Tick(count int) {
	if r.pace <= 0 || count-r.last < r.pace {
		return
	}
	r.last = count
	elapsed := time.Since(r.started).Round(time.Second)
	if r.isTTY {
		fmt.Fprintf(r.w, "\r\033[Kdj: %d entries (%s)", count, elapsed)
	} else {
		fmt.Fprintf(r.w, "dj: %d entries (%s)\n", count, elapsed)
	}
}

// Done prints a final newline-terminated summary, clearing the redrawn
// status line on a terminal.
func (r *Reporter) Done(count int) {
	elapsed := time.Since(r.started).Round(time.Second)
	if r.isTTY {
		fmt.Fprintf(r.w, "\r\033[Kdj: %d entries processed (%s)\n", count, elapsed)
	} else {
		fmt.Fprintf(r.w, "dj: %d entries processed (%s)\n", count, elapsed)
	}
}
