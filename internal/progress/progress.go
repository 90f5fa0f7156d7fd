// Package progress renders a single updating status line for long
// batch runs. The line overwrites itself with carriage returns; callers
// own the final newline via Finish.
package progress

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const barLength = 20

// Printer writes status updates to one writer. A nil Printer is valid
// and discards all updates, which keeps progress optional in tests.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Status renders a plain status message.
func (p *Printer) Status(message string) {
	if p == nil || p.w == nil {
		return
	}
	fmt.Fprintf(p.w, "%s\r", message)
}

// Update renders a progress bar with the message and completion ratio.
func (p *Printer) Update(message string, current, total int) {
	if p == nil || p.w == nil || total <= 0 {
		return
	}
	ratio := float64(current) / float64(total)
	fmt.Fprintf(p.w, "%s %s (%.0f%%)\r", bar(ratio), message, ratio*100)
}

// Finish terminates the status line.
func (p *Printer) Finish() {
	if p == nil || p.w == nil {
		return
	}
	fmt.Fprintln(p.w)
}

func bar(ratio float64) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	completed := int(math.Round(barLength * ratio))
	return "[" + strings.Repeat("█", completed) + strings.Repeat("░", barLength-completed) + "]"
}
