// Package stumptest provides helpers for capturing stump output in tests.
package stumptest

import (
	"strings"
	"sync"

	"github.com/stumplog/stump-go"
)

// Capture is a stump.Printer that records every emitted line in order.
// It is safe for concurrent use. The zero value is ready to use:
//
//	cap := &stumptest.Capture{}
//	stump.SetPrinter(cap)
type Capture struct {
	mu    sync.Mutex
	lines []string
}

var _ stump.Printer = (*Capture)(nil)

// PrintLine implements stump.Printer.
func (c *Capture) PrintLine(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
}

// Lines returns a copy of the recorded lines in emit order.
func (c *Capture) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]string, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Len returns the number of recorded lines.
func (c *Capture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Reset discards the recorded lines.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// String joins the recorded lines with newlines.
func (c *Capture) String() string {
	return strings.Join(c.Lines(), "\n")
}
