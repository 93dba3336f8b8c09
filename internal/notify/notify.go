// Package notify carries user-facing notifications out of the usecases.
// It is the terminal stand-in for a toast: short, transient lines that are
// separate from both logging and command output.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Notifier emits user-facing notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Terminal writes notifications as prefixed lines. Safe for concurrent use.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminal is the constructor for Terminal.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) Success(msg string) { t.write("ok", msg) }
func (t *Terminal) Error(msg string)   { t.write("error", msg) }
func (t *Terminal) Info(msg string)    { t.write("info", msg) }

func (t *Terminal) write(level, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "[%s] %s\n", level, msg)
}

// Noop drops every notification. Used where no user is watching.
type Noop struct{}

func (Noop) Success(string) {}
func (Noop) Error(string)   {}
func (Noop) Info(string)    {}
