// Package console prints leveled status lines for the fretpath CLI.
//
// Levels and their prefixes:
//
//	Info    [info]     cyan
//	Success [ok]       green
//	Warn    [warn]     yellow
//	Error   [error]    red
//	Say     (none)     plain text, for menus and results
//
// Quiet mode drops Info, Success and Say; warnings and errors always print.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Logger writes leveled lines to an io.Writer. Safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	w     io.Writer
	quiet bool

	info    *color.Color
	success *color.Color
	warn    *color.Color
	err     *color.Color
}

// Option configures a Logger.
type Option func(*Logger)

// WithColor forces ANSI colors on or off. Without it fatih/color decides
// from the terminal and the NO_COLOR environment variable.
func WithColor(on bool) Option {
	return func(l *Logger) {
		for _, c := range l.colors() {
			if on {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// WithQuiet suppresses Info, Success and Say.
func WithQuiet(q bool) Option {
	return func(l *Logger) { l.quiet = q }
}

// New returns a Logger writing to w (os.Stderr when nil).
func New(w io.Writer, opts ...Option) *Logger {
	if w == nil {
		w = os.Stderr
	}
	l := &Logger{
		w:       w,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen, color.Bold),
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed, color.Bold),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Logger) colors() []*color.Color {
	return []*color.Color{l.info, l.success, l.warn, l.err}
}

// Info prints a progress line.
func (l *Logger) Info(format string, args ...any) {
	if l.quiet {
		return
	}
	l.line(l.info, "[info]", format, args...)
}

// Success prints a completion line.
func (l *Logger) Success(format string, args ...any) {
	if l.quiet {
		return
	}
	l.line(l.success, "[ok]", format, args...)
}

// Warn prints a warning.
func (l *Logger) Warn(format string, args ...any) {
	l.line(l.warn, "[warn]", format, args...)
}

// Error prints an error line.
func (l *Logger) Error(format string, args ...any) {
	l.line(l.err, "[error]", format, args...)
}

// Say prints an unprefixed line.
func (l *Logger) Say(format string, args ...any) {
	if l.quiet {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format+"\n", args...)
}

func (l *Logger) line(c *color.Color, prefix, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s\n", c.Sprint(prefix), fmt.Sprintf(format, args...))
}
