package stump

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/stumplog/stump-go/stumpnum"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Printer receives every line the logger would otherwise write to stdout.
// The line is passed exactly as formatted, without a trailing newline.
type Printer interface {
	PrintLine(line string)
}

// PrinterFunc adapts a plain function to the Printer interface.
type PrinterFunc func(line string)

func (f PrinterFunc) PrintLine(line string) { f(line) }

// Logger holds the process-wide logging state: the programmatic minimum
// level, the verbose flag, the optional output override, and the
// environment variable names. All state is safe for concurrent use.
type Logger struct {
	minLevel stumpnum.Level // atomic
	verbose  atomic.Bool

	mu      sync.RWMutex // guards printer
	printer Printer

	stdout io.Writer
	stderr io.Writer

	levelEnvVar    string
	datetimeEnvVar string
	termWidth      func() (cols int, ok bool)
}

// Default is the logger behind the package-level functions.
var Default = NewLogger()

// NewLogger returns a Logger with the minimum level set to WarnLevel,
// output to os.Stdout/os.Stderr, and the default environment variable
// names.
func NewLogger(opts ...Option) *Logger {
	l := &Logger{
		stdout:         os.Stdout,
		stderr:         os.Stderr,
		levelEnvVar:    DefaultLevelEnvVar,
		datetimeEnvVar: DefaultDatetimeEnvVar,
		termWidth:      stdoutTerminalWidth,
	}
	l.minLevel.AtomicStore(WarnLevel)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetMinLevel sets the programmatic minimum level. The level environment
// variable, when set, still wins for the gated leveled operations.
func (l *Logger) SetMinLevel(level Level) {
	l.minLevel.AtomicStore(level)
}

// MinLevel returns the programmatic minimum level. It does not consult
// the environment; use LevelFromEnv for the gate's view.
func (l *Logger) MinLevel() Level {
	return l.minLevel.AtomicLoad()
}

// LevelFromEnv resolves the minimum level the gated operations use: the
// level environment variable when it is set (an unparseable value is an
// *InvalidLevelError), otherwise the programmatic minimum. The
// environment is re-read on every call.
func (l *Logger) LevelFromEnv() (Level, error) {
	if text, ok := os.LookupEnv(l.levelEnvVar); ok {
		level, err := stumpnum.ParseLevel(text)
		if err != nil {
			return 0, errors.Wrapf(err, "environment variable %s", l.levelEnvVar)
		}
		return level, nil
	}
	return l.MinLevel(), nil
}

// shouldEmit reports whether a message at level passes the gate. A bad
// environment value fails closed.
func (l *Logger) shouldEmit(level Level) bool {
	min, err := l.LevelFromEnv()
	if err != nil {
		return false
	}
	return level >= min
}

// SetVerbose sets the flag consumed by Vprintf and Veprintf.
func (l *Logger) SetVerbose(v bool) {
	l.verbose.Store(v)
}

// IsVerbose reports whether the verbose flag is set.
func (l *Logger) IsVerbose() bool {
	return l.verbose.Load()
}

// SetPrinter installs an output override. Every line destined for stdout
// is passed to p instead; at most one override is active and a later call
// replaces the former. A nil p restores the default stdout path.
func (l *Logger) SetPrinter(p Printer) {
	l.mu.Lock()
	l.printer = p
	l.mu.Unlock()
}

// SetPrint installs a plain function as the output override. Useful for
// routing output through a progress bar or a TUI pane.
func (l *Logger) SetPrint(f func(line string)) {
	l.SetPrinter(PrinterFunc(f))
}

// emit is the single funnel for stdout-bound lines. The override, when
// installed, receives the line content as is; the default path appends
// the line terminator.
func (l *Logger) emit(line string) {
	l.mu.RLock()
	p := l.printer
	l.mu.RUnlock()
	if p != nil {
		p.PrintLine(line)
		return
	}
	fmt.Fprintln(l.stdout, line)
}

func stdoutTerminalWidth() (int, bool) {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		return 0, false
	}
	return cols, true
}
