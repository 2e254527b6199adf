package stump

import (
	"io"
)

// DefaultLevelEnvVar and DefaultDatetimeEnvVar name the environment
// variables consulted by LevelFromEnv and FormatDatetime. Both can be
// renamed at link time:
//
//	go build -ldflags "-X github.com/stumplog/stump-go.DefaultLevelEnvVar=MYAPP_LOG_LEVEL"
var (
	DefaultLevelEnvVar    = "STUMP_LOG_AT_LEVEL"
	DefaultDatetimeEnvVar = "STUMP_LOG_DATETIME_FORMAT"
)

// DefaultDatetimeFormat is the strftime pattern used for timestamps when
// the datetime environment variable is unset. %.3f is the fractional
// seconds directive, printed as ".123".
const DefaultDatetimeFormat = "%Y-%m-%d %H:%M:%S%.3f"

// Option adjusts a Logger under construction.
type Option func(*Logger)

// WithMinLevel sets the initial programmatic minimum level. The default
// is WarnLevel.
func WithMinLevel(level Level) Option {
	return func(l *Logger) {
		l.minLevel.AtomicStore(level)
	}
}

// WithVerbose sets the initial verbose flag.
func WithVerbose(v bool) Option {
	return func(l *Logger) {
		l.verbose.Store(v)
	}
}

// WithPrinter installs an output override at construction time. See
// SetPrinter.
func WithPrinter(p Printer) Option {
	return func(l *Logger) {
		l.printer = p
	}
}

// WithStdout replaces the writer used when no output override is
// installed. The default is os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(l *Logger) {
		l.stdout = w
	}
}

// WithStderr replaces the writer used by Veprintf. The default is
// os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(l *Logger) {
		l.stderr = w
	}
}

// WithLevelEnvVar renames the environment variable consulted by
// LevelFromEnv.
func WithLevelEnvVar(name string) Option {
	return func(l *Logger) {
		l.levelEnvVar = name
	}
}

// WithDatetimeEnvVar renames the environment variable consulted by
// FormatDatetime.
func WithDatetimeEnvVar(name string) Option {
	return func(l *Logger) {
		l.datetimeEnvVar = name
	}
}

// WithTerminalWidth replaces the terminal width query used by
// FormatComplete. The query reports false when no width is detectable.
func WithTerminalWidth(query func() (cols int, ok bool)) Option {
	return func(l *Logger) {
		l.termWidth = query
	}
}
