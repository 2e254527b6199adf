package stump

import (
	"fmt"
	"time"
)

// vprintf is the shared verbose path. Lines carry a timestamp and the
// call site but no level tag.
func (l *Logger) vprintf(calldepth int, toStderr bool, format string, args ...interface{}) {
	if !l.IsVerbose() {
		return
	}
	out := fmt.Sprintf("%s%s %s",
		l.formatDatetime(time.Now()),
		callSite(calldepth),
		fmt.Sprintf(format, args...),
	)
	if toStderr {
		// The stderr path deliberately bypasses the output override:
		// callbacks installed with SetPrint expect stdout content.
		fmt.Fprintln(l.stderr, out)
		return
	}
	l.emit(out)
}

// Vprintf emits a diagnostic line to the stdout sink when the verbose
// flag is set, and is silent otherwise.
func (l *Logger) Vprintf(format string, args ...interface{}) {
	l.vprintf(2, false, format, args...)
}

// Veprintf emits a diagnostic line to stderr when the verbose flag is
// set, and is silent otherwise.
func (l *Logger) Veprintf(format string, args ...interface{}) {
	l.vprintf(2, true, format, args...)
}
