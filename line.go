package stump

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"
)

// statusf formats and emits one leveled line without consulting the gate.
// calldepth is the runtime.Caller skip count to the logging call site.
func (l *Logger) statusf(calldepth int, level Level, format string, args ...interface{}) {
	l.emit(fmt.Sprintf("%s%v %s %s",
		l.formatDatetime(time.Now()),
		level,
		callSite(calldepth),
		fmt.Sprintf(format, args...),
	))
}

// logf is the gated path behind the leveled operations.
func (l *Logger) logf(calldepth int, level Level, format string, args ...interface{}) {
	if !l.shouldEmit(level) {
		return
	}
	l.statusf(calldepth+1, level, format, args...)
}

// Statusf emits a line at level regardless of the configured minimum.
func (l *Logger) Statusf(level Level, format string, args ...interface{}) {
	l.statusf(2, level, format, args...)
}

// Debugf emits a DEBUG line when the resolved minimum level permits.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(2, DebugLevel, format, args...)
}

// Infof emits an INFO line when the resolved minimum level permits.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(2, InfoLevel, format, args...)
}

// Warnf emits a WARN line when the resolved minimum level permits.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(2, WarnLevel, format, args...)
}

// Errorf emits an ERROR line when the resolved minimum level permits.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(2, ErrorLevel, format, args...)
}

// callSite returns file:line of the frame skip levels above the caller,
// with the file shortened to its base name.
func callSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???:0"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
