package stump

// Package-level functions delegate to Default so that programs can use
// stump without threading a Logger through every call.

// SetMinLevel sets the programmatic minimum level on Default.
func SetMinLevel(level Level) { Default.SetMinLevel(level) }

// MinLevel returns Default's programmatic minimum level.
func MinLevel() Level { return Default.MinLevel() }

// LevelFromEnv resolves the gate's minimum level from the environment,
// falling back to Default's programmatic minimum.
func LevelFromEnv() (Level, error) { return Default.LevelFromEnv() }

// SetVerbose sets Default's verbose flag.
func SetVerbose(v bool) { Default.SetVerbose(v) }

// IsVerbose reports whether Default's verbose flag is set.
func IsVerbose() bool { return Default.IsVerbose() }

// SetPrinter installs an output override on Default.
func SetPrinter(p Printer) { Default.SetPrinter(p) }

// SetPrint installs a plain function as Default's output override.
func SetPrint(f func(line string)) { Default.SetPrint(f) }

// FormatDatetime renders the current time with Default's datetime
// pattern.
func FormatDatetime() string { return Default.FormatDatetime() }

// Statusf emits a line at level regardless of the configured minimum.
func Statusf(level Level, format string, args ...interface{}) {
	Default.statusf(2, level, format, args...)
}

// Debugf emits a DEBUG line when the resolved minimum level permits.
func Debugf(format string, args ...interface{}) {
	Default.logf(2, DebugLevel, format, args...)
}

// Infof emits an INFO line when the resolved minimum level permits.
func Infof(format string, args ...interface{}) {
	Default.logf(2, InfoLevel, format, args...)
}

// Warnf emits a WARN line when the resolved minimum level permits.
func Warnf(format string, args ...interface{}) {
	Default.logf(2, WarnLevel, format, args...)
}

// Errorf emits an ERROR line when the resolved minimum level permits.
func Errorf(format string, args ...interface{}) {
	Default.logf(2, ErrorLevel, format, args...)
}

// Vprintf emits a diagnostic line to the stdout sink when Default's
// verbose flag is set.
func Vprintf(format string, args ...interface{}) {
	Default.vprintf(2, false, format, args...)
}

// Veprintf emits a diagnostic line to stderr when Default's verbose flag
// is set.
func Veprintf(format string, args ...interface{}) {
	Default.vprintf(2, true, format, args...)
}

// FormatComplete renders a completion line for label with the given
// status.
func FormatComplete(label string, status Status) string {
	return Default.FormatComplete(label, status)
}

// PrintComplete emits a completion line for label with the given status.
func PrintComplete(label string, status Status) { Default.PrintComplete(label, status) }

// FormatDone renders a completion line with the [ DONE ] tag.
func FormatDone(label string) string { return Default.FormatDone(label) }

// PrintDone emits a completion line with the [ DONE ] tag.
func PrintDone(label string) { Default.PrintDone(label) }

// FormatWarn renders a completion line with the [ WARN ] tag.
func FormatWarn(label string) string { return Default.FormatWarn(label) }

// PrintWarn emits a completion line with the [ WARN ] tag.
func PrintWarn(label string) { Default.PrintWarn(label) }

// FormatFail renders a completion line with the [ FAIL ] tag.
func FormatFail(label string) string { return Default.FormatFail(label) }

// PrintFail emits a completion line with the [ FAIL ] tag.
func PrintFail(label string) { Default.PrintFail(label) }

// PrintExperimental emits the experimental-code banner.
func PrintExperimental() { Default.PrintExperimental() }
