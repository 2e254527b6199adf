package stump

import (
	"os"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// fractionalSeconds rewrites the fixed-precision fractional second
// directives (%.3f and friends) to the %f milliseconds verb registered
// below. Only millisecond precision is rendered.
var fractionalSeconds = strings.NewReplacer(
	"%.3f", ".%f",
	"%.6f", ".%f",
	"%.9f", ".%f",
)

func (l *Logger) datetimePattern() string {
	if pattern, ok := os.LookupEnv(l.datetimeEnvVar); ok {
		return pattern
	}
	return DefaultDatetimeFormat
}

// FormatDatetime renders the current local time using the configured
// strftime pattern, followed by a single space. The datetime environment
// variable is re-read on every call; an unparseable pattern degrades to
// the default rather than erroring.
func (l *Logger) FormatDatetime() string {
	return l.formatDatetime(time.Now())
}

func (l *Logger) formatDatetime(t time.Time) string {
	f, err := strftime.New(
		fractionalSeconds.Replace(l.datetimePattern()),
		strftime.WithMilliseconds('f'),
	)
	if err != nil {
		f, _ = strftime.New(
			fractionalSeconds.Replace(DefaultDatetimeFormat),
			strftime.WithMilliseconds('f'),
		)
	}
	return f.FormatString(t) + " "
}
