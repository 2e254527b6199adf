// Package stumpnum provides the enumerations shared across the stump module.
package stumpnum

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Level is a log verbosity level. Levels are ordered by severity so that
// a gate comparison of candidate >= minimum admits exactly the candidate
// levels at or above the minimum: a WARN minimum suppresses DEBUG and INFO.
type Level int32

const (
	DebugLevel Level = iota // debug
	InfoLevel               // info
	WarnLevel               // warn
	ErrorLevel              // error
)

var levelNames = map[Level]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
}

func (level Level) String() string {
	if name, ok := levelNames[level]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int32(level))
}

func (level *Level) AtomicLoad() Level {
	return Level(atomic.LoadInt32((*int32)(level)))
}

func (level *Level) AtomicStore(newLevel Level) {
	atomic.StoreInt32((*int32)(level), int32(newLevel))
}

// InvalidLevelError is returned by ParseLevel when the input matches no
// level name. It carries the rejected text.
type InvalidLevelError struct {
	Text string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid log level: %q", e.Text)
}

// ParseLevel matches text, case-insensitively, against the four level
// names. Any other input yields an *InvalidLevelError.
func ParseLevel(text string) (Level, error) {
	switch strings.ToUpper(text) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	default:
		return 0, &InvalidLevelError{Text: text}
	}
}
