package stump

import (
	"github.com/stumplog/stump-go/stumpnum"
)

// Level and Status live in stumpnum so that other packages can share them
// without importing the logger; they are mirrored here for convenience.
type Level = stumpnum.Level

type Status = stumpnum.Status

type InvalidLevelError = stumpnum.InvalidLevelError

const (
	DebugLevel = stumpnum.DebugLevel
	InfoLevel  = stumpnum.InfoLevel
	WarnLevel  = stumpnum.WarnLevel
	ErrorLevel = stumpnum.ErrorLevel
)

const (
	StatusOK   = stumpnum.StatusOK
	StatusWarn = stumpnum.StatusWarn
	StatusFail = stumpnum.StatusFail
)

// ParseLevel matches text, case-insensitively, against DEBUG, INFO, WARN,
// and ERROR. Any other input yields an *InvalidLevelError carrying the
// rejected text.
func ParseLevel(text string) (Level, error) {
	return stumpnum.ParseLevel(text)
}
