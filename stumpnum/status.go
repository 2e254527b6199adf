package stumpnum

import "fmt"

// Status is the outcome reported by a completion line.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Tag returns the four-character tag shown between the brackets of a
// completion line.
func (s Status) Tag() string {
	switch s {
	case StatusOK:
		return "DONE"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}
