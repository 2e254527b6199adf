package stump

import (
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const (
	// completeWidth is the widest completion line ever produced; narrower
	// terminals shrink the line to fit.
	completeWidth = 88
	// labelWidth is the minimum field the label is padded to.
	labelWidth = 80
	// tagWidth is the room reserved for the bracketed status tag,
	// "[ XXXX ]".
	tagWidth = 8
)

var statusColors = map[Status]*color.Color{
	StatusOK:   color.New(color.FgGreen),
	StatusWarn: color.New(color.FgYellow),
	StatusFail: color.New(color.FgRed),
}

func coloredTag(status Status) string {
	if c, ok := statusColors[status]; ok {
		return c.Sprint(status.Tag())
	}
	return status.Tag()
}

// FormatComplete renders a boot-style completion line: the label padded
// to at least 80 columns, then the bracketed status tag. The line is
// shrunk to the terminal width when that is below 88 columns; the label
// is truncated on display-width boundaries, so multi-byte text is never
// sliced mid-rune. Pathologically narrow terminals clamp the label to
// empty rather than failing.
func (l *Logger) FormatComplete(label string, status Status) string {
	width := completeWidth
	if cols, ok := l.termWidth(); ok && cols < width {
		width = cols
	}

	formatted := runewidth.FillRight(label, labelWidth)
	if max := width - tagWidth; runewidth.StringWidth(formatted) > max {
		if max <= 0 {
			formatted = ""
		} else {
			formatted = runewidth.Truncate(formatted, max, "")
		}
	}

	return formatted + "[ " + coloredTag(status) + " ]"
}

// PrintComplete emits a completion line for label with the given status.
// Completion lines bypass the level gate.
func (l *Logger) PrintComplete(label string, status Status) {
	l.emit(l.FormatComplete(label, status))
}

// FormatDone renders a completion line with the [ DONE ] tag.
func (l *Logger) FormatDone(label string) string {
	return l.FormatComplete(label, StatusOK)
}

// PrintDone emits a completion line with the [ DONE ] tag.
func (l *Logger) PrintDone(label string) {
	l.PrintComplete(label, StatusOK)
}

// FormatWarn renders a completion line with the [ WARN ] tag.
func (l *Logger) FormatWarn(label string) string {
	return l.FormatComplete(label, StatusWarn)
}

// PrintWarn emits a completion line with the [ WARN ] tag.
func (l *Logger) PrintWarn(label string) {
	l.PrintComplete(label, StatusWarn)
}

// FormatFail renders a completion line with the [ FAIL ] tag.
func (l *Logger) FormatFail(label string) string {
	return l.FormatComplete(label, StatusFail)
}

// PrintFail emits a completion line with the [ FAIL ] tag.
func (l *Logger) PrintFail(label string) {
	l.PrintComplete(label, StatusFail)
}
