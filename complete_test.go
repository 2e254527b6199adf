package stump

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withColor(t *testing.T, enabled bool) {
	old := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = old })
}

func fixedWidthLogger(cols int, ok bool) *Logger {
	return NewLogger(WithTerminalWidth(func() (int, bool) { return cols, ok }))
}

func TestFormatCompleteStandardWidth(t *testing.T) {
	withColor(t, false)
	l := fixedWidthLogger(88, true)

	line := l.FormatComplete("Build project", StatusOK)
	assert.Len(t, line, 88)
	assert.True(t, strings.HasPrefix(line, "Build project"))
	assert.True(t, strings.HasSuffix(line, "[ DONE ]"))
	middle := line[len("Build project") : len(line)-len("[ DONE ]")]
	assert.Equal(t, strings.Repeat(" ", len(middle)), middle)
}

func TestFormatCompleteUndetectableWidth(t *testing.T) {
	withColor(t, false)
	l := fixedWidthLogger(0, false)
	assert.Len(t, l.FormatComplete("task", StatusFail), 88)
}

func TestFormatCompleteWideTerminal(t *testing.T) {
	withColor(t, false)
	// A 200-column terminal still caps the line at 88.
	l := fixedWidthLogger(200, true)
	assert.Len(t, l.FormatComplete("task", StatusOK), 88)
}

func TestFormatCompleteLabelBoundaries(t *testing.T) {
	withColor(t, false)
	l := fixedWidthLogger(88, true)

	for _, n := range []int{0, 1, 79, 80} {
		line := l.FormatComplete(strings.Repeat("x", n), StatusOK)
		assert.Len(t, line, 88, "label length %d", n)
	}
	for _, n := range []int{81, 100, 500} {
		line := l.FormatComplete(strings.Repeat("x", n), StatusOK)
		assert.Len(t, line, 88, "label length %d", n)
		assert.Equal(t, strings.Repeat("x", 80), line[:80], "label length %d", n)
	}
}

func TestFormatCompleteNarrowTerminals(t *testing.T) {
	withColor(t, false)
	label := strings.Repeat("x", 100)

	line := fixedWidthLogger(40, true).FormatComplete(label, StatusWarn)
	assert.Len(t, line, 40)
	assert.True(t, strings.HasSuffix(line, "[ WARN ]"))

	// width 9 leaves exactly one column for the label.
	line = fixedWidthLogger(9, true).FormatComplete(label, StatusOK)
	assert.Equal(t, "x[ DONE ]", line)

	// width-8 <= 0 clamps the label to empty instead of failing.
	for _, cols := range []int{8, 7, 4, 1} {
		line = fixedWidthLogger(cols, true).FormatComplete(label, StatusFail)
		assert.Equal(t, "[ FAIL ]", line, "width %d", cols)
	}
}

func TestFormatCompleteMultibyteLabels(t *testing.T) {
	withColor(t, false)
	l := fixedWidthLogger(88, true)

	// 50 double-width runes: 100 display cells, truncated on a cell
	// boundary.
	line := l.FormatComplete(strings.Repeat("日", 50), StatusOK)
	assert.True(t, utf8.ValidString(line))
	assert.Equal(t, 88, runewidth.StringWidth(line))

	// Misaligned truncation may fall one cell short but must stay within
	// the width and must not split a rune.
	line = l.FormatComplete("a"+strings.Repeat("日", 50), StatusOK)
	assert.True(t, utf8.ValidString(line))
	assert.LessOrEqual(t, runewidth.StringWidth(line), 88)

	line = l.FormatComplete("héllo wörld", StatusOK)
	assert.True(t, utf8.ValidString(line))
	assert.Equal(t, 88, runewidth.StringWidth(line))
}

func TestFormatCompleteColorCodes(t *testing.T) {
	withColor(t, true)
	l := fixedWidthLogger(88, true)

	line := l.FormatComplete("Build project", StatusOK)
	assert.Contains(t, line, "\x1b[32m") // green tag
	assert.Contains(t, line, "DONE")

	// Visible width is still 88 once escape sequences are stripped.
	stripped := regexp.MustCompile("\x1b\\[[0-9;]*m").ReplaceAllString(line, "")
	assert.Len(t, stripped, 88)
	assert.True(t, strings.HasSuffix(stripped, "[ DONE ]"))
}

func TestPrintCompleteWrappers(t *testing.T) {
	withColor(t, false)
	var lines []string
	l := NewLogger(
		WithTerminalWidth(func() (int, bool) { return 88, true }),
		WithPrinter(PrinterFunc(func(s string) { lines = append(lines, s) })),
	)

	l.PrintDone("alpha")
	l.PrintWarn("beta")
	l.PrintFail("gamma")
	l.PrintComplete("delta", StatusOK)

	require.Len(t, lines, 4)
	assert.Equal(t, l.FormatDone("alpha"), lines[0])
	assert.Equal(t, l.FormatWarn("beta"), lines[1])
	assert.Equal(t, l.FormatFail("gamma"), lines[2])
	assert.Equal(t, l.FormatComplete("delta", StatusOK), lines[3])
	assert.True(t, strings.HasSuffix(lines[0], "[ DONE ]"))
	assert.True(t, strings.HasSuffix(lines[1], "[ WARN ]"))
	assert.True(t, strings.HasSuffix(lines[2], "[ FAIL ]"))
}
