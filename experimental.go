package stump

import "github.com/fatih/color"

var experimentalColor = color.New(color.FgRed)

// PrintExperimental emits a banner marking the surrounding code path as
// experimental.
func (l *Logger) PrintExperimental() {
	l.emit(experimentalColor.Sprint("Experimental Code!") +
		" - Results may vary, bugs will be present, and not all functionality has been implemented")
}
