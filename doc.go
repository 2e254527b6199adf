// Package stump is a small leveled-logging and status-output library.
//
// It prints level-gated messages (DEBUG, INFO, WARN, ERROR), carries a
// process-wide verbose flag for a secondary diagnostic print path, and
// renders boot-style completion lines right-aligned to the terminal width:
//
//	Build project                                                                   [ DONE ]
//
// The minimum level can be set programmatically with SetMinLevel or, for
// the gated operations, overridden through the STUMP_LOG_AT_LEVEL
// environment variable. Timestamps use strftime patterns and honor
// STUMP_LOG_DATETIME_FORMAT. Every line destined for stdout passes through
// a single sink that can be redirected with SetPrint, which is useful when
// output has to coexist with a progress bar or a TUI.
//
// All package-level functions delegate to Default, a process-wide Logger.
// Construct separate Logger values with NewLogger when tests or embedders
// need isolated state.
package stump
