// Package terminal puts the controlling terminal in raw mode and decodes the
// raw byte stream from stdin into key events.
//
// Raw mode is process-wide state. Everything that hands the terminal to
// another program goes through Suspend, and the entry point defers
// RestoreOnPanic so a crash never leaves the terminal raw.
package terminal
