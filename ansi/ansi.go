// Shared control-character constants for the sequence builders.
//
// The sequences built on top of these follow Microsoft's documented
// virtual-terminal set:
// https://learn.microsoft.com/en-us/windows/console/console-virtual-terminal-sequences
//
// see chapter 3 for detail information about the control characters
// these prefixes are built from, based on VT100, which is compatiable
// with the ANSI standard:
// https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
package ansi

const (
	// ESC is the Escape character (Caret: ^[). Every sequence this module
	// produces starts with it.
	ESC = "\x1b"

	// CSI (Control Sequence Introducer) introduces most cursor and display
	// control sequences.
	CSI = ESC + "["

	// OSC (Operating System Command) introduces the string-valued sequence
	// family (window title and friends).
	OSC = ESC + "]"

	// BEL is the bell character (Caret: ^G, Char: \a), used as the OSC
	// string terminator.
	BEL = "\x07"
)
