package csi

import "github.com/hnimtadd/vtenc/ansi"

// Private (DEC) mode toggles. These all share the CSI ? Pd h/l shape; h sets
// the mode, l resets it.

// BlinkOn (ATT160) starts cursor blinking.
//
//	CSI ? 12 h
func BlinkOn() string { return ansi.CSI + "?12h" }

// BlinkOff (ATT160) stops cursor blinking.
//
//	CSI ? 12 l
func BlinkOff() string { return ansi.CSI + "?12l" }

// ShowCursor (DECTCEM) makes the cursor visible.
//
//	CSI ? 25 h
//
// See: https://vt100.net/docs/vt510-rm/DECTCEM.html
func ShowCursor() string { return ansi.CSI + "?25h" }

// HideCursor (DECTCEM) makes the cursor invisible.
//
//	CSI ? 25 l
//
// See: https://vt100.net/docs/vt510-rm/DECTCEM.html
func HideCursor() string { return ansi.CSI + "?25l" }

// EnterAltScreen switches to the alternate screen buffer.
//
//	CSI ? 1049 h
func EnterAltScreen() string { return ansi.CSI + "?1049h" }

// ExitAltScreen switches back to the main screen buffer.
//
//	CSI ? 1049 l
func ExitAltScreen() string { return ansi.CSI + "?1049l" }
