// ESC-family sequence builders: a bare escape character followed by a final
// byte (and for charset designation, one intermediate). These predate the CSI
// syntax and take no parameters.
package esc

import "github.com/hnimtadd/vtenc/ansi"

// ReverseIndex (RI) performs the reverse operation of \n: moves the cursor up
// one line, maintaining horizontal position, scrolling the buffer if
// necessary.
//
//	ESC M
//
// See: https://vt100.net/docs/vt510-rm/RI.html
func ReverseIndex() string { return ansi.ESC + "M" }

// SaveCursor (DECSC) saves the cursor position in terminal memory.
//
//	ESC 7
//
// See: https://vt100.net/docs/vt510-rm/DECSC.html
func SaveCursor() string { return ansi.ESC + "7" }

// RestoreCursor (DECRC) restores the cursor position from terminal memory.
//
//	ESC 8
//
// See: https://vt100.net/docs/vt510-rm/DECRC.html
func RestoreCursor() string { return ansi.ESC + "8" }

// TabSet (HTS) sets a tab stop in the current column.
//
//	ESC H
//
// See: https://vt100.net/docs/vt510-rm/HTS.html
func TabSet() string { return ansi.ESC + "H" }

// KeypadApplicationMode (DECKPAM) switches the numeric keypad to application
// sequences.
//
//	ESC =
func KeypadApplicationMode() string { return ansi.ESC + "=" }

// KeypadNumericMode (DECKPNM) switches the numeric keypad back to numeric
// characters.
//
//	ESC >
func KeypadNumericMode() string { return ansi.ESC + ">" }

// LineDrawingCharset designates the DEC line-drawing set as G0, mapping
// lowercase letters to box-drawing glyphs.
//
//	ESC ( 0
func LineDrawingCharset() string { return ansi.ESC + "(0" }

// ASCIICharset designates US ASCII as G0, undoing LineDrawingCharset.
//
//	ESC ( B
func ASCIICharset() string { return ansi.ESC + "(B" }
