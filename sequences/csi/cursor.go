package csi

import (
	"strconv"

	"github.com/hnimtadd/vtenc/ansi"
)

// CursorUp (CUU) moves the cursor up by n.
//
//	CSI n A
func CursorUp(n ...int) string { return ansi.CSI + count(n) + "A" }

// CursorDown (CUD) moves the cursor down by n.
//
//	CSI n B
func CursorDown(n ...int) string { return ansi.CSI + count(n) + "B" }

// CursorForward (CUF) moves the cursor forward (right) by n.
//
//	CSI n C
func CursorForward(n ...int) string { return ansi.CSI + count(n) + "C" }

// CursorBackward (CUB) moves the cursor backward (left) by n.
//
//	CSI n D
func CursorBackward(n ...int) string { return ansi.CSI + count(n) + "D" }

// CursorNextLine (CNL) moves the cursor to column 1 of the line n lines down.
//
//	CSI n E
//
// See: https://vt100.net/docs/vt510-rm/CNL.html
func CursorNextLine(n ...int) string { return ansi.CSI + count(n) + "E" }

// CursorPrevLine (CPL) moves the cursor to column 1 of the line n lines up.
//
//	CSI n F
//
// See: https://vt100.net/docs/vt510-rm/CPL.html
func CursorPrevLine(n ...int) string { return ansi.CSI + count(n) + "F" }

// CursorHorizontalAbsolute (CHA) moves the cursor to column n of the current
// line.
//
//	CSI n G
func CursorHorizontalAbsolute(n ...int) string { return ansi.CSI + count(n) + "G" }

// CursorVerticalAbsolute (VPA) moves the cursor to row n of the current
// column.
//
//	CSI n d
func CursorVerticalAbsolute(n ...int) string { return ansi.CSI + count(n) + "d" }

// CursorPosition (CUP) moves the cursor to row y, column x within the
// viewport. The top-left cell is 1;1.
//
//	CSI y ; x H
//
// See: https://vt100.net/docs/vt510-rm/CUP.html
func CursorPosition(y, x int) string {
	return ansi.CSI + strconv.Itoa(y) + ";" + strconv.Itoa(x) + "H"
}

// CursorHVP (HVP) moves the cursor to row y, column x within the viewport.
// Identical to CursorPosition on the wire except for the final byte: HVP is
// classified as a format effector (like CR or LF) rather than an editor
// function.
//
//	CSI y ; x f
//
// See: https://vt100.net/docs/vt510-rm/HVP.html
func CursorHVP(y, x int) string {
	return ansi.CSI + strconv.Itoa(y) + ";" + strconv.Itoa(x) + "f"
}
