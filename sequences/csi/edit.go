package csi

import "github.com/hnimtadd/vtenc/ansi"

// InsertChars (ICH) inserts n blanks at the cursor position, shifting
// existing text rightward.
//
//	CSI n @
func InsertChars(n ...int) string { return ansi.CSI + count(n) + "@" }

// DeleteChars (DCH) deletes n characters at the cursor position, shifting in
// blanks from the right edge.
//
//	CSI n P
func DeleteChars(n ...int) string { return ansi.CSI + count(n) + "P" }

// EraseChars (ECH) overwrites n characters from the cursor position with
// blanks, without shifting.
//
//	CSI n X
func EraseChars(n ...int) string { return ansi.CSI + count(n) + "X" }

// InsertLines (IL) inserts n blank lines at the cursor row, shifting that row
// and those below it downward.
//
//	CSI n L
func InsertLines(n ...int) string { return ansi.CSI + count(n) + "L" }

// DeleteLines (DL) deletes n lines starting at the cursor row, shifting up
// the rows below.
//
//	CSI n M
func DeleteLines(n ...int) string { return ansi.CSI + count(n) + "M" }
