package csi

import (
	dw "github.com/mattn/go-runewidth"
)

// CursorForwardText moves the cursor forward over already-rendered text,
// advancing by the text's display width (wide runes count as two cells,
// combining marks as zero). Returns the empty string for zero-width text, so
// the result can always be written unconditionally.
func CursorForwardText(s string) string {
	w := dw.StringWidth(s)
	if w == 0 {
		return ""
	}
	return CursorForward(w)
}

// CursorBackwardText moves the cursor backward over already-rendered text by
// its display width. Returns the empty string for zero-width text.
func CursorBackwardText(s string) string {
	w := dw.StringWidth(s)
	if w == 0 {
		return ""
	}
	return CursorBackward(w)
}
