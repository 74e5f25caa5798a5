package csi

import (
	"strconv"

	"github.com/hnimtadd/vtenc/ansi"
)

// ScrollUp (SU) scrolls the viewport up by n lines; new lines fill in from
// the bottom.
//
//	CSI n S
func ScrollUp(n ...int) string { return ansi.CSI + count(n) + "S" }

// ScrollDown (SD) scrolls the viewport down by n lines; new lines fill in
// from the top.
//
//	CSI n T
func ScrollDown(n ...int) string { return ansi.CSI + count(n) + "T" }

// SetScrollingRegion (DECSTBM) sets the top and bottom margins of the
// scrolling region, both 1-based and inclusive.
//
//	CSI top ; bottom r
//
// See: https://vt100.net/docs/vt510-rm/DECSTBM.html
func SetScrollingRegion(top, bottom int) string {
	return ansi.CSI + strconv.Itoa(top) + ";" + strconv.Itoa(bottom) + "r"
}
