package csi

import (
	"fmt"
	"strconv"

	"github.com/hnimtadd/vtenc/ansi"
)

// ErrInvalidTabClearMode is returned by TabClear for modes outside {0, 3}.
var ErrInvalidTabClearMode = fmt.Errorf("csi: invalid tab clear mode")

// Tab Clear mode
type TBCMode uint8

const (
	TBCModeCurrent TBCMode = 0 // clear the tab stop in the current column
	TBCModeAll     TBCMode = 3 // clear all tab stops
)

// TabForward (CHT) advances the cursor to the nth following tab stop, or to
// the right margin if fewer remain on the line.
//
//	CSI n I
func TabForward(n ...int) string { return ansi.CSI + count(n) + "I" }

// TabBackward (CBT) moves the cursor to the nth previous tab stop, or to the
// left margin if fewer remain on the line.
//
//	CSI n Z
func TabBackward(n ...int) string { return ansi.CSI + count(n) + "Z" }

// TabClear (TBC) clears tab stops. Only TBCModeCurrent and TBCModeAll are
// defined; any other mode is rejected.
//
//	CSI Ps g
//
// See: https://vt100.net/docs/vt510-rm/TBC.html
func TabClear(mode TBCMode) (string, error) {
	switch mode {
	case TBCModeCurrent, TBCModeAll:
		return ansi.CSI + strconv.Itoa(int(mode)) + "g", nil
	}
	return "", fmt.Errorf("%w: TBC %d", ErrInvalidTabClearMode, mode)
}
