package csi

import (
	"fmt"
	"strconv"

	"github.com/hnimtadd/vtenc/ansi"
)

// ErrInvalidEraseMode is returned when an erase builder is given a mode
// outside its closed set. Semantics outside the set are undefined, so no
// sequence is produced.
var ErrInvalidEraseMode = fmt.Errorf("csi: invalid erase mode")

// Erase in Display mode
type EDMode uint8

const (
	EDModeBelow    EDMode = 0
	EDModeAbove    EDMode = 1
	EDModeComplete EDMode = 2
)

// Erase in Line mode
type ELMode uint8

const (
	ELModeRight ELMode = 0
	ELModeLeft  ELMode = 1
	ELModeAll   ELMode = 2
)

// EraseInDisplay (ED) erases the viewport: below the cursor (EDModeBelow,
// cursor inclusive), above it (EDModeAbove, cursor inclusive), or entirely
// (EDModeComplete). Any other mode is rejected.
//
//	CSI Ps J
//
// See: https://vt100.net/docs/vt510-rm/ED.html
func EraseInDisplay(mode EDMode) (string, error) {
	if mode > EDModeComplete {
		return "", fmt.Errorf("%w: ED %d", ErrInvalidEraseMode, mode)
	}
	return ansi.CSI + strconv.Itoa(int(mode)) + "J", nil
}

// EraseInLine (EL) erases the cursor line: rightward of the cursor
// (ELModeRight, cursor inclusive), leftward (ELModeLeft, cursor inclusive),
// or entirely (ELModeAll). Any other mode is rejected. The cursor does not
// move.
//
//	CSI Ps K
//
// See: https://vt100.net/docs/vt510-rm/EL.html
func EraseInLine(mode ELMode) (string, error) {
	if mode > ELModeAll {
		return "", fmt.Errorf("%w: EL %d", ErrInvalidEraseMode, mode)
	}
	return ansi.CSI + strconv.Itoa(int(mode)) + "K", nil
}
