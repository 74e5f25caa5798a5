package csi

import (
	"strconv"

	"github.com/hnimtadd/vtenc/ansi"
)

// CursorStyle selects the shape drawn for the text cursor (DECSCUSR).
type CursorStyle uint8

const (
	CursorStyleUserShape CursorStyle = iota
	CursorStyleBlinkingBlock
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// SetCursorStyle (DECSCUSR) sets the shape of the cursor. Note the space
// before the final byte.
//
//	CSI Ps SP q
//
// See: https://vt100.net/docs/vt510-rm/DECSCUSR.html
func SetCursorStyle(style CursorStyle) string {
	return ansi.CSI + strconv.Itoa(int(style)) + " q"
}

// UserShape selects the default cursor shape configured by the user.
func UserShape() string { return SetCursorStyle(CursorStyleUserShape) }

// BlinkingBlock selects the blinking block cursor shape.
func BlinkingBlock() string { return SetCursorStyle(CursorStyleBlinkingBlock) }

// SteadyBlock selects the steady block cursor shape.
func SteadyBlock() string { return SetCursorStyle(CursorStyleSteadyBlock) }

// BlinkingUnderline selects the blinking underline cursor shape.
func BlinkingUnderline() string { return SetCursorStyle(CursorStyleBlinkingUnderline) }

// SteadyUnderline selects the steady underline cursor shape.
func SteadyUnderline() string { return SetCursorStyle(CursorStyleSteadyUnderline) }

// BlinkingBar selects the blinking bar cursor shape.
func BlinkingBar() string { return SetCursorStyle(CursorStyleBlinkingBar) }

// SteadyBar selects the steady bar cursor shape.
func SteadyBar() string { return SetCursorStyle(CursorStyleSteadyBar) }

// Reset (SGR 0) returns all graphic rendition attributes to their defaults.
// This is the only SGR form produced here; the attribute catalog itself
// (colors, bold, underline) is out of scope.
//
//	CSI 0 m
func Reset() string { return ansi.CSI + "0m" }

// SoftReset (DECSTR) resets the terminal to its power-up defaults without
// clearing the screen.
//
//	CSI ! p
//
// See: https://vt100.net/docs/vt510-rm/DECSTR.html
func SoftReset() string { return ansi.CSI + "!p" }
