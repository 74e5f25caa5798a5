// OSC-family sequence builders: the OSC prefix, a numeric command, ';', a
// string payload, and the BEL terminator. Payloads are sanitized so they can
// never terminate or corrupt the sequence.
package osc

import (
	"strings"

	"github.com/hnimtadd/vtenc/ansi"
)

// sanitize drops C0 control bytes and DEL from a payload. BEL or ESC inside
// a title would end the sequence early on most terminals.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, s)
}

// SetWindowTitle sets the terminal window title.
//
//	OSC 2 ; title BEL
//
// See: https://invisible-island.net/xterm/ctlseqs/ctlseqs.html#h2-Operating-System-Commands
func SetWindowTitle(title string) string {
	return ansi.OSC + "2;" + sanitize(title) + ansi.BEL
}

// SetIconNameWindowTitle sets both the icon name and the window title.
//
//	OSC 0 ; title BEL
//
// See: https://invisible-island.net/xterm/ctlseqs/ctlseqs.html#h2-Operating-System-Commands
func SetIconNameWindowTitle(title string) string {
	return ansi.OSC + "0;" + sanitize(title) + ansi.BEL
}
