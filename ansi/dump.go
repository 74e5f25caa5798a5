package ansi

import (
	"fmt"
	"strings"
)

// table is a map of ANSI control characters to their names.
// any unsupported ansi characters will have hex value key.
var table = map[byte]string{
	0x00: "NUL", // Null
	0x01: "SOH", // Start of Heading
	0x02: "STX", // Start of Text
	0x03: "ETX", // End of Text
	0x04: "EOT", // End of Transmission
	0x05: "ENQ", // Enquiry
	0x06: "ACK", // Acknowledge
	0x07: "BEL", // Bell
	0x08: "BS",  // Backspace
	0x09: "HT",  // Horizontal Tab
	0x0A: "LF",  // Line Feed
	0x0B: "VT",  // Vertical Tab
	0x0C: "FF",  // Form Feed
	0x0D: "CR",  // Carriage Return
	0x0E: "SO",  // Shift Out
	0x0F: "SI",  // Shift In
	0x10: "DLE", // Data Link Escape
	0x11: "DC1", // Device Control 1
	0x12: "DC2", // Device Control 2
	0x13: "DC3", // Device Control 3
	0x14: "DC4", // Device Control 4
	0x15: "NAK", // Negative Acknowledge
	0x16: "SYN", // Synchronous Idle
	0x17: "ETB", // End of Transmission Block
	0x18: "CAN", // Cancel
	0x19: "EM",  // End of Medium
	0x1A: "SUB", // Substitute
	0x1B: "ESC", // Escape
	0x1C: "FS",  // File Separator
	0x1D: "GS",  // Group Separator
	0x1E: "RS",  // Record Separator
	0x1F: "US",  // Unit Separator
	0x7F: "DEL", // Delete
}

// String returns the name of a single control character, or its hex value if
// it has no name.
func String(val byte) string {
	if name, ok := table[val]; ok {
		return fmt.Sprintf("%s (0x%02X) (%q)", name, val, rune(val))
	}
	return fmt.Sprintf("0x%02X (%q)", val, rune(val))
}

// Dump renders a produced sequence with control characters spelled out, e.g.
// "\x1b[1A" becomes "ESC [1A". Printable runs are kept together.
func Dump(seq string) string {
	var sb strings.Builder
	run := false
	for i := 0; i < len(seq); i++ {
		b := seq[i]
		if name, ok := table[b]; ok {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(name)
			run = false
			continue
		}
		if !run && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(b)
		run = true
	}
	return sb.String()
}
