// CSI-family sequence builders. A CSI sequence is the CSI prefix, zero or
// more decimal parameters separated by ';', and a final byte in the range
// 0x40-0x7E that selects the operation.
//
// Builders taking a count accept it as an optional argument defaulting to 1,
// matching the terminal-side default for an omitted parameter. Counts are
// stringified as-is with no range checks: the syntax tolerates any decimal
// value and its semantics are the terminal's concern, not the encoder's. The
// only enforced preconditions are the closed mode sets of the erase and
// tab-clear operations.
//
// Implemented based on:
// https://learn.microsoft.com/en-us/windows/console/console-virtual-terminal-sequences
package csi

import "strconv"

// count collapses an optional count argument to its documented default of 1.
func count(n []int) string {
	if len(n) == 0 {
		return "1"
	}
	return strconv.Itoa(n[0])
}
