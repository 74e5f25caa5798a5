package csi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorMovement(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"CUU default", CursorUp(), "\x1b[1A"},
		{"CUU explicit default", CursorUp(1), "\x1b[1A"},
		{"CUU count", CursorUp(5), "\x1b[5A"},
		{"CUD default", CursorDown(), "\x1b[1B"},
		{"CUD count", CursorDown(3), "\x1b[3B"},
		{"CUF default", CursorForward(), "\x1b[1C"},
		{"CUF multi-digit count", CursorForward(12), "\x1b[12C"},
		{"CUB default", CursorBackward(), "\x1b[1D"},
		{"CUB count", CursorBackward(2), "\x1b[2D"},
		{"CNL default", CursorNextLine(), "\x1b[1E"},
		{"CNL count", CursorNextLine(4), "\x1b[4E"},
		{"CPL default", CursorPrevLine(), "\x1b[1F"},
		{"CPL count", CursorPrevLine(4), "\x1b[4F"},
		{"CHA default", CursorHorizontalAbsolute(), "\x1b[1G"},
		{"CHA column", CursorHorizontalAbsolute(80), "\x1b[80G"},
		{"VPA default", CursorVerticalAbsolute(), "\x1b[1d"},
		{"VPA row", CursorVerticalAbsolute(24), "\x1b[24d"},
		// counts outside the useful range pass through unchecked
		{"CUU zero", CursorUp(0), "\x1b[0A"},
		{"CUU negative", CursorUp(-1), "\x1b[-1A"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.got)
		})
	}
}

func TestCursorPosition(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"CUP origin", CursorPosition(1, 1), "\x1b[1;1H"},
		{"CUP row;col", CursorPosition(3, 10), "\x1b[3;10H"},
		{"HVP origin", CursorHVP(1, 1), "\x1b[1;1f"},
		{"HVP row;col", CursorHVP(3, 10), "\x1b[3;10f"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.got)
		})
	}
}

// HVP is a format effector, CUP an editor function; on the wire only the
// final byte may differ.
func TestCursorHVPFinalByte(t *testing.T) {
	cup := CursorPosition(3, 10)
	hvp := CursorHVP(3, 10)
	assert.NotEqual(t, cup, hvp)
	assert.Equal(t, cup[:len(cup)-1], hvp[:len(hvp)-1])
	assert.Equal(t, byte('H'), cup[len(cup)-1])
	assert.Equal(t, byte('f'), hvp[len(hvp)-1])
}

// CNL/CPL are distinct operations from CUD/CUU/CUB and must not share
// finals with them.
func TestNextPrevLineFinals(t *testing.T) {
	assert.NotEqual(t, CursorDown(1), CursorNextLine(1))
	assert.NotEqual(t, CursorUp(1), CursorPrevLine(1))
	assert.NotEqual(t, CursorBackward(1), CursorNextLine(1))
	assert.NotEqual(t, CursorBackward(1), CursorPrevLine(1))
}

func TestCursorDeterminism(t *testing.T) {
	assert.Equal(t, CursorPosition(7, 7), CursorPosition(7, 7))
	assert.Equal(t, CursorUp(9), CursorUp(9))
}
