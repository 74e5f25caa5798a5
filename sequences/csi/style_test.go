package csi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetCursorStyle(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"user shape", UserShape(), "\x1b[0 q"},
		{"blinking block", BlinkingBlock(), "\x1b[1 q"},
		{"steady block", SteadyBlock(), "\x1b[2 q"},
		{"blinking underline", BlinkingUnderline(), "\x1b[3 q"},
		{"steady underline", SteadyUnderline(), "\x1b[4 q"},
		{"blinking bar", BlinkingBar(), "\x1b[5 q"},
		{"steady bar", SteadyBar(), "\x1b[6 q"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.got)
		})
	}
}

// Named shape wrappers are fixed-arity aliases of the general form.
func TestCursorStyleWrappersMatchGeneralForm(t *testing.T) {
	assert.Equal(t, SetCursorStyle(CursorStyleBlinkingBlock), BlinkingBlock())
	assert.Equal(t, SetCursorStyle(CursorStyleSteadyBar), SteadyBar())
	assert.Equal(t, SetCursorStyle(CursorStyleUserShape), UserShape())
}

func TestReset(t *testing.T) {
	assert.Equal(t, "\x1b[0m", Reset())
}

func TestSoftReset(t *testing.T) {
	assert.Equal(t, "\x1b[!p", SoftReset())
}
