package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCallIntent(t *testing.T) {
	assert.True(t, DetectCallIntent("Can you call me at 2pm?"))
	assert.True(t, DetectCallIntent("I'd like to SPEAK WITH a manager"))
	assert.True(t, DetectCallIntent("please contact me tomorrow"))
	assert.False(t, DetectCallIntent("how much for a 2 bedroom move?"))
	assert.False(t, DetectCallIntent(""))
}

func TestParseCallTiming(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"call me now", "immediate"},
		{"right now please", "immediate"},
		{"later today works", "later today"},
		{"call me later", "later today"},
		{"tomorrow morning", "tomorrow"},
		{"2 pm tomorrow", "2 pm tomorrow"},
		{"call me at 2 pm today", "2 PM today"},
		{"2:30 pm", "2:30 PM"},
		{"whenever", "immediate"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCallTiming(tt.in), "input %q", tt.in)
	}
}
