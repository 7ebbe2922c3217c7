package collect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTextContent(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", nil, true},
		{"plain ascii", []byte("const x = 1;\n"), true},
		{"utf8 text", []byte("héllo wörld ✓"), true},
		{"tabs and newlines", []byte("a\tb\r\nc"), true},
		{"null byte", []byte("abc\x00def"), false},
		{"invalid utf8", []byte{0xff, 0xfe, 'a'}, false},
		{"mostly control bytes", []byte("\x01\x02\x03\x04\x05ab"), false},
		{"long text sampled from start", []byte(strings.Repeat("a", 4096)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTextContent(tt.data))
		})
	}
}
