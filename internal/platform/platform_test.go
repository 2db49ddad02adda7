package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalKeyForLookup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"ctrl+n", "ctrl+n"},
		{"Ctrl+N", "ctrl+n"},
		{"shift+ctrl+n", "ctrl+shift+n"},
		{"cmd+o", "ctrl+o"},
		{"option+left", "alt+left"},
		{"ctrl+ctrl+w", "ctrl+w"},
		{" ", "space"},
		{"f1", "f1"},
		{"esc", "esc"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalKeyForLookup(tt.in))
		})
	}
}

func TestMatchesKey(t *testing.T) {
	assert.True(t, MatchesKey("ctrl+n", "Ctrl+N"))
	assert.True(t, MatchesKey("ctrl+o", "cmd+o"))
	assert.False(t, MatchesKey("ctrl+n", "ctrl+o"))
}

func TestDisplayKey(t *testing.T) {
	assert.Equal(t, "", DisplayKey(""))
	assert.Equal(t, "Ctrl+N", DisplayKey("ctrl+n"))
	assert.Equal(t, "F1", DisplayKey("f1"))
	assert.Equal(t, "Esc", DisplayKey("esc"))
}
