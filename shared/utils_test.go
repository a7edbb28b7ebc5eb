package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Gophers", "gophers"},
		{"spaces", "Go Gophers Club", "go-gophers-club"},
		{"punctuation", "C++ & Go!", "c-go"},
		{"leading and trailing", "  --Hello--  ", "hello"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"all symbols", "???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestGetRandomAlphanumeric(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		b, err := GetRandomAlphanumeric(6)
		assert.NoError(t, err)
		assert.Len(t, b, 6)
		for _, c := range b {
			assert.Contains(t, letters, string(c))
		}
		seen[string(b)] = true
	}

	// 100 draws from a 62^6 space shouldn't collide down to a handful
	assert.Greater(t, len(seen), 90)
}
