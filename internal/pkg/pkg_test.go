package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRoomCode(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 50; i++ {
		code, err := GenerateRoomCode()
		require.NoError(t, err)

		assert.Len(t, code, RoomCodeLength)
		for _, char := range code {
			assert.True(t, strings.ContainsRune(RoomCodeAlphabet, char), "unexpected character %q in code %q", char, code)
		}

		seen[code] = struct{}{}
	}

	// With a 32^5 code space, 50 draws colliding would point at a broken
	// generator rather than bad luck.
	assert.Greater(t, len(seen), 1)
}
