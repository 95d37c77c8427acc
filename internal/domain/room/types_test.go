//go:build unit

package room_test

import (
	"testing"

	"villabook/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	t.Run("accepts every known room type", func(t *testing.T) {
		for _, s := range []string{"standard", "deluxe", "suite", "family", "presidential"} {
			parsed, err := room.ParseType(s)
			require.NoError(t, err)
			assert.Equal(t, s, parsed.String())
		}
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		_, err := room.ParseType("penthouse")
		assert.ErrorIs(t, err, room.ErrInvalidRoomType)

		// No case folding: the wire format is lowercase.
		_, err = room.ParseType("Suite")
		assert.ErrorIs(t, err, room.ErrInvalidRoomType)
	})
}

func TestTypeIsValid(t *testing.T) {
	assert.True(t, room.TypeSuite.IsValid())
	assert.False(t, room.Type("").IsValid())
}
