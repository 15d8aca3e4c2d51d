package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareRoundTrip(t *testing.T) {
	for f := byte('a'); f <= 'h'; f++ {
		for r := byte('1'); r <= '8'; r++ {
			name := string([]byte{f, r})
			sq, err := ParseSquare(name)
			require.NoError(t, err)
			assert.Equal(t, name, sq.String())
		}
	}
}

func TestParseSquareInvalid(t *testing.T) {
	inputs := []string{"", "e", "e44", "i4", "e9", "E4", "4e", "--"}
	for _, s := range inputs {
		sq, err := ParseSquare(s)
		require.ErrorIs(t, err, ErrInvalidSquare, "input %q", s)
		assert.Equal(t, NoSquare, sq)
	}
}

func TestNewSquare(t *testing.T) {
	sq := NewSquare(FileD, Rank4)
	assert.Equal(t, D4, sq)
	assert.Equal(t, FileD, sq.File())
	assert.Equal(t, Rank4, sq.Rank())
	assert.Equal(t, "d4", sq.String())
}

func TestSquareCorners(t *testing.T) {
	assert.Equal(t, "a1", A1.String())
	assert.Equal(t, "h1", H1.String())
	assert.Equal(t, "a8", A8.String())
	assert.Equal(t, "h8", H8.String())
	assert.Equal(t, "-", NoSquare.String())
}
