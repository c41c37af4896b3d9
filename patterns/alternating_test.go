package patterns

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlternating16(t *testing.T) {
	result, err := Alternating(Width16, 0x0FF0, 5)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x0FF0, 0xF00F, 0x0FF0, 0xF00F, 0x0FF0}, result)
}

func TestAlternating32(t *testing.T) {
	result, err := Alternating(Width32, 0x12345678, 4)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x12345678, 0xEDCBA987, 0x12345678, 0xEDCBA987}, result)
}

func TestAlternating_Property(t *testing.T) {
	var seeds = []uint32{0, 1, 0xAAAAAAAA, 0xDEADBEEF, 0xFFFFFFFF}
	for _, width := range []Width{Width16, Width32} {
		for _, seed := range seeds {
			result, err := Alternating(width, seed, 33)
			require.NoError(t, err)
			require.Len(t, result, 33)
			for i, word := range result {
				if i%2 == 0 {
					assert.Equal(t, seed&width.Mask(), word)
				} else {
					assert.Equal(t, ^seed&width.Mask(), word)
				}
			}
		}
	}
}

func TestPresets16(t *testing.T) {
	result, err := Checkerboard(Width16, 5)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0xAAAA, 0x5555, 0xAAAA, 0x5555, 0xAAAA}, result)

	result, err = ZerosOnes(Width16, 5)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x0000, 0xFFFF, 0x0000, 0xFFFF, 0x0000}, result)
}

func TestPresets32(t *testing.T) {
	result, err := Checkerboard(Width32, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0xAAAAAAAA, 0x55555555, 0xAAAAAAAA}, result)

	result, err = ZerosOnes(Width32, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x00000000, 0xFFFFFFFF, 0x00000000}, result)
}

func TestAlternating_Empty(t *testing.T) {
	for _, generate := range []func(Width, int) ([]uint32, error){Checkerboard, ZerosOnes} {
		result, err := generate(Width32, 0)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	}
}

func TestAlternating_Invalid(t *testing.T) {
	_, err := Alternating(Width32, 0, -3)
	assert.True(t, errors.Is(err, ErrInvalidLength))
	_, err = Checkerboard(Width(0), 3)
	assert.True(t, errors.Is(err, ErrInvalidWidth))
}

func TestNibbleSeed(t *testing.T) {
	assert.Equal(t, uint32(0xAAAA), NibbleSeed(0xA, Width16))
	assert.Equal(t, CheckerboardSeed, NibbleSeed(0xA, Width32))
	assert.Equal(t, uint32(0x55555555), NibbleSeed(0xF5, Width32))
	assert.Equal(t, ZerosOnesSeed, NibbleSeed(0x0, Width32))
}
