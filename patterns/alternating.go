package patterns

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

const (
	CheckerboardSeed uint32 = 0xAAAAAAAA
	ZerosOnesSeed    uint32 = 0x00000000
)

// Alternating returns length words alternating between seed and its
// complement, starting with seed at index 0, masked to width.
func Alternating(width Width, seed uint32, length int) ([]uint32, error) {
	if err := width.check(); err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: alternating %d", ErrInvalidLength, length)
	}
	var out = make([]uint32, length)
	var mask = width.Mask()
	var passThrough = true
	for i := range out {
		if passThrough {
			out[i] = seed & mask
		} else {
			out[i] = (seed ^ ^uint32(0)) & mask
		}
		passThrough = !passThrough
	}
	log.WithFields(log.Fields{
		"width":  width,
		"seed":   fmt.Sprintf("%#08x", seed),
		"length": length,
	}).Debug("Alternating")
	return out, nil
}

// Checkerboard alternates 0xAAAA... and 0x5555...
func Checkerboard(width Width, length int) ([]uint32, error) {
	return Alternating(width, CheckerboardSeed, length)
}

// ZerosOnes alternates all zeros and all ones.
func ZerosOnes(width Width, length int) ([]uint32, error) {
	return Alternating(width, ZerosOnesSeed, length)
}
