package patterns

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// WalkingBit returns length words in which a single bit walks from bit 0 to
// the top bit of width, then back down, repeating every width.Period() words.
// With walkingOnes false every word is complemented, leaving a single clear
// bit in a field of ones. Words are masked to width.
func WalkingBit(width Width, length int, walkingOnes bool) ([]uint32, error) {
	if err := width.check(); err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: walking bit %d", ErrInvalidLength, length)
	}
	var out = make([]uint32, length)
	var w = int(width)
	var period = width.Period()
	var top = width.TopBit()
	var mask = width.Mask()
	var flip bool
	var shift int
	var raw uint32
	for i := range out {
		shift = i % w
		if i != 0 && shift == 0 {
			flip = !flip
		}
		switch {
		case i%period == 0:
			// every double lap restarts on bit 0
			raw = 1
		case flip:
			raw = top >> shift
		default:
			raw = 1 << shift
		}
		if !walkingOnes {
			raw = ^raw
		}
		out[i] = raw & mask
	}
	log.WithFields(log.Fields{
		"width":       width,
		"length":      length,
		"walkingOnes": walkingOnes,
	}).Debug("Walking bit")
	return out, nil
}

func WalkingBit16(length int, walkingOnes bool) ([]uint32, error) {
	return WalkingBit(Width16, length, walkingOnes)
}

func WalkingBit32(length int, walkingOnes bool) ([]uint32, error) {
	return WalkingBit(Width32, length, walkingOnes)
}
