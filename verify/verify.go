package verify

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/fernandosanchezjr/bitpatterns/patterns"
	log "github.com/sirupsen/logrus"
)

var ErrLengthMismatch = errors.New("verify: readback length differs from pattern")

type Mismatch struct {
	Index       int
	Expected    uint32
	Actual      uint32
	FailingBits uint32
}

type Report struct {
	Width      patterns.Width
	Words      int
	Mismatches []Mismatch
}

// Compare checks readback words against the expected pattern. Only the low
// width bits of each word are compared.
func Compare(expected, actual []uint32, width patterns.Width) (*Report, error) {
	if !width.Valid() {
		return nil, fmt.Errorf("%w: %d", patterns.ErrInvalidWidth, uint(width))
	}
	if len(expected) != len(actual) {
		return nil, fmt.Errorf("%w: expected %d words, got %d", ErrLengthMismatch, len(expected), len(actual))
	}
	var mask = width.Mask()
	var r = &Report{Width: width, Words: len(expected)}
	var failing uint32
	for i := range expected {
		if failing = (expected[i] ^ actual[i]) & mask; failing != 0 {
			r.Mismatches = append(r.Mismatches, Mismatch{
				Index:       i,
				Expected:    expected[i] & mask,
				Actual:      actual[i] & mask,
				FailingBits: failing,
			})
		}
	}
	if !r.Ok() {
		log.WithFields(log.Fields{
			"words":      r.Words,
			"mismatches": len(r.Mismatches),
			"stuckBits":  fmt.Sprintf("%#x", r.StuckBits()),
		}).Debug("Readback mismatch")
	}
	return r, nil
}

func (r *Report) Ok() bool {
	return len(r.Mismatches) == 0
}

// StuckBits is the union of all failing bits.
func (r *Report) StuckBits() uint32 {
	var stuck uint32
	for _, m := range r.Mismatches {
		stuck |= m.FailingBits
	}
	return stuck
}

func (r *Report) FailingPositions() []int {
	var stuck = r.StuckBits()
	var positions = make([]int, 0, bits.OnesCount32(stuck))
	for stuck != 0 {
		pos := bits.TrailingZeros32(stuck)
		positions = append(positions, pos)
		stuck &^= 1 << pos
	}
	return positions
}

func (r *Report) String() string {
	if r.Ok() {
		return fmt.Sprintf("%d %s words ok", r.Words, r.Width)
	}
	return fmt.Sprintf("%d of %d %s words failed, bits %v", len(r.Mismatches), r.Words, r.Width, r.FailingPositions())
}
