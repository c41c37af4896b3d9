package patterns

import (
	"fmt"
	"strconv"
	"strings"
)

// Width is the number of low-order bits of each uint32 word that carry
// pattern information. Bits above it are always zero.
type Width uint

const (
	Width16 Width = 16
	Width32 Width = 32
)

const ContainerBits = 32

func (w Width) Valid() bool {
	return w == Width16 || w == Width32
}

func (w Width) Mask() uint32 {
	if w >= ContainerBits {
		return ^uint32(0)
	}
	return uint32(1)<<w - 1
}

func (w Width) TopBit() uint32 {
	return uint32(1) << (w - 1)
}

// Period is the length of a full back-and-forth sweep of the walking bit.
func (w Width) Period() int {
	return 2 * int(w)
}

func (w Width) Bytes() int {
	return int(w) / 8
}

func (w Width) String() string {
	return strconv.Itoa(int(w)) + "-bit"
}

func (w Width) check() error {
	if !w.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, uint(w))
	}
	return nil
}

func ParseWidth(value string) (Width, error) {
	value = strings.TrimSuffix(strings.TrimSpace(strings.ToLower(value)), "-bit")
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWidth, value)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWidth, n)
	}
	w := Width(n)
	if err = w.check(); err != nil {
		return 0, err
	}
	return w, nil
}
