package patterns

import "math/bits"

// NibbleSeed repeats the low nibble of value across every nibble of width,
// e.g. 0xA gives 0xAAAA at 16 bits.
func NibbleSeed(value byte, width Width) uint32 {
	var seed uint32
	if value&0xf == 0 {
		return seed
	}
	var v = uint32(value & 0xf)
	for i := 0; i < int(width)/4; i++ {
		seed |= v
		v = bits.RotateLeft32(v, 4)
	}
	return seed
}
