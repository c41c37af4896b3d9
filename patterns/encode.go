package patterns

import (
	"encoding/binary"

	"github.com/howeyc/crc16"
)

// Encode packs each word into width.Bytes() bytes using order.
// Invalid widths encode to nil.
func Encode(words []uint32, width Width, order binary.ByteOrder) []byte {
	if !width.Valid() {
		return nil
	}
	var size = width.Bytes()
	var data = make([]byte, len(words)*size)
	var mask = width.Mask()
	for i, word := range words {
		if width == Width16 {
			order.PutUint16(data[i*size:], uint16(word&mask))
		} else {
			order.PutUint32(data[i*size:], word)
		}
	}
	return data
}

// Signature is the CRC-16/CCITT-FALSE of the big endian encoding of words.
func Signature(words []uint32, width Width) uint16 {
	return crc16.ChecksumCCITTFalse(Encode(words, width, binary.BigEndian))
}
