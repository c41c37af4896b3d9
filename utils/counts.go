package utils

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

const MaxRawWordCount = 1000

type WordCount int

func (w WordCount) String() string {
	if w < MaxRawWordCount {
		return strconv.Itoa(int(w))
	}
	return humanize.SIWithDigits(float64(w), 2, "words")
}

type ByteSize uint64

func (b ByteSize) String() string {
	return humanize.IBytes(uint64(b))
}
