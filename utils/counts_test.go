package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCount(t *testing.T) {
	assert.Equal(t, "0", WordCount(0).String())
	assert.Equal(t, "999", WordCount(999).String())
	assert.Equal(t, "1.5 kwords", WordCount(1500).String())
}

func TestByteSize(t *testing.T) {
	assert.Equal(t, "512 B", ByteSize(512).String())
	assert.Equal(t, "4.0 KiB", ByteSize(4096).String())
}
