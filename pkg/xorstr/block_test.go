package xorstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCount(t *testing.T) {
	cases := []struct {
		bytes, words int
	}{
		{0, 4},
		{1, 4},
		{7, 4},
		{14, 4},
		{31, 4},
		{32, 4},
		{33, 8},
		{64, 8},
		{65, 12},
		{96, 12},
		{256, 32},
		{1024, 128},
	}
	for _, c := range cases {
		assert.Equal(t, c.words, WordCount(c.bytes), "%d bytes", c.bytes)
	}
}

func TestWordCountChunkMultiple(t *testing.T) {
	for n := 0; n <= 300; n++ {
		assert.Zero(t, WordCount(n)%4, "%d bytes not chunk aligned", n)
	}
}

func TestPackWordBytes(t *testing.T) {
	full := []byte("ABCDEFGH")
	assert.Equal(t, uint64(0x4847464544434241), PackWord(full, 0))

	short := []byte("ABC")
	assert.Equal(t, uint64(0x0000000000434241), PackWord(short, 0))
	assert.Equal(t, uint64(0), PackWord(short, 1))
}

func TestPackWordWide(t *testing.T) {
	units := []uint16{0x0041, 0x4242}
	assert.Equal(t, uint64(0x0000000042420041), PackWord(units, 0))

	runes := []rune{'A', '😊'}
	assert.Equal(t, uint64(0x0001F60A00000041), PackWord(runes, 0))
}

func TestPackWordPastEnd(t *testing.T) {
	lit := []byte("xy")
	// Word indexes beyond the literal pack as zero padding.
	assert.Equal(t, uint64(0), PackWord(lit, 1))
	assert.Equal(t, uint64(0), PackWord(lit, 3))
}

func TestEncodeWord(t *testing.T) {
	lit := []byte("ABCDEFGH")
	key := uint64(0x1111111111111111)
	enc := EncodeWord(lit, 0, key)
	assert.Equal(t, PackWord(lit, 0)^key, enc)
	assert.Equal(t, PackWord(lit, 0), enc^key)
}

func TestEncodeWordPadding(t *testing.T) {
	// A word holding nothing but padding encodes to the key itself, so
	// decoding yields zero bytes rather than key material.
	lit := []byte("hi")
	key := uint64(0xA5A5A5A5A5A5A5A5)
	assert.Equal(t, key, EncodeWord(lit, 2, key))
}

func TestEncode(t *testing.T) {
	words := Encode(0x12345678, []byte("duplicate test"))
	assert.Equal(t, []uint64{
		0x6F79AB5C444B5D1B,
		0x5A97E45868E4B991,
		0xBAC7C94CA541A0F0,
		0xB9A969566550EF63,
	}, words)

	// Padding-only trailing words carry the raw keys.
	assert.Equal(t, DeriveKey(0x12345678, 2), words[2])
	assert.Equal(t, DeriveKey(0x12345678, 3), words[3])
}

func TestEncodeEmpty(t *testing.T) {
	words := Encode[byte](0xFEED, nil)
	assert.Equal(t, Schedule(0xFEED, 4), words)
}
