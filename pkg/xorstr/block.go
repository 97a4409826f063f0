package xorstr

import "unsafe"

// Char constrains the element types a literal may use: single-byte strings,
// UTF-16 code units for Windows-style wide strings, or UTF-32 runes. Block
// and chunk boundaries are always in bytes, independent of element width.
type Char interface {
	~byte | ~uint16 | ~rune
}

const (
	// WordSize is the block granularity in bytes; each word gets its own key.
	WordSize = 8
	// ChunkSize is the reveal granularity in bytes: four words per XOR step.
	ChunkSize = 32
)

// alignUp rounds v up to the next multiple of a. a must be a power of two.
func alignUp(v, a int) int {
	return (v + a - 1) &^ (a - 1)
}

// WordCount returns the number of 64-bit words backing a literal of byteLen
// bytes: the length rounded up to a 32-byte boundary, divided by 8. The
// result is always a positive multiple of 4, so Reveal runs whole chunks
// with no remainder handling. An empty literal still occupies one chunk.
func WordCount(byteLen int) int {
	if byteLen < 1 {
		byteLen = 1
	}
	return alignUp(byteLen, ChunkSize) / WordSize
}

func charSize[T Char]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// PackWord packs up to eight bytes of lit, starting at the word's byte
// offset, into one little-endian word: the earliest byte lands in the
// lowest-order bits, each element contributing its full byte width.
// Positions past the end of the literal contribute zero.
func PackWord[T Char](lit []T, word int) uint64 {
	size := charSize[T]()
	perWord := WordSize / size
	mask := uint64(1)<<(8*size) - 1
	off := word * perWord

	var v uint64
	for i := 0; i < perWord; i++ {
		if idx := off + i; idx < len(lit) {
			v |= (uint64(lit[idx]) & mask) << (8 * size * i)
		}
	}
	return v
}

// EncodeWord produces the stored ciphertext for one word: the packed
// plaintext XORed with that word's key. A word lying entirely in the padding
// packs to zero, so its ciphertext is the key itself and the padding reveals
// to zero bytes.
func EncodeWord[T Char](lit []T, word int, key uint64) uint64 {
	return PackWord(lit, word) ^ key
}

// Encode produces the complete encrypted word array for lit under seed,
// padding words included. This is the build-time half of FromWords: strgen
// bakes Encode's output into generated source, and FromWords adopts it again
// at runtime.
func Encode[T Char](seed uint64, lit []T) []uint64 {
	words := make([]uint64, WordCount(len(lit)*charSize[T]()))
	for w := range words {
		words[w] = EncodeWord(lit, w, DeriveKey(seed, uint64(w)))
	}
	return words
}
