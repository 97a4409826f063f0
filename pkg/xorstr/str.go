package xorstr

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// Str is one obfuscated literal: an owned, 32-byte-aligned store of XOR-
// encrypted 64-bit words, plus the seed its key sequence derives from. The
// store starts encrypted; every Reveal call toggles it between ciphertext
// and plaintext in place. The key sequence itself is never stored, only
// re-derived from the seed each time it is needed.
type Str[T Char] struct {
	store []byte // alignUp(byteLen, 32) bytes, 32-byte aligned
	seed  uint64
	n     int // element count of the literal
}

// New encrypts lit word by word under the key sequence derived from seed and
// returns the container in its encrypted state. There is no runtime cost
// beyond the construction itself and no failure mode.
//
// Note that New receives the plaintext as an argument, so it protects values
// that live in MEMORY (decrypted config fields, assembled secrets), not
// literals baked into the binary. Hiding a literal from the binary itself
// requires generating the call site with strgen, which bakes only the
// encrypted words into the source.
func New[T Char](seed uint64, lit []T) *Str[T] {
	return FromWords[T](seed, len(lit), Encode(seed, lit))
}

// NewString is New for the common single-byte case.
func NewString(seed uint64, lit string) *Str[byte] {
	return New(seed, []byte(lit))
}

// FromWords adopts an already-encrypted word array, the form strgen bakes
// into generated source. n is the element count of the original literal; the
// words are copied, so one baked array can serve every call of an accessor.
//
// len(words) must equal WordCount of the literal's byte length. A mismatch
// means the generated site is corrupt, and FromWords panics rather than
// returning a container that would reveal garbage.
func FromWords[T Char](seed uint64, n int, words []uint64) *Str[T] {
	byteLen := n * charSize[T]()
	if len(words) != WordCount(byteLen) {
		panic(fmt.Sprintf("xorstr: %d words cannot back a literal of %d bytes", len(words), byteLen))
	}
	s := &Str[T]{
		store: alignedStore(len(words) * WordSize),
		seed:  seed,
		n:     n,
	}
	for i, w := range words {
		binary.LittleEndian.PutUint64(s.store[i*WordSize:], w)
	}
	return s
}

// Reveal XORs the store against the re-derived key sequence one 32-byte
// chunk at a time, in place, and returns a view of the literal's elements.
// Every call flips the state: after an odd number of calls the store holds
// plaintext, after an even number ciphertext again. The returned slice
// aliases the store, so it must not be read after a further Reveal call, and
// a given instance must not be revealed from more than one goroutine at a
// time. Reveal cannot fail.
func (s *Str[T]) Reveal() []T {
	keys := make([]byte, len(s.store))
	for w := 0; w < len(s.store)/WordSize; w++ {
		binary.LittleEndian.PutUint64(keys[w*WordSize:], DeriveKey(s.seed, uint64(w)))
	}
	revealChunks(s.store, keys)
	if s.n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&s.store[0])), s.n)
}

// Raw exposes the store's current raw bytes, in whatever state the toggle
// parity has left them, padding included. Treat it as read-only; it exists
// so tests and leak audits can inspect the layout.
func (s *Str[T]) Raw() []byte {
	return s.store
}

// Size returns the store size in bytes: the literal's byte length rounded up
// to whole 32-byte chunks.
func (s *Str[T]) Size() int {
	return len(s.store)
}

// Len returns the element count of the original literal.
func (s *Str[T]) Len() int {
	return s.n
}

// Shred zeroes the backing store, dropping whichever of plaintext or
// ciphertext it currently holds. The instance is dead afterward and must not
// be revealed again.
func (s *Str[T]) Shred() {
	Shred(s.store)
	s.n = 0
}

// alignedStore returns a zeroed slice of exactly size bytes whose first byte
// sits on a 32-byte boundary, matching the chunk width the XOR paths
// assume.
func alignedStore(size int) []byte {
	buf := make([]byte, size+ChunkSize-1)
	off := 0
	if r := int(uintptr(unsafe.Pointer(&buf[0])) % ChunkSize); r != 0 {
		off = ChunkSize - r
	}
	return buf[off : off+size : off+size]
}
