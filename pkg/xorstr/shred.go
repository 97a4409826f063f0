package xorstr

// Shred zeroes b. Use it on revealed copies handed out by generated []byte
// accessors once they are no longer needed, so plaintext does not linger on
// the heap. Go strings cannot be shredded; prefer byte-slice accessors for
// values worth wiping.
func Shred(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
