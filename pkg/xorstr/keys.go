package xorstr

// SplitMix64-style avalanche constants, plus a final xor/multiply round to
// spread nearby seeds further apart.
const (
	mixMul1 uint64 = 0xBF58476D1CE4E5B9
	mixMul2 uint64 = 0x94D049BB133111EB
	mixXor  uint64 = 0xAAAAAAAAAAAAAAAA
	mixMul3 uint64 = 0xC6FD031E56F1449D
)

// DeriveKey returns the 64-bit key for one 8-byte block of an obfuscated
// literal. It is pure and deterministic: the same (seed, index) pair always
// yields the same key, which is what lets Reveal undo the build-time
// encryption without the key sequence ever being stored. Seed and index are
// summed before the avalanche rounds, so even index 0 passes through the
// full mix rather than echoing the seed. All arithmetic wraps, so any index
// value is valid.
//
// This is a fast avalanche mix, not a cryptographic PRF. It is chosen for
// well-distributed, reproducible output at build time, with no claim of
// resistance to key recovery.
func DeriveKey(seed, index uint64) uint64 {
	z := seed + index
	z = (z ^ (z >> 30)) * mixMul1
	z = (z ^ (z >> 27)) * mixMul2
	z ^= z >> 31
	z ^= mixXor
	return z * mixMul3
}

// Schedule returns the key sequence for the first words blocks of a store.
// Generated code does not call this; it exists for the generator and for
// callers inspecting the scheme.
func Schedule(seed uint64, words int) []uint64 {
	keys := make([]uint64, words)
	for i := range keys {
		keys[i] = DeriveKey(seed, uint64(i))
	}
	return keys
}
