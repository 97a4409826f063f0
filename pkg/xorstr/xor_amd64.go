//go:build amd64 && !purego

package xorstr

import "golang.org/x/sys/cpu"

var useAVX2 = cpu.X86.HasAVX2

// revealChunks XORs keys into store 32 bytes at a time. Both slices have the
// same length, a multiple of 32.
func revealChunks(store, keys []byte) {
	if len(store) == 0 {
		return
	}
	if useAVX2 {
		xorChunksAVX2(&store[0], &keys[0], len(store)/ChunkSize)
		return
	}
	xorChunksGeneric(store, keys)
}

// xorChunksAVX2 XORs keys into dst in place, one 32-byte VPXOR per chunk.
// Implemented in xor_amd64.s.
//
//go:noescape
func xorChunksAVX2(dst, keys *byte, chunks int)
