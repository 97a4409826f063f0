package xorstr

import "encoding/binary"

// xorChunksGeneric is the portable reveal loop: one 32-byte chunk per
// iteration, four 64-bit words unrolled. Store sizing guarantees there is
// never a partial chunk.
func xorChunksGeneric(store, keys []byte) {
	for off := 0; off < len(store); off += ChunkSize {
		s := store[off : off+ChunkSize : off+ChunkSize]
		k := keys[off : off+ChunkSize : off+ChunkSize]
		binary.LittleEndian.PutUint64(s[0:], binary.LittleEndian.Uint64(s[0:])^binary.LittleEndian.Uint64(k[0:]))
		binary.LittleEndian.PutUint64(s[8:], binary.LittleEndian.Uint64(s[8:])^binary.LittleEndian.Uint64(k[8:]))
		binary.LittleEndian.PutUint64(s[16:], binary.LittleEndian.Uint64(s[16:])^binary.LittleEndian.Uint64(k[16:]))
		binary.LittleEndian.PutUint64(s[24:], binary.LittleEndian.Uint64(s[24:])^binary.LittleEndian.Uint64(k[24:]))
	}
}
