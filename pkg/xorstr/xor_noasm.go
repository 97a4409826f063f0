//go:build !amd64 || purego

package xorstr

func revealChunks(store, keys []byte) {
	xorChunksGeneric(store, keys)
}
