/*
Package xorstr hides string literals from static inspection of a compiled
binary. Literals are XOR-encrypted into 64-bit word stores at build time and
revealed in place at the moment of use, so neither `strings` nor a hex dump
of the binary shows the plaintext.

Note that this is NOT encryption, since the key sequence is derivable from
the seed sitting right next to the ciphertext. This falls squarely under the
obfuscation category: it defeats passive string scanning, not an adversary
who can run the program or read its memory after a reveal.

# How it works:

Each literal gets a 64-bit seed. The seed is expanded into one key per
8-byte word via an avalanche mix (DeriveKey), and the literal's bytes are
packed little-endian into words and XORed with those keys. The store is
sized up to whole 32-byte chunks, so the reveal loop always processes four
words at a time. With AVX2 on amd64 that is one vector XOR per chunk.

Reveal toggles: the first call decrypts the store in place, the next call
re-encrypts it, and so on. The plaintext is available exactly when the call
count on that instance is odd. There is no separate state flag; the state
IS the store's current bytes.

Call sites that must not leak their literal into the binary are generated
with the strgen tool, which scans a build-ignored Go file of declarations
and emits accessor functions carrying only the encrypted words and the
per-site seed. New and NewString take plaintext at runtime and therefore
protect in-memory values only.

# Important note:

A Str instance must be revealed by at most one goroutine at a time. Reveal
mutates the store without synchronization, so concurrent calls can
interleave partial chunk updates and corrupt it beyond recovery. The
returned slice aliases the store: do not keep it across another Reveal call.
On hosts that are not little-endian, views of multi-byte element types
([]uint16, []rune) do not reassemble correctly; the byte store and []byte
views are endian-independent.

# General guidelines:

  - Prefer generated accessors over NewString for anything secret; a
    literal passed to NewString is still in the binary.
  - One reveal per read. Call the accessor (or Reveal) where the value is
    used and let go of the result.
  - Byte-slice accessors can be wiped with Shred after use; string returns
    cannot, because Go strings are immutable.
  - Distinct call sites get distinct seeds from the generator, so two
    occurrences of the same literal produce different ciphertext. Seed
    collisions across builds or files are possible and accepted; this is
    obfuscation, not a uniqueness guarantee.
*/
package xorstr
