package tmpl

import (
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Odd multiplicative constant mixed into every site seed.
const seedMix = 0xCBF29CE484222325

const stampLayout = "15:04:05"

// SiteSeed derives the seed for one generated call site from the site's
// position in the pass and two stamp bytes. counter increments per literal in
// declaration order, starting at zero; line is the 1-based source line of the
// declaration. The construction spreads sites across seeds but does not
// guarantee uniqueness; coincidental collisions are accepted, and a collision
// only means two literals share a key sequence, not that either is exposed.
func SiteSeed(counter, line uint64, stampA, stampB byte) uint64 {
	return counter*line*seedMix + uint64(stampA) + uint64(stampB)
}

// clockStamp returns the stamp bytes for a generation pass at time now:
// positions 0 and 4 of the wall clock rendered as HH:MM:SS, so seeds vary
// between passes run at different times.
func clockStamp(now time.Time) (byte, byte) {
	s := now.Format(stampLayout)
	return s[0], s[4]
}

// parseStamp validates a caller-pinned HH:MM:SS stamp and returns its stamp
// bytes. Pinning the stamp makes a pass reproducible, which is what committed
// generated files want.
func parseStamp(stamp string) (byte, byte, error) {
	t, err := time.Parse(stampLayout, stamp)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid stamp %q, want HH:MM:SS: %w", stamp, err)
	}
	a, b := clockStamp(t)
	return a, b, nil
}

// contentStamp derives the stamp bytes from the input source itself, for
// reproducible builds with no pinned stamp: the same input always produces
// the same seeds, and any edit to the input reseeds every site.
func contentStamp(src []byte) (byte, byte) {
	sum := blake2b.Sum256(src)
	return sum[0], sum[1]
}
