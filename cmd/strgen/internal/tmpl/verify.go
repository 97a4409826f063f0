package tmpl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"unicode/utf16"
)

// Literal values shorter than this match too easily in arbitrary binaries to
// be meaningful evidence of a leak.
const minLeakLen = 4

// Leak reports one literal whose plaintext was found in a built artifact,
// meaning the artifact embeds the unprotected value rather than the
// generated words.
type Leak struct {
	Name     string
	Artifact string
	Wide     bool
}

func (l Leak) String() string {
	if l.Wide {
		return fmt.Sprintf("%s: found UTF-16 plaintext of %q", l.Artifact, l.Name)
	}
	return fmt.Sprintf("%s: found plaintext of %q", l.Artifact, l.Name)
}

// VerifyArtifacts scans each artifact for the plaintext of every literal
// declared in input and reports all matches. Wide literals are checked in
// both their UTF-8 source rendering and their UTF-16 little-endian rendering.
// Literals shorter than four bytes are skipped. A nil result means no
// plaintext was found.
func VerifyArtifacts(input string, artifacts ...string) ([]Leak, error) {
	lits, err := ScanLiterals(input, nil)
	if err != nil {
		return nil, err
	}
	var leaks []Leak
	for _, artifact := range artifacts {
		data, err := os.ReadFile(artifact)
		if err != nil {
			return nil, fmt.Errorf("failed to read artifact: %w", err)
		}
		for _, lit := range lits {
			if len(lit.Value) < minLeakLen {
				continue
			}
			if bytes.Contains(data, []byte(lit.Value)) {
				leaks = append(leaks, Leak{Name: lit.Name, Artifact: artifact})
			}
			if lit.Kind != KindWide {
				continue
			}
			if wide := utf16leBytes(lit.Value); len(wide) >= minLeakLen && bytes.Contains(data, wide) {
				leaks = append(leaks, Leak{Name: lit.Name, Artifact: artifact, Wide: true})
			}
		}
	}
	return leaks, nil
}

func utf16leBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[i*2:], u)
	}
	return buf
}
