package tmpl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const verifyInput = `//go:build ignore

package main

var secret = "super-secret-value"

var path = "C:\\secret\\path" //strgen:wide

var pin = "42"
`

func writeVerifyFixtures(t *testing.T) (dir, input string) {
	t.Helper()
	dir = t.TempDir()
	input = filepath.Join(dir, "strings.go")
	require.NoError(t, os.WriteFile(input, []byte(verifyInput), 0600))
	return dir, input
}

func TestVerifyArtifactsClean(t *testing.T) {
	dir, input := writeVerifyFixtures(t)
	clean := filepath.Join(dir, "clean.bin")
	require.NoError(t, os.WriteFile(clean, []byte("nothing to see here"), 0600))

	leaks, err := VerifyArtifacts(input, clean)
	assert.NoError(t, err)
	assert.Empty(t, leaks)
}

func TestVerifyArtifactsLeak(t *testing.T) {
	dir, input := writeVerifyFixtures(t)
	clean := filepath.Join(dir, "clean.bin")
	require.NoError(t, os.WriteFile(clean, []byte("nothing to see here"), 0600))
	dirty := filepath.Join(dir, "dirty.bin")
	require.NoError(t, os.WriteFile(dirty, []byte("prefix super-secret-value suffix"), 0600))

	leaks, err := VerifyArtifacts(input, clean, dirty)
	require.NoError(t, err)
	require.Len(t, leaks, 1)
	assert.Equal(t, "secret", leaks[0].Name)
	assert.Equal(t, dirty, leaks[0].Artifact)
	assert.False(t, leaks[0].Wide)
	assert.Contains(t, leaks[0].String(), "secret")
}

func TestVerifyArtifactsWideLeak(t *testing.T) {
	dir, input := writeVerifyFixtures(t)
	payload := append([]byte("padding "), utf16leBytes(`C:\secret\path`)...)
	dirty := filepath.Join(dir, "wide.bin")
	require.NoError(t, os.WriteFile(dirty, payload, 0600))

	leaks, err := VerifyArtifacts(input, dirty)
	require.NoError(t, err)
	require.Len(t, leaks, 1)
	assert.Equal(t, "path", leaks[0].Name)
	assert.True(t, leaks[0].Wide)
	assert.Contains(t, leaks[0].String(), "UTF-16")
}

func TestVerifyArtifactsNarrowRenderingOfWide(t *testing.T) {
	// A wide literal leaking in its UTF-8 source form still counts.
	dir, input := writeVerifyFixtures(t)
	dirty := filepath.Join(dir, "narrow.bin")
	require.NoError(t, os.WriteFile(dirty, []byte(`see C:\secret\path here`), 0600))

	leaks, err := VerifyArtifacts(input, dirty)
	require.NoError(t, err)
	require.Len(t, leaks, 1)
	assert.Equal(t, "path", leaks[0].Name)
	assert.False(t, leaks[0].Wide)
}

func TestVerifyArtifactsShortSkipped(t *testing.T) {
	// "42" is below the minimum scan length and must not be reported even
	// when the artifact contains it.
	dir, input := writeVerifyFixtures(t)
	dirty := filepath.Join(dir, "short.bin")
	require.NoError(t, os.WriteFile(dirty, []byte("the answer is 42"), 0600))

	leaks, err := VerifyArtifacts(input, dirty)
	assert.NoError(t, err)
	assert.Empty(t, leaks)
}

func TestVerifyArtifactsErrors(t *testing.T) {
	dir, input := writeVerifyFixtures(t)
	_, err := VerifyArtifacts(filepath.Join(dir, "missing.go"), input)
	assert.Error(t, err)

	_, err = VerifyArtifacts(input, filepath.Join(dir, "missing.bin"))
	assert.Error(t, err)
}

func TestUTF16LEBytes(t *testing.T) {
	assert.Equal(t, []byte{0x41, 0x00, 0x42, 0x00}, utf16leBytes("AB"))
	assert.Equal(t, []byte{0x3D, 0xD8, 0x0A, 0xDE}, utf16leBytes("😊"))
}
