package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLiterals(t *testing.T) {
	src := []byte(`//go:build ignore

package main

var (
	alpha = "first"
	beta  = "second" //strgen:raw
)

var gamma = "wide value" //strgen:wide

const delta = "constant"
`)
	lits, err := ScanLiterals("input.go", src)
	require.NoError(t, err)
	require.Len(t, lits, 4)
	assert.Equal(t, Literal{Name: "alpha", Value: "first", Line: 6, Kind: KindString}, lits[0])
	assert.Equal(t, Literal{Name: "beta", Value: "second", Line: 7, Kind: KindRaw}, lits[1])
	assert.Equal(t, Literal{Name: "gamma", Value: "wide value", Line: 10, Kind: KindWide}, lits[2])
	assert.Equal(t, Literal{Name: "delta", Value: "constant", Line: 12, Kind: KindString}, lits[3])
}

func TestScanLiteralsEscapes(t *testing.T) {
	src := []byte("package main\n\nvar escaped = \"tab\\there\\n\"\n\nvar raw = `back\\slash`\n")
	lits, err := ScanLiterals("input.go", src)
	require.NoError(t, err)
	require.Len(t, lits, 2)
	assert.Equal(t, "tab\there\n", lits[0].Value)
	assert.Equal(t, `back\slash`, lits[1].Value)
}

func TestScanLiteralsExplicitString(t *testing.T) {
	src := []byte("package main\n\nvar plain = \"value\" //strgen:string\n")
	lits, err := ScanLiterals("input.go", src)
	require.NoError(t, err)
	require.Len(t, lits, 1)
	assert.Equal(t, KindString, lits[0].Kind)
}

func TestScanLiteralsIgnoresOtherComments(t *testing.T) {
	src := []byte("package main\n\nvar noted = \"value\" // not a directive\n")
	lits, err := ScanLiterals("input.go", src)
	require.NoError(t, err)
	require.Len(t, lits, 1)
	assert.Equal(t, KindString, lits[0].Kind)
}

func TestScanLiteralsErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"no literals", "package main\n\nfunc f() {}\n", ErrNoLiterals},
		{"non-string", "package main\n\nvar n = 42\n", ErrBadLiteral},
		{"non-literal", "package main\n\nvar x = y\n", ErrBadLiteral},
		{"multi-name", "package main\n\nvar a, b = \"x\", \"y\"\n", ErrBadLiteral},
		{"blank name", "package main\n\nvar _ = \"x\"\n", ErrBadLiteral},
		{"bad directive", "package main\n\nvar x = \"v\" //strgen:nope\n", ErrBadDirective},
	}
	for _, c := range cases {
		_, err := ScanLiterals("input.go", []byte(c.src))
		assert.ErrorIs(t, err, c.want, c.name)
	}
}

func TestScanLiteralsUnparseable(t *testing.T) {
	_, err := ScanLiterals("input.go", []byte("this is not go source"))
	assert.Error(t, err)
}
