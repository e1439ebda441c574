package ident

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
)

// Alphabet excludes characters that are easy to confuse when a code is
// read aloud or typed from a screen (no I/O/0/1).
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Length is the size of every generated identifier: room codes, player ids,
// question ids, and chat message ids all share it.
const Length = 6

// New returns a fresh identifier drawn from Alphabet.
func New() string {
	buf := make([]byte, Length)
	max := big.NewInt(int64(len(Alphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// Fallback to the non-crypto source if the system one is unavailable.
			return newFallback()
		}
		buf[i] = Alphabet[n.Int64()]
	}
	return string(buf)
}

func newFallback() string {
	buf := make([]byte, Length)
	for i := range buf {
		buf[i] = Alphabet[mathrand.Intn(len(Alphabet))]
	}
	return string(buf)
}
