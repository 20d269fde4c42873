// Package refid generates customer-facing booking reference ids.
package refid

import (
	"crypto/rand"
	"strings"
)

const (
	prefix       = "BKG-"
	suffixLength = 6
	alphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// New returns an id like "BKG-7K2Q9X". The suffix is drawn from crypto/rand so
// collisions across independent clients stay negligible.
func New() string {
	buf := make([]byte, suffixLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic("refid: " + err.Error())
	}
	var b strings.Builder
	b.Grow(len(prefix) + suffixLength)
	b.WriteString(prefix)
	for _, c := range buf {
		b.WriteByte(alphabet[int(c)%len(alphabet)])
	}
	return b.String()
}

// IsValid reports whether s has the shape produced by New.
func IsValid(s string) bool {
	if len(s) != len(prefix)+suffixLength || !strings.HasPrefix(s, prefix) {
		return false
	}
	for _, c := range s[len(prefix):] {
		if !strings.ContainsRune(alphabet, c) {
			return false
		}
	}
	return true
}
