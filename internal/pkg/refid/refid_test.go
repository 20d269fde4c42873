//go:build unit

package refid_test

import (
	"testing"

	"bookit/internal/pkg/refid"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	seen := make(map[string]struct{})
	for range 1000 {
		id := refid.New()
		assert.True(t, refid.IsValid(id), "generated id %q should be valid", id)
		seen[id] = struct{}{}
	}
	// 36^6 possibilities; 1000 draws colliding would indicate a broken generator
	assert.Greater(t, len(seen), 990)
}

func TestIsValid(t *testing.T) {
	assert.True(t, refid.IsValid("BKG-7K2Q9X"))
	assert.False(t, refid.IsValid(""))
	assert.False(t, refid.IsValid("BKG-7K2Q9"))
	assert.False(t, refid.IsValid("XYZ-7K2Q9X"))
	assert.False(t, refid.IsValid("BKG-7k2q9x"))
	assert.False(t, refid.IsValid("BKG-7K2Q9XX"))
}
