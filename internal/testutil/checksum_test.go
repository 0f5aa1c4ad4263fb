package testutil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	assert.Zero(t, Checksum(nil))
	assert.Zero(t, Checksum(make([]byte, 16)))
	assert.Equal(t, uint32(1+2+3), Checksum([]byte{1, 2, 3}))
	assert.Equal(t, uint32(2*255), Checksum([]byte{255, 255}))
}

func TestFillRandomChangesBuffer(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	buf := make([]byte, 256)
	FillRandom(rng, buf)

	allZero := true
	for _, b := range buf {
		if b != 0 {
			allZero = false
			break
		}
	}
	require.False(t, allZero, "256 random bytes should not all be zero")
}
