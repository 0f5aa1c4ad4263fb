package testutil

import "math/rand"

// FillRandom fills buf with bytes drawn from rng.
func FillRandom(rng *rand.Rand, buf []byte) {
	for i := range buf {
		buf[i] = byte(rng.Intn(256))
	}
}
