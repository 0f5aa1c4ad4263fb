// Package testutil carries helpers shared by the randomized stress driver
// and the allocator property tests.
package testutil

// Checksum returns the additive byte checksum of data. The stress driver
// records it after filling a payload and verifies it before freeing.
func Checksum(data []byte) uint32 {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
	}
	return sum
}
