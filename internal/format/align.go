package format

// Align4 returns n aligned up to the next 4-byte boundary.
// Used for payload sizes and arena sizes, which must be 4-byte aligned.
//
// Example:
//
//	Align4(1) = 4
//	Align4(4) = 4
//	Align4(5) = 8
//	Align4(8) = 8
func Align4(n int) int {
	return (n + AlignmentMask) & ^AlignmentMask
}
