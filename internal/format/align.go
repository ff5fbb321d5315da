package format

// Align4 returns n aligned up to the next DWORD boundary. Every record and
// every value that follows a variable-length field must start on a 4-byte
// boundary relative to the resource start.
//
// Example:
//
//	Align4(1) = 4
//	Align4(4) = 4
//	Align4(5) = 8
func Align4(n int) int {
	return (n + DWORDAlignmentMask) & ^DWORDAlignmentMask
}
