package crc

// reverseBits returns v with the order of its n lowest bits reversed.
// Bits at position n and above do not survive the reversal.
func reverseBits(v uint64, n int) uint64 {
	var r uint64
	for i := 0; i < n; i++ {
		r = r<<1 | v&1
		v >>= 1
	}
	return r
}
