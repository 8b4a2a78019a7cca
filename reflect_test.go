package crc

import "testing"

func TestReverseBits(t *testing.T) {
	tests := []struct {
		v    uint64
		n    int
		want uint64
	}{
		{0x1, 1, 0x1},
		{0x1, 4, 0x8},
		{0xD, 4, 0xB},
		{0x05, 5, 0x14},
		{0x3, 32, 0xC0000000},
		{0x04C11DB7, 32, 0xEDB88320},
		{0x42F0E1EBA9EA3693, 64, 0xC96C5795D7870F42},
		// bits at position n and above are dropped
		{0xFF, 3, 0x7},
		{0x100, 8, 0x0},
	}

	for i, test := range tests {
		if got := reverseBits(test.v, test.n); got != test.want {
			t.Errorf("i=%d; reverseBits(%#x, %d) = %#x, expected %#x", i, test.v, test.n, got, test.want)
		}
	}
}

func TestReverseBitsInvolution(t *testing.T) {
	values := []uint64{0, 1, 0xA5, 0x12345, 0xDEADBEEF, 0x0123456789ABCDEF, ^uint64(0)}
	for _, n := range []int{1, 5, 8, 13, 32, 64} {
		for _, v := range values {
			want := v & widthMask(n)
			if got := reverseBits(reverseBits(v, n), n); got != want {
				t.Errorf("n=%d; double reversal of %#x = %#x, expected %#x", n, v, got, want)
			}
		}
	}
}
