package crc

import "testing"

func TestFinalizeRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0x55, 0x0F3D, 0xDEADBEEF, 0x0123456789ABCDEF, ^uint64(0)}
	xors := []uint64{0, 0x1F, 0xFFFF, ^uint64(0)}
	for _, width := range []int{1, 5, 8, 13, 16, 32, 64} {
		for _, reflect := range []bool{false, true} {
			for _, xor := range xors {
				for _, v := range values {
					remainder := v & widthMask(width)
					c := finalize(remainder, xor, reflect, width)
					if c&^widthMask(width) != 0 {
						t.Fatalf("width=%d; finalize left bits above the width: %#x", width, c)
					}

					if got := undoFinalize(c, xor, reflect, width); got != remainder {
						t.Errorf("width=%d reflect=%t xor=%#x; round trip of %#x = %#x", width, reflect, xor, remainder, got)
					}
				}
			}
		}
	}
}

// TestReflectedStepBranchless pins the shipped branching division step to
// its multiply-select form, byte for byte over the check message.
func TestReflectedStepBranchless(t *testing.T) {
	for _, params := range []Parameters{CRC5USB, CRC8EBU, CRC16X25, CRC32, CRC64XZ} {
		poly := reverseBits(params.Polynomial, params.Width)
		remainder := params.InitialValue
		branchless := params.InitialValue
		for i, b := range []byte("123456789") {
			remainder = calculateRemainder([]byte{b}, params, remainder)
			branchless ^= uint64(b)
			for j := 0; j < 8; j++ {
				branchless = branchless>>1 ^ (branchless&1)*poly
			}

			if remainder != branchless {
				t.Fatalf("width=%d byte=%d; branching %#x, branchless %#x", params.Width, i, remainder, branchless)
			}
		}
	}
}

func TestTableEntryAlignment(t *testing.T) {
	// unreflected sub-byte entries are left-aligned within the low byte
	for i, entry := range MakeTable(CRC5EPC).entries {
		if entry > 0xFF || entry&0x07 != 0 {
			t.Errorf("entry %d = %#x; not left-aligned for unreflected width 5", i, entry)
		}
	}

	// reflected sub-byte entries stay within the width
	for i, entry := range MakeTable(CRC5USB).entries {
		if entry&^widthMask(5) != 0 {
			t.Errorf("entry %d = %#x; exceeds reflected width 5", i, entry)
		}
	}

	// wide entries are masked to the width
	for i, entry := range MakeTable(CRC40GSM).entries {
		if entry&^widthMask(40) != 0 {
			t.Errorf("entry %d = %#x; exceeds width 40", i, entry)
		}
	}
}

// TestUpdateMatchesBitByBit compares raw remainders of the two calculators
// under the width mask; bits above the width are insignificant until
// finalization and may differ.
func TestUpdateMatchesBitByBit(t *testing.T) {
	data := []byte("123456789")
	for i, params := range []Parameters{CRC5EPC, CRC5USB, CRC7, CRC8, CRC16XModem, CRC24, CRC32, CRC32BZip2, CRC64} {
		mask := widthMask(params.Width)
		bit := calculateRemainder(data, params, params.InitialValue) & mask
		table := MakeTable(params).update(params.InitialValue, data) & mask
		if bit != table {
			t.Errorf("i=%d width=%d; bit-by-bit remainder %#x, table remainder %#x", i, params.Width, bit, table)
		}
	}
}
