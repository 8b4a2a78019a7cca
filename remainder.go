package crc

// calculateRemainder folds data into the running division remainder one bit
// at a time and returns the updated remainder. The remainder is raw: it has
// not been reflected, XORed or masked for output yet.
//
// Three register layouts are used. With input reflection the register runs
// in the reflected domain, shifting right against the reflected polynomial,
// which lets each byte be XORed in without reordering its bits. Without
// input reflection the register shifts left against the polynomial as given;
// widths below 8 keep the register left-aligned within the low byte so the
// top-bit test lands on bit 7 for every width.
func calculateRemainder(data []byte, params Parameters, remainder uint64) uint64 {
	switch {
	case params.ReflectInput:
		poly := reverseBits(params.Polynomial, params.Width)
		for _, b := range data {
			remainder ^= uint64(b)
			for i := 0; i < 8; i++ {
				if remainder&1 != 0 {
					remainder = remainder>>1 ^ poly
				} else {
					remainder >>= 1
				}
			}
		}
	case params.Width >= 8:
		top := uint64(1) << uint(params.Width-1)
		shift := uint(params.Width - 8)
		for _, b := range data {
			remainder ^= uint64(b) << shift
			for i := 0; i < 8; i++ {
				if remainder&top != 0 {
					remainder = remainder<<1 ^ params.Polynomial
				} else {
					remainder <<= 1
				}
			}
		}
	default:
		shift := uint(8 - params.Width)
		poly := params.Polynomial << shift
		remainder <<= shift
		for _, b := range data {
			remainder ^= uint64(b)
			for i := 0; i < 8; i++ {
				if remainder&0x80 != 0 {
					remainder = remainder<<1 ^ poly
				} else {
					remainder <<= 1
				}
			}
		}
		remainder >>= shift
	}
	return remainder
}

// calculateRemainderBits folds nbits bits of b into the running remainder,
// for messages that do not end on a byte boundary. With input reflection the
// significant bits of b are its nbits lowest and are consumed least
// significant first; otherwise they are its nbits highest, consumed most
// significant first. The remaining bits of b must be zero.
func calculateRemainderBits(b byte, nbits int, params Parameters, remainder uint64) uint64 {
	switch {
	case params.ReflectInput:
		poly := reverseBits(params.Polynomial, params.Width)
		remainder ^= uint64(b)
		for i := 0; i < nbits; i++ {
			if remainder&1 != 0 {
				remainder = remainder>>1 ^ poly
			} else {
				remainder >>= 1
			}
		}
	case params.Width >= 8:
		top := uint64(1) << uint(params.Width-1)
		remainder ^= uint64(b) << uint(params.Width-8)
		for i := 0; i < nbits; i++ {
			if remainder&top != 0 {
				remainder = remainder<<1 ^ params.Polynomial
			} else {
				remainder <<= 1
			}
		}
	default:
		shift := uint(8 - params.Width)
		poly := params.Polynomial << shift
		remainder <<= shift
		remainder ^= uint64(b)
		for i := 0; i < nbits; i++ {
			if remainder&0x80 != 0 {
				remainder = remainder<<1 ^ poly
			} else {
				remainder <<= 1
			}
		}
		remainder >>= shift
	}
	return remainder
}

// update folds data into the running remainder a byte at a time using the
// lookup table. It is the table-driven counterpart of calculateRemainder and
// threads remainders interchangeably with it.
func (t *Table) update(remainder uint64, data []byte) uint64 {
	switch {
	case t.params.ReflectInput:
		for _, b := range data {
			remainder = remainder>>8 ^ t.entries[byte(remainder)^b]
		}
	case t.params.Width >= 8:
		shift := uint(t.params.Width - 8)
		for _, b := range data {
			remainder = remainder<<8 ^ t.entries[byte(remainder>>shift)^b]
		}
	default:
		shift := uint(8 - t.params.Width)
		remainder <<= shift
		for _, b := range data {
			remainder = t.entries[byte(remainder)^b]
		}
		remainder >>= shift
	}
	return remainder
}
