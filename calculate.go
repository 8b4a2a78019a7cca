package crc

// finalize turns a raw remainder into a finished check value: an optional
// bit reversal, the final XOR, and masking down to width bits. reflect is
// true when exactly one of input and output reflection is requested, since
// reflected-input remainders already run in the reflected domain.
func finalize(remainder, finalXOR uint64, reflect bool, width int) uint64 {
	if reflect {
		remainder = reverseBits(remainder, width)
	}
	return (remainder ^ finalXOR) & widthMask(width)
}

// undoFinalize recovers the raw remainder from a finished check value so
// that further input can be folded in. It inverts finalize exactly:
// undoFinalize(finalize(r, x, ref, w), x, ref, w) == r for any masked r.
func undoFinalize(crc, finalXOR uint64, reflect bool, width int) uint64 {
	crc = (crc ^ finalXOR) & widthMask(width)
	if reflect {
		crc = reverseBits(crc, width)
	}
	return crc
}

// outputReflect reports whether finalization must reverse the bit order of
// the remainder for p.
func (p Parameters) outputReflect() bool {
	return p.ReflectInput != p.ReflectOutput
}

// Checksum returns the CRC of data, computed bit by bit.
//
// Checksum panics if p.Width is outside the range 1 to 64.
func (p Parameters) Checksum(data []byte) uint64 {
	checkWidth(p.Width)
	remainder := calculateRemainder(data, p, p.InitialValue)
	return finalize(remainder, p.FinalXOR, p.outputReflect(), p.Width)
}

// Update continues a checksum: crc is a value previously returned by one of
// the Checksum or Update operations of p, and the result is the CRC of the
// original input with data appended. Computing a message in pieces yields
// the same value as a single Checksum call over the whole message.
func (p Parameters) Update(crc uint64, data []byte) uint64 {
	checkWidth(p.Width)
	remainder := undoFinalize(crc, p.FinalXOR, p.outputReflect(), p.Width)
	remainder = calculateRemainder(data, p, remainder)
	return finalize(remainder, p.FinalXOR, p.outputReflect(), p.Width)
}

// ChecksumBits returns the CRC of the leading nbits bits of data, computed
// bit by bit. nbits must be between 0 and 8*len(data). If nbits is not a
// multiple of 8, the significant bits of the final partial byte are its
// low-order bits when p.ReflectInput is set and its high-order bits
// otherwise; the unused filler bits must be zero.
func (p Parameters) ChecksumBits(data []byte, nbits int) uint64 {
	checkWidth(p.Width)
	remainder := p.remainderBits(data, nbits, p.InitialValue)
	return finalize(remainder, p.FinalXOR, p.outputReflect(), p.Width)
}

// UpdateBits continues a checksum over a piece whose length is nbits bits.
// Earlier pieces must end on byte boundaries; only the final piece of a
// message may carry a partial byte.
func (p Parameters) UpdateBits(crc uint64, data []byte, nbits int) uint64 {
	checkWidth(p.Width)
	remainder := undoFinalize(crc, p.FinalXOR, p.outputReflect(), p.Width)
	remainder = p.remainderBits(data, nbits, remainder)
	return finalize(remainder, p.FinalXOR, p.outputReflect(), p.Width)
}

// remainderBits folds the leading nbits bits of data into remainder:
// whole bytes first, then the trailing partial byte bit by bit.
func (p Parameters) remainderBits(data []byte, nbits int, remainder uint64) uint64 {
	nbytes := nbits / 8
	if nbytes > 0 {
		remainder = calculateRemainder(data[:nbytes], p, remainder)
	}
	if rest := nbits % 8; rest > 0 {
		remainder = calculateRemainderBits(data[nbytes], rest, p, remainder)
	}
	return remainder
}

// Checksum returns the CRC of data using the lookup table.
func (t *Table) Checksum(data []byte) uint64 {
	p := t.params
	remainder := t.update(p.InitialValue, data)
	return finalize(remainder, p.FinalXOR, p.outputReflect(), p.Width)
}

// Update continues a checksum using the lookup table: crc is a value
// previously returned for the same parameters, by either the table-driven or
// the bit-by-bit path, and the result is the CRC of the original input with
// data appended.
func (t *Table) Update(crc uint64, data []byte) uint64 {
	p := t.params
	remainder := undoFinalize(crc, p.FinalXOR, p.outputReflect(), p.Width)
	remainder = t.update(remainder, data)
	return finalize(remainder, p.FinalXOR, p.outputReflect(), p.Width)
}

// ChecksumBits returns the CRC of the leading nbits bits of data. Whole
// bytes go through the lookup table; a trailing partial byte is folded in
// bit by bit under the same significance convention as
// Parameters.ChecksumBits.
func (t *Table) ChecksumBits(data []byte, nbits int) uint64 {
	p := t.params
	remainder := t.remainderBits(data, nbits, p.InitialValue)
	return finalize(remainder, p.FinalXOR, p.outputReflect(), p.Width)
}

// UpdateBits continues a checksum over a piece whose length is nbits bits,
// using the lookup table for the whole bytes of the piece.
func (t *Table) UpdateBits(crc uint64, data []byte, nbits int) uint64 {
	p := t.params
	remainder := undoFinalize(crc, p.FinalXOR, p.outputReflect(), p.Width)
	remainder = t.remainderBits(data, nbits, remainder)
	return finalize(remainder, p.FinalXOR, p.outputReflect(), p.Width)
}

// remainderBits folds the leading nbits bits of data into remainder, using
// the table for whole bytes and the bit-by-bit calculator for the rest.
func (t *Table) remainderBits(data []byte, nbits int, remainder uint64) uint64 {
	nbytes := nbits / 8
	if nbytes > 0 {
		remainder = t.update(remainder, data[:nbytes])
	}
	if rest := nbits % 8; rest > 0 {
		remainder = calculateRemainderBits(data[nbytes], rest, t.params, remainder)
	}
	return remainder
}
