// Package crc computes cyclic redundancy checks over arbitrary generator polynomials.
//
// A CRC variant is described by Parameters: the polynomial, its width in bits,
// the initial register value, the final XOR value and the input/output bit
// reflection modes. Checksums can be computed bit by bit directly from
// Parameters, or through a Table built once per variant for byte-at-a-time
// processing. Both paths produce identical results, may be mixed freely when
// a message arrives in pieces, and accept messages whose length is not a
// whole number of bytes.
package crc

// Parameters describes a CRC variant.
// The zero value is not usable; Width must be set to the size of the check.
// Well-known variants are provided by the package-level catalog, for example
// CRC32 or CRC16XModem.
type Parameters struct {
	// Width is the size of the check value in bits, between 1 and 64.
	Width int
	// Polynomial is the generator polynomial in normal (most significant
	// bit first) notation with the implicit leading term omitted.
	Polynomial uint64
	// InitialValue seeds the division register before any input is processed.
	InitialValue uint64
	// FinalXOR is XORed onto the register as the last finalization step.
	FinalXOR uint64
	// ReflectInput processes each input byte least significant bit first.
	ReflectInput bool
	// ReflectOutput reverses the bit order of the check value
	// during finalization.
	ReflectOutput bool
}

// Table is a 256-entry lookup table derived from a set of Parameters for
// efficient byte-at-a-time processing. A Table is immutable after
// construction and safe for concurrent use.
type Table struct {
	params  Parameters
	entries [256]uint64
}

// MakeTable builds the lookup table for params.
// Each entry holds the raw remainder of its one-byte index processed from a
// zero register, so that a running remainder can be advanced a full byte per
// lookup. For widths below 8 without input reflection the entries are stored
// left-aligned within the low byte, matching the alignment the byte-wise
// calculator works in.
//
// MakeTable panics if params.Width is outside the range 1 to 64.
func MakeTable(params Parameters) *Table {
	checkWidth(params.Width)
	t := &Table{params: params}
	mask := widthMask(params.Width)
	var buf [1]byte
	for i := range t.entries {
		buf[0] = byte(i)
		entry := calculateRemainder(buf[:], params, 0) & mask
		if !params.ReflectInput && params.Width < 8 {
			entry <<= uint(8 - params.Width)
		}
		t.entries[i] = entry
	}
	return t
}

// Parameters returns the parameters the table was built from.
func (t *Table) Parameters() Parameters {
	return t.params
}

// widthMask returns a mask covering the width lowest bits.
func widthMask(width int) uint64 {
	return uint64(1)<<uint(width) - 1
}

// checkWidth panics unless width describes a representable check size.
func checkWidth(width int) {
	if width < 1 || width > 64 {
		panic("crc: Width must be between 1 and 64")
	}
}
