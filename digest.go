package crc

import "hash"

// Digest is a running checksum over a growing message. It implements
// hash.Hash and hash.Hash64, with the check value in the low Width bits of
// Sum64. Between writes a Digest holds the finished CRC of the data seen so
// far, so Sum64 costs nothing, and a digest can be dropped and later
// reconstructed from a stored check value with Resume.
type Digest struct {
	crc uint64
	tab *Table
}

var (
	_ hash.Hash   = (*Digest)(nil)
	_ hash.Hash64 = (*Digest)(nil)
)

// New returns a Digest computing the CRC described by tab.
// It starts out holding the checksum of an empty message.
func New(tab *Table) *Digest {
	return &Digest{crc: tab.Checksum(nil), tab: tab}
}

// Resume returns a Digest that continues a checksum from crc,
// a check value previously produced with the same parameters.
func Resume(crc uint64, tab *Table) *Digest {
	return &Digest{crc: crc & widthMask(tab.params.Width), tab: tab}
}

// Write folds p into the checksum. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	d.crc = d.tab.Update(d.crc, p)
	return len(p), nil
}

// Sum64 returns the CRC of all data written so far.
func (d *Digest) Sum64() uint64 {
	return d.crc
}

// Sum appends the big-endian bytes of the current check value to b.
func (d *Digest) Sum(b []byte) []byte {
	for shift := 8 * (d.Size() - 1); shift >= 0; shift -= 8 {
		b = append(b, byte(d.crc>>uint(shift)))
	}
	return b
}

// Size returns the number of bytes Sum appends:
// the check width rounded up to whole bytes.
func (d *Digest) Size() int {
	return (d.tab.params.Width + 7) / 8
}

// BlockSize returns 1; writes of any length are accepted.
func (d *Digest) BlockSize() int {
	return 1
}

// Reset restores the digest to the checksum of an empty message.
func (d *Digest) Reset() {
	d.crc = d.tab.Checksum(nil)
}
