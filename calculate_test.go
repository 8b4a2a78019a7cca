package crc_test

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"

	"github.com/pchchv/crc"
)

// TestChecksumBits covers the 11-bit USB token case: a 7-bit address and a
// 4-bit endpoint packed into two bytes, with the three significant bits of
// the trailing byte in its low-order positions because CRC-5/USB reflects
// its input.
func TestChecksumBits(t *testing.T) {
	token := []byte{0x10, 0x07}
	params, ok := crc.Lookup("CRC-5/USB")
	require.True(t, ok)
	require.Equal(t, uint64(0x05), params.ChecksumBits(token, 11))
	require.Equal(t, uint64(0x05), crc.MakeTable(params).ChecksumBits(token, 11))
}

// TestChecksumBitsWholeBytes checks that a bit count naming every bit of the
// buffer degenerates to the plain byte-wise checksum.
func TestChecksumBitsWholeBytes(t *testing.T) {
	names := []string{"CRC-5/USB", "CRC-7", "CRC-16/XMODEM", "CRC-32", "CRC-64/XZ"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			params, ok := crc.Lookup(name)
			require.True(t, ok)
			tab := crc.MakeTable(params)
			want := params.Checksum(checkData)
			require.Equal(t, want, params.ChecksumBits(checkData, 8*len(checkData)))
			require.Equal(t, want, tab.ChecksumBits(checkData, 8*len(checkData)))
		})
	}
}

func TestChecksumBitsEmpty(t *testing.T) {
	params, ok := crc.Lookup("CRC-16/CCITT-FALSE")
	require.True(t, ok)
	require.Equal(t, params.Checksum(nil), params.ChecksumBits(nil, 0))
}

// TestUpdateBitsSplit recomputes the 11-bit token checksum in two pieces:
// one whole byte, then the three trailing bits.
func TestUpdateBitsSplit(t *testing.T) {
	token := []byte{0x10, 0x07}
	params, ok := crc.Lookup("CRC-5/USB")
	require.True(t, ok)
	tab := crc.MakeTable(params)

	c := params.ChecksumBits(token[:1], 8)
	require.Equal(t, uint64(0x05), params.UpdateBits(c, token[1:], 3))

	c = tab.ChecksumBits(token[:1], 8)
	require.Equal(t, uint64(0x05), tab.UpdateBits(c, token[1:], 3))
}

// TestAppendedChecksumResidue exercises the defining property of an
// unreflected CRC with zero initial value and zero final XOR: a message with
// its own checksum appended divides evenly, leaving a zero remainder. The
// bit streams are assembled with bitio, so neither the 13-bit message nor
// the 26-bit framed form ends on a byte boundary.
func TestAppendedChecksumResidue(t *testing.T) {
	const msg = 0x0F3D // arbitrary 13-bit message
	params, ok := crc.Lookup("CRC-13/BBC")
	require.True(t, ok)

	var raw bytes.Buffer
	w := bitio.NewWriter(&raw)
	require.NoError(t, w.WriteBits(msg, 13))
	require.NoError(t, w.Close())

	check := params.ChecksumBits(raw.Bytes(), 13)

	var framed bytes.Buffer
	w = bitio.NewWriter(&framed)
	require.NoError(t, w.WriteBits(msg, 13))
	require.NoError(t, w.WriteBits(check, 13))
	require.NoError(t, w.Close())

	require.Equal(t, uint64(0), params.ChecksumBits(framed.Bytes(), 26))

	tab := crc.MakeTable(params)
	require.Equal(t, uint64(0), tab.ChecksumBits(framed.Bytes(), 26))

	// The same stream fed in byte-sized pieces with a two-bit tail.
	buf := framed.Bytes()
	c := tab.ChecksumBits(buf[:1], 8)
	c = tab.UpdateBits(c, buf[1:2], 8)
	c = tab.UpdateBits(c, buf[2:3], 8)
	require.Equal(t, uint64(0), tab.UpdateBits(c, buf[3:], 2))
}
