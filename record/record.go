// Package record packs an (address, sampleA, sampleB) triple into the
// 7-field hex line the DDS controller loads into its sample SRAM.
//
// The controller addresses 17 bits of SRAM through three bytes on the SPI
// bus: the top byte carries address bits 16:15, the middle byte bits 14:7
// and the low byte bits 6:0 shifted left by one. The remaining four bytes
// are the high and low bytes of the two channel samples.
package record

import (
	"strconv"
)

const (
	// FieldCount is the number of bytes in one SRAM write packet.
	FieldCount = 7
	// MaxAddress is the highest SRAM address, 2^17 - 1.
	MaxAddress = 1<<17 - 1
)

// Record is one encoded SRAM write. It holds the byte values, the text
// rendering is produced by AppendText.
type Record [FieldCount]uint8

// Encode packs address and the two samples. Bits that don't fit their field
// are dropped.
func Encode(address int, a, b int32) Record {
	return Record{
		uint8((address >> 15) & 0x3),
		uint8((address >> 7) & 0xFF),
		uint8((address << 1) & 0xFF),
		uint8((a >> 8) & 0xFF),
		uint8(a & 0xFF),
		uint8((b >> 8) & 0xFF),
		uint8(b & 0xFF),
	}
}

// Address recovers the 17-bit address from the first three fields.
func (r Record) Address() int {
	return int(r[0]&0x3)<<15 | int(r[1])<<7 | int(r[2])>>1
}

// A returns the channel A sample.
func (r Record) A() int32 {
	return int32(r[3])<<8 | int32(r[4])
}

// B returns the channel B sample.
func (r Record) B() int32 {
	return int32(r[5])<<8 | int32(r[6])
}

// AppendText appends the line for r in format f, including the newline.
func (r Record) AppendText(dst []byte, f Format) []byte {
	// field0 is always two characters wide, the others are unpadded
	dst = append(dst, '0')
	dst = strconv.AppendUint(dst, uint64(r[0]), 16)
	for _, v := range r[1:] {
		dst = append(dst, ',')
		dst = strconv.AppendUint(dst, uint64(v), 16)
	}
	if f == Legacy {
		dst = append(dst, ',')
	}
	return append(dst, '\n')
}

// String returns the canonical line for r.
func (r Record) String() string {
	return string(r.AppendText(make([]byte, 0, 32), Canonical))
}
