// Package mem defines the bus contract every memory-like component in this
// repository speaks (RAM, ROM, the shared-bus adapter, and the CPU's test
// harness memory), plus the multi-byte operations derived from it.
package mem

import (
	"fmt"
	"strings"

	"c64core/addr"
)

// Addressable is the minimal contract a component must satisfy to sit on
// the bus: read and write a single byte at a 16-bit address. Every other
// operation in this package (multi-byte reads/writes, hexdump, block copy)
// is derived from just these two methods.
type Addressable interface {
	Get(a uint16) byte
	Set(a uint16, v byte)
}

// Getx reads the byte at a, offset by ofs, the way an indexed addressing
// mode would: Getx(bus, a, 1) reads the byte immediately after a, wrapping
// at the top of the address space.
func Getx(m Addressable, a uint16, ofs int64) byte {
	return m.Get(addr.Offset(a, ofs))
}

// Setx writes v at a, offset by ofs, with the same wrapping rule as Getx.
func Setx(m Addressable, a uint16, ofs int64, v byte) {
	m.Set(addr.Offset(a, ofs), v)
}

// GetBE reads byteWidth(T) bytes starting at a, most significant byte
// first, and decodes them as T.
func GetBE[T addr.Integer](m Addressable, a uint16) T {
	return addr.FromBE[T](readN[T](m, a))
}

// GetLE reads byteWidth(T) bytes starting at a, least significant byte
// first, and decodes them as T.
func GetLE[T addr.Integer](m Addressable, a uint16) T {
	return addr.FromLE[T](readN[T](m, a))
}

// SetBE writes v at a as byteWidth(T) bytes, most significant byte first.
func SetBE[T addr.Integer](m Addressable, a uint16, v T) {
	writeN(m, a, addr.ToBE(v))
}

// SetLE writes v at a as byteWidth(T) bytes, least significant byte first.
func SetLE[T addr.Integer](m Addressable, a uint16, v T) {
	writeN(m, a, addr.ToLE(v))
}

func widthOf[T addr.Integer]() int {
	var z T
	switch any(z).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32:
		return 4
	default:
		return 0
	}
}

func readN[T addr.Integer](m Addressable, a uint16) []byte {
	n := widthOf[T]()
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = Getx(m, a, int64(i))
	}
	return b
}

func writeN(m Addressable, a uint16, b []byte) {
	for i, v := range b {
		Setx(m, a, int64(i), v)
	}
}

// Hexdump renders count bytes starting at a in the conventional 16-bytes-
// per-line hex dump format, annotated with the address of each row.
func Hexdump(m Addressable, a uint16, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i += 16 {
		row := a + uint16(i)
		fmt.Fprintf(&sb, "%04X | ", row)
		n := count - i
		if n > 16 {
			n = 16
		}
		for j := 0; j < n; j++ {
			fmt.Fprintf(&sb, "%02X ", m.Get(row+uint16(j)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Copy copies count bytes from src starting at srcAddr into dst starting at
// dstAddr, byte by byte, via the Addressable contract (no access to
// underlying storage is assumed).
func Copy(dst Addressable, dstAddr uint16, src Addressable, srcAddr uint16, count int) {
	for i := 0; i < count; i++ {
		dst.Set(dstAddr+uint16(i), src.Get(srcAddr+uint16(i)))
	}
}
