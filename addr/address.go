// Package addr models memory addresses as a generic, wrapping unsigned
// integer, with the arithmetic the rest of the module needs to walk a
// byte-addressable space: wrapping successor, signed offset, and a masked
// variant whose arithmetic preserves a fixed set of bits (used to model a
// fixed page or a bank-select register that never moves).
package addr

import "fmt"

// Unsigned is the set of integer widths an Address may be built from. The
// CPU core only ever needs uint16 (the 6502's address bus), but the bus
// abstraction underneath it is width-agnostic, the way original_source kept
// it generic over u8/u16/u32.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

// Zero returns the zero address for T.
func Zero[T Unsigned]() T {
	var z T
	return z
}

// Next returns the wrapping successor of a: the highest representable value
// wraps back to zero.
func Next[T Unsigned](a T) T {
	return a + 1
}

// Offset returns a shifted by a signed amount, wrapping at T's width in
// either direction. offset is taken as a plain int64 rather than a
// type-linked signed counterpart (Rust ties u8 to i8, u16 to i16, ...)
// because Go has no such per-width pairing in its generics; callers are
// expected to pass offsets that fit comfortably inside T's range.
func Offset[T Unsigned](a T, offset int64) T {
	if offset >= 0 {
		return a + T(offset)
	}
	return a - T(-offset)
}

// OffsetMasked returns the result of offsetting a, but any bit set in mask
// keeps its old value instead of taking the offset result. This is the
// operation a bank register or a fixed page needs: "advance within the
// page, but the page selector itself never changes because of this
// addition".
func OffsetMasked[T Unsigned](a T, offset int64, mask T) T {
	return (a & mask) | (Offset(a, offset) &^ mask)
}

// Successive yields a, Next(a), Next(Next(a)), ... forever, wrapping. Callers
// that need a bounded walk should pair it with a manual break, or use Upto.
func Successive[T Unsigned](start T) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		a := start
		for {
			if !yield(a) {
				return
			}
			a = Next(a)
		}
	}
}

// Upto yields start, Next(start), ... through last inclusive, then stops. If
// start == Next(last) the sequence would never terminate by value alone, so
// Upto tracks an explicit count instead of comparing against last directly.
func Upto[T Unsigned](start, last T) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		count := uint64(last-start) + 1
		a := start
		for i := uint64(0); i < count; i++ {
			if !yield(a) {
				return
			}
			a = Next(a)
		}
	}
}

// Display formats a the way a 6502 disassembly listing would: $XX for an
// 8-bit address, $XXXX for 16-bit, $XXXXXXXX for 32-bit, zero-padded to the
// type's full width.
func Display[T Unsigned](a T) string {
	switch any(a).(type) {
	case uint8:
		return fmt.Sprintf("$%02X", uint8(a))
	case uint16:
		return fmt.Sprintf("$%04X", uint16(a))
	case uint32:
		return fmt.Sprintf("$%08X", uint32(a))
	default:
		return fmt.Sprintf("$%X", uint64(a))
	}
}
