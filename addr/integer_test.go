package addr

import (
	"reflect"
	"testing"
)

func TestToBEUnsigned(t *testing.T) {
	if got := ToBE[uint32](0x98765432); !reflect.DeepEqual(got, []byte{0x98, 0x76, 0x54, 0x32}) {
		t.Fatalf("ToBE(uint32) = %x", got)
	}
	if got := ToLE[uint32](0x98765432); !reflect.DeepEqual(got, []byte{0x32, 0x54, 0x76, 0x98}) {
		t.Fatalf("ToLE(uint32) = %x", got)
	}
}

func TestFromBESignExtension(t *testing.T) {
	// 0x98 has its sign bit set; as an i8 it is -0x68.
	if got := FromBE[int8]([]byte{0x98}); got != int8(-0x68) {
		t.Fatalf("FromBE[int8]({0x98}) = %d, want %d", got, int8(-0x68))
	}
	if got := FromBE[uint8]([]byte{0x98}); got != 0x98 {
		t.Fatalf("FromBE[uint8]({0x98}) = %#x, want 0x98", got)
	}
}

func TestFromLESignExtension(t *testing.T) {
	if got := FromLE[int16]([]byte{0x00, 0x80}); got != int16(-0x8000) {
		t.Fatalf("FromLE[int16] = %d, want %d", got, int16(-0x8000))
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 1234, -1234, 2147483647, -2147483648} {
		be := ToBE(v)
		if got := FromBE[int32](be); got != v {
			t.Errorf("round trip BE %d -> %x -> %d", v, be, got)
		}
		le := ToLE(v)
		if got := FromLE[int32](le); got != v {
			t.Errorf("round trip LE %d -> %x -> %d", v, le, got)
		}
	}
}
