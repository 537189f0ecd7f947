package addr

import "testing"

func TestZero(t *testing.T) {
	if got := Zero[uint16](); got != 0x0000 {
		t.Fatalf("Zero() = %#x, want 0", got)
	}
}

func TestNextWraps(t *testing.T) {
	if got := Next[uint16](0x1234); got != 0x1235 {
		t.Fatalf("Next(0x1234) = %#x, want 0x1235", got)
	}
	if got := Next[uint16](0xffff); got != 0x0000 {
		t.Fatalf("Next(0xffff) = %#x, want 0x0000 (wrap)", got)
	}
}

func TestOffset(t *testing.T) {
	if got := Offset[uint16](0x1234, 5); got != 0x1239 {
		t.Fatalf("Offset(0x1234,5) = %#x, want 0x1239", got)
	}
	if got := Offset[uint16](0x1234, -3); got != 0x1231 {
		t.Fatalf("Offset(0x1234,-3) = %#x, want 0x1231", got)
	}
	if got := Offset[uint16](0x0000, -1); got != 0xffff {
		t.Fatalf("Offset(0,-1) = %#x, want 0xffff (wrap)", got)
	}
}

func TestOffsetMasked(t *testing.T) {
	cases := []struct {
		a, mask uint16
		offset  int64
		want    uint16
	}{
		{0x12ff, 0x0000, 1, 0x1300},
		{0x12ff, 0xff00, 1, 0x1200},
		{0x1300, 0x0000, -1, 0x12ff},
		{0x1300, 0xff00, -1, 0x13ff},
	}
	for _, c := range cases {
		got := OffsetMasked(c.a, c.offset, c.mask)
		if got != c.want {
			t.Errorf("OffsetMasked(%#x,%d,%#x) = %#x, want %#x", c.a, c.offset, c.mask, got, c.want)
		}
	}
}

func TestUpto(t *testing.T) {
	var got []uint16
	for a := range Upto[uint16](0xfffe, 0x0001) {
		got = append(got, a)
		if len(got) > 8 {
			t.Fatal("Upto did not terminate")
		}
	}
	want := []uint16{0xfffe, 0xffff, 0x0000, 0x0001}
	if len(got) != len(want) {
		t.Fatalf("Upto yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Upto yielded %v, want %v", got, want)
		}
	}
}

func TestDisplay(t *testing.T) {
	if got := Display[uint8](0x0f); got != "$0F" {
		t.Fatalf("Display(uint8(0x0f)) = %q, want $0F", got)
	}
	if got := Display[uint16](0x01ff); got != "$01FF" {
		t.Fatalf("Display(uint16(0x01ff)) = %q, want $01FF", got)
	}
}
