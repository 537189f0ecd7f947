package addr

import "testing"

func TestMaskedUnmask(t *testing.T) {
	m := NewMasked[uint16](0x1234, 0xff00)
	if got := m.Unmask(); got != 0x1234 {
		t.Fatalf("Unmask() = %#x, want 0x1234", got)
	}
}

func TestMaskedMap(t *testing.T) {
	m := NewMasked[uint16](0x1234, 0xff00)
	got := m.Map(func(uint16) uint16 { return 0 })
	if got.Value != 0x1200 {
		t.Fatalf("Map(->0) = %#x, want 0x1200", got.Value)
	}
}

func TestMaskedOffset(t *testing.T) {
	cases := []struct {
		value, mask uint16
		offset      int64
		want        uint16
	}{
		{0x12ff, 0x0000, 1, 0x1300},
		{0x12ff, 0xff00, 1, 0x1200},
		{0x12ff, 0xfff0, 1, 0x12f0},
		{0x1300, 0x0000, -1, 0x12ff},
		{0x1300, 0xff00, -1, 0x13ff},
		{0x1300, 0xfff0, -1, 0x130f},
	}
	for _, c := range cases {
		m := NewMasked(c.value, c.mask)
		got := m.Offset(c.offset)
		if got.Value != c.want {
			t.Errorf("Masked(%#x,%#x).Offset(%d) = %#x, want %#x", c.value, c.mask, c.offset, got.Value, c.want)
		}
	}
}

func TestMaskedSuccessiveWrapsWithinPage(t *testing.T) {
	m := NewMasked[uint16](0x12fe, 0xff00)
	want := []uint16{0x12fe, 0x12ff, 0x1200, 0x1201}
	for _, w := range want {
		if m.Value != w {
			t.Fatalf("got %#x, want %#x", m.Value, w)
		}
		m = m.Next()
	}
}
