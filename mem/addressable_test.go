package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetxWraps(t *testing.T) {
	m := TestMemory{}
	assert.Equal(t, dataForAddr(0x1239), Getx(m, 0x1234, 5))
	assert.Equal(t, dataForAddr(0x0003), Getx(m, 0xfffe, 5))
}

func TestGetBEUnsigned(t *testing.T) {
	b := NewFlatBus()
	b.Set(0x10, 0x12)
	b.Set(0x11, 0x34)
	assert.Equal(t, uint16(0x1234), GetBE[uint16](b, 0x10))
	assert.Equal(t, uint16(0x3412), GetLE[uint16](b, 0x10))
}

func TestSetBEUnsigned(t *testing.T) {
	b := NewFlatBus()
	SetBE[uint16](b, 0x20, 0xabcd)
	assert.Equal(t, byte(0xab), b.Get(0x20))
	assert.Equal(t, byte(0xcd), b.Get(0x21))

	SetLE[uint16](b, 0x30, 0xabcd)
	assert.Equal(t, byte(0xcd), b.Get(0x30))
	assert.Equal(t, byte(0xab), b.Get(0x31))
}

func TestHexdump(t *testing.T) {
	b := NewFlatBus()
	b.Set(0, 0xaa)
	out := Hexdump(b, 0, 16)
	assert.Contains(t, out, "0000 | ")
	assert.Contains(t, out, "AA")
}

func TestCopy(t *testing.T) {
	src := NewFlatBus()
	src.LoadAt(0, []byte{1, 2, 3, 4})
	dst := NewFlatBus()
	Copy(dst, 0x100, src, 0, 4)
	assert.Equal(t, byte(1), dst.Get(0x100))
	assert.Equal(t, byte(4), dst.Get(0x103))
}
