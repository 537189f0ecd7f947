package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestADCSetsOverflowOnSignedWrap(t *testing.T) {
	c := newTestCPU()
	c.Accumulator = 0x7f // +127
	c.M = 0x01
	c.ADC()
	assert.Equal(t, byte(0x80), c.Accumulator)
	assert.True(t, c.Flags.Overflow)
	assert.False(t, c.Flags.Carry)
	assert.True(t, c.Flags.Negative)
}

func TestADCCarryOut(t *testing.T) {
	c := newTestCPU()
	c.Accumulator = 0xff
	c.M = 0x01
	c.ADC()
	assert.Equal(t, byte(0x00), c.Accumulator)
	assert.True(t, c.Flags.Carry)
	assert.True(t, c.Flags.Zero)
	assert.False(t, c.Flags.Overflow)
}

func TestADCDecimalModePanics(t *testing.T) {
	c := newTestCPU()
	c.Flags.Decimal = true
	assert.Panics(t, func() { c.ADC() })
}

func TestSBCBorrow(t *testing.T) {
	c := newTestCPU()
	c.Accumulator = 0x00
	c.M = 0x01
	c.Flags.Carry = true // no borrow-in
	c.SBC()
	assert.Equal(t, byte(0xff), c.Accumulator)
	assert.False(t, c.Flags.Carry) // borrow occurred
	assert.True(t, c.Flags.Negative)
}

func TestASLShiftsByOneAndSetsCarry(t *testing.T) {
	c := newTestCPU()
	c.mode = Accumulator
	c.M = 0x81
	c.Accumulator = 0x81
	c.ASL()
	assert.Equal(t, byte(0x02), c.Accumulator)
	assert.True(t, c.Flags.Carry)
}

func TestLSRMemoryWriteback(t *testing.T) {
	c := newTestCPU()
	c.mode = ZeroPage
	c.AbsAddress = 0x0010
	c.M = 0x01
	c.LSR()
	assert.Equal(t, byte(0x00), c.Bus.Get(0x0010))
	assert.True(t, c.Flags.Carry)
	assert.True(t, c.Flags.Zero)
}

func TestROLCarriesThroughBit(t *testing.T) {
	c := newTestCPU()
	c.mode = Accumulator
	c.Flags.Carry = true
	c.M = 0x80
	c.Accumulator = 0x80
	c.ROL()
	assert.Equal(t, byte(0x01), c.Accumulator)
	assert.True(t, c.Flags.Carry)
}

func TestJSRAndRTSRoundTrip(t *testing.T) {
	c := newTestCPU()
	c.ProgramCounter = 0x0206 // as if the 2-byte operand has been consumed
	c.AbsAddress = 0x1000
	c.StackPointer = 0xff
	c.JSR()
	assert.Equal(t, uint16(0x1000), c.ProgramCounter)

	c.RTS()
	assert.Equal(t, uint16(0x0206), c.ProgramCounter)
	assert.Equal(t, byte(0xff), c.StackPointer)
}

func TestBRKAndRTIRoundTrip(t *testing.T) {
	c := newTestCPU()
	c.Bus.Set(0xfffe, 0x00)
	c.Bus.Set(0xffff, 0x80)
	c.ProgramCounter = 0x0300
	c.StackPointer = 0xff
	c.Flags.Carry = true

	c.BRK()
	assert.Equal(t, uint16(0x8000), c.ProgramCounter)
	assert.True(t, c.Flags.DisableInterrupt)

	c.ProgramCounter = 0x9000 // simulate handler doing other work
	c.RTI()
	assert.Equal(t, uint16(0x0301), c.ProgramCounter)
	assert.True(t, c.Flags.Carry)
	assert.False(t, c.Flags.DisableInterrupt)
}

func TestPHPAlwaysSetsBreakBit(t *testing.T) {
	c := newTestCPU()
	c.StackPointer = 0xff
	c.PHP()
	pushed := c.Bus.Get(0x01ff)
	assert.True(t, pushed&0x10 != 0) // B bit
}

func TestCompareInstructionsSetCarryOnGreaterOrEqual(t *testing.T) {
	c := newTestCPU()
	c.Accumulator = 0x40
	c.M = 0x40
	c.CMP()
	assert.True(t, c.Flags.Carry)
	assert.True(t, c.Flags.Zero)

	c.Accumulator = 0x10
	c.M = 0x20
	c.CMP()
	assert.False(t, c.Flags.Carry)
	assert.False(t, c.Flags.Zero)
}
