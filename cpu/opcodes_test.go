package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeTableHas151LegalEncodings(t *testing.T) {
	assert.Len(t, Opcodes, 151)
}

func TestOpcodeTableEntriesAreComplete(t *testing.T) {
	for b, op := range Opcodes {
		assert.NotNilf(t, op.Instruction, "opcode $%02x missing an instruction", b)
		assert.NotEmptyf(t, op.Name, "opcode $%02x missing a name", b)
		assert.Greaterf(t, op.Cycles, byte(0), "opcode $%02x has zero base cycles", b)
	}
}

func TestBRKAndLDAImmediateEncodings(t *testing.T) {
	assert.Equal(t, "BRK", Opcodes[0x00].Name)
	assert.Equal(t, Implied, Opcodes[0x00].AddressingMode)

	assert.Equal(t, "LDA", Opcodes[0xa9].Name)
	assert.Equal(t, Immediate, Opcodes[0xa9].AddressingMode)
	assert.Equal(t, byte(2), Opcodes[0xa9].Cycles)
}

func TestADCExecutesThroughOpcodeTable(t *testing.T) {
	c := newTestCPU()
	c.ProgramCounter = 0x0200
	c.Bus.Set(0x0200, 0xa9) // LDA #$01
	c.Bus.Set(0x0201, 0x01)
	c.Bus.Set(0x0202, 0x69) // ADC #$02
	c.Bus.Set(0x0203, 0x02)

	c.Step()
	c.Step()

	assert.Equal(t, byte(0x03), c.Accumulator)
	assert.False(t, c.Flags.Carry)
	assert.False(t, c.Flags.Zero)
}
