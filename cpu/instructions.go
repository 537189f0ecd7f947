package cpu

import "github.com/sirupsen/logrus"

// https://www.nesdev.org/obelisk-6502-guide/reference.html

// setZN sets the Zero and Negative flags from v, the result of almost every
// instruction that isn't a pure store, compare, or status-flag op.
func (c *CPU6502) setZN(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Negative = v&0x80 != 0
}

// writeback stores the result of a read-modify-write instruction (ASL, LSR,
// ROL, ROR, INC, DEC) back where it came from: the accumulator for
// Accumulator-mode ASL/LSR/ROL/ROR, memory for everything else.
func (c *CPU6502) writeback(v byte) {
	if c.mode == Accumulator {
		c.Accumulator = v
	} else {
		c.Write(c.AbsAddress, v)
	}
}

// branch jumps to c.AbsAddress (already computed by decode's Relative case)
// if cond holds, and reports the extra cycles a taken branch costs: one for
// the branch itself, one more if it crosses a page boundary.
func (c *CPU6502) branch(cond bool) byte {
	if !cond {
		return 0
	}
	old := c.ProgramCounter
	c.ProgramCounter = c.AbsAddress
	extra := byte(1)
	if old&0xff00 != c.AbsAddress&0xff00 {
		extra++
	}
	return extra
}

// ADC - Add with Carry
func (c *CPU6502) ADC() byte {
	if c.Flags.Decimal {
		logrus.Panic("cpu: decimal-mode ADC not supported")
	}
	sum := uint16(c.Accumulator) + uint16(c.M)
	if c.Flags.Carry {
		sum++
	}
	result := byte(sum)
	c.Flags.Overflow = (c.Accumulator^c.M)&0x80 == 0 && (c.Accumulator^result)&0x80 == 0x80
	c.Flags.Carry = sum&0x100 != 0
	c.Accumulator = result
	c.setZN(result)
	return 0
}

// AND - Logical AND
func (c *CPU6502) AND() byte {
	c.Accumulator &= c.M
	c.setZN(c.Accumulator)
	return 0
}

// ASL - Arithmetic Shift Left
func (c *CPU6502) ASL() byte {
	c.Flags.Carry = c.M&0x80 != 0
	result := c.M << 1
	c.writeback(result)
	c.setZN(result)
	return 0
}

// BCC - Branch if Carry Clear
func (c *CPU6502) BCC() byte { return c.branch(!c.Flags.Carry) }

// BCS - Branch if Carry Set
func (c *CPU6502) BCS() byte { return c.branch(c.Flags.Carry) }

// BEQ - Branch if Equal
func (c *CPU6502) BEQ() byte { return c.branch(c.Flags.Zero) }

// BIT - Bit Test
func (c *CPU6502) BIT() byte {
	c.Flags.Zero = c.M&c.Accumulator == 0
	c.Flags.Negative = c.M&0x80 != 0
	c.Flags.Overflow = c.M&0x40 != 0
	return 0
}

// BMI - Branch if Minus
func (c *CPU6502) BMI() byte { return c.branch(c.Flags.Negative) }

// BNE - Branch if Not Equal
func (c *CPU6502) BNE() byte { return c.branch(!c.Flags.Zero) }

// BPL - Branch if Positive
func (c *CPU6502) BPL() byte { return c.branch(!c.Flags.Negative) }

// BRK - Force Interrupt. An IRQ does the same thing but leaves B clear when
// it pushes the status byte; the byte after BRK is skipped (it's left free
// for the interrupt handler to use as a signature).
func (c *CPU6502) BRK() byte {
	c.ProgramCounter++
	c.pushWord(c.ProgramCounter)
	c.push(srToByte(c.Flags, true))
	c.Flags.DisableInterrupt = true
	lo := c.Read(irqVector)
	hi := c.Read(irqVector + 1)
	c.ProgramCounter = uint16(hi)<<8 | uint16(lo)
	return 0
}

// BVC - Branch if Overflow Clear
func (c *CPU6502) BVC() byte { return c.branch(!c.Flags.Overflow) }

// BVS - Branch if Overflow Set
func (c *CPU6502) BVS() byte { return c.branch(c.Flags.Overflow) }

// CLC - Clear Carry Flag
func (c *CPU6502) CLC() byte { c.Flags.Carry = false; return 0 }

// CLD - Clear Decimal Mode
func (c *CPU6502) CLD() byte { c.Flags.Decimal = false; return 0 }

// CLI - Clear Interrupt Disable
func (c *CPU6502) CLI() byte { c.Flags.DisableInterrupt = false; return 0 }

// CLV - Clear Overflow Flag
func (c *CPU6502) CLV() byte { c.Flags.Overflow = false; return 0 }

// CMP - Compare accumulator
func (c *CPU6502) CMP() byte {
	result := int16(c.Accumulator) - int16(c.M)
	c.Flags.Carry = result >= 0
	c.setZN(byte(result))
	return 0
}

// CPX - Compare X Register
func (c *CPU6502) CPX() byte {
	result := int16(c.X) - int16(c.M)
	c.Flags.Carry = result >= 0
	c.setZN(byte(result))
	return 0
}

// CPY - Compare Y Register
func (c *CPU6502) CPY() byte {
	result := int16(c.Y) - int16(c.M)
	c.Flags.Carry = result >= 0
	c.setZN(byte(result))
	return 0
}

// DEC - Decrement Memory
func (c *CPU6502) DEC() byte {
	result := c.M - 1
	c.writeback(result)
	c.setZN(result)
	return 0
}

// DEX - Decrement X Register
func (c *CPU6502) DEX() byte { c.X--; c.setZN(c.X); return 0 }

// DEY - Decrement Y Register
func (c *CPU6502) DEY() byte { c.Y--; c.setZN(c.Y); return 0 }

// EOR - Exclusive OR
func (c *CPU6502) EOR() byte {
	c.Accumulator ^= c.M
	c.setZN(c.Accumulator)
	return 0
}

// INC - Increment Memory
func (c *CPU6502) INC() byte {
	result := c.M + 1
	c.writeback(result)
	c.setZN(result)
	return 0
}

// INX - Increment X Register
func (c *CPU6502) INX() byte { c.X++; c.setZN(c.X); return 0 }

// INY - Increment Y Register
func (c *CPU6502) INY() byte { c.Y++; c.setZN(c.Y); return 0 }

// JMP - Jump. c.AbsAddress already holds the target, computed by decode
// (Absolute or Indirect, including the indirect-fetch MSB bug).
func (c *CPU6502) JMP() byte {
	c.ProgramCounter = c.AbsAddress
	return 0
}

// JSR - Jump to Subroutine. Pushes the address of the last byte of the JSR
// instruction (not the next instruction) onto the stack; RTS corrects for
// this by adding one back.
func (c *CPU6502) JSR() byte {
	c.pushWord(c.ProgramCounter - 1)
	c.ProgramCounter = c.AbsAddress
	return 0
}

// LDA - Load Accumulator
func (c *CPU6502) LDA() byte { c.Accumulator = c.M; c.setZN(c.Accumulator); return 0 }

// LDX - Load X Register
func (c *CPU6502) LDX() byte { c.X = c.M; c.setZN(c.X); return 0 }

// LDY - Load Y Register
func (c *CPU6502) LDY() byte { c.Y = c.M; c.setZN(c.Y); return 0 }

// LSR - Logical Shift Right
func (c *CPU6502) LSR() byte {
	c.Flags.Carry = c.M&0x01 != 0
	result := c.M >> 1
	c.writeback(result)
	c.setZN(result)
	return 0
}

// NOP - No Operation
func (c *CPU6502) NOP() byte { return 0 }

// ORA - Logical Inclusive OR
func (c *CPU6502) ORA() byte {
	c.Accumulator |= c.M
	c.setZN(c.Accumulator)
	return 0
}

// PHA - Push Accumulator
func (c *CPU6502) PHA() byte { c.push(c.Accumulator); return 0 }

// PHP - Push Processor Status. The pushed byte always has B set, matching
// how a real 6502 pushes status for PHP and BRK but not for an IRQ/NMI.
func (c *CPU6502) PHP() byte { c.push(srToByte(c.Flags, true)); return 0 }

// PLA - Pull Accumulator
func (c *CPU6502) PLA() byte {
	c.Accumulator = c.pop()
	c.setZN(c.Accumulator)
	return 0
}

// PLP - Pull Processor Status
func (c *CPU6502) PLP() byte { c.Flags = byteToSR(c.pop()); return 0 }

// ROL - Rotate Left
func (c *CPU6502) ROL() byte {
	carryIn := c.Flags.Carry
	c.Flags.Carry = c.M&0x80 != 0
	result := c.M << 1
	if carryIn {
		result |= 0x01
	}
	c.writeback(result)
	c.setZN(result)
	return 0
}

// ROR - Rotate Right
func (c *CPU6502) ROR() byte {
	carryIn := c.Flags.Carry
	c.Flags.Carry = c.M&0x01 != 0
	result := c.M >> 1
	if carryIn {
		result |= 0x80
	}
	c.writeback(result)
	c.setZN(result)
	return 0
}

// RTI - Return from Interrupt. Unlike RTS, the popped program counter is
// used as-is; it already points at the instruction to resume.
func (c *CPU6502) RTI() byte {
	c.Flags = byteToSR(c.pop())
	c.ProgramCounter = c.popWord()
	return 0
}

// RTS - Return from Subroutine. Corrects for JSR having pushed the address
// of its own last byte rather than the next instruction.
func (c *CPU6502) RTS() byte {
	c.ProgramCounter = c.popWord() + 1
	return 0
}

// SBC - Subtract with Carry
func (c *CPU6502) SBC() byte {
	if c.Flags.Decimal {
		logrus.Panic("cpu: decimal-mode SBC not supported")
	}
	diff := uint16(c.Accumulator) - uint16(c.M)
	if !c.Flags.Carry {
		diff--
	}
	result := byte(diff)
	c.Flags.Overflow = (c.Accumulator^result)&0x80 != 0 && (c.Accumulator^c.M)&0x80 == 0x80
	c.Flags.Carry = diff&0x100 == 0
	c.Accumulator = result
	c.setZN(result)
	return 0
}

// SEC - Set Carry Flag
func (c *CPU6502) SEC() byte { c.Flags.Carry = true; return 0 }

// SED - Set Decimal Flag
func (c *CPU6502) SED() byte { c.Flags.Decimal = true; return 0 }

// SEI - Set Interrupt Disable
func (c *CPU6502) SEI() byte { c.Flags.DisableInterrupt = true; return 0 }

// STA - Store Accumulator
func (c *CPU6502) STA() byte { c.Write(c.AbsAddress, c.Accumulator); return 0 }

// STX - Store X Register
func (c *CPU6502) STX() byte { c.Write(c.AbsAddress, c.X); return 0 }

// STY - Store Y Register
func (c *CPU6502) STY() byte { c.Write(c.AbsAddress, c.Y); return 0 }

// TAX - Transfer Accumulator to X
func (c *CPU6502) TAX() byte { c.X = c.Accumulator; c.setZN(c.X); return 0 }

// TAY - Transfer Accumulator to Y
func (c *CPU6502) TAY() byte { c.Y = c.Accumulator; c.setZN(c.Y); return 0 }

// TSX - Transfer Stack Pointer to X
func (c *CPU6502) TSX() byte { c.X = c.StackPointer; c.setZN(c.X); return 0 }

// TXA - Transfer X to Accumulator
func (c *CPU6502) TXA() byte { c.Accumulator = c.X; c.setZN(c.Accumulator); return 0 }

// TXS - Transfer X to Stack Pointer. Does not affect any flag.
func (c *CPU6502) TXS() byte { c.StackPointer = c.X; return 0 }

// TYA - Transfer Y to Accumulator
func (c *CPU6502) TYA() byte { c.Accumulator = c.Y; c.setZN(c.Accumulator); return 0 }
