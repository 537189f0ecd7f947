// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the Commodore 64 (via its 6510 variant), including its documented
// hardware bugs, interrupt sequencing, and cycle counting.
package cpu

import (
	"github.com/sirupsen/logrus"

	"c64core/mask"
	"c64core/mem"
)

const (
	nmiVector   = 0xfffa
	resetVector = 0xfffc
	irqVector   = 0xfffe
)

// Flags holds the 8 bits of the status register (aka P register). B and the
// unused bit only ever exist when the flags are pushed to the stack as a
// single byte; they have no effect on CPU behavior otherwise.
//
// 7654 3210
// NV1B DIZC
type Flags struct {
	Negative         bool // bit 7
	Overflow         bool // bit 6
	Unused           bool // bit 5; always 1 on the real chip
	B                bool // bit 4; only meaningful in the byte pushed by PHP/BRK
	Decimal          bool // bit 3
	DisableInterrupt bool // bit 2
	Zero             bool // bit 1
	Carry            bool // bit 0
}

// srToByte packs f into the single status byte the stack expects, using
// mask's 1-indexed bit-range helpers: I1 is bit 7 (MSB) down to I8, bit 0
// (LSB), which lines up exactly with N V 1 B D I Z C.
func srToByte(f Flags, brk bool) byte {
	var b byte
	if f.Negative {
		b = mask.Set(b, mask.I1, 1)
	}
	if f.Overflow {
		b = mask.Set(b, mask.I2, 1)
	}
	b = mask.Set(b, mask.I3, 1) // unused bit always reads back 1
	if brk {
		b = mask.Set(b, mask.I4, 1)
	}
	if f.Decimal {
		b = mask.Set(b, mask.I5, 1)
	}
	if f.DisableInterrupt {
		b = mask.Set(b, mask.I6, 1)
	}
	if f.Zero {
		b = mask.Set(b, mask.I7, 1)
	}
	if f.Carry {
		b = mask.Set(b, mask.I8, 1)
	}
	return b
}

// byteToSR unpacks a status byte (as pulled from the stack by PLP/RTI) back
// into Flags. The B bit of b is discarded and Flags.B is left false: B only
// exists transiently in the pushed byte.
func byteToSR(b byte) Flags {
	return Flags{
		Negative:         mask.IsSet(b, mask.I1),
		Overflow:         mask.IsSet(b, mask.I2),
		Unused:           true,
		Decimal:          mask.IsSet(b, mask.I5),
		DisableInterrupt: mask.IsSet(b, mask.I6),
		Zero:             mask.IsSet(b, mask.I7),
		Carry:            mask.IsSet(b, mask.I8),
	}
}

// AddressingMode tells the CPU where to find the operand byte for an
// instruction. There are 13 possible modes.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	IndirectX
	IndirectY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
)

// CPU6502 is the interpreter state for a single MOS 6502. It has no memory
// of its own, aside from its registers; it reads and writes through Bus,
// which may be a RAM, a ROM, a SharedBus, or anything else implementing
// mem.Addressable.
type CPU6502 struct {
	Bus mem.Addressable

	Flags Flags

	Accumulator byte
	X           byte
	Y           byte

	// StackPointer is the low byte of the next free stack slot. Stack
	// operations always address page 1 ($0100-$01FF); the pointer itself
	// wraps inside that single page and never carries into $0200 or
	// borrows from $00FF.
	StackPointer byte

	ProgramCounter uint16

	// M holds the operand byte fetched by decode, for instructions (like
	// ADC, AND, CMP, ...) that read rather than write memory.
	M byte
	// AbsAddress is the effective address computed by decode, used by
	// instructions (like STA, INC, ASL-memory) that write back to
	// memory instead of (or as well as) reading c.M.
	AbsAddress uint16
	// mode is the addressing mode of the instruction currently
	// executing, recorded by tick so read-modify-write instructions
	// (ASL, LSR, ROL, ROR) know whether to write their result back to
	// the accumulator or to memory.
	mode AddressingMode
	// pageCrossed records whether the current addressing mode crossed a
	// page boundary while computing AbsAddress; AbsoluteX/Y and
	// IndirectY add a cycle when it did.
	pageCrossed bool

	// Cycles is the number of cycles the most recently started
	// instruction takes in total, including any page-crossing penalty.
	Cycles byte

	nmiPending   bool
	irqAsserted  bool
	resetPending bool
}

// NewCPU6502 returns a CPU6502 wired to bus, with Reset already pending: the
// first Step call will perform the 6-cycle reset sequence, matching how a
// real 6502 behaves when power is first applied.
func NewCPU6502(bus mem.Addressable) *CPU6502 {
	return &CPU6502{Bus: bus, resetPending: true}
}

// Read reads one byte from addr via the bus.
func (c *CPU6502) Read(addr uint16) byte {
	return c.Bus.Get(addr)
}

// Write writes data to addr via the bus.
func (c *CPU6502) Write(addr uint16, data byte) {
	c.Bus.Set(addr, data)
}

func (c *CPU6502) push(v byte) {
	c.Write(0x0100|uint16(c.StackPointer), v)
	c.StackPointer--
}

func (c *CPU6502) pop() byte {
	c.StackPointer++
	return c.Read(0x0100 | uint16(c.StackPointer))
}

func (c *CPU6502) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU6502) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(hi)<<8 | uint16(lo)
}

// Reset latches a reset condition; it will be serviced on the next Step.
func (c *CPU6502) Reset() {
	c.resetPending = true
}

// NMI latches a non-maskable interrupt; unlike IRQ it cannot be disabled by
// the I flag, and is serviced on the next Step regardless.
func (c *CPU6502) NMI() {
	c.nmiPending = true
}

// IRQ asserts the maskable interrupt line. IRQ is level-sensitive: it is
// reevaluated on every Step while asserted, and is serviced only while
// DisableInterrupt is clear; the caller is responsible for deasserting it
// (calling ClearIRQ) once the interrupting device has been satisfied, the
// way a real peripheral holds its IRQ line until acknowledged.
func (c *CPU6502) IRQ() {
	c.irqAsserted = true
}

// ClearIRQ deasserts the interrupt line.
func (c *CPU6502) ClearIRQ() {
	c.irqAsserted = false
}

func (c *CPU6502) fetch(b byte) (Opcode, error) {
	op, legal := Opcodes[b]
	if !legal {
		return Opcode{}, &IllegalOpcodeError{Opcode: b, PC: c.ProgramCounter}
	}
	return op, nil
}

// decode fetches the operand for the given addressing mode, advancing
// ProgramCounter by however many bytes that mode consumes, and leaves the
// result in c.M (for read-style instructions) and c.AbsAddress (for
// write-style instructions). It also reproduces the 6502's documented
// addressing-mode quirks: zero-page indexing never leaves page zero, the
// indirect-indexed ($xx),Y mode can cross a page on the Y addition while
// indexed-indirect ($xx,X) cannot, and the JMP (indirect) operand wraps
// within the same page when its low byte is $FF instead of advancing to the
// next page (the "JMP indirect bug").
func (c *CPU6502) decode(a AddressingMode) {
	switch a {

	case Implied:
		return

	case Accumulator:
		c.M = c.Accumulator
		return

	case Immediate:
		c.AbsAddress = c.ProgramCounter
		c.ProgramCounter++

	case ZeroPage:
		c.AbsAddress = uint16(c.Read(c.ProgramCounter))
		c.ProgramCounter++

	case ZeroPageX:
		c.AbsAddress = uint16(c.Read(c.ProgramCounter) + c.X)
		c.ProgramCounter++

	case ZeroPageY:
		c.AbsAddress = uint16(c.Read(c.ProgramCounter) + c.Y)
		c.ProgramCounter++

	case Relative:
		rel := int8(c.Read(c.ProgramCounter))
		c.ProgramCounter++
		c.AbsAddress = uint16(int32(c.ProgramCounter) + int32(rel))

	case Absolute:
		lo := c.Read(c.ProgramCounter)
		c.ProgramCounter++
		hi := c.Read(c.ProgramCounter)
		c.ProgramCounter++
		c.AbsAddress = uint16(hi)<<8 | uint16(lo)

	case AbsoluteX:
		lo := c.Read(c.ProgramCounter)
		c.ProgramCounter++
		hi := c.Read(c.ProgramCounter)
		c.ProgramCounter++
		base := uint16(hi)<<8 | uint16(lo)
		c.AbsAddress = base + uint16(c.X)
		c.pageCrossed = c.AbsAddress&0xff00 != uint16(hi)<<8

	case AbsoluteY:
		lo := c.Read(c.ProgramCounter)
		c.ProgramCounter++
		hi := c.Read(c.ProgramCounter)
		c.ProgramCounter++
		base := uint16(hi)<<8 | uint16(lo)
		c.AbsAddress = base + uint16(c.Y)
		c.pageCrossed = c.AbsAddress&0xff00 != uint16(hi)<<8

	case IndirectX:
		ptr := c.Read(c.ProgramCounter)
		c.ProgramCounter++
		lo := c.Read(uint16(ptr + c.X))
		hi := c.Read(uint16(ptr + c.X + 1))
		c.AbsAddress = uint16(hi)<<8 | uint16(lo)

	case IndirectY:
		ptr := c.Read(c.ProgramCounter)
		c.ProgramCounter++
		lo := c.Read(uint16(ptr))
		hi := c.Read(uint16(ptr + 1))
		base := uint16(hi)<<8 | uint16(lo)
		c.AbsAddress = base + uint16(c.Y)
		c.pageCrossed = c.AbsAddress&0xff00 != uint16(hi)<<8

	case Indirect:
		ptrLo := c.Read(c.ProgramCounter)
		c.ProgramCounter++
		ptrHi := c.Read(c.ProgramCounter)
		c.ProgramCounter++
		ptr := uint16(ptrHi)<<8 | uint16(ptrLo)

		lo := c.Read(ptr)
		var hi byte
		if ptrLo == 0xff {
			hi = c.Read(ptr & 0xff00)
		} else {
			hi = c.Read(ptr + 1)
		}
		c.AbsAddress = uint16(hi)<<8 | uint16(lo)
	}

	c.M = c.Read(c.AbsAddress)
}

// Step executes one instruction (or one interrupt-sequence entry) and
// returns the number of cycles it took. Reset, NMI, and IRQ are serviced in
// that priority order, ahead of ordinary instruction fetch/decode/execute,
// matching real 6502 interrupt-priority hardware.
func (c *CPU6502) Step() byte {
	switch {
	case c.resetPending:
		return c.doReset()
	case c.nmiPending:
		return c.doNMI()
	case c.irqAsserted && !c.Flags.DisableInterrupt:
		return c.doIRQ()
	default:
		return c.tick()
	}
}

func (c *CPU6502) tick() byte {
	b := c.Read(c.ProgramCounter)
	op, err := c.fetch(b)
	if err != nil {
		logrus.WithFields(logrus.Fields{"opcode": b, "pc": c.ProgramCounter}).
			Panic(err.Error())
	}
	c.ProgramCounter++

	c.mode = op.AddressingMode
	c.decode(op.AddressingMode)
	extra := op.Instruction(c)

	cycles := op.Cycles + extra
	if c.pageCrossed {
		cycles++
	}
	c.pageCrossed = false
	c.Cycles = cycles
	return cycles
}

func (c *CPU6502) doReset() byte {
	c.resetPending = false
	c.nmiPending = false
	c.irqAsserted = false

	c.Accumulator = 0
	c.X = 0
	c.Y = 0
	c.StackPointer = 0xfd
	c.Flags = Flags{Unused: true, DisableInterrupt: true}

	lo := c.Read(resetVector)
	hi := c.Read(resetVector + 1)
	c.ProgramCounter = uint16(hi)<<8 | uint16(lo)

	c.M = 0
	c.AbsAddress = 0
	c.Cycles = 6
	return 6
}

func (c *CPU6502) doNMI() byte {
	c.nmiPending = false
	c.pushWord(c.ProgramCounter)
	c.push(srToByte(c.Flags, false))
	// NMI does not set DisableInterrupt; unlike IRQ and BRK it cannot be
	// masked, so there is nothing for the flag to protect against here.

	lo := c.Read(nmiVector)
	hi := c.Read(nmiVector + 1)
	c.ProgramCounter = uint16(hi)<<8 | uint16(lo)
	c.Cycles = 7
	return 7
}

// doIRQ services a pending IRQ. It reproduces the BRK/IRQ collision bug: if
// the byte at the current PC is a BRK opcode, the IRQ sequence advances PC
// past that one opcode byte first (the padding byte after it is not skipped),
// so the BRK is never independently executed once the handler returns.
func (c *CPU6502) doIRQ() byte {
	if c.Read(c.ProgramCounter) == 0x00 {
		c.ProgramCounter++
	}
	c.pushWord(c.ProgramCounter)
	c.push(srToByte(c.Flags, false))
	c.Flags.DisableInterrupt = true

	lo := c.Read(irqVector)
	hi := c.Read(irqVector + 1)
	c.ProgramCounter = uint16(hi)<<8 | uint16(lo)
	c.Cycles = 7
	return 7
}

// IllegalOpcodeError reports a byte fetched as an opcode that does not
// correspond to any of the 151 legal encodings.
type IllegalOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *IllegalOpcodeError) Error() string {
	return "cpu: illegal opcode"
}
