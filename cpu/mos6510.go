package cpu

import "c64core/mem"

// CPU6510 is a 6502 core plus the two-register on-chip I/O port the 6510
// variant adds at $0000 (data direction) and $0001 (data). The Commodore 64
// uses this port to bank ROM/RAM in and out of the CPU's address space;
// that banking logic lives above this package; CPU6510 only owns the port's
// storage and forwards every CPU operation to the embedded 6502.
type CPU6510 struct {
	*CPU6502

	PortDDR byte
	PortDat byte
}

// NewCPU6510 returns a CPU6510 wrapping a fresh CPU6502 on bus.
func NewCPU6510(bus mem.Addressable) *CPU6510 {
	return &CPU6510{CPU6502: NewCPU6502(bus)}
}
