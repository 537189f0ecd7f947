package mem

// MappedBus overlays a ROM onto a RAM's address range: reads and writes
// within [romBase, romBase+rom.Size()) go to the ROM, everything else goes
// to the RAM. This is the minimal mapping a driver needs to run a ROM image
// against the CPU core; it does not model the C64's PLA bank-switching.
type MappedBus struct {
	ram     *RAM
	rom     *ROM
	romBase uint16
}

// NewMappedBus overlays rom at romBase on top of ram. rom may be nil, in
// which case the bus reads/writes ram everywhere.
func NewMappedBus(ram *RAM, rom *ROM, romBase uint16) *MappedBus {
	return &MappedBus{ram: ram, rom: rom, romBase: romBase}
}

func (m *MappedBus) inROM(a uint16) bool {
	return m.rom != nil && a >= m.romBase && int(a)-int(m.romBase) < m.rom.Size()
}

// Get reads from the ROM if a falls within its mapped range, otherwise RAM.
func (m *MappedBus) Get(a uint16) byte {
	if m.inROM(a) {
		return m.rom.Get(a - m.romBase)
	}
	return m.ram.Get(a)
}

// Set writes to the ROM if a falls within its mapped range (where it is
// logged and ignored, per ROM.Set), otherwise RAM.
func (m *MappedBus) Set(a uint16, v byte) {
	if m.inROM(a) {
		m.rom.Set(a-m.romBase, v)
		return
	}
	m.ram.Set(a, v)
}
