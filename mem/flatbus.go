package mem

// FlatBus is the simplest possible Addressable: a single flat 64KB array
// with no RAM/ROM split and no bank switching. It exists for tests and
// small programs that want the whole address space to be plain, freely
// writable storage.
//
// Adapted from an earlier single-struct bus that used value receivers on
// its backing array; that meant every Get/Set operated on a throwaway copy
// unless the caller happened to hold the struct through a pointer
// elsewhere. FlatBus fixes that by using pointer receivers directly.
type FlatBus struct {
	data [64 * 1024]byte
}

// NewFlatBus returns an empty (zeroed) FlatBus.
func NewFlatBus() *FlatBus {
	return &FlatBus{}
}

// Get returns the byte at a.
func (b *FlatBus) Get(a uint16) byte {
	return b.data[a]
}

// Set writes v at a.
func (b *FlatBus) Set(a uint16, v byte) {
	b.data[a] = v
}

// LoadAt copies program into the bus starting at addr.
func (b *FlatBus) LoadAt(addr uint16, program []byte) {
	for i, v := range program {
		b.data[addr+uint16(i)] = v
	}
}
