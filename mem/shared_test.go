package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedBusReadWrite(t *testing.T) {
	s := NewSharedBus(NewFlatBus())
	s.Set(0x10, 0x42)
	assert.Equal(t, byte(0x42), s.Get(0x10))
}

func TestSharedBusObservesWritesAcrossHandles(t *testing.T) {
	a := NewSharedBus(NewFlatBus())
	b := a.Clone()
	a.Set(0x20, 0x99)
	assert.Equal(t, byte(0x99), b.Get(0x20))
}

func TestSharedBusOverlappingAccessPanics(t *testing.T) {
	s := NewSharedBus(NewFlatBus())
	s.state.mu.Lock() // simulate an in-progress access
	defer s.state.mu.Unlock()
	assert.Panics(t, func() { s.Get(0) })
}
