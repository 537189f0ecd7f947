package mem

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// sharedState is the reference-counted-in-spirit backing a SharedBus: every
// clone of a SharedBus points at the same state, so they contend for the
// same lock and observe each other's writes, the way Rc<RefCell<M>> clones
// do in the Rust original.
type sharedState struct {
	mu    sync.Mutex
	inner Addressable
}

// SharedBus wraps an Addressable so multiple components (for example a CPU
// and a debugger inspecting it concurrently) can hold a reference to the
// same backing memory. Access is guarded by a mutex rather than enforced at
// compile time the way Rust's RefCell/Rc<RefCell<_>> would; an overlapping
// access (one goroutine already mid-Get/Set when another tries to start
// one) is treated the same way a borrow conflict would be: a fatal error,
// not a silent block, since in this single-threaded CPU core it can only
// mean a reentrant call a real bus could never produce.
type SharedBus struct {
	state *sharedState
}

// NewSharedBus wraps inner for shared access.
func NewSharedBus(inner Addressable) *SharedBus {
	return &SharedBus{state: &sharedState{inner: inner}}
}

// Clone returns a second handle to the same backing memory and the same
// lock, analogous to cloning an Rc<RefCell<M>>.
func (s *SharedBus) Clone() *SharedBus {
	return &SharedBus{state: s.state}
}

func (s *SharedBus) lock() {
	if !s.state.mu.TryLock() {
		logrus.Panic("mem: overlapping borrow of shared bus")
	}
}

// Get reads through to the wrapped Addressable.
func (s *SharedBus) Get(a uint16) byte {
	s.lock()
	defer s.state.mu.Unlock()
	return s.state.inner.Get(a)
}

// Set writes through to the wrapped Addressable.
func (s *SharedBus) Set(a uint16, v byte) {
	s.lock()
	defer s.state.mu.Unlock()
	s.state.inner.Set(a, v)
}
