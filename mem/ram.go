package mem

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// RAM is a capacity-bounded, randomly-initialized byte array. Real RAM
// powers on holding whatever voltage the capacitors happened to settle at,
// not zeroes; initializing it to a fixed pattern would let a program
// accidentally depend on reset state that no real C64 guarantees.
type RAM struct {
	data     []byte
	lastAddr uint16
}

// NewRAM allocates a RAM spanning addresses [0, lastAddr], filled with
// pseudo-random bytes.
func NewRAM(lastAddr uint16) *RAM {
	size := int(lastAddr) + 1
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(rand.IntN(256))
	}
	return &RAM{data: data, lastAddr: lastAddr}
}

// Size returns the number of addressable bytes.
func (r *RAM) Size() int {
	return len(r.data)
}

// Get returns the byte at addr. Reading beyond lastAddr is a programming
// error (a bus wiring bug, not a recoverable I/O condition) and is fatal.
func (r *RAM) Get(a uint16) byte {
	if a > r.lastAddr {
		logrus.WithFields(logrus.Fields{"addr": a, "last_addr": r.lastAddr}).
			Panic("mem: RAM read out of bounds")
	}
	return r.data[a]
}

// Set writes v at addr, fatally, for the same reason as Get.
func (r *RAM) Set(a uint16, v byte) {
	if a > r.lastAddr {
		logrus.WithFields(logrus.Fields{"addr": a, "last_addr": r.lastAddr}).
			Panic("mem: RAM write out of bounds")
	}
	r.data[a] = v
}
