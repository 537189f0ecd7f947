package mem

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ROM is a fixed, file-loaded byte array. Reads past the end are fatal, the
// same as RAM; writes are not fatal (real ROM silently ignores them) but
// are logged, since a program writing to ROM is almost always a bug worth
// surfacing.
type ROM struct {
	data     []byte
	lastAddr uint16
}

// NewROM loads the entire contents of path as ROM data. An empty file (or a
// missing one) is fatal: there is no such thing as a zero-byte ROM chip.
func NewROM(path string) *ROM {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.WithFields(logrus.Fields{"path": path, "err": err}).
			Panic("mem: failed to load ROM image")
	}
	if len(data) == 0 {
		logrus.WithFields(logrus.Fields{"path": path}).
			Panic("mem: ROM image is empty")
	}
	logrus.WithFields(logrus.Fields{"path": path, "size": len(data)}).Debug("mem: loaded ROM image")
	return &ROM{data: data, lastAddr: uint16(len(data) - 1)}
}

// Size returns the number of addressable bytes.
func (r *ROM) Size() int {
	return len(r.data)
}

// Get returns the byte at addr, fatally if addr is beyond the loaded image.
func (r *ROM) Get(a uint16) byte {
	if a > r.lastAddr {
		logrus.WithFields(logrus.Fields{"addr": a, "last_addr": r.lastAddr}).
			Panic("mem: ROM read out of bounds")
	}
	return r.data[a]
}

// Set logs and ignores the write: ROM cannot be written to by the running
// program, but a write attempt is diagnostically useful.
func (r *ROM) Set(a uint16, v byte) {
	logrus.WithFields(logrus.Fields{"addr": a, "value": v}).Warn("mem: ignored write to ROM")
}
