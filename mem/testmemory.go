package mem

import "github.com/sirupsen/logrus"

// TestMemory is a synthetic Addressable used to exercise bus-generic code
// (GetBE/GetLE/SetBE/SetLE, Hexdump, Copy) without constructing a RAM or
// ROM. Get(addr) always returns a value derived purely from addr (its low
// byte plus its high byte), so callers can assert on reads without needing
// prior writes; Set asserts that any write matches the same formula,
// catching bugs where a caller computes the wrong address.
type TestMemory struct{}

func dataForAddr(a uint16) byte {
	return byte(a) + byte(a>>8)
}

// Get returns dataForAddr(a).
func (TestMemory) Get(a uint16) byte {
	return dataForAddr(a)
}

// Set panics if data does not match dataForAddr(a): this harness memory has
// no storage of its own, so a write it can't validate is a caller bug.
func (TestMemory) Set(a uint16, data byte) {
	if want := dataForAddr(a); data != want {
		logrus.WithFields(logrus.Fields{"addr": a, "got": data, "want": want}).
			Panic("mem: TestMemory write does not match its address formula")
	}
}
