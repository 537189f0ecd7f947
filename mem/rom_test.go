package mem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempROM(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.rom")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestROMLoadAndRead(t *testing.T) {
	path := writeTempROM(t, []byte{0xde, 0xad, 0xbe, 0xef})
	r := NewROM(path)
	assert.Equal(t, 4, r.Size())
	assert.Equal(t, byte(0xde), r.Get(0))
	assert.Equal(t, byte(0xef), r.Get(3))
}

func TestROMOutOfBoundsReadPanics(t *testing.T) {
	path := writeTempROM(t, []byte{0x01})
	r := NewROM(path)
	assert.Panics(t, func() { r.Get(1) })
}

func TestROMEmptyFilePanics(t *testing.T) {
	path := writeTempROM(t, []byte{})
	assert.Panics(t, func() { NewROM(path) })
}

func TestROMWriteIgnored(t *testing.T) {
	path := writeTempROM(t, []byte{0x01, 0x02})
	r := NewROM(path)
	assert.NotPanics(t, func() { r.Set(0, 0xff) })
	assert.Equal(t, byte(0x01), r.Get(0))
}
