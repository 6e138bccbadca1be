package eeprom

import (
	"fmt"
	"io"
)

// MemRegion is an in-memory Region, used in tests and on hosts without
// real EEPROM hardware.
type MemRegion struct {
	buf []byte
}

// NewMemRegion creates a memory-backed region of the given size.
func NewMemRegion(size int) *MemRegion {
	return &MemRegion{buf: make([]byte, size)}
}

// ReadAt implements io.ReaderAt.
func (m *MemRegion) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(m.buf)) {
		return 0, fmt.Errorf("memregion: offset %d out of range", off)
	}
	n := copy(p, m.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteAt implements io.WriterAt.
func (m *MemRegion) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(m.buf)) {
		return 0, fmt.Errorf("memregion: offset %d out of range", off)
	}
	n := copy(m.buf[off:], p)
	if n < len(p) {
		return n, fmt.Errorf("memregion: write of %d bytes at %d exceeds region", len(p), off)
	}
	return n, nil
}

// Size implements Region.
func (m *MemRegion) Size() int64 {
	return int64(len(m.buf))
}
