//go:build unix

package weather

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MappedFile is a read-only memory mapping of a file. The bytes returned
// by Bytes alias OS-backed memory and are valid only until Close; they
// must not be mutated. Mutating the file externally while it is mapped is
// undefined behavior for the mapped bytes.
type MappedFile struct {
	f    *os.File
	data []byte
}

// OpenMapped maps path read-only.
func OpenMapped(path string) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	size := fi.Size()
	if size != int64(int(size)) {
		f.Close()
		return nil, fmt.Errorf("file too large to map: %d bytes", size)
	}
	// mmap(2) rejects zero-length mappings.
	if size == 0 {
		return &MappedFile{f: f}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to mmap file: %w", err)
	}
	return &MappedFile{f: f, data: data}, nil
}

// Bytes returns the mapped content. Valid only until Close.
func (m *MappedFile) Bytes() []byte { return m.data }

// Close unmaps the view and closes the underlying file.
func (m *MappedFile) Close() error {
	var unmapErr error
	if m.data != nil {
		unmapErr = unix.Munmap(m.data)
		m.data = nil
	}
	closeErr := m.f.Close()
	if unmapErr != nil {
		return fmt.Errorf("failed to munmap file: %w", unmapErr)
	}
	return closeErr
}
