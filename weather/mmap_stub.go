//go:build !unix

package weather

import "errors"

// MappedFile is a read-only memory mapping of a file. Memory mapping is
// only implemented for unix platforms.
type MappedFile struct{}

// OpenMapped is unsupported on this platform.
func OpenMapped(path string) (*MappedFile, error) {
	return nil, errors.New("memory-mapped file source is not supported on this platform")
}

func (m *MappedFile) Bytes() []byte { return nil }
func (m *MappedFile) Close() error  { return nil }
