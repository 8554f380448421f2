// Package brdfile opens a .brd file as a read-only memory-mapped byte
// span, matching the lifetime rules of the graph it backs: the mapping
// must stay pinned for as long as any decoded offset into it is in use.
package brdfile

import (
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/cadenceboard/brdreader/internal/brderr"
)

// FileMap is a whole-file read-only mapping of a .brd file.
type FileMap struct {
	f    *os.File
	data mmap.MMap
}

// Open maps path read-only. The returned FileMap must be closed once the
// caller is done with every byte slice derived from Bytes.
func Open(path string) (*FileMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, brderr.FileOpenErr()
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, brderr.FileOpenErr()
	}
	if stat.Size() == 0 {
		f.Close()
		return nil, brderr.FileOpenErr()
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, brderr.FileOpenErr()
	}

	return &FileMap{f: f, data: data}, nil
}

// Bytes returns the mapped file content. The slice is only valid until
// Close is called.
func (m *FileMap) Bytes() []byte {
	return m.data
}

// Size returns the mapped file's length in bytes.
func (m *FileMap) Size() int {
	return len(m.data)
}

// Close unmaps the file and releases its descriptor.
func (m *FileMap) Close() error {
	unmapErr := m.data.Unmap()
	closeErr := m.f.Close()
	if unmapErr != nil {
		return unmapErr
	}
	return closeErr
}
