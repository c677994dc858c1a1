package parser

import (
	"archive/zip"
	"bytes"
	"io"
)

// Archive is a read-only handle to an opened workbook container.
type Archive struct {
	files  map[string]*zip.File
	names  []string
	closer io.Closer
}

// OpenArchive opens the zip container at path.
func OpenArchive(path string) (*Archive, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ArchiveError{Path: path, Err: err}
	}
	a := newArchive(&r.Reader)
	a.closer = r
	return a, nil
}

// NewArchive opens a zip container held in memory.
func NewArchive(data []byte) (*Archive, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ArchiveError{Err: err}
	}
	return newArchive(r), nil
}

func newArchive(r *zip.Reader) *Archive {
	a := &Archive{files: make(map[string]*zip.File, len(r.File))}
	for _, f := range r.File {
		if _, seen := a.files[f.Name]; !seen {
			a.names = append(a.names, f.Name)
		}
		a.files[f.Name] = f
	}
	return a
}

// Close releases the underlying file handle, if any.
func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Entries returns the internal entry paths in archive order.
func (a *Archive) Entries() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Has reports whether the archive contains the named entry.
func (a *Archive) Has(name string) bool {
	_, ok := a.files[name]
	return ok
}

// ReadEntry returns the raw bytes of the named entry.
func (a *Archive) ReadEntry(name string) ([]byte, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, &EntryNotFoundError{Name: name}
	}
	rc, err := f.Open()
	if err != nil {
		return nil, &ArchiveError{Path: name, Err: err}
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
