package parser

import "fmt"

// ArchiveError indicates the container could not be opened or read as a zip
// archive. It is fatal for the whole decode.
type ArchiveError struct {
	Path string
	Err  error
}

func (e *ArchiveError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid workbook archive: %v", e.Err)
	}
	return fmt.Sprintf("invalid workbook archive %q: %v", e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// ManifestError indicates a required XML part is missing or unparsable.
// Part names the archive entry that failed.
type ManifestError struct {
	Part string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("malformed workbook part %q: %v", e.Part, e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// EntryNotFoundError indicates a named entry is absent from the archive.
type EntryNotFoundError struct {
	Name string
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("archive entry %q not found", e.Name)
}
