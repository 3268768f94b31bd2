package untar

import (
	"bytes"
	"fmt"

	"github.com/archivetools/untar/gzip"
)

// Options controls how Open prepares an archive.
type Options struct {
	// Raw disables gzip detection; the data is scanned as-is even if
	// it starts with the gzip magic bytes.
	Raw bool

	// KeepMetadata keeps the macOS archiver artifacts ("._*" resource
	// forks, PaxHeader entries) that are filtered out by default.
	KeepMetadata bool
}

// Archive is a scanned in-memory tarball. It keeps a reference to the
// (decompressed) buffer so entries can be extracted by name.
type Archive struct {
	buf     []byte
	entries []Entry
}

// Open scans an in-memory tarball. Data that starts with the gzip
// magic bytes is decompressed first, unless o.Raw is set. Scanning
// itself cannot fail; the returned error is always a decompression
// failure.
func Open(data []byte, o Options) (*Archive, error) {
	buf := data
	if !o.Raw && gzip.IsCompressed(data) {
		var out bytes.Buffer
		if err := gzip.Decompress(bytes.NewReader(data), &out); err != nil {
			return nil, fmt.Errorf("failed to decompress archive: %w", err)
		}
		buf = out.Bytes()
	}

	entries := Scan(buf)
	if !o.KeepMetadata {
		entries = StripMetadata(entries)
	}

	return &Archive{
		buf:     buf,
		entries: entries,
	}, nil
}

// Entries returns the scanned descriptors in header order.
func (a *Archive) Entries() []Entry {
	return a.entries
}

// Data returns the payload of an entry scanned from this archive.
func (a *Archive) Data(e Entry) []byte {
	return Data(e, a.buf)
}

// Names returns the entry names in header order.
func (a *Archive) Names() []string {
	names := make([]string, len(a.entries))
	for i, e := range a.entries {
		names[i] = e.Name
	}
	return names
}

// File returns the payload of the entry with the given name.
func (a *Archive) File(name string) ([]byte, error) {
	for _, e := range a.entries {
		if e.Name == name {
			return a.Data(e), nil
		}
	}
	return nil, fmt.Errorf("file %s not found in archive", name)
}
