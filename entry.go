package untar

// Entry describes one archive entry, decoded from its 512-byte header
// block. It holds no reference to the scanned buffer; Offset is a plain
// integer, so an Entry may outlive the buffer it was scanned from.
type Entry struct {
	// Name is the archive-relative path, with trailing NUL padding
	// stripped. Never empty for a scanned entry.
	Name string

	// Size is the unpadded payload length in bytes. Directories have
	// size 0.
	Size int64

	// Kind classifies the entry as a regular file or a directory.
	Kind Kind

	// Offset is the byte position of the entry's header block within
	// the scanned buffer, always a multiple of 512. The payload starts
	// one block later.
	Offset int64
}

// Kind classifies an archive entry.
type Kind int

const (
	File Kind = iota
	Dir
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Dir:
		return "dir"
	default:
		return "unknown"
	}
}
