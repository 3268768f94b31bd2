package untar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMetadata(t *testing.T) {
	entries := []Entry{
		{Name: "._file1.txt", Kind: File},
		{Name: "dir/", Kind: Dir},
		{Name: "dir/._notes", Kind: File},
		{Name: "PaxHeader/file1.txt", Kind: File},
		{Name: "file1.txt", Kind: File, Offset: 2048},
		{Name: "file2.txt", Kind: File, Offset: 2560},
	}

	kept := StripMetadata(entries)

	names := make([]string, len(kept))
	for i, e := range kept {
		names[i] = e.Name
	}

	assert.Equal(t, []string{"dir/", "file1.txt", "file2.txt"}, names)

	// Offsets survive filtering, so extraction still works.
	assert.Equal(t, int64(2048), kept[1].Offset)
}

func TestStripMetadataKeepsOrder(t *testing.T) {
	entries := []Entry{
		{Name: "c.txt"},
		{Name: "._b"},
		{Name: "a.txt"},
	}

	kept := StripMetadata(entries)

	assert.Equal(t, "c.txt", kept[0].Name)
	assert.Equal(t, "a.txt", kept[1].Name)
}

func TestStripMetadataEmpty(t *testing.T) {
	assert.Empty(t, StripMetadata(nil))
}
