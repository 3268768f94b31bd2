// Package tartest builds tarball fixtures for tests: well-formed
// archives via archive/tar, and hand-packed raw header blocks for the
// shapes the standard writer refuses to produce (bogus size digits,
// unusual type flags, missing end padding).
package tartest

import (
	"archive/tar"
	"bytes"
	"fmt"
	"testing"

	"github.com/archivetools/untar/gzip"
)

// File is one fixture entry.
type File struct {
	Name string
	Body []byte
	Dir  bool
}

// Build creates a tarball holding the given entries, in order.
func Build(t *testing.T, files []File) []byte {
	t.Helper()

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	for _, f := range files {
		header := &tar.Header{
			Name: f.Name,
			Mode: 0600,
			Size: int64(len(f.Body)),
		}
		if f.Dir {
			header.Typeflag = tar.TypeDir
			header.Mode = 0700
		}

		if err := tw.WriteHeader(header); err != nil {
			t.Fatalf("failed to write tar header: %v", err)
		}

		if _, err := tw.Write(f.Body); err != nil {
			t.Fatalf("failed to write file content: %v", err)
		}
	}

	if err := tw.Close(); err != nil {
		t.Fatalf("failed to close tar writer: %v", err)
	}

	return buf.Bytes()
}

// Gzip compresses an archive for decompression round-trips.
func Gzip(t *testing.T, data []byte) []byte {
	t.Helper()

	var out bytes.Buffer
	if err := gzip.Compress(bytes.NewBuffer(data), &out); err != nil {
		t.Fatalf("failed to gzip archive: %v", err)
	}
	return out.Bytes()
}

// RawEntry packs one header block by hand and appends the body, padded
// to the next block boundary. The size field is taken verbatim, so
// tests can feed the scanner malformed digits. The checksum is filled
// in properly even though the scanner ignores it.
func RawEntry(name, size string, typeflag byte, body []byte) []byte {
	block := make([]byte, 512)
	copy(block[0:100], name)
	copy(block[124:136], size)
	block[156] = typeflag

	// Checksum is computed with its own field read as spaces.
	for i := 148; i < 156; i++ {
		block[i] = ' '
	}
	var sum int64
	for _, b := range block {
		sum += int64(b)
	}
	copy(block[148:156], fmt.Sprintf("%06o\x00 ", sum))

	out := append(block, body...)
	if rem := len(out) % 512; rem != 0 {
		out = append(out, make([]byte, 512-rem)...)
	}
	return out
}

// Trailer returns the conventional two zero blocks ending an archive.
func Trailer() []byte {
	return make([]byte, 1024)
}
