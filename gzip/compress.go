package gzip

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// magic is the two-byte prefix of every gzip stream.
var magic = []byte{0x1f, 0x8b}

// IsCompressed reports whether buf starts with the gzip magic bytes.
func IsCompressed(buf []byte) bool {
	return bytes.HasPrefix(buf, magic)
}

// Compress compresses data using gzip into the writer.
func Compress(data *bytes.Buffer, w io.Writer) error {
	z := gzip.NewWriter(w)

	if _, err := z.Write(data.Bytes()); err != nil {
		return fmt.Errorf("failed to write compressed content: %w", err)
	}

	if err := z.Close(); err != nil {
		return fmt.Errorf("failed to close gzip writer: %w", err)
	}

	return nil
}

// Decompress decompresses compressed data using gzip into the writer.
func Decompress(r io.Reader, w io.Writer) error {
	z, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}

	if _, err := z.WriteTo(w); err != nil {
		return fmt.Errorf("failed to read compressed content: %w", err)
	}

	z.Close()

	return nil
}
