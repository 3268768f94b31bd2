package untar

import (
	"bytes"
	"strconv"
	"strings"
)

// Tar header geometry. Only the fields the scanner decodes are listed;
// the rest of the 512-byte block (mode, owner, checksum, magic) is
// skipped.
const (
	blockSize = 512

	nameOffset = 0
	nameLen    = 100

	sizeOffset = 124
	sizeLen    = 12

	typeOffset = 156
)

// Numeric type-flag values for the kinds the scanner emits. Links,
// devices, PAX headers and GNU long names carry other values and are
// skipped.
const (
	typeFile = 0
	typeDir  = 5
)

// Scan walks buf block by block and returns a descriptor for every
// regular file and directory header it finds, in header order. Entries
// with any other type flag produce no descriptor, but their payloads
// are still stepped over, so scanning stays aligned.
//
// Scan never fails: a buffer shorter than one block yields an empty
// result, a malformed size field decodes as 0, and an empty name field
// (the zero padding after the last entry) ends the scan. The header
// checksum is not verified.
func Scan(buf []byte) []Entry {
	var entries []Entry

	var cursor int64
	for cursor+blockSize <= int64(len(buf)) {
		header := buf[cursor : cursor+blockSize]

		name := parseName(header[nameOffset : nameOffset+nameLen])
		if name == "" {
			break
		}

		size := parseOctal(header[sizeOffset : sizeOffset+sizeLen])

		switch int(header[typeOffset]) - '0' {
		case typeFile:
			entries = append(entries, Entry{Name: name, Size: size, Kind: File, Offset: cursor})
		case typeDir:
			entries = append(entries, Entry{Name: name, Size: size, Kind: Dir, Offset: cursor})
		}

		// Payloads are padded to the next block boundary.
		cursor += blockSize + size
		if rem := cursor % blockSize; rem != 0 {
			cursor += blockSize - rem
		}
	}

	return entries
}

// parseName decodes the fixed-width name field, dropping the NUL
// padding.
func parseName(field []byte) string {
	return string(bytes.TrimRight(field, "\x00"))
}

// parseOctal decodes a NUL- and space-padded ASCII octal field. The
// field is best effort: malformed or negative content decodes as 0
// rather than failing, which also keeps the cursor moving forward.
func parseOctal(field []byte) int64 {
	s := strings.TrimSpace(string(bytes.Trim(field, "\x00")))
	if s == "" {
		return 0
	}

	n, err := strconv.ParseInt(s, 8, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
