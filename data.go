package untar

// Data returns the payload of an entry scanned from the same buffer:
// the e.Size bytes immediately after the entry's header block.
// Directory entries yield an empty slice.
//
// The range is clamped to the buffer, so a descriptor taken from a
// different or since-truncated buffer returns short (possibly
// unrelated) bytes instead of failing. Data is pure; repeated calls
// with the same arguments return identical bytes.
func Data(e Entry, buf []byte) []byte {
	start := e.Offset + blockSize
	end := start + e.Size

	if start > int64(len(buf)) {
		start = int64(len(buf))
	}
	if end > int64(len(buf)) {
		end = int64(len(buf))
	}

	return buf[start:end:end]
}
