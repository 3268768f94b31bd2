package untar

import "strings"

// Name fragments left behind by the macOS archiver: AppleDouble
// resource forks ("._*") and PaxHeader pseudo-entries.
var metadataMarkers = []string{"._", "PaxHeader"}

// StripMetadata returns the entries whose names do not look like macOS
// archiver artifacts, preserving order. It is a name heuristic layered
// on top of Scan, not a structural parse of extended headers; offsets
// are untouched, so extraction keeps working on the kept entries.
func StripMetadata(entries []Entry) []Entry {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if isMetadata(e.Name) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

func isMetadata(name string) bool {
	for _, marker := range metadataMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
