package msh

import "strings"

// Document is the ordered line sequence of one MSH file plus its declared
// format version. Inputs are never mutated; formatting produces new text.
type Document struct {
	Lines   []string
	Version string
}

// ReadDocument splits raw text into lines, normalizing CRLF endings, and
// detects the format version declared in the $MeshFormat section. A text
// with no $-marker lines at all is rejected as malformed.
func ReadDocument(text string) (*Document, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	// Drop the empty line produced by a trailing newline
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	hasMarker := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "$") {
			hasMarker = true
			break
		}
	}
	if !hasMarker {
		return nil, &MalformedDocumentError{Reason: "no section markers found"}
	}

	return &Document{
		Lines:   lines,
		Version: detectVersion(lines),
	}, nil
}

// detectVersion looks for the $MeshFormat section and returns the version
// field from its first data line, or "" when none is present. The scan
// stops at the next marker line so an empty section never adopts a value
// from a later section.
func detectVersion(lines []string) string {
	for i, line := range lines {
		if strings.TrimSpace(line) != "$MeshFormat" {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			fields := strings.Fields(lines[j])
			if len(fields) == 0 {
				continue
			}
			if strings.HasPrefix(fields[0], "$") {
				return ""
			}
			if strings.HasPrefix(fields[0], "#") {
				continue
			}
			return fields[0]
		}
	}
	return ""
}
