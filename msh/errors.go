package msh

import "fmt"

// MalformedDocumentError indicates the input text has no recognizable MSH
// structure at all (no $-marker sections).
type MalformedDocumentError struct {
	Reason string
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed MSH document: %s", e.Reason)
}

// UnterminatedSectionError indicates a section opening marker was never
// closed by its matching $End marker.
type UnterminatedSectionError struct {
	Marker string
	Line   int // 1-based line number of the opening marker
}

func (e *UnterminatedSectionError) Error() string {
	return fmt.Sprintf("section $%s opened at line %d has no matching $End%s",
		e.Marker, e.Line, e.Marker)
}

// InvalidConfigError indicates a FormatConfig field failed validation.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid format config: %s %s", e.Field, e.Reason)
}

// UnsupportedVersionError indicates the declared MSH format version has no
// registered section-marker table.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	if e.Version == "" {
		return "could not find $MeshFormat section to determine version"
	}
	return fmt.Sprintf("unsupported Gmsh format version: %s", e.Version)
}
