package msh

import "strings"

// SectionKind identifies the block type of a Section.
type SectionKind int

const (
	KindRaw SectionKind = iota // content outside any marker pair, verbatim
	KindMeshFormat
	KindPhysicalNames
	KindEntities
	KindNodes
	KindElements
	KindUnknown // bracketed section with no table entry for this version
)

func (k SectionKind) String() string {
	switch k {
	case KindRaw:
		return "Raw"
	case KindMeshFormat:
		return "MeshFormat"
	case KindPhysicalNames:
		return "PhysicalNames"
	case KindEntities:
		return "Entities"
	case KindNodes:
		return "Nodes"
	case KindElements:
		return "Elements"
	default:
		return "Unknown"
	}
}

// Section is a contiguous block of document lines. For marker-delimited
// sections Lines holds the interior only; the $Name / $EndName markers are
// re-emitted by the reassembler.
type Section struct {
	Kind      SectionKind
	Name      string // marker name, empty for raw content
	Version   string // declared format version, carried to the formatters
	Lines     []string
	StartLine int // 1-based line number of the opening marker, 0 for raw
}

// markerTables maps a version family to its table of recognized markers.
// Adding support for a new MSH revision means adding a table entry here;
// the same marker can imply a different record layout per version, which
// the formatters resolve through Section.Version.
var markerTables = map[string]map[string]SectionKind{
	"2": {
		"MeshFormat":    KindMeshFormat,
		"PhysicalNames": KindPhysicalNames,
		"Nodes":         KindNodes,
		"Elements":      KindElements,
	},
	"4": {
		"MeshFormat":    KindMeshFormat,
		"PhysicalNames": KindPhysicalNames,
		"Entities":      KindEntities,
		"Nodes":         KindNodes,
		"Elements":      KindElements,
	},
}

// versionFamily reduces a declared version like "4.1" to its table key.
func versionFamily(version string) string {
	if i := strings.Index(version, "."); i >= 0 {
		return version[:i]
	}
	return version
}

// Segment partitions the document into an ordered list of sections covering
// every line. Marker pairs not in the version table become KindUnknown and
// pass through; loose text between sections becomes KindRaw. Blank-only runs
// between sections are dropped, since inter-section padding is owned by the
// reassembler.
func Segment(doc *Document) ([]Section, error) {
	table, ok := markerTables[versionFamily(doc.Version)]
	if !ok {
		return nil, &UnsupportedVersionError{Version: doc.Version}
	}

	var (
		sections []Section
		raw      []string
	)
	flushRaw := func() {
		trimmed := trimBlankLines(raw)
		if len(trimmed) > 0 {
			sections = append(sections, Section{
				Kind:    KindRaw,
				Version: doc.Version,
				Lines:   trimmed,
			})
		}
		raw = nil
	}

	i := 0
	for i < len(doc.Lines) {
		line := strings.TrimSpace(doc.Lines[i])
		if !strings.HasPrefix(line, "$") || strings.HasPrefix(line, "$End") {
			raw = append(raw, doc.Lines[i])
			i++
			continue
		}

		name := line[1:]
		endMarker := "$End" + name
		end := -1
		for j := i + 1; j < len(doc.Lines); j++ {
			if strings.TrimSpace(doc.Lines[j]) == endMarker {
				end = j
				break
			}
		}
		if end < 0 {
			return nil, &UnterminatedSectionError{Marker: name, Line: i + 1}
		}

		flushRaw()
		kind, found := table[name]
		if !found {
			kind = KindUnknown
		}
		sections = append(sections, Section{
			Kind:      kind,
			Name:      name,
			Version:   doc.Version,
			Lines:     doc.Lines[i+1 : end],
			StartLine: i + 1,
		})
		i = end + 1
	}
	flushRaw()

	return sections, nil
}

func trimBlankLines(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
