// Package msh formats Gmsh MSH mesh-description files for readability:
// aligned numeric columns, configurable precision, optional explanatory
// comments. Data values are never altered, only their textual rendering.
package msh

import "strings"

// Format runs the whole pipeline on one document: read, segment, format
// each section, reassemble. Any stage failure aborts the operation with no
// partial output. Formatting is a pure function of (text, cfg), so
// independent documents can be formatted concurrently.
func Format(text string, cfg *FormatConfig) (string, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	doc, err := ReadDocument(text)
	if err != nil {
		return "", err
	}
	sections, err := Segment(doc)
	if err != nil {
		return "", err
	}
	return Reassemble(sections, cfg), nil
}

// Reassemble concatenates formatted sections in original order, inserting
// SectionSpacing blank lines between them. CompactMode forces the spacing
// to zero regardless of SectionSpacing.
func Reassemble(sections []Section, cfg *FormatConfig) string {
	spacing := cfg.SectionSpacing
	if cfg.CompactMode {
		spacing = 0
	}

	var lines []string
	for _, sec := range sections {
		if len(lines) > 0 {
			for s := 0; s < spacing; s++ {
				lines = append(lines, "")
			}
		}
		body := formatSection(sec, cfg)
		if sec.Kind == KindRaw {
			lines = append(lines, body...)
			continue
		}
		lines = append(lines, "$"+sec.Name)
		lines = append(lines, body...)
		lines = append(lines, "$End"+sec.Name)
	}

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
