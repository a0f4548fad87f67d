package msh

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// formatSection rewrites one section's interior. Every formatter is a pure
// function of (section content, config): same inputs, same output lines.
func formatSection(sec Section, cfg *FormatConfig) []string {
	switch sec.Kind {
	case KindMeshFormat:
		return formatMeshFormat(sec, cfg)
	case KindPhysicalNames:
		return formatPhysicalNames(sec, cfg)
	case KindEntities:
		return formatEntities(sec, cfg)
	case KindNodes:
		return formatNodes(sec, cfg)
	case KindElements:
		return formatElements(sec, cfg)
	case KindRaw:
		return sec.Lines
	default:
		return formatUnknown(sec, cfg)
	}
}

// stripComments removes comment lines inserted by a previous formatting
// pass. '#' is not valid content inside the recognized MSH sections, so any
// such line is ours; dropping them first keeps repeated formatting with
// AddComments stable instead of doubling comments.
func stripComments(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func formatMeshFormat(sec Section, cfg *FormatConfig) []string {
	lines := stripComments(sec.Lines)
	var out []string
	if cfg.AddComments {
		out = append(out, "# MSH File Format Version")
	}
	return append(out, lines...)
}

func formatPhysicalNames(sec Section, cfg *FormatConfig) []string {
	nf := numberFormatter{cfg}
	lines := stripComments(sec.Lines)
	var out []string
	if cfg.AddComments {
		out = append(out, "# Physical Groups")
	}
	if len(lines) == 0 {
		return out
	}

	// First line is the group count, kept untouched
	out = append(out, lines[0])

	// Records are: dim physicalTag "name"
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			out = append(out, line)
			continue
		}
		dim, err1 := strconv.Atoi(fields[0])
		tag, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			out = append(out, line)
			continue
		}
		name := strings.Join(fields[2:], " ")
		out = append(out, nf.narrowInt(dim, dimWidth)+" "+nf.integer(tag)+" "+name)
	}
	return out
}

func formatEntities(sec Section, cfg *FormatConfig) []string {
	nf := numberFormatter{cfg}
	lines := stripComments(sec.Lines)
	var out []string
	if cfg.AddComments {
		out = append(out, "# Geometric Entities")
	}
	if len(lines) == 0 {
		return out
	}

	// First line is the numPoints numCurves numSurfaces numVolumes counts
	out = append(out, lines[0])

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		// Curve/surface/volume records carry a 6-value bounding box after
		// the tag; shorter records (point entities) pass through
		if len(fields) < 7 {
			out = append(out, line)
			continue
		}
		tag, err := strconv.Atoi(fields[0])
		if err != nil {
			out = append(out, line)
			continue
		}
		bbox := nf.floats(fields[1:7])
		rest := strings.Join(fields[7:], " ")
		formatted := nf.integer(tag) + " " + bbox
		if rest != "" {
			formatted += " " + rest
		}
		out = append(out, formatted)
	}
	return out
}

func formatNodes(sec Section, cfg *FormatConfig) []string {
	if versionFamily(sec.Version) == "2" {
		return formatNodes2(sec, cfg)
	}
	return formatNodes4(sec, cfg)
}

// formatNodes4 rewrites a v4 Nodes section: entity block headers, node tag
// lines, then coordinate lines, per block.
func formatNodes4(sec Section, cfg *FormatConfig) []string {
	nf := numberFormatter{cfg}
	lines := stripComments(sec.Lines)
	if len(lines) == 0 {
		return nil
	}

	var (
		body       []string
		xs, ys, zs []float64
		nodeCount  int
	)

	// Header: numEntityBlocks numNodes minNodeTag maxNodeTag
	header := strings.Fields(lines[0])
	body = append(body, lines[0])

	i := 1
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			i++
			continue
		}

		fields := strings.Fields(line)
		// Entity block header: entityDim entityTag parametric numNodes
		if len(fields) != 4 {
			body = append(body, line)
			i++
			continue
		}
		dim, _ := strconv.Atoi(fields[0])
		tag, _ := strconv.Atoi(fields[1])
		parametric, _ := strconv.Atoi(fields[2])
		numNodes, _ := strconv.Atoi(fields[3])

		if cfg.AddComments {
			body = append(body, fmt.Sprintf("# Entity %s: %d nodes", fields[1], numNodes))
		}
		body = append(body, nf.narrowInt(dim, dimWidth)+" "+nf.integer(tag)+" "+
			nf.narrowInt(parametric, parametricWidth)+" "+nf.integer(numNodes))
		i++

		// numNodes node tag lines
		for j := 0; j < numNodes && i < len(lines); j++ {
			nodeTag, err := strconv.Atoi(strings.TrimSpace(lines[i]))
			if err != nil {
				body = append(body, strings.TrimSpace(lines[i]))
			} else {
				body = append(body, nf.integer(nodeTag))
			}
			i++
		}

		// numNodes coordinate lines
		for j := 0; j < numNodes && i < len(lines); j++ {
			tokens := strings.Fields(lines[i])
			if len(tokens) >= 3 {
				x, errX := strconv.ParseFloat(tokens[0], 64)
				y, errY := strconv.ParseFloat(tokens[1], 64)
				z, errZ := strconv.ParseFloat(tokens[2], 64)
				if errX == nil && errY == nil && errZ == nil {
					xs, ys, zs = append(xs, x), append(ys, y), append(zs, z)
				}
			}
			nodeCount++
			if cfg.AddComments && cfg.NodeCommentFreq > 0 && nodeCount%cfg.NodeCommentFreq == 0 {
				body = append(body, fmt.Sprintf("# node %d", nodeCount))
			}
			body = append(body, nf.floats(tokens))
			i++
		}
	}

	return append(nodeSectionComments(cfg, header, xs, ys, zs), body...)
}

// formatNodes2 rewrites a v2.2 Nodes section of "tag x y z" records.
func formatNodes2(sec Section, cfg *FormatConfig) []string {
	nf := numberFormatter{cfg}
	lines := stripComments(sec.Lines)
	if len(lines) == 0 {
		return nil
	}

	var (
		body       []string
		xs, ys, zs []float64
		nodeCount  int
	)
	body = append(body, lines[0])

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			body = append(body, line)
			continue
		}
		tag, err := strconv.Atoi(fields[0])
		if err != nil {
			body = append(body, line)
			continue
		}
		x, errX := strconv.ParseFloat(fields[1], 64)
		y, errY := strconv.ParseFloat(fields[2], 64)
		z, errZ := strconv.ParseFloat(fields[3], 64)
		if errX == nil && errY == nil && errZ == nil {
			xs, ys, zs = append(xs, x), append(ys, y), append(zs, z)
		}
		nodeCount++
		if cfg.AddComments && cfg.NodeCommentFreq > 0 && nodeCount%cfg.NodeCommentFreq == 0 {
			body = append(body, fmt.Sprintf("# node %d", nodeCount))
		}
		body = append(body, nf.integer(tag)+" "+nf.floats(fields[1:]))
	}

	return append(nodeSectionComments(cfg, strings.Fields(lines[0]), xs, ys, zs), body...)
}

// nodeSectionComments builds the leading comment lines for a Nodes section,
// including the coordinate extent summary.
func nodeSectionComments(cfg *FormatConfig, header []string, xs, ys, zs []float64) []string {
	if !cfg.AddComments {
		return nil
	}
	var out []string
	switch {
	case len(header) >= 4:
		out = append(out, fmt.Sprintf("# Nodes: %s entity blocks, %s total nodes", header[0], header[1]))
	case len(header) >= 1:
		out = append(out, fmt.Sprintf("# Nodes: %s total", header[0]))
	default:
		out = append(out, "# Node Definitions")
	}
	if len(xs) > 0 {
		out = append(out, fmt.Sprintf("# Extent: x [%g, %g] y [%g, %g] z [%g, %g]",
			floats.Min(xs), floats.Max(xs),
			floats.Min(ys), floats.Max(ys),
			floats.Min(zs), floats.Max(zs)))
	}
	return out
}

func formatElements(sec Section, cfg *FormatConfig) []string {
	if versionFamily(sec.Version) == "2" {
		return formatElements2(sec, cfg)
	}
	return formatElements4(sec, cfg)
}

// formatElements4 rewrites a v4 Elements section: entity block headers
// followed by "elementTag node1 ... nodeN" connectivity records.
func formatElements4(sec Section, cfg *FormatConfig) []string {
	nf := numberFormatter{cfg}
	lines := stripComments(sec.Lines)
	if len(lines) == 0 {
		return nil
	}

	var (
		out       []string
		elemCount int
	)

	// Header: numEntityBlocks numElements minElementTag maxElementTag
	header := strings.Fields(lines[0])
	if cfg.AddComments {
		if len(header) >= 4 {
			out = append(out, fmt.Sprintf("# Elements: %s entity blocks, %s total elements", header[0], header[1]))
		} else {
			out = append(out, "# Element Definitions")
		}
	}
	out = append(out, lines[0])

	i := 1
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			i++
			continue
		}

		fields := strings.Fields(line)
		// Entity block header: entityDim entityTag elementType numElements
		if len(fields) != 4 {
			out = append(out, line)
			i++
			continue
		}
		dim, _ := strconv.Atoi(fields[0])
		tag, _ := strconv.Atoi(fields[1])
		elemType, _ := strconv.Atoi(fields[2])
		numElems, _ := strconv.Atoi(fields[3])

		if cfg.AddComments {
			out = append(out, fmt.Sprintf("# Entity %s: %d elements of type %s", fields[1], numElems, fields[2]))
		}
		out = append(out, nf.narrowInt(dim, dimWidth)+" "+nf.integer(tag)+" "+
			nf.narrowInt(elemType, elemTypeWidth)+" "+nf.integer(numElems))
		i++

		for j := 0; j < numElems && i < len(lines); j++ {
			elemCount++
			if cfg.AddComments && cfg.ElementCommentFreq > 0 && elemCount%cfg.ElementCommentFreq == 0 {
				out = append(out, fmt.Sprintf("# element %d", elemCount))
			}
			out = append(out, formatIntRecord(nf, lines[i]))
			i++
		}
	}

	return out
}

// formatElements2 rewrites a v2.2 Elements section of
// "tag etype numTags tags... nodes..." records.
func formatElements2(sec Section, cfg *FormatConfig) []string {
	nf := numberFormatter{cfg}
	lines := stripComments(sec.Lines)
	if len(lines) == 0 {
		return nil
	}

	var out []string
	if cfg.AddComments {
		count := strings.Fields(lines[0])
		if len(count) >= 1 {
			out = append(out, fmt.Sprintf("# Elements: %s total", count[0]))
		} else {
			out = append(out, "# Element Definitions")
		}
	}
	out = append(out, lines[0])

	elemCount := 0
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			out = append(out, line)
			continue
		}
		tag, err1 := strconv.Atoi(fields[0])
		elemType, err2 := strconv.Atoi(fields[1])
		numTags, err3 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || err3 != nil {
			out = append(out, line)
			continue
		}
		elemCount++
		if cfg.AddComments && cfg.ElementCommentFreq > 0 && elemCount%cfg.ElementCommentFreq == 0 {
			out = append(out, fmt.Sprintf("# element %d", elemCount))
		}
		rec := nf.integer(tag) + " " + nf.narrowInt(elemType, elemTypeWidth) + " " +
			nf.narrowInt(numTags, dimWidth)
		for _, tok := range fields[3:] {
			v, err := strconv.Atoi(tok)
			if err != nil {
				rec += " " + tok
				continue
			}
			rec += " " + nf.integer(v)
		}
		out = append(out, rec)
	}

	return out
}

// formatIntRecord re-renders a whitespace-delimited line of integers, such
// as an element connectivity record. Non-integer tokens pass through.
func formatIntRecord(nf numberFormatter, line string) string {
	fields := strings.Fields(line)
	parts := make([]string, len(fields))
	for i, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil {
			parts[i] = tok
			continue
		}
		parts[i] = nf.integer(v)
	}
	return strings.Join(parts, " ")
}

// formatUnknown passes an unrecognized bracketed section through, with an
// optional labeling comment.
func formatUnknown(sec Section, cfg *FormatConfig) []string {
	label := "# Section: " + sec.Name
	lines := make([]string, 0, len(sec.Lines))
	for _, line := range sec.Lines {
		if strings.TrimSpace(line) == label {
			continue
		}
		lines = append(lines, line)
	}
	if cfg.AddComments {
		return append([]string{label}, lines...)
	}
	return lines
}
