package msh

import (
	"strings"
	"testing"
)

// testConfig returns a config with comments off and a narrow column width,
// convenient for exact-output assertions.
func testConfig() *FormatConfig {
	cfg := DefaultConfig()
	cfg.Precision = 3
	cfg.ColumnWidth = 8
	cfg.AddComments = false
	return cfg
}

// TestFormatSinglePointDocument checks the minimal one-point scenario: a
// header declaring one node, coordinate line "1 0 0 0".
func TestFormatSinglePointDocument(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
1
1 0 0 0
$EndNodes
`
	out, err := Format(content, testConfig())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	lines := strings.Split(out, "\n")
	var coordLine string
	for _, line := range lines {
		if strings.Contains(line, "0.000") {
			coordLine = line
			break
		}
	}
	if coordLine == "" {
		t.Fatal("Formatted output has no coordinate line")
	}

	expected := "       1    0.000    0.000    0.000"
	if coordLine != expected {
		t.Errorf("Expected coordinate line %q, got %q", expected, coordLine)
	}

	// Every coordinate renders with exactly three decimal digits
	fields := strings.Fields(coordLine)
	if len(fields) != 4 {
		t.Fatalf("Expected 4 fields, got %d", len(fields))
	}
	for _, f := range fields[1:] {
		dot := strings.Index(f, ".")
		if dot < 0 || len(f)-dot-1 != 3 {
			t.Errorf("Coordinate %q does not have exactly 3 decimal digits", f)
		}
	}

	if strings.Contains(out, "#") {
		t.Error("Comment lines present with AddComments disabled")
	}
}

// TestFormatSinglePointWithComments checks that NodeCommentFreq=1 places one
// comment line immediately before the record.
func TestFormatSinglePointWithComments(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
1
1 0 0 0
$EndNodes
`
	cfg := testConfig()
	cfg.AddComments = true
	cfg.NodeCommentFreq = 1

	out, err := Format(content, cfg)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	lines := strings.Split(out, "\n")
	commentCount := 0
	for i, line := range lines {
		if strings.TrimSpace(line) != "# node 1" {
			continue
		}
		commentCount++
		if i+1 >= len(lines) || !strings.Contains(lines[i+1], "0.000") {
			t.Errorf("Node comment not immediately preceding the record; next line %q", lines[i+1])
		}
	}
	if commentCount != 1 {
		t.Errorf("Expected exactly 1 node comment, got %d", commentCount)
	}
}

func TestScientificNotationThreshold(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
1
1 0.5 5e-07 0
$EndNodes
`
	cfg := testConfig()
	cfg.Precision = 4
	cfg.ColumnWidth = 12

	out, err := Format(content, cfg)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if !strings.Contains(out, "5.0000e-07") {
		t.Errorf("Magnitude below threshold not in scientific notation:\n%s", out)
	}
	if !strings.Contains(out, "0.5000") {
		t.Errorf("Magnitude above threshold not in fixed notation:\n%s", out)
	}
	// Zero stays fixed-point regardless of threshold
	if !strings.Contains(out, "0.0000") {
		t.Errorf("Zero not rendered fixed-point:\n%s", out)
	}
}

// TestFormatNodes4Blocks tests the v4 entity-block walk: block headers, tag
// lines, then coordinate lines.
func TestFormatNodes4Blocks(t *testing.T) {
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Nodes
1 2 1 2
0 1 0 2
1
2
0 0 0
1 0.25 0
$EndNodes
`
	cfg := testConfig()
	cfg.Precision = 2
	cfg.ColumnWidth = 10

	out, err := Format(content, cfg)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var tagLines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "1" && len(line) == 10 {
			tagLines = append(tagLines, line)
		}
	}

	if !strings.Contains(out, "      0.00       0.00       0.00") {
		t.Errorf("First coordinate line not aligned to width 10:\n%s", out)
	}
	if !strings.Contains(out, "      1.00       0.25       0.00") {
		t.Errorf("Second coordinate line not aligned to width 10:\n%s", out)
	}
	if len(tagLines) != 1 {
		t.Errorf("Expected node tag line padded to width 10, got %q", tagLines)
	}
}

func TestFormatElements4Comments(t *testing.T) {
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Elements
1 2 1 2
2 1 2 2
1 1 2 3
2 2 3 4
$EndElements
`
	cfg := testConfig()
	cfg.AddComments = true
	cfg.ElementCommentFreq = 2
	cfg.ColumnWidth = 6

	out, err := Format(content, cfg)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if !strings.Contains(out, "# Elements: 1 entity blocks, 2 total elements") {
		t.Errorf("Missing section summary comment:\n%s", out)
	}
	if !strings.Contains(out, "# Entity 1: 2 elements of type 2") {
		t.Errorf("Missing entity block comment:\n%s", out)
	}

	lines := strings.Split(out, "\n")
	found := false
	for i, line := range lines {
		if strings.TrimSpace(line) == "# element 2" {
			found = true
			if !strings.Contains(lines[i+1], "2") {
				t.Errorf("Element comment not preceding its record")
			}
		}
		if strings.TrimSpace(line) == "# element 1" {
			t.Error("Comment emitted for element 1 with frequency 2")
		}
	}
	if !found {
		t.Errorf("Expected comment before element 2:\n%s", out)
	}
}

func TestFormatElements2Connectivity(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$Elements
2
1 2 2 0 1 1 2 3
2 2 2 0 1 2 3 4
$EndElements
`
	cfg := testConfig()
	cfg.ColumnWidth = 6

	out, err := Format(content, cfg)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	// Element tag aligned to ColumnWidth, type and tag-count narrow,
	// connectivity aligned to ColumnWidth
	if !strings.Contains(out, "     1     2   2      0      1      1      2      3") {
		t.Errorf("v2.2 element record not aligned as expected:\n%s", out)
	}
}

func TestFormatPhysicalNames(t *testing.T) {
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat
$PhysicalNames
2
2 20 "Wall"
3 30 "Fluid Volume"
$EndPhysicalNames
`
	cfg := testConfig()
	cfg.ColumnWidth = 6

	out, err := Format(content, cfg)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if !strings.Contains(out, `  2     20 "Wall"`) {
		t.Errorf("PhysicalNames record not aligned:\n%s", out)
	}
	// Names with spaces survive intact
	if !strings.Contains(out, `"Fluid Volume"`) {
		t.Errorf("Quoted name with spaces mangled:\n%s", out)
	}
}

func TestFormatEntitiesBoundingBox(t *testing.T) {
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Entities
0 1 0 0
1 0 0 0 1 0 0 1 10 2 1 -2
$EndEntities
`
	cfg := testConfig()
	cfg.Precision = 1
	cfg.ColumnWidth = 5

	out, err := Format(content, cfg)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	// Counts line untouched, bbox floats re-rendered, trailing tags intact
	if !strings.Contains(out, "0 1 0 0") {
		t.Errorf("Entity counts line changed:\n%s", out)
	}
	if !strings.Contains(out, "    1   0.0   0.0   0.0   1.0   0.0   0.0 1 10 2 1 -2") {
		t.Errorf("Entity record not formatted as expected:\n%s", out)
	}
}

func TestUnknownSectionComment(t *testing.T) {
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Periodic
0
$EndPeriodic
`
	cfg := testConfig()
	cfg.AddComments = true

	out, err := Format(content, cfg)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if strings.Count(out, "# Section: Periodic") != 1 {
		t.Errorf("Expected exactly one section label comment:\n%s", out)
	}

	// A second pass must not duplicate the label
	out2, err := Format(out, cfg)
	if err != nil {
		t.Fatalf("Second Format failed: %v", err)
	}
	if strings.Count(out2, "# Section: Periodic") != 1 {
		t.Errorf("Section label duplicated on reformat:\n%s", out2)
	}
}

func TestMeshFormatSectionUntouched(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
`
	cfg := testConfig()
	cfg.AddComments = true

	out, err := Format(content, cfg)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(out, "\n2.2 0 8\n") {
		t.Errorf("MeshFormat data line altered:\n%s", out)
	}
	if !strings.Contains(out, "# MSH File Format Version") {
		t.Errorf("Missing MeshFormat comment:\n%s", out)
	}
}
