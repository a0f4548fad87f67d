package msh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempMsh(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.msh")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}

func TestFormatFileInPlace(t *testing.T) {
	path := writeTempMsh(t, sampleDoc22)

	cfg := DefaultConfig()
	cfg.AddComments = false
	if err := FormatFile(path, "", cfg); err != nil {
		t.Fatalf("FormatFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read result: %v", err)
	}
	if !strings.Contains(string(data), "0.5000000000000000") {
		t.Errorf("File not formatted:\n%s", data)
	}

	// Backup is discarded on confirmed success
	if _, err := os.Stat(path + BackupSuffix); !os.IsNotExist(err) {
		t.Error("Backup file left behind after successful format")
	}
}

func TestFormatFileToSeparateOutput(t *testing.T) {
	path := writeTempMsh(t, sampleDoc22)
	outPath := filepath.Join(filepath.Dir(path), "out.msh")

	cfg := DefaultConfig()
	cfg.AddComments = false
	if err := FormatFile(path, outPath, cfg); err != nil {
		t.Fatalf("FormatFile failed: %v", err)
	}

	orig, _ := os.ReadFile(path)
	if string(orig) != sampleDoc22 {
		t.Error("Input file modified when writing to a separate output")
	}
	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Output file not written: %v", err)
	}
	if !strings.Contains(string(out), "0.5000000000000000") {
		t.Errorf("Output not formatted:\n%s", out)
	}
}

// TestFormatFileFailureLeavesOriginal checks the in-place contract: on any
// failure the original file is the one left standing.
func TestFormatFileFailureLeavesOriginal(t *testing.T) {
	broken := `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
1
1 0 0 0`
	path := writeTempMsh(t, broken)

	err := FormatFile(path, "", DefaultConfig())
	if err == nil {
		t.Fatal("Expected error for unterminated section")
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("Failed to read original: %v", readErr)
	}
	if string(data) != broken {
		t.Error("Original file was modified despite format failure")
	}
	if _, statErr := os.Stat(path + BackupSuffix); !os.IsNotExist(statErr) {
		t.Error("Backup file left behind after failed format")
	}
}

// TestFormatFilePreservesMode checks that formatting carries the input
// file's permissions to the output, both in place and to a new path.
func TestFormatFilePreservesMode(t *testing.T) {
	path := writeTempMsh(t, sampleDoc22)
	if err := os.Chmod(path, 0600); err != nil {
		t.Fatalf("Failed to chmod input: %v", err)
	}

	cfg := DefaultConfig()
	cfg.AddComments = false

	outPath := filepath.Join(filepath.Dir(path), "copy.msh")
	if err := FormatFile(path, outPath, cfg); err != nil {
		t.Fatalf("FormatFile failed: %v", err)
	}
	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("Failed to stat output: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Output mode %o, want 0600", info.Mode().Perm())
	}

	if err := FormatFile(path, "", cfg); err != nil {
		t.Fatalf("FormatFile in place failed: %v", err)
	}
	info, err = os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat result: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("In-place mode %o, want 0600", info.Mode().Perm())
	}
}

func TestFormatFileMissingInput(t *testing.T) {
	err := FormatFile(filepath.Join(t.TempDir(), "nope.msh"), "", DefaultConfig())
	if err == nil {
		t.Fatal("Expected error for missing input file")
	}
}
