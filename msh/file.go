package msh

import (
	"fmt"
	"os"
)

// BackupSuffix is appended to the input path while an in-place format is in
// flight. The backup is removed on confirmed success.
const BackupSuffix = ".backup"

// FormatFile formats the MSH file at path and writes the result to outPath.
// An empty outPath, or outPath equal to path, formats in place: the
// original is copied aside first and is the file left standing if anything
// fails afterwards.
func FormatFile(path, outPath string, cfg *FormatConfig) error {
	if outPath == "" {
		outPath = path
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	mode := info.Mode().Perm()

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := Format(string(data), cfg)
	if err != nil {
		return err
	}

	if outPath != path {
		return os.WriteFile(outPath, []byte(formatted), mode)
	}

	backup := path + BackupSuffix
	if err := os.WriteFile(backup, data, mode); err != nil {
		return fmt.Errorf("creating backup: %w", err)
	}
	if err := os.WriteFile(path, []byte(formatted), mode); err != nil {
		if restoreErr := os.WriteFile(path, data, mode); restoreErr != nil {
			return fmt.Errorf("writing formatted file: %v; original preserved at %s", err, backup)
		}
		os.Remove(backup)
		return fmt.Errorf("writing formatted file: %w", err)
	}
	os.Remove(backup)
	return nil
}
