package msh

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// FormatConfig holds the formatting options. Construct with DefaultConfig
// and validate before use; Format rejects an invalid config before reading
// any document.
type FormatConfig struct {
	Precision           int     `yaml:"Precision"`           // decimal digits for floats
	AlignColumns        bool    `yaml:"AlignColumns"`        // pad numeric tokens to ColumnWidth
	AddComments         bool    `yaml:"AddComments"`         // insert explanatory comment lines
	CompactMode         bool    `yaml:"CompactMode"`         // suppress blank-line padding
	ScientificThreshold float64 `yaml:"ScientificThreshold"` // magnitudes below this use e-notation
	ColumnWidth         int     `yaml:"ColumnWidth"`         // field width when AlignColumns
	SectionSpacing      int     `yaml:"SectionSpacing"`      // blank lines between sections
	NodeCommentFreq     int     `yaml:"NodeCommentFreq"`     // comment every N nodes, 0 = off
	ElementCommentFreq  int     `yaml:"ElementCommentFreq"`  // comment every N elements, 0 = off
}

// DefaultConfig returns the conservative defaults: high precision, aligned
// columns, comments on, non-compact.
func DefaultConfig() *FormatConfig {
	return &FormatConfig{
		Precision:           16,
		AlignColumns:        true,
		AddComments:         true,
		CompactMode:         false,
		ScientificThreshold: 1e-6,
		ColumnWidth:         20,
		SectionSpacing:      1,
		NodeCommentFreq:     0,
		ElementCommentFreq:  0,
	}
}

// Validate checks every field once, before any document is touched.
func (fc *FormatConfig) Validate() error {
	if fc.Precision < 0 {
		return &InvalidConfigError{"Precision", fmt.Sprintf("must be non-negative, got %d", fc.Precision)}
	}
	if fc.ColumnWidth <= 0 {
		return &InvalidConfigError{"ColumnWidth", fmt.Sprintf("must be positive, got %d", fc.ColumnWidth)}
	}
	if fc.ScientificThreshold <= 0 {
		return &InvalidConfigError{"ScientificThreshold", fmt.Sprintf("must be positive, got %g", fc.ScientificThreshold)}
	}
	if fc.SectionSpacing < 0 {
		return &InvalidConfigError{"SectionSpacing", fmt.Sprintf("must be non-negative, got %d", fc.SectionSpacing)}
	}
	if fc.NodeCommentFreq < 0 {
		return &InvalidConfigError{"NodeCommentFreq", fmt.Sprintf("must be non-negative, got %d", fc.NodeCommentFreq)}
	}
	if fc.ElementCommentFreq < 0 {
		return &InvalidConfigError{"ElementCommentFreq", fmt.Sprintf("must be non-negative, got %d", fc.ElementCommentFreq)}
	}
	return nil
}

// Parse overlays YAML data onto the receiver, then validates.
func (fc *FormatConfig) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, fc); err != nil {
		return err
	}
	return fc.Validate()
}

// Print dumps the effective option values.
func (fc *FormatConfig) Print() {
	vals := map[string]string{
		"Precision":           fmt.Sprintf("%d", fc.Precision),
		"AlignColumns":        fmt.Sprintf("%v", fc.AlignColumns),
		"AddComments":         fmt.Sprintf("%v", fc.AddComments),
		"CompactMode":         fmt.Sprintf("%v", fc.CompactMode),
		"ScientificThreshold": fmt.Sprintf("%g", fc.ScientificThreshold),
		"ColumnWidth":         fmt.Sprintf("%d", fc.ColumnWidth),
		"SectionSpacing":      fmt.Sprintf("%d", fc.SectionSpacing),
		"NodeCommentFreq":     fmt.Sprintf("%d", fc.NodeCommentFreq),
		"ElementCommentFreq":  fmt.Sprintf("%d", fc.ElementCommentFreq),
	}
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-20s = %s\n", k, vals[k])
	}
}
