package msh

import (
	"math"
	"strconv"
	"strings"
)

// Sub-field widths inside block headers. These are layout metadata, not
// data columns, so they keep fixed narrow widths independent of ColumnWidth.
const (
	dimWidth        = 3
	elemTypeWidth   = 5
	parametricWidth = 3
)

// numberFormatter renders numeric tokens under one FormatConfig. The width
// is fixed from the config before any line is emitted, so every row in a
// section aligns without a measuring pass.
type numberFormatter struct {
	cfg *FormatConfig
}

// float renders v at the configured precision. Non-zero magnitudes below
// ScientificThreshold use e-notation with the same digit count.
func (nf numberFormatter) float(v float64) string {
	var s string
	if av := math.Abs(v); av != 0 && av < nf.cfg.ScientificThreshold {
		s = strconv.FormatFloat(v, 'e', nf.cfg.Precision, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', nf.cfg.Precision, 64)
	}
	if nf.cfg.AlignColumns {
		s = rightAlign(s, nf.cfg.ColumnWidth)
	}
	return s
}

// integer renders identifiers and connectivity values. Integers are never
// precision-converted; they align to ColumnWidth when alignment is on.
func (nf numberFormatter) integer(v int) string {
	s := strconv.Itoa(v)
	if nf.cfg.AlignColumns {
		s = rightAlign(s, nf.cfg.ColumnWidth)
	}
	return s
}

// narrowInt renders block-header sub-fields at a fixed narrow width.
func (nf numberFormatter) narrowInt(v, width int) string {
	s := strconv.Itoa(v)
	if nf.cfg.AlignColumns {
		s = rightAlign(s, width)
	}
	return s
}

// floats parses and re-renders a slice of textual float tokens, joined by
// single spaces. Unparseable tokens are passed through untouched.
func (nf numberFormatter) floats(tokens []string) string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			out[i] = tok
			continue
		}
		out[i] = nf.float(v)
	}
	return strings.Join(out, " ")
}

func rightAlign(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
