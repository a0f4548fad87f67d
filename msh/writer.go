package msh

import "fmt"

// WriteFunc is the shape of a mesh library's native save routine: it writes
// a mesh to filename using state it already holds.
type WriteFunc func(filename string) error

// FormattingWriter wraps a native writer and reformats the file it produced
// in place. It is selected explicitly by the caller instead of mutating any
// shared function table.
type FormattingWriter struct {
	next WriteFunc
	cfg  *FormatConfig
}

// NewFormattingWriter validates the config up front; an invalid config is
// rejected before any mesh is written.
func NewFormattingWriter(next WriteFunc, cfg *FormatConfig) (*FormattingWriter, error) {
	if next == nil {
		return nil, fmt.Errorf("formatting writer: nil write function")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &FormattingWriter{next: next, cfg: cfg}, nil
}

// Write invokes the native writer, then formats the written file in place.
// A formatting failure leaves the unformatted file intact via the backup
// policy in FormatFile.
func (w *FormattingWriter) Write(filename string) error {
	if err := w.next(filename); err != nil {
		return err
	}
	if err := FormatFile(filename, "", w.cfg); err != nil {
		return fmt.Errorf("mesh written but formatting failed: %w", err)
	}
	return nil
}

// Hook is the caller-owned handle for an intercepted write slot. Holding
// the Hook is the only way to get the original writer back; there is no
// process-wide patch state.
type Hook struct {
	slot     *WriteFunc
	saved    WriteFunc
	restored bool
}

// Intercept replaces the write function stored in slot with a
// formatting-enabled writer and returns the handle that undoes it.
func Intercept(slot *WriteFunc, cfg *FormatConfig) (*Hook, error) {
	if slot == nil || *slot == nil {
		return nil, fmt.Errorf("intercept: nil write slot")
	}
	fw, err := NewFormattingWriter(*slot, cfg)
	if err != nil {
		return nil, err
	}
	h := &Hook{slot: slot, saved: *slot}
	*slot = fw.Write
	return h, nil
}

// Restore puts the original writer back in the slot. Calling it more than
// once is a no-op.
func (h *Hook) Restore() {
	if h.restored {
		return
	}
	*h.slot = h.saved
	h.restored = true
}

// InterceptScoped intercepts slot only for the duration of fn. The original
// writer is restored on every exit path, including a panic inside fn.
func InterceptScoped(slot *WriteFunc, cfg *FormatConfig, fn func() error) error {
	h, err := Intercept(slot, cfg)
	if err != nil {
		return err
	}
	defer h.Restore()
	return fn()
}

// WithFormatting runs fn with a formatting-enabled writer derived from w.
// The native writer itself is never touched, so there is nothing to restore
// when fn returns.
func WithFormatting(w WriteFunc, cfg *FormatConfig, fn func(WriteFunc) error) error {
	fw, err := NewFormattingWriter(w, cfg)
	if err != nil {
		return err
	}
	return fn(fw.Write)
}
