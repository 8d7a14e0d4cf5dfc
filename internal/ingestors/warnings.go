package ingestors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Warning describes one recoverable ingestion failure: an unusable source or
// a single line that failed to decode. Warnings never abort ingestion.
type Warning struct {
	Source string
	Line   int // 1-based; 0 for whole-source warnings
	Cause  error
}

// String renders the warning in the form the CLI prints to stdout.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("Warning: Invalid JSON in %s at line %d: %v", w.Source, w.Line, w.Cause)
	}
	if errors.Is(w.Cause, fs.ErrNotExist) {
		return fmt.Sprintf("Warning: File %s does not exist, skipping...", w.Source)
	}
	return fmt.Sprintf("Warning: Error reading file %s: %v", w.Source, w.Cause)
}

// WarningSink receives warnings as they are discovered. Implementations
// decide whether to print, log or collect them.
type WarningSink interface {
	Warn(w Warning)
}

// WarningFunc adapts a function to the WarningSink interface.
type WarningFunc func(Warning)

func (f WarningFunc) Warn(w Warning) {
	f(w)
}
