package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPrecondition marks failures detected before any filesystem side
	// effects, such as a missing or non-directory target path.
	ErrPrecondition = errors.New("precondition failed")
	// ErrScan marks an unreadable top-level directory. Unreadable entries
	// below the top level are skipped silently and never produce this.
	ErrScan = errors.New("scan error")
	// ErrMetadata marks missing size or timestamp information for a
	// candidate file. It aborts the whole planning pass: a partial plan
	// with missing metadata is never produced.
	ErrMetadata = errors.New("metadata error")
	// ErrConfiguration marks invalid configuration values.
	ErrConfiguration = errors.New("configuration error")
	// ErrTransient marks failures that are not attributable to user input.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker. The marker should be one of the exported
// sentinel errors above; a nil marker degrades to ErrTransient.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
