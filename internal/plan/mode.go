package plan

import (
	"fmt"
	"strings"
)

// Mode selects the destination-folder policy for a run.
type Mode string

const (
	// ModeExtension groups files by extension-derived category.
	ModeExtension Mode = "extension"
	// ModeSize groups files by size bucket.
	ModeSize Mode = "size"
	// ModeDate groups files by creation month, falling back to the
	// modification month on filesystems without creation times.
	ModeDate Mode = "date"
	// ModeModified groups files by modification month.
	ModeModified Mode = "modified"
	// ModeCustom is reserved for a future rule engine; it routes everything
	// to a single placeholder folder.
	ModeCustom Mode = "custom"
)

// Modes lists all supported modes in display order.
func Modes() []Mode {
	return []Mode{ModeExtension, ModeSize, ModeDate, ModeModified, ModeCustom}
}

// ParseMode resolves a mode name case-insensitively.
func ParseMode(value string) (Mode, error) {
	candidate := Mode(strings.ToLower(strings.TrimSpace(value)))
	for _, mode := range Modes() {
		if mode == candidate {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown organization mode %q (valid: %s)", value, modeList())
}

func modeList() string {
	names := make([]string, 0, len(Modes()))
	for _, mode := range Modes() {
		names = append(names, string(mode))
	}
	return strings.Join(names, ", ")
}

func (m Mode) String() string { return string(m) }
