package types

import "fmt"

// Mode selects which set of packages a run operates on
type Mode string

const (
	// ModeBase links the portable packages living at the repository root
	ModeBase Mode = "base"

	// ModeHost links the override packages under hosts/<hostname>
	ModeHost Mode = "host"
)

// ParseMode converts a command-line word into a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBase, ModeHost:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, ModeBase, ModeHost)
}

func (m Mode) String() string { return string(m) }
