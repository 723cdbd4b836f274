package threshold

import (
	"fmt"
	"strings"

	"github.com/belielov/denoise-method/dsp/core"
)

// Mode selects the shrinkage rule.
type Mode int

const (
	// Hard keeps a coefficient unchanged when |c| >= T and zeroes it otherwise.
	Hard Mode = iota

	// Soft maps c to sign(c) * max(|c|-T, 0).
	Soft
)

// ParseMode converts "hard" or "soft" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hard":
		return Hard, nil
	case "soft":
		return Soft, nil
	default:
		return 0, fmt.Errorf("threshold: %w: unknown shrinkage mode %q (want hard or soft)", core.ErrConfiguration, s)
	}
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Hard:
		return "hard"
	case Soft:
		return "soft"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Validate reports an error for values other than Hard and Soft.
func (m Mode) Validate() error {
	if m != Hard && m != Soft {
		return fmt.Errorf("threshold: %w: unknown shrinkage mode %d", core.ErrConfiguration, int(m))
	}
	return nil
}
