package check

import "fmt"

// Mode selects whether index, shape and storage operations validate their
// arguments.
type Mode uint8

// Supported modes.
const (
	// Strict validates every operation and panics or returns an error on violation.
	Strict Mode = iota
	// Fast skips validation. Violations are undefined behavior.
	Fast
)

// Checked reports whether validation runs in this mode.
func (m Mode) Checked() bool {
	return m == Strict
}

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Fast:
		return "fast"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode converts "strict" or "fast" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "strict", "":
		return Strict, nil
	case "fast":
		return Fast, nil
	default:
		return Strict, fmt.Errorf("unknown bounds-checking mode %q (want strict or fast)", s)
	}
}
