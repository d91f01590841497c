package demo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for an unrecognised demo name.
var ErrUnknownKind = errors.New("demo: unknown demonstration")

// Kind selects one of the two demonstrations.
type Kind int

const (
	Ring Kind = iota
	Interferometer
)

func (k Kind) String() string {
	switch k {
	case Ring:
		return "ring"
	case Interferometer:
		return "interferometer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the canonical names and a few short aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ring", "particles", "polarization":
		return Ring, nil
	case "interferometer", "ifo", "arms", "ligo":
		return Interferometer, nil
	}
	return 0, fmt.Errorf("%w: %q (want ring or interferometer)", ErrUnknownKind, s)
}

// Kinds lists every demonstration in display order.
func Kinds() []Kind { return []Kind{Ring, Interferometer} }
