package target

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Version of SPIR-V targeted by a program.
type Version int

const (
	V1_0 Version = iota
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
)

// LastVersion is the most recent version known.
const LastVersion = V1_6

// String returns the version as "v1.3".
func (v Version) String() string {
	if v < V1_0 || v > LastVersion {
		return fmt.Sprintf("Version(%d)", int(v))
	}
	return fmt.Sprintf("v1.%d", int(v))
}

// IsAVersion returns whether v is a known version.
func (v Version) IsAVersion() bool {
	return v >= V1_0 && v <= LastVersion
}

// ParseVersion parses "v1.3" or "1.3".
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "v")
	var major, minor int
	if _, err := fmt.Sscanf(trimmed, "%d.%d", &major, &minor); err != nil || fmt.Sprintf("%d.%d", major, minor) != trimmed {
		return 0, errors.Errorf("invalid SPIR-V version %q, expected something like \"v1.3\"", s)
	}
	v := Version(minor)
	if major != 1 || !v.IsAVersion() {
		return 0, errors.Errorf("unknown SPIR-V version %q, known versions are %s to %s", s, V1_0, LastVersion)
	}
	return v, nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	var err error
	*v, err = ParseVersion(string(text))
	return err
}
