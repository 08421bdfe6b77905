package target

import (
	"fmt"

	"github.com/pkg/errors"
)

// Extension is a SPIR-V extension a target may enable.
type Extension int

const (
	ExtensionKHRShaderBallot Extension = iota
	ExtensionKHRSubgroupVote
	ExtensionNVShaderSubgroupPartitioned
	ExtensionKHRUniformGroupInstructions
)

var extensionNames = []string{
	ExtensionKHRShaderBallot:             "SPV_KHR_shader_ballot",
	ExtensionKHRSubgroupVote:             "SPV_KHR_subgroup_vote",
	ExtensionNVShaderSubgroupPartitioned: "SPV_NV_shader_subgroup_partitioned",
	ExtensionKHRUniformGroupInstructions: "SPV_KHR_uniform_group_instructions",
}

// String returns the SPIR-V name of the extension, e.g. "SPV_KHR_shader_ballot".
func (e Extension) String() string {
	if e < 0 || int(e) >= len(extensionNames) {
		return fmt.Sprintf("Extension(%d)", int(e))
	}
	return extensionNames[e]
}

// ExtensionString returns the Extension with the given SPIR-V name.
func ExtensionString(s string) (Extension, error) {
	for e, name := range extensionNames {
		if name == s {
			return Extension(e), nil
		}
	}
	return 0, errors.Errorf("%q is not a known SPIR-V extension", s)
}

// MarshalText implements encoding.TextMarshaler.
func (e Extension) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Extension) UnmarshalText(text []byte) error {
	var err error
	*e, err = ExtensionString(string(text))
	return err
}
