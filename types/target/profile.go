// Package target describes the compilation target of a program: its SPIR-V version and the
// capabilities and extensions it declares.
//
// A Profile is what the verifier checks the availability of every operation against. Profiles can be
// created in code with NewProfile or loaded from a YAML file with LoadProfile, e.g.:
//
//	version: v1.3
//	capabilities: [Shader, GroupNonUniformArithmetic, GroupNonUniformClustered]
//	extensions: []
package target

import (
	"bytes"
	"os"
	"strings"

	"github.com/gomlx/groupops/internal/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Profile is an immutable description of a target environment. It is safe for concurrent use.
type Profile struct {
	version      Version
	capabilities utils.Set[Capability]
	extensions   utils.Set[Extension]
}

// NewProfile creates a Profile for the given version, capabilities and extensions.
//
// The capabilities implied by the ones given are added as well, e.g. GroupNonUniformArithmetic
// implies GroupNonUniform.
func NewProfile(version Version, capabilities []Capability, extensions []Extension) (*Profile, error) {
	if !version.IsAVersion() {
		return nil, errors.Errorf("NewProfile: unknown version %s", version)
	}
	p := &Profile{
		version:      version,
		capabilities: utils.MakeSet[Capability](len(capabilities)),
		extensions:   utils.MakeSet[Extension](len(extensions)),
	}
	for _, c := range capabilities {
		if !c.IsACapability() {
			return nil, errors.Errorf("NewProfile: unknown capability %s", c)
		}
		p.addCapability(c)
	}
	for _, e := range extensions {
		if e < 0 || int(e) >= len(extensionNames) {
			return nil, errors.Errorf("NewProfile: unknown extension %s", e)
		}
		p.extensions.Insert(e)
	}
	return p, nil
}

// MustNewProfile is like NewProfile, but panics on error.
func MustNewProfile(version Version, capabilities []Capability, extensions []Extension) *Profile {
	p, err := NewProfile(version, capabilities, extensions)
	if err != nil {
		panic(err)
	}
	return p
}

// addCapability inserts c and, recursively, everything it implies.
func (p *Profile) addCapability(c Capability) {
	if p.capabilities.Has(c) {
		return
	}
	p.capabilities.Insert(c)
	for _, implied := range c.Implies() {
		p.addCapability(implied)
	}
}

// Version of SPIR-V targeted.
func (p *Profile) Version() Version { return p.version }

// HasCapability returns whether the capability is declared, explicitly or implicitly.
func (p *Profile) HasCapability(c Capability) bool { return p.capabilities.Has(c) }

// HasExtension returns whether the extension is enabled.
func (p *Profile) HasExtension(e Extension) bool { return p.extensions.Has(e) }

// CanUse returns whether the capability is declared and every extension it requires is enabled.
func (p *Profile) CanUse(c Capability) bool {
	if !p.HasCapability(c) {
		return false
	}
	for _, e := range c.RequiredExtensions() {
		if !p.HasExtension(e) {
			return false
		}
	}
	return true
}

// Capabilities returns all declared capabilities (including implied ones), in enum order.
func (p *Profile) Capabilities() []Capability {
	return utils.SortedKeys(p.capabilities)
}

// Extensions returns the enabled extensions, in enum order.
func (p *Profile) Extensions() []Extension {
	return utils.SortedKeys(p.extensions)
}

// ToSPIRV returns the version/capabilities/extensions triple attribute used by spirv.module, e.g.
// "#spirv.vce<v1.3, [Shader, GroupNonUniform], []>".
func (p *Profile) ToSPIRV() string {
	var sb strings.Builder
	sb.WriteString("#spirv.vce<")
	sb.WriteString(p.version.String())
	sb.WriteString(", [")
	for i, c := range p.Capabilities() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteString("], [")
	for i, e := range p.Extensions() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteString("]>")
	return sb.String()
}

// String implements fmt.Stringer.
func (p *Profile) String() string { return p.ToSPIRV() }

// profileFile is the YAML representation of a Profile.
type profileFile struct {
	Version      *Version     `yaml:"version"`
	Capabilities []Capability `yaml:"capabilities"`
	Extensions   []Extension  `yaml:"extensions"`
}

// ParseProfile parses a Profile from its YAML representation.
// Unknown fields and unknown capability or extension names are rejected.
func ParseProfile(data []byte) (*Profile, error) {
	var file profileFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, errors.Wrap(err, "failed to parse target profile YAML")
	}
	if file.Version == nil {
		return nil, errors.New("target profile: version is required")
	}
	return NewProfile(*file.Version, file.Capabilities, file.Extensions)
}

// LoadProfile reads and parses a Profile YAML file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read target profile %q", path)
	}
	p, err := ParseProfile(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "target profile %q", path)
	}
	return p, nil
}

// MarshalYAML implements yaml.Marshaler. All capabilities are written, including the implied ones.
func (p *Profile) MarshalYAML() (any, error) {
	version := p.version
	return profileFile{
		Version:      &version,
		Capabilities: p.Capabilities(),
		Extensions:   p.Extensions(),
	}, nil
}
