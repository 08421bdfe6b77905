package target

// Capability is a SPIR-V capability a target may declare.
// Only the capabilities that gate group operations and their element types are listed.
type Capability int

//go:generate go tool enumer -type=Capability -trimprefix=Capability -text -output=gen_capability_enumer.go capability.go

const (
	CapabilityShader Capability = iota
	CapabilityKernel
	CapabilityInt8
	CapabilityInt16
	CapabilityInt64
	CapabilityFloat16
	CapabilityFloat64
	CapabilityVector16
	CapabilityGroupNonUniform
	CapabilityGroupNonUniformVote
	CapabilityGroupNonUniformArithmetic
	CapabilityGroupNonUniformBallot
	CapabilityGroupNonUniformShuffle
	CapabilityGroupNonUniformShuffleRelative
	CapabilityGroupNonUniformClustered
	CapabilityGroupNonUniformQuad
	CapabilityGroupNonUniformPartitionedNV
)

// impliedCapabilities lists, for each capability, the ones implicitly declared with it.
var impliedCapabilities = map[Capability][]Capability{
	CapabilityVector16:                       {CapabilityKernel},
	CapabilityGroupNonUniformVote:            {CapabilityGroupNonUniform},
	CapabilityGroupNonUniformArithmetic:      {CapabilityGroupNonUniform},
	CapabilityGroupNonUniformBallot:          {CapabilityGroupNonUniform},
	CapabilityGroupNonUniformShuffle:         {CapabilityGroupNonUniform},
	CapabilityGroupNonUniformShuffleRelative: {CapabilityGroupNonUniform},
	CapabilityGroupNonUniformClustered:       {CapabilityGroupNonUniform},
	CapabilityGroupNonUniformQuad:            {CapabilityGroupNonUniform},
}

// requiredExtensions lists capabilities that are only usable with an extension enabled.
var requiredExtensions = map[Capability][]Extension{
	CapabilityGroupNonUniformPartitionedNV: {ExtensionNVShaderSubgroupPartitioned},
}

// Implies returns the capabilities implicitly declared by c, not including c itself.
func (c Capability) Implies() []Capability {
	return impliedCapabilities[c]
}

// RequiredExtensions returns the extensions that must be enabled for c to be usable.
func (c Capability) RequiredExtensions() []Extension {
	return requiredExtensions[c]
}
