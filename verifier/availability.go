package verifier

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/groupops/schema"
	"github.com/gomlx/groupops/types"
	"github.com/gomlx/groupops/types/shapes"
	"github.com/gomlx/groupops/types/target"
)

// groupOperationCapabilities lists, for each group operation, the capabilities of which one must be usable.
var groupOperationCapabilities = map[types.GroupOperation][]target.Capability{
	types.GroupOperationReduce:          {target.CapabilityKernel, target.CapabilityGroupNonUniformArithmetic, target.CapabilityGroupNonUniformBallot},
	types.GroupOperationInclusiveScan:   {target.CapabilityKernel, target.CapabilityGroupNonUniformArithmetic, target.CapabilityGroupNonUniformBallot},
	types.GroupOperationExclusiveScan:   {target.CapabilityKernel, target.CapabilityGroupNonUniformArithmetic, target.CapabilityGroupNonUniformBallot},
	types.GroupOperationClusteredReduce: {target.CapabilityGroupNonUniformClustered},
}

// dtypeCapabilities lists element types that require a capability to be declared.
var dtypeCapabilities = map[dtypes.DType]target.Capability{
	dtypes.Int8:    target.CapabilityInt8,
	dtypes.Uint8:   target.CapabilityInt8,
	dtypes.Int16:   target.CapabilityInt16,
	dtypes.Uint16:  target.CapabilityInt16,
	dtypes.Int64:   target.CapabilityInt64,
	dtypes.Uint64:  target.CapabilityInt64,
	dtypes.Float16: target.CapabilityFloat16,
	dtypes.Float64: target.CapabilityFloat64,
}

// canUse returns whether c is declared by the target and all the extensions it requires are enabled.
func canUse(tgt Target, c target.Capability) bool {
	if !tgt.HasCapability(c) {
		return false
	}
	for _, e := range c.RequiredExtensions() {
		if !tgt.HasExtension(e) {
			return false
		}
	}
	return true
}

func anyUsable(tgt Target, capabilities []target.Capability) bool {
	return slices.ContainsFunc(capabilities, func(c target.Capability) bool { return canUse(tgt, c) })
}

func joinCapabilities(capabilities []target.Capability) string {
	names := make([]string, len(capabilities))
	for i, c := range capabilities {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

func verifyAvailability(s schema.Schema, inst Instance, tgt Target) error {
	window := s.Availability
	if v := tgt.Version(); v < window.MinVersion || v > window.MaxVersion {
		return newError(UnsupportedInTarget, inst.Op, "",
			"requires SPIR-V version %s to %s, target is %s", window.MinVersion, window.MaxVersion, v)
	}
	for _, e := range window.Extensions {
		if !tgt.HasExtension(e) {
			return newError(UnsupportedInTarget, inst.Op, "", "requires extension %s", e)
		}
	}
	if len(window.CapabilitiesOneOf) > 0 && !anyUsable(tgt, window.CapabilitiesOneOf) {
		return newError(UnsupportedInTarget, inst.Op, "",
			"requires one of the capabilities [%s]", joinCapabilities(window.CapabilitiesOneOf))
	}

	if s.HasGroupOperation {
		required := groupOperationCapabilities[inst.GroupOperation]
		if !anyUsable(tgt, required) {
			return newError(UnsupportedInTarget, inst.Op, "",
				"group operation %s requires one of the capabilities [%s]",
				inst.GroupOperation, joinCapabilities(required))
		}
	}

	typed := []roleShape{{schema.RoleResult, inst.Result}}
	if inst.Value != nil {
		typed = append(typed, roleShape{valueRole(s), inst.Value.Shape()})
	}
	if inst.ClusterSize != nil && inst.GroupOperation == types.GroupOperationClusteredReduce {
		typed = append(typed, roleShape{schema.RoleClusterSize, inst.ClusterSize.Shape()})
	}
	for _, t := range typed {
		if err := verifyShapeCapabilities(inst, t.role, t.shape, tgt); err != nil {
			return err
		}
	}
	return nil
}

type roleShape struct {
	role  string
	shape shapes.Shape
}

// verifyShapeCapabilities checks the capabilities required by the element type and vector width of a shape.
func verifyShapeCapabilities(inst Instance, role string, shape shapes.Shape, tgt Target) error {
	var missing []string
	if c, found := dtypeCapabilities[shape.DType]; found && !canUse(tgt, c) {
		missing = append(missing, fmt.Sprintf("%s for element type %s", c, shape.DType))
	}
	if width := shape.Width(); shape.IsVector() && width > 4 && !canUse(tgt, target.CapabilityVector16) {
		missing = append(missing, fmt.Sprintf("%s for vector width %d", target.CapabilityVector16, width))
	}
	if len(missing) > 0 {
		return newError(UnsupportedInTarget, inst.Op, role, "requires capability %s", strings.Join(missing, " and "))
	}
	return nil
}
