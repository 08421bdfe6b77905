// Package optypes defines OpType and lists the supported operations.
package optypes

import (
	"strings"
)

// OpType is an enum of the operations the builder can emit: the group non-uniform family plus the
// few structural operations (constants and return) needed to write a function.
type OpType int

//go:generate go tool enumer -type=OpType optypes.go

const (
	Invalid OpType = iota
	FuncReturn
	Constant

	// Query operations.
	GroupNonUniformElect
	GroupNonUniformBallot

	// Arithmetic operations.
	GroupNonUniformFAdd
	GroupNonUniformFMax
	GroupNonUniformFMin
	GroupNonUniformFMul
	GroupNonUniformIAdd
	GroupNonUniformIMul
	GroupNonUniformSMax
	GroupNonUniformSMin
	GroupNonUniformUMax
	GroupNonUniformUMin

	// Last should always be kept the last, it is used as a counter/marker for the registry size.
	Last
)

var (
	// spirvMappings maps OpType to the corresponding SPIR-V dialect name, when the default
	// "spirv.<OpType>" doesn't work.
	spirvMappings = map[OpType]string{
		FuncReturn: "spirv.ReturnValue",
	}
)

// ToSPIRV returns the SPIR-V dialect name of the operation.
func (op OpType) ToSPIRV() string {
	name, ok := spirvMappings[op]
	if !ok {
		name = "spirv." + op.String()
	}
	return name
}

// IsGroupNonUniform returns whether op is one of the group non-uniform (collective) operations.
func (op OpType) IsGroupNonUniform() bool {
	return op >= GroupNonUniformElect && op <= GroupNonUniformUMin
}

// IsArithmetic returns whether op is one of the ten arithmetic group operations, the ones that take a
// group operation (reduce, scan or clustered reduce) attribute.
func (op OpType) IsArithmetic() bool {
	return op >= GroupNonUniformFAdd && op <= GroupNonUniformUMin
}

// ShortName returns the name without the "GroupNonUniform" prefix, e.g. "IAdd".
func (op OpType) ShortName() string {
	return strings.TrimPrefix(op.String(), "GroupNonUniform")
}
