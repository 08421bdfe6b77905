// Package schema is the registry of group non-uniform operation definitions: for each operation, the
// operands it takes, the type of its result, when it is available in a target, and, for arithmetic
// operations, its identity element and how it combines values.
//
// The registry is immutable, built once at package initialization, and safe for concurrent use.
package schema

import (
	"slices"

	"github.com/gomlx/groupops/internal/optypes"
	"github.com/gomlx/groupops/types/target"
	"github.com/pkg/errors"
)

// Operand roles.
const (
	RoleValue       = "value"
	RolePredicate   = "predicate"
	RoleClusterSize = "cluster_size"
	RoleResult      = "result"
)

// OperandSpec describes one operand of an operation.
type OperandSpec struct {
	Role       string
	Constraint TypeConstraint

	// Optional operands may be absent.
	Optional bool
}

// ResultSpec describes the result of an operation.
type ResultSpec struct {
	// Constraint on the result type.
	Constraint TypeConstraint

	// SameAs, if set, is the role of the operand the result type must be structurally identical to.
	SameAs string
}

// Availability is the window of targets in which an operation can be used.
type Availability struct {
	MinVersion, MaxVersion target.Version

	// Extensions that must all be enabled.
	Extensions []target.Extension

	// CapabilitiesOneOf lists capabilities of which at least one must be usable.
	CapabilitiesOneOf []target.Capability
}

// IdentityKind names the identity element of an arithmetic operation, independent of the data type.
type IdentityKind int

//go:generate go tool enumer -type=IdentityKind -trimprefix=Identity -output=gen_identitykind_enumer.go schema.go

const (
	IdentityZero IdentityKind = iota
	IdentityOne
	IdentityNegativeInfinity
	IdentityPositiveInfinity
	IdentitySignedMin
	IdentitySignedMax
	IdentityUnsignedMax
)

// CombineKind is the binary function an arithmetic operation folds values with.
type CombineKind int

//go:generate go tool enumer -type=CombineKind -trimprefix=Combine -output=gen_combinekind_enumer.go schema.go

const (
	CombineAdd CombineKind = iota
	CombineMul
	CombineMax
	CombineMin
)

// ArithmeticSpec holds the reduction parameters of an arithmetic operation.
type ArithmeticSpec struct {
	Identity IdentityKind
	Class    ElementClass
	Combine  CombineKind
}

// Schema is the static definition of one group operation.
type Schema struct {
	Op optypes.OpType

	// Operands in the order they are written.
	Operands []OperandSpec

	Result       ResultSpec
	Availability Availability

	// HasGroupOperation is set for operations that take a group operation (reduce, scans, clustered reduce).
	HasGroupOperation bool

	// Arithmetic is only set for arithmetic operations.
	Arithmetic *ArithmeticSpec
}

// Operand returns the spec of the operand with the given role, or nil if the operation has no such operand.
func (s Schema) Operand(role string) *OperandSpec {
	for i := range s.Operands {
		if s.Operands[i].Role == role {
			return &s.Operands[i]
		}
	}
	return nil
}

// IsArithmetic returns whether this is one of the arithmetic operations.
func (s Schema) IsArithmetic() bool { return s.Arithmetic != nil }

func (s Schema) clone() Schema {
	c := s
	c.Operands = make([]OperandSpec, len(s.Operands))
	for i, operand := range s.Operands {
		c.Operands[i] = operand
		c.Operands[i].Constraint = operand.Constraint.Clone()
	}
	c.Result.Constraint = s.Result.Constraint.Clone()
	c.Availability.Extensions = slices.Clone(s.Availability.Extensions)
	c.Availability.CapabilitiesOneOf = slices.Clone(s.Availability.CapabilitiesOneOf)
	if s.Arithmetic != nil {
		arithmetic := *s.Arithmetic
		c.Arithmetic = &arithmetic
	}
	return c
}

// arithmeticParams is the per-operation table of the ten arithmetic operations.
var arithmeticParams = map[optypes.OpType]ArithmeticSpec{
	optypes.GroupNonUniformFAdd: {Identity: IdentityZero, Class: ClassFloat, Combine: CombineAdd},
	optypes.GroupNonUniformFMax: {Identity: IdentityNegativeInfinity, Class: ClassFloat, Combine: CombineMax},
	optypes.GroupNonUniformFMin: {Identity: IdentityPositiveInfinity, Class: ClassFloat, Combine: CombineMin},
	optypes.GroupNonUniformFMul: {Identity: IdentityOne, Class: ClassFloat, Combine: CombineMul},
	optypes.GroupNonUniformIAdd: {Identity: IdentityZero, Class: ClassInteger, Combine: CombineAdd},
	optypes.GroupNonUniformIMul: {Identity: IdentityOne, Class: ClassInteger, Combine: CombineMul},
	optypes.GroupNonUniformSMax: {Identity: IdentitySignedMin, Class: ClassSignedInteger, Combine: CombineMax},
	optypes.GroupNonUniformSMin: {Identity: IdentitySignedMax, Class: ClassSignedInteger, Combine: CombineMin},
	optypes.GroupNonUniformUMax: {Identity: IdentityZero, Class: ClassUnsignedInteger, Combine: CombineMax},
	optypes.GroupNonUniformUMin: {Identity: IdentityUnsignedMax, Class: ClassUnsignedInteger, Combine: CombineMin},
}

// groupNonUniformWindow is the version window shared by all group non-uniform operations.
func groupNonUniformWindow(capabilities ...target.Capability) Availability {
	return Availability{
		MinVersion:        target.V1_3,
		MaxVersion:        target.LastVersion,
		CapabilitiesOneOf: capabilities,
	}
}

// registry is indexed by OpType; entries for non-group operations are left zero.
var registry = buildRegistry()

func buildRegistry() []Schema {
	r := make([]Schema, optypes.Last)

	r[optypes.GroupNonUniformElect] = Schema{
		Op:           optypes.GroupNonUniformElect,
		Result:       ResultSpec{Constraint: ScalarOf(ClassBool)},
		Availability: groupNonUniformWindow(target.CapabilityGroupNonUniform),
	}

	r[optypes.GroupNonUniformBallot] = Schema{
		Op: optypes.GroupNonUniformBallot,
		Operands: []OperandSpec{
			{Role: RolePredicate, Constraint: ScalarOf(ClassBool)},
		},
		Result: ResultSpec{Constraint: TypeConstraint{
			Class:        ClassInteger,
			BitWidth:     32,
			VectorWidths: []int{4},
		}},
		Availability: groupNonUniformWindow(target.CapabilityGroupNonUniformBallot),
	}

	for op := optypes.GroupNonUniformFAdd; op <= optypes.GroupNonUniformUMin; op++ {
		params := arithmeticParams[op]
		valueConstraint := ScalarOrVectorOf(params.Class)
		r[op] = Schema{
			Op: op,
			Operands: []OperandSpec{
				{Role: RoleValue, Constraint: valueConstraint},
				{Role: RoleClusterSize, Constraint: ScalarOf(ClassInteger), Optional: true},
			},
			Result:            ResultSpec{Constraint: valueConstraint.Clone(), SameAs: RoleValue},
			HasGroupOperation: true,
			Availability: groupNonUniformWindow(
				target.CapabilityGroupNonUniformArithmetic,
				target.CapabilityGroupNonUniformClustered,
				target.CapabilityGroupNonUniformPartitionedNV),
			Arithmetic: &params,
		}
	}
	return r
}

// Lookup returns the schema of a group operation.
// It returns an error if op is not one of the twelve group non-uniform operations.
func Lookup(op optypes.OpType) (Schema, error) {
	if !op.IsGroupNonUniform() {
		return Schema{}, errors.Errorf("schema.Lookup: %s is not a group non-uniform operation", op)
	}
	return registry[op].clone(), nil
}

// MustLookup is like Lookup, but panics on error.
func MustLookup(op optypes.OpType) Schema {
	s, err := Lookup(op)
	if err != nil {
		panic(err)
	}
	return s
}

// Ops returns all group non-uniform operations, in declaration order.
func Ops() []optypes.OpType {
	ops := make([]optypes.OpType, 0, optypes.GroupNonUniformUMin-optypes.GroupNonUniformElect+1)
	for op := optypes.GroupNonUniformElect; op <= optypes.GroupNonUniformUMin; op++ {
		ops = append(ops, op)
	}
	return ops
}

// ArithmeticOps returns the ten arithmetic operations, in declaration order.
func ArithmeticOps() []optypes.OpType {
	return slices.DeleteFunc(Ops(), func(op optypes.OpType) bool { return !op.IsArithmetic() })
}
