// Package verifier decides whether an instance of a group non-uniform operation is well-formed.
//
// Verify checks an Instance against its schema (see package schema) and, optionally, against the target
// it is compiled for. Checks run in a fixed order and stop at the first failure:
//
//  1. The execution scope is Workgroup or Subgroup (and, for arithmetic operations, the group operation is valid).
//  2. Operand and result types match the schema.
//  3. The result of arithmetic operations has the same type as the value operand.
//  4. ClusteredReduce has a cluster size that is a constant power of two.
//  5. The target supports the operation.
//
// Failures are returned as *Error (wrapped with a stack trace), see KindOf and IsKind.
//
// A cluster size larger than the subgroup size is not a verification failure: the subgroup size is only
// known at execution time, and the result in that case is unspecified (see package semantics).
//
// Verify is pure and safe to call concurrently.
package verifier

import (
	"strings"

	"github.com/gomlx/groupops/internal/optypes"
	"github.com/gomlx/groupops/schema"
	"github.com/gomlx/groupops/types"
	"github.com/gomlx/groupops/types/shapes"
	"github.com/gomlx/groupops/types/target"
)

// Operand is a value used as an operand of an operation. It provides its type and, if it is a
// compile-time constant, its integer value.
type Operand interface {
	Shape() shapes.Shape

	// ConstantValue returns the value of the operand if it is an integer compile-time constant.
	ConstantValue() (value int64, ok bool)
}

// Target provides the version, capabilities and extensions of the compilation target.
// *target.Profile implements it.
type Target interface {
	Version() target.Version
	HasCapability(c target.Capability) bool
	HasExtension(e target.Extension) bool
}

// Instance of a group operation to verify.
type Instance struct {
	Op    optypes.OpType
	Scope types.ExecutionScope

	// GroupOperation is only used by arithmetic operations.
	GroupOperation types.GroupOperation

	// Value operand: the value for arithmetic operations, the predicate for Ballot, nil for Elect.
	Value Operand

	// ClusterSize operand, nil if absent.
	ClusterSize Operand

	// Result type.
	Result shapes.Shape
}

type typeOperand struct {
	shape shapes.Shape
}

func (o typeOperand) Shape() shapes.Shape                 { return o.shape }
func (o typeOperand) ConstantValue() (value int64, ok bool) { return 0, false }

// TypeOf returns an Operand of the given shape whose value is not known at compile time.
func TypeOf(shape shapes.Shape) Operand {
	return typeOperand{shape: shape}
}

type constantOperand struct {
	shape shapes.Shape
	value int64
}

func (o constantOperand) Shape() shapes.Shape                 { return o.shape }
func (o constantOperand) ConstantValue() (value int64, ok bool) { return o.value, true }

// Constant returns an Operand of the given shape holding the compile-time constant value.
func Constant(shape shapes.Shape, value int64) Operand {
	return constantOperand{shape: shape, value: value}
}

// Verify checks whether inst is a well-formed group operation, and if tgt is not nil, whether it is
// available in the target.
//
// It returns an *Error (wrapped) for verification failures, or a plain error if inst.Op is not a
// group operation at all.
func Verify(inst Instance, tgt Target) error {
	s, err := schema.Lookup(inst.Op)
	if err != nil {
		return err
	}
	if err := verifyScope(s, inst); err != nil {
		return err
	}
	if err := verifyTypes(s, inst); err != nil {
		return err
	}
	if err := verifyResultMatchesOperand(s, inst); err != nil {
		return err
	}
	if s.HasGroupOperation && inst.GroupOperation == types.GroupOperationClusteredReduce {
		if err := verifyClusterSize(inst); err != nil {
			return err
		}
	}
	if tgt != nil {
		if err := verifyAvailability(s, inst, tgt); err != nil {
			return err
		}
	}
	return nil
}

func verifyScope(s schema.Schema, inst Instance) error {
	if !inst.Scope.IsGroupScope() {
		return newError(InvalidScope, inst.Op, "",
			"execution scope must be Workgroup or Subgroup, got %s", inst.Scope)
	}
	if s.HasGroupOperation && !inst.GroupOperation.IsAGroupOperation() {
		return newError(InvalidGroupOperation, inst.Op, "",
			"group operation must be one of %s, got %s",
			strings.Join(types.GroupOperationStrings(), ", "), inst.GroupOperation)
	}
	return nil
}

// valueRole returns the role of the Instance.Value slot for the schema, or "" if the operation takes no value.
func valueRole(s schema.Schema) string {
	for _, operand := range s.Operands {
		if operand.Role != schema.RoleClusterSize {
			return operand.Role
		}
	}
	return ""
}

// operandFor returns the instance operand filling the given role.
func operandFor(inst Instance, s schema.Schema, role string) Operand {
	if role == schema.RoleClusterSize {
		return inst.ClusterSize
	}
	if role == valueRole(s) {
		return inst.Value
	}
	return nil
}

func verifyTypes(s schema.Schema, inst Instance) error {
	if valueRole(s) == "" && inst.Value != nil {
		return newError(TypeMismatch, inst.Op, schema.RoleValue,
			"operation takes no value operand, got %s", inst.Value.Shape())
	}
	if s.Operand(schema.RoleClusterSize) == nil && inst.ClusterSize != nil {
		return newError(TypeMismatch, inst.Op, schema.RoleClusterSize,
			"operation takes no cluster size operand, got %s", inst.ClusterSize.Shape())
	}

	for _, spec := range s.Operands {
		if spec.Role == schema.RoleClusterSize && inst.GroupOperation != types.GroupOperationClusteredReduce {
			// Accepted, but unconstrained, outside of ClusteredReduce.
			continue
		}
		operand := operandFor(inst, s, spec.Role)
		if operand == nil {
			if spec.Optional {
				continue
			}
			return newError(TypeMismatch, inst.Op, spec.Role, "missing operand, expected %s", spec.Constraint)
		}
		if shape := operand.Shape(); !spec.Constraint.Accepts(shape) {
			return newError(TypeMismatch, inst.Op, spec.Role, "expected %s, got %s", spec.Constraint, shape)
		}
	}

	// Results that must match an operand are checked by verifyResultMatchesOperand.
	if s.Result.SameAs == "" && !s.Result.Constraint.Accepts(inst.Result) {
		return newError(TypeMismatch, inst.Op, schema.RoleResult,
			"expected %s, got %s", s.Result.Constraint, inst.Result)
	}
	return nil
}

func verifyResultMatchesOperand(s schema.Schema, inst Instance) error {
	if s.Result.SameAs == "" {
		return nil
	}
	operand := operandFor(inst, s, s.Result.SameAs)
	if !inst.Result.Equal(operand.Shape()) {
		return newError(ResultTypeMismatch, inst.Op, "",
			"result type %s must be the same as the %s operand type %s", inst.Result, s.Result.SameAs, operand.Shape())
	}
	return nil
}

func verifyClusterSize(inst Instance) error {
	if inst.ClusterSize == nil {
		return newError(MissingClusterSize, inst.Op, schema.RoleClusterSize,
			"cluster size operand must be provided for %s", types.GroupOperationClusteredReduce)
	}
	size, ok := inst.ClusterSize.ConstantValue()
	if !ok {
		return newError(ClusterSizeNotConstant, inst.Op, schema.RoleClusterSize,
			"cluster size operand must be defined by a constant")
	}
	if size < 1 {
		return newError(ClusterSizeNonPositive, inst.Op, schema.RoleClusterSize,
			"cluster size must be at least 1, got %d", size)
	}
	if size&(size-1) != 0 {
		return newError(ClusterSizeNotPowerOfTwo, inst.Op, schema.RoleClusterSize,
			"cluster size must be a power of two, got %d", size)
	}
	return nil
}
