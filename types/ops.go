// Package types defines the attribute types of group non-uniform operations.
package types

import (
	"fmt"
)

// ExecutionScope is the set of invocations that participate in an operation. It follows the SPIR-V
// "Scope" enumeration, including the values that are not legal for group operations so that
// those can be represented (and rejected).
type ExecutionScope int

//go:generate go tool enumer -type=ExecutionScope -trimprefix=Scope -text -output=gen_executionscope_enumer.go ops.go

const (
	ScopeCrossDevice ExecutionScope = iota
	ScopeDevice
	ScopeWorkgroup
	ScopeSubgroup
	ScopeInvocation
	ScopeQueueFamily
	ScopeShaderCallKHR
)

// IsGroupScope returns whether the scope is one of the two valid for group operations: Workgroup or Subgroup.
func (s ExecutionScope) IsGroupScope() bool {
	return s == ScopeWorkgroup || s == ScopeSubgroup
}

// ToSPIRV returns the SPIR-V dialect attribute for the scope.
func (s ExecutionScope) ToSPIRV() string {
	return fmt.Sprintf("#spirv.scope<%s>", s)
}

// GroupOperation defines how an arithmetic group operation combines the values of the invocations.
// Values match the SPIR-V "Group Operation" enumeration.
type GroupOperation int

//go:generate go tool enumer -type=GroupOperation -trimprefix=GroupOperation -text -output=gen_groupoperation_enumer.go ops.go

const (
	// GroupOperationReduce combines the values of all active invocations, every invocation gets the same result.
	GroupOperationReduce GroupOperation = iota

	// GroupOperationInclusiveScan gives invocation i the combination of the values of invocations 0 to i.
	GroupOperationInclusiveScan

	// GroupOperationExclusiveScan gives invocation i the combination of the values of invocations 0 to i-1,
	// and the identity to the first one.
	GroupOperationExclusiveScan

	// GroupOperationClusteredReduce reduces independently within contiguous clusters of invocations.
	// It requires a cluster size operand.
	GroupOperationClusteredReduce
)

// IsScan returns whether the group operation is one of the two scans.
func (g GroupOperation) IsScan() bool {
	return g == GroupOperationInclusiveScan || g == GroupOperationExclusiveScan
}

// ToSPIRV returns the SPIR-V dialect attribute for the group operation.
func (g GroupOperation) ToSPIRV() string {
	return fmt.Sprintf("#spirv.group_op<%s>", g)
}
