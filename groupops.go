// Package groupops builds SPIR-V modules (MLIR SPIR-V dialect, generic text form) using the group
// non-uniform operations: Elect, Ballot and the ten arithmetic reductions and scans.
//
// Among its features:
//
//   - Every operation is verified (see package verifier) when it is added, against the target profile
//     given to the Builder: invalid instances are never emitted.
//   - Values created with Function.ConstantFromScalar are known constants, as required for the cluster size
//     of ClusteredReduce.
//   - Written purely in Go, no C/C++ external dependencies.
//
// See package semantics for what the operations compute.
package groupops

import "github.com/gomlx/groupops/internal/utils"

// Generates the arithmetic group operations (gen_arithmetic_ops.go) from the schema registry.
//go:generate go run ./internal/cmd/ops_generator

// NormalizeIdentifier converts the name of an identifier (module name, function name or function input
// parameter name) to a valid one: only letters, digits, and underscores are allowed.
//
// Invalid characters are replaced with underscores.
// If the name starts with a digit, it is prefixed with an underscore.
func NormalizeIdentifier(name string) string {
	return utils.NormalizeIdentifier(name)
}
