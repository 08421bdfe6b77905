package verifier

import (
	"fmt"

	"github.com/gomlx/groupops/internal/optypes"
	"github.com/pkg/errors"
)

// ErrorKind identifies why an operation failed verification.
type ErrorKind int

//go:generate go tool enumer -type=ErrorKind -output=gen_errorkind_enumer.go errors.go

const (
	// InvalidScope: the execution scope is neither Workgroup nor Subgroup.
	InvalidScope ErrorKind = iota

	// InvalidGroupOperation: an arithmetic operation has a group operation outside the enumeration.
	InvalidGroupOperation

	// TypeMismatch: an operand (or the result of a query operation) is missing or has a type the
	// operation doesn't accept. Error.Role names it.
	TypeMismatch

	// ResultTypeMismatch: the result of an arithmetic operation is not the same type as its value operand.
	ResultTypeMismatch

	// MissingClusterSize: ClusteredReduce without a cluster size operand.
	MissingClusterSize

	// ClusterSizeNotConstant: the cluster size is not a compile-time constant.
	ClusterSizeNotConstant

	// ClusterSizeNonPositive: the cluster size is smaller than 1.
	ClusterSizeNonPositive

	// ClusterSizeNotPowerOfTwo: the cluster size is not a power of two.
	ClusterSizeNotPowerOfTwo

	// UnsupportedInTarget: the target version, capabilities or extensions don't allow the operation.
	UnsupportedInTarget
)

// Error is a verification failure. It is returned wrapped with a stack trace, use errors.As, KindOf or
// IsKind to inspect it.
type Error struct {
	Kind ErrorKind

	// Op is the operation that failed verification.
	Op optypes.OpType

	// Role of the offending operand, if any (see schema.Role* constants).
	Role string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Role != "" {
		return fmt.Sprintf("%s: %s(%s): %s", e.Op, e.Kind, e.Role, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

func newError(kind ErrorKind, op optypes.OpType, role string, format string, args ...any) error {
	return errors.WithStack(&Error{
		Kind:    kind,
		Op:      op,
		Role:    role,
		Message: fmt.Sprintf(format, args...),
	})
}

// AsError returns the verification Error in err's chain, or nil if there is none.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// KindOf returns the kind of the verification error in err's chain.
// The second return value is false if err is not a verification error.
func KindOf(err error) (ErrorKind, bool) {
	if e := AsError(err); e != nil {
		return e.Kind, true
	}
	return 0, false
}

// IsKind returns whether err is a verification error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
