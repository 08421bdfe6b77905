// Package shapes defines Shape, the type of a value in a group non-uniform program: a scalar or a
// vector of an element data type (dtypes.DType).
//
// Group operations work on "scalar or vector" values only, so rank is at most 1: the only dimension of
// a vector shape is its number of components (its "width").
package shapes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/groupops/internal/utils"
)

// VectorWidths are the numbers of components a vector can have.
var VectorWidths = []int{2, 3, 4, 8, 16}

// Shape of a value: its element data type and dimensions. Scalars have no dimensions, vectors
// have exactly one.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int
}

// Make returns a Shape structure filled with the values given.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	return Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
}

// Scalar returns a scalar Shape of the given dtype.
func Scalar(dtype dtypes.DType) Shape {
	return Shape{DType: dtype}
}

// Vector returns the shape of a vector with width components of the given dtype.
func Vector(dtype dtypes.DType, width int) Shape {
	return Shape{DType: dtype, Dimensions: []int{width}}
}

// Invalid returns an invalid shape, used to represent "no value".
func Invalid() Shape {
	return Shape{DType: dtypes.InvalidDType}
}

// Ok returns whether the shape holds a valid data type.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType }

// Rank of the shape: 0 for scalars, 1 for vectors.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar returns whether the shape represents a scalar.
func (s Shape) IsScalar() bool { return s.Ok() && len(s.Dimensions) == 0 }

// IsVector returns whether the shape represents a vector, regardless of its width.
func (s Shape) IsVector() bool { return s.Ok() && len(s.Dimensions) == 1 }

// Width returns the number of components: 1 for scalars, the dimension for vectors.
// It returns 0 for shapes that are neither.
func (s Shape) Width() int {
	switch {
	case s.IsScalar():
		return 1
	case s.IsVector():
		return s.Dimensions[0]
	default:
		return 0
	}
}

// Size returns the total number of elements.
func (s Shape) Size() int {
	size := 1
	for _, dim := range s.Dimensions {
		size *= dim
	}
	return size
}

// Equal returns whether both shapes are structurally identical: same dtype and same dimensions.
func (s Shape) Equal(s2 Shape) bool {
	return s.DType == s2.DType && slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{DType: s.DType, Dimensions: slices.Clone(s.Dimensions)}
}

// String implements fmt.Stringer, e.g. "(Int32)[4]".
func (s Shape) String() string {
	if !s.Ok() {
		return "(invalid)"
	}
	if len(s.Dimensions) == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	return fmt.Sprintf("(%s)%v", s.DType, s.Dimensions)
}

// ToSPIRV returns the SPIR-V dialect spelling of the type, e.g. "i32" or "vector<4xi32>".
func (s Shape) ToSPIRV() string {
	elem := utils.DTypeToSPIRV(s.DType)
	if len(s.Dimensions) == 0 {
		return elem
	}
	if len(s.Dimensions) == 1 {
		return fmt.Sprintf("vector<%dx%s>", s.Dimensions[0], elem)
	}
	var sb strings.Builder
	sb.WriteString("tensor<")
	for _, dim := range s.Dimensions {
		sb.WriteString(fmt.Sprintf("%dx", dim))
	}
	sb.WriteString(elem)
	sb.WriteString(">")
	return sb.String()
}
