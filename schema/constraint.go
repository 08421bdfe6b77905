package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/groupops/types/shapes"
)

// ElementClass is a class of element data types an operand may hold.
type ElementClass int

//go:generate go tool enumer -type=ElementClass -trimprefix=Class -output=gen_elementclass_enumer.go constraint.go

const (
	ClassBool ElementClass = iota
	ClassFloat
	ClassInteger
	ClassSignedInteger
	ClassUnsignedInteger
)

var (
	floatDTypes    = []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64}
	signedDTypes   = []dtypes.DType{dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64}
	unsignedDTypes = []dtypes.DType{dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64}
)

// DTypes returns the element data types in the class.
//
// Notice BFloat16 and complex numbers are not part of any class: no group operation accepts them.
func (c ElementClass) DTypes() []dtypes.DType {
	switch c {
	case ClassBool:
		return []dtypes.DType{dtypes.Bool}
	case ClassFloat:
		return slices.Clone(floatDTypes)
	case ClassInteger:
		return slices.Concat(signedDTypes, unsignedDTypes)
	case ClassSignedInteger:
		return slices.Clone(signedDTypes)
	case ClassUnsignedInteger:
		return slices.Clone(unsignedDTypes)
	}
	return nil
}

// Has returns whether dtype belongs to the class.
func (c ElementClass) Has(dtype dtypes.DType) bool {
	switch c {
	case ClassBool:
		return dtype == dtypes.Bool
	case ClassFloat:
		return slices.Contains(floatDTypes, dtype)
	case ClassInteger:
		return slices.Contains(signedDTypes, dtype) || slices.Contains(unsignedDTypes, dtype)
	case ClassSignedInteger:
		return slices.Contains(signedDTypes, dtype)
	case ClassUnsignedInteger:
		return slices.Contains(unsignedDTypes, dtype)
	}
	return false
}

// TypeConstraint restricts the shape of an operand or result.
type TypeConstraint struct {
	// Class of the element data type.
	Class ElementClass

	// BitWidth of the element data type, or 0 for any width.
	BitWidth int

	// Scalar accepts scalar values.
	Scalar bool

	// VectorWidths accepted for vector values. Empty means vectors are not accepted.
	VectorWidths []int
}

// ScalarOrVectorOf accepts scalars and vectors of any valid width of the given class.
func ScalarOrVectorOf(class ElementClass) TypeConstraint {
	return TypeConstraint{Class: class, Scalar: true, VectorWidths: slices.Clone(shapes.VectorWidths)}
}

// ScalarOf accepts only scalars of the given class.
func ScalarOf(class ElementClass) TypeConstraint {
	return TypeConstraint{Class: class, Scalar: true}
}

// Accepts returns whether the shape satisfies the constraint.
func (c TypeConstraint) Accepts(shape shapes.Shape) bool {
	if !shape.Ok() || !c.Class.Has(shape.DType) {
		return false
	}
	if c.BitWidth != 0 && shape.DType.Size()*8 != c.BitWidth {
		return false
	}
	switch {
	case shape.IsScalar():
		return c.Scalar
	case shape.IsVector():
		return slices.Contains(c.VectorWidths, shape.Width())
	default:
		return false
	}
}

// String describes the constraint, e.g. "scalar or vector<2|3|4|8|16> of Float".
func (c TypeConstraint) String() string {
	var parts []string
	if c.Scalar {
		parts = append(parts, "scalar")
	}
	if len(c.VectorWidths) > 0 {
		widths := make([]string, len(c.VectorWidths))
		for i, w := range c.VectorWidths {
			widths[i] = fmt.Sprintf("%d", w)
		}
		parts = append(parts, fmt.Sprintf("vector<%s>", strings.Join(widths, "|")))
	}
	elem := c.Class.String()
	if c.BitWidth != 0 {
		elem = fmt.Sprintf("%d-bit %s", c.BitWidth, elem)
	}
	return fmt.Sprintf("%s of %s", strings.Join(parts, " or "), elem)
}

// Clone returns a deep copy of the constraint.
func (c TypeConstraint) Clone() TypeConstraint {
	c.VectorWidths = slices.Clone(c.VectorWidths)
	return c
}
