package shapes

import (
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

var float16Type = reflect.TypeOf(float16.Float16(0))

// dtypeOf is dtypes.FromGoType, with float16.Float16 mapped to Float16.
func dtypeOf(t reflect.Type) dtypes.DType {
	if t == float16Type {
		return dtypes.Float16
	}
	return dtypes.FromGoType(t)
}

// FromAnyValue attempts to convert a Go "any" value to its expected shape.
// Accepted values are scalars of the supported element types, or a flat slice of them (a vector).
//
// Example:
//
//	shape := shapes.FromAnyValue([]int32{1, 2, 3, 4}) // Returns shape (Int32)[4]
func FromAnyValue(v any) (shape Shape, err error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return Invalid(), errors.New("cannot take the shape of a nil value")
	}
	if t.Kind() != reflect.Slice {
		shape.DType = dtypeOf(t)
		if shape.DType == dtypes.InvalidDType {
			return Invalid(), errors.Errorf("cannot convert type %q to a valid shape (maybe type not supported yet?)", t)
		}
		return shape, nil
	}

	elemType := t.Elem()
	if elemType.Kind() == reflect.Slice {
		return Invalid(), errors.Errorf("value of type %s has more than one dimension, only scalars and vectors are supported", t)
	}
	shape.DType = dtypeOf(elemType)
	if shape.DType == dtypes.InvalidDType {
		return Invalid(), errors.Errorf("cannot convert element type %q to a valid shape (maybe type not supported yet?)", elemType)
	}
	n := reflect.ValueOf(v).Len()
	if n == 0 {
		return Invalid(), errors.Errorf("value with empty slice not valid for shape conversion: %T", v)
	}
	shape.Dimensions = []int{n}
	return shape, nil
}
