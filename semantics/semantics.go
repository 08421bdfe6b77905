// Package semantics is a reference model of what verified group non-uniform operations compute.
//
// It is not an executor: it evaluates an operation over the values of a single execution group, one
// invocation at a time, to give constant folders, interpreters and tests an unambiguous definition of
// identities, scans, clustered reductions and NaN handling.
//
// Values are Go scalars or flat slices of one of: int8, int16, int32, int64, uint8, uint16, uint32,
// uint64, float32, float64 or float16.Float16 (github.com/x448/float16). Float16 values are combined
// in float32 and rounded back to float16 after every step.
//
// Some results are unspecified rather than errors: see Result.Unspecified.
package semantics

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/groupops/internal/optypes"
	"github.com/gomlx/groupops/schema"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// numeric is the set of Go types values are combined in. Float16 is combined as float32.
type numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// arithmeticSpec returns the reduction parameters of op, and checks that dtype is in its element class.
func arithmeticSpec(op optypes.OpType, dtype dtypes.DType) (*schema.ArithmeticSpec, error) {
	s, err := schema.Lookup(op)
	if err != nil {
		return nil, err
	}
	if !s.IsArithmetic() {
		return nil, errors.Errorf("%s is not an arithmetic group operation", op)
	}
	if !s.Arithmetic.Class.Has(dtype) {
		return nil, errors.Errorf("%s operates on %s values, got %s", op, s.Arithmetic.Class, dtype)
	}
	return s.Arithmetic, nil
}

// dtypeOf returns the dtype of a supported scalar, or dtypes.InvalidDType.
func dtypeOf(v any) dtypes.DType {
	switch v.(type) {
	case int8:
		return dtypes.Int8
	case int16:
		return dtypes.Int16
	case int32:
		return dtypes.Int32
	case int64:
		return dtypes.Int64
	case uint8:
		return dtypes.Uint8
	case uint16:
		return dtypes.Uint16
	case uint32:
		return dtypes.Uint32
	case uint64:
		return dtypes.Uint64
	case float16.Float16:
		return dtypes.Float16
	case float32:
		return dtypes.Float32
	case float64:
		return dtypes.Float64
	}
	return dtypes.InvalidDType
}

// dtypeOfFlat returns the dtype of a supported flat slice, or dtypes.InvalidDType.
func dtypeOfFlat(flat any) dtypes.DType {
	switch flat.(type) {
	case []int8:
		return dtypes.Int8
	case []int16:
		return dtypes.Int16
	case []int32:
		return dtypes.Int32
	case []int64:
		return dtypes.Int64
	case []uint8:
		return dtypes.Uint8
	case []uint16:
		return dtypes.Uint16
	case []uint32:
		return dtypes.Uint32
	case []uint64:
		return dtypes.Uint64
	case []float16.Float16:
		return dtypes.Float16
	case []float32:
		return dtypes.Float32
	case []float64:
		return dtypes.Float64
	}
	return dtypes.InvalidDType
}

// roundFloat16 rounds a float32 to the nearest float16 value.
func roundFloat16(v float32) float32 {
	return float16.Fromfloat32(v).Float32()
}

func float16sToFloat32s(flat []float16.Float16) []float32 {
	result := make([]float32, len(flat))
	for i, v := range flat {
		result[i] = v.Float32()
	}
	return result
}

func float32sToFloat16s(flat []float32) []float16.Float16 {
	result := make([]float16.Float16, len(flat))
	for i, v := range flat {
		result[i] = float16.Fromfloat32(v)
	}
	return result
}
