package semantics

import (
	"github.com/gomlx/groupops/internal/optypes"
	"github.com/gomlx/groupops/schema"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Combine applies the binary function of the arithmetic operation op to a and b, which must be of the
// same supported Go type.
//
// Integer addition and multiplication wrap around. For FMax and FMin a NaN operand is ignored if the
// other one is a number; if both are NaN the result is unspecified (but no error is returned).
func Combine(op optypes.OpType, a, b any) (any, error) {
	dtype := dtypeOf(a)
	if dtype != dtypeOf(b) {
		return nil, errors.Errorf("%s: operands must have the same type, got %T and %T", op, a, b)
	}
	spec, err := arithmeticSpec(op, dtype)
	if err != nil {
		return nil, errors.WithMessagef(err, "Combine(%T, %T)", a, b)
	}
	kind := spec.Combine
	switch a := a.(type) {
	case int8:
		return combine(kind, a, b.(int8)), nil
	case int16:
		return combine(kind, a, b.(int16)), nil
	case int32:
		return combine(kind, a, b.(int32)), nil
	case int64:
		return combine(kind, a, b.(int64)), nil
	case uint8:
		return combine(kind, a, b.(uint8)), nil
	case uint16:
		return combine(kind, a, b.(uint16)), nil
	case uint32:
		return combine(kind, a, b.(uint32)), nil
	case uint64:
		return combine(kind, a, b.(uint64)), nil
	case float16.Float16:
		return float16.Fromfloat32(combine(kind, a.Float32(), b.(float16.Float16).Float32())), nil
	case float32:
		return combine(kind, a, b.(float32)), nil
	case float64:
		return combine(kind, a, b.(float64)), nil
	}
	return nil, errors.Errorf("%s: unsupported type %T", op, a)
}

// isNaN is only ever true for floating point types.
func isNaN[T numeric](v T) bool {
	return v != v
}

func combine[T numeric](kind schema.CombineKind, a, b T) T {
	switch kind {
	case schema.CombineAdd:
		return a + b
	case schema.CombineMul:
		return a * b
	case schema.CombineMax:
		if isNaN(a) {
			return b
		}
		if isNaN(b) || a >= b {
			return a
		}
		return b
	case schema.CombineMin:
		if isNaN(a) {
			return b
		}
		if isNaN(b) || a <= b {
			return a
		}
		return b
	}
	panic(errors.Errorf("unknown combine kind %s", kind))
}
