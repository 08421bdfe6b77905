package semantics

import (
	"math"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/groupops/internal/optypes"
	"github.com/gomlx/groupops/schema"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Identity returns the identity element of the arithmetic operation op for dtype, as a Go value of the
// corresponding type (float16.Float16 for dtypes.Float16).
//
// It returns an error if op is not an arithmetic group operation or dtype is not in its element class.
func Identity(op optypes.OpType, dtype dtypes.DType) (any, error) {
	spec, err := arithmeticSpec(op, dtype)
	if err != nil {
		return nil, err
	}
	switch dtype {
	case dtypes.Int8:
		return identityOf[int8](spec.Identity, dtype), nil
	case dtypes.Int16:
		return identityOf[int16](spec.Identity, dtype), nil
	case dtypes.Int32:
		return identityOf[int32](spec.Identity, dtype), nil
	case dtypes.Int64:
		return identityOf[int64](spec.Identity, dtype), nil
	case dtypes.Uint8:
		return identityOf[uint8](spec.Identity, dtype), nil
	case dtypes.Uint16:
		return identityOf[uint16](spec.Identity, dtype), nil
	case dtypes.Uint32:
		return identityOf[uint32](spec.Identity, dtype), nil
	case dtypes.Uint64:
		return identityOf[uint64](spec.Identity, dtype), nil
	case dtypes.Float16:
		return float16.Fromfloat32(identityOf[float32](spec.Identity, dtype)), nil
	case dtypes.Float32:
		return identityOf[float32](spec.Identity, dtype), nil
	case dtypes.Float64:
		return identityOf[float64](spec.Identity, dtype), nil
	}
	return nil, errors.Errorf("unsupported dtype %s for %s", dtype, op)
}

// identityOf materializes the identity kind in T. The element class of dtype must admit the kind.
func identityOf[T numeric](kind schema.IdentityKind, dtype dtypes.DType) T {
	bits := dtype.Size() * 8
	switch kind {
	case schema.IdentityOne:
		return T(1)
	case schema.IdentityNegativeInfinity:
		v := math.Inf(-1)
		return T(v)
	case schema.IdentityPositiveInfinity:
		v := math.Inf(1)
		return T(v)
	case schema.IdentitySignedMin:
		v := int64(-1) << (bits - 1)
		return T(v)
	case schema.IdentitySignedMax:
		v := int64(1)<<(bits-1) - 1
		return T(v)
	case schema.IdentityUnsignedMax:
		v := uint64(math.MaxUint64) >> (64 - bits)
		return T(v)
	}
	return T(0)
}
