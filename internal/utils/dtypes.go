package utils

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
)

// DTypeToSPIRV returns the SPIR-V dialect spelling of a scalar element type.
func DTypeToSPIRV(dtype dtypes.DType) string {
	switch dtype {
	case dtypes.Float64:
		return "f64"
	case dtypes.Float32:
		return "f32"
	case dtypes.Float16:
		return "f16"
	case dtypes.Int64:
		return "i64"
	case dtypes.Int32:
		return "i32"
	case dtypes.Int16:
		return "i16"
	case dtypes.Int8:
		return "i8"
	case dtypes.Uint64:
		return "ui64"
	case dtypes.Uint32:
		return "ui32"
	case dtypes.Uint16:
		return "ui16"
	case dtypes.Uint8:
		return "ui8"
	case dtypes.Bool:
		return "i1"
	default:
		return fmt.Sprintf("unknown_dtype<%s>", dtype.String())
	}
}
