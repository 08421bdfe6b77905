package groupops

import (
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/groupops/internal/optypes"
	"github.com/gomlx/groupops/internal/utils"
	"github.com/x448/float16"
)

// Statement represents a single operation line in a SPIR-V function.
type Statement struct {
	// OpType is the type of the operation.
	OpType optypes.OpType

	// Inputs to the operation.
	Inputs []*Value

	// Attributes of the operation, written sorted by name.
	Attributes map[string]any

	// Outputs of the operation. It may be nil for operations like spirv.ReturnValue.
	Outputs []*Value
}

// Write writes the statement in generic form to the given writer:
//
//	%1 = "spirv.GroupNonUniformIAdd"(%arg0, %0){execution_scope = ...} : (vector<4xi32>, i32) -> vector<4xi32>
func (s *Statement) Write(writer io.Writer, indentation string) error {
	var sb strings.Builder
	sb.WriteString(indentation)
	if len(s.Outputs) > 0 {
		sb.WriteString(joinValues(s.Outputs, (*Value).String))
		sb.WriteString(" = ")
	}
	fmt.Fprintf(&sb, "%q(%s)", s.OpType.ToSPIRV(), joinValues(s.Inputs, (*Value).String))
	if len(s.Attributes) > 0 {
		attrs := make([]string, 0, len(s.Attributes))
		for _, key := range slices.Sorted(maps.Keys(s.Attributes)) {
			attrs = append(attrs, key+" = "+literalToSPIRV(s.Attributes[key]))
		}
		fmt.Fprintf(&sb, "{%s}", strings.Join(attrs, ", "))
	}

	// Single results are written without parentheses.
	results := joinValues(s.Outputs, valueType)
	if len(s.Outputs) != 1 {
		results = "(" + results + ")"
	}
	fmt.Fprintf(&sb, " : (%s) -> %s", joinValues(s.Inputs, valueType), results)
	_, err := io.WriteString(writer, sb.String())
	return err
}

func valueType(v *Value) string { return v.shape.ToSPIRV() }

// joinValues formats each value with format and joins them with commas.
func joinValues(values []*Value, format func(*Value) string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = format(v)
	}
	return strings.Join(parts, ", ")
}

type hasToSPIRV interface {
	ToSPIRV() string
}

// literalToSPIRV converts a literal value, usually used in attributes, to its SPIR-V dialect string representation.
//
// Floats are written in exponent form with the fewest digits that read back exactly, or as their bit
// pattern if they are not finite.
func literalToSPIRV(attr any) string {
	switch v := attr.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case float16.Float16:
		if !v.IsFinite() {
			return fmt.Sprintf("0x%04X : f16", v.Bits())
		}
		return formatFloat(float64(v.Float32()), 32) + " : f16"
	case float32:
		if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
			return fmt.Sprintf("0x%08X : f32", math.Float32bits(v))
		}
		return formatFloat(float64(v), 32) + " : f32"
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Sprintf("0x%016X : f64", math.Float64bits(v))
		}
		return formatFloat(v, 64) + " : f64"
	case int8, int16, int32, int64, uint8, uint16, uint32, uint64:
		dtype := dtypes.FromAny(v)
		return fmt.Sprintf("%d : %s", v, utils.DTypeToSPIRV(dtype))
	case bool:
		if v {
			return "true"
		}
		return "false"

	case hasToSPIRV:
		// For types that implement their own conversion to SPIR-V, use that.
		return v.ToSPIRV()

	default:
		return fmt.Sprintf("Unknown literal type: %T %#v", v, v)
	}
}

// formatFloat writes f in exponent form with the shortest mantissa that reads back as the same float of
// the given bit size. The mantissa always has a decimal point, as MLIR float literals require.
func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	if mantissa, exponent, found := strings.Cut(s, "e"); found && !strings.Contains(mantissa, ".") {
		return mantissa + ".0e" + exponent
	}
	return s
}
