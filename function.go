package groupops

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/groupops/internal/optypes"
	"github.com/gomlx/groupops/types/shapes"
	"github.com/pkg/errors"
)

// Function represents a `spirv.func` in a SPIR-V module.
type Function struct {
	Builder *Builder

	// Name of the function. It should not include the "@" prefix.
	Name string

	// Inputs to the function.
	Inputs []*Value

	// Output type of the function, set by Return.
	Output shapes.Shape

	// Statements in the function body.
	Statements []*Statement

	// nextArgID is the next ID to be assigned to new input arguments.
	nextArgID int

	// nextTmpID is the next ID to be assigned to new intermediary values.
	nextTmpID int

	// Returned indicates if the function has a return statement, so it can no longer be changed.
	Returned bool

	// err is set if the inputs given to Builder.NewFunction were invalid. It is returned by every
	// following operation and by Builder.Build.
	err error
}

// checkOpen returns an error if the function can no longer be changed.
func (fn *Function) checkOpen() error {
	if fn.err != nil {
		return fn.err
	}
	if fn.Returned {
		return errors.Errorf("Function.Return already called for %q", fn.Name)
	}
	return nil
}

// checkInput returns an error if an input with the given name and shape can't be added to the function.
func (fn *Function) checkInput(name string, shape shapes.Shape) error {
	if !shape.Ok() {
		return errors.Errorf("invalid shape for input %q of function %q", name, fn.Name)
	}
	for _, input := range fn.Inputs {
		if input.name == name {
			return errors.Errorf("duplicate input name %q in function %q", name, fn.Name)
		}
	}
	return nil
}

// newValue creates a new value with the given shape and assigns it to the next available id.
func (fn *Function) newValue(shape shapes.Shape) *Value {
	v := &Value{
		fn:    fn,
		name:  strconv.Itoa(fn.nextTmpID),
		shape: shape,
	}
	fn.nextTmpID++
	return v
}

// Input creates a new input parameter for a function.
//
// If creating multiple inputs (one at a time), the order matters, since it is the order of the
// function parameters.
//
// It picks a default unique name for the input parameter, you can also
// provide a name with NamedInput.
func (fn *Function) Input(shape shapes.Shape) (*Value, error) {
	value, err := fn.NamedInput(fmt.Sprintf("arg%d", fn.nextArgID), shape)
	if err != nil {
		return nil, err
	}
	fn.nextArgID++
	return value, nil
}

// NamedInput creates a new input parameter for a function with the given name: it
// must be a unique input name.
//
// The name is passed through NormalizeIdentifier, which converts any non-digit or ASCII letter to an underscore.
//
// Names with the format "%d" and "arg%d" are reserved for the default input parameters.
func (fn *Function) NamedInput(name string, shape shapes.Shape) (*Value, error) {
	if err := fn.checkOpen(); err != nil {
		return nil, err
	}
	name = NormalizeIdentifier(name)
	if err := fn.checkInput(name, shape); err != nil {
		return nil, err
	}
	value := &Value{
		fn:    fn,
		name:  name,
		shape: shape,
	}
	fn.Inputs = append(fn.Inputs, value)
	return value, nil
}

// ConstantFromScalar creates a new constant statement and returns the resulting value.
//
// Supported values are bool, the Go integer types, float32, float64 and float16.Float16.
// Go's int and uint have no fixed SPIR-V type: they become 32 bits constants, the usual integer width in
// shaders, and must fit it.
// Integer constants can be used as the cluster size of ClusteredReduce.
func (fn *Function) ConstantFromScalar(value any) (*Value, error) {
	if err := fn.checkOpen(); err != nil {
		return nil, err
	}
	switch v := value.(type) {
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, errors.Errorf("constant %d doesn't fit an int32, use an explicitly sized type", v)
		}
		value = int32(v)
	case uint:
		if v > math.MaxUint32 {
			return nil, errors.Errorf("constant %d doesn't fit an uint32, use an explicitly sized type", v)
		}
		value = uint32(v)
	}

	// The shape of the constant is inferred from the value.
	shape, err := shapes.FromAnyValue(value)
	if err != nil {
		return nil, errors.WithMessagef(err, "unsupported constant value type %T", value)
	}
	if !shape.IsScalar() || hasNoSPIRVType(shape.DType) {
		return nil, errors.Errorf("unsupported constant value type %T", value)
	}
	c := &Statement{
		OpType: optypes.Constant,
		Attributes: map[string]any{
			"value": value,
		},
		Outputs: []*Value{fn.newValue(shape)},
	}
	if constant, ok := integerValue(value); ok {
		c.Outputs[0].constant = &constant
	}
	fn.Statements = append(fn.Statements, c)
	return c.Outputs[0], nil
}

// hasNoSPIRVType returns whether dtype has no SPIR-V scalar type.
func hasNoSPIRVType(dtype dtypes.DType) bool {
	switch dtype {
	case dtypes.BFloat16, dtypes.Complex64, dtypes.Complex128:
		return true
	}
	return false
}

// integerValue converts an integer scalar to int64. Unsigned values beyond math.MaxInt64 saturate.
func integerValue(value any) (int64, bool) {
	switch v := value.(type) {
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return math.MaxInt64, true
		}
		return int64(v), true
	}
	return 0, false
}

// Return adds a return statement to the function with the given return value.
//
// There can be only one return statement from a Function, and it must be the last
// operation of a function.
func (fn *Function) Return(value *Value) error {
	if err := fn.checkOpen(); err != nil {
		return err
	}
	if value == nil {
		return errors.Errorf("Function.Return for %q given a nil value", fn.Name)
	}
	if value.fn != fn {
		return errors.Errorf("Function.Return for %q given a value that is not owned by the function", fn.Name)
	}
	fn.Returned = true
	fn.Output = value.shape
	stmt := &Statement{
		OpType: optypes.FuncReturn,
		Inputs: []*Value{value},
	}
	fn.Statements = append(fn.Statements, stmt)
	return nil
}

// Write the function as SPIR-V code, with the given indentation.
func (fn *Function) Write(writer io.Writer, indentation string) error {
	// Create the formatting w() and we() internal functions to facilitate handling error while generating the statement code.
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}
	we := func(e elementWriter, indentation string) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		err = e.Write(writer, indentation)
	}
	nextIndent := indentation + IndentationStep

	w("%sspirv.func @%s(", indentation, fn.Name)
	for i, input := range fn.Inputs {
		if i > 0 {
			w(", ")
		}
		we(input, nextIndent)
		w(": %s", input.shape.ToSPIRV())
	}
	w(")")
	if fn.Returned {
		w(" -> %s", fn.Output.ToSPIRV())
	}
	w(" \"None\" {\n")

	for _, stmt := range fn.Statements {
		we(stmt, nextIndent)
		w("\n")
	}
	w("%s}\n", indentation)
	return err
}
