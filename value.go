package groupops

import (
	"fmt"
	"io"

	"github.com/gomlx/groupops/types/shapes"
)

// Value represents a value in a SPIR-V function, like `%0` or `%arg0`.
// It has a name (composed of letters, digits and underscore) and a shape.
//
// Value implements verifier.Operand.
type Value struct {
	fn    *Function
	name  string
	shape shapes.Shape

	// constant holds the value of integer scalar constants, nil otherwise.
	constant *int64
}

// Shape returns the shape of the value.
func (v *Value) Shape() shapes.Shape {
	return v.shape
}

// ConstantValue returns the value if v was created by Function.ConstantFromScalar with an integer.
func (v *Value) ConstantValue() (value int64, ok bool) {
	if v.constant == nil {
		return 0, false
	}
	return *v.constant, true
}

// Function returns the function that owns the value.
func (v *Value) Function() *Function {
	return v.fn
}

// Write writes the value in SPIR-V text format to the given writer.
func (v *Value) Write(w io.Writer, indentation string) error {
	_ = indentation
	_, err := fmt.Fprintf(w, "%%%s", v.name)
	return err
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return "%" + v.name
}

// NamedValue creates a new named value with the given shape.
// These are meant to be used as inputs for functions, see Builder.NewFunction.
func NamedValue(name string, shape shapes.Shape) *Value {
	return &Value{
		shape: shape,
		name:  NormalizeIdentifier(name),
	}
}
