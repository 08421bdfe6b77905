package groupops

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gomlx/groupops/internal/utils"
	"github.com/gomlx/groupops/types/target"
	"github.com/gomlx/groupops/verifier"
	"github.com/pkg/errors"
)

// Builder is used to construct a SPIR-V module.
// See details in New.
type Builder struct {
	name string

	// profile of the target, nil if operations are not checked for availability.
	profile *target.Profile

	// functions holds all the functions created in the builder's scope.
	functions []*Function
}

// New creates a new Builder of a SPIR-V module for the target described by profile.
//
// From a builder you can create functions.
// For each function you create operations (ops) one by one, until you defined the desired computation.
//
// Every operation is verified as it is added, including whether the profile's version, capabilities and
// extensions allow it. If profile is nil, operations are still verified, but not against a target, and the
// module is written without the "requires" clause.
//
// Once you are all set, call Builder.Build and it will return the module text.
func New(name string, profile *target.Profile) *Builder {
	return &Builder{
		name:    name,
		profile: profile,
	}
}

// Profile returns the target profile given to New. It may be nil.
func (b *Builder) Profile() *target.Profile {
	return b.profile
}

// target returns the profile as a verifier.Target, or nil if there is no profile.
func (b *Builder) target() verifier.Target {
	if b.profile == nil {
		return nil
	}
	return b.profile
}

// elementWriter represents elements of the module that know how to write themselves.
type elementWriter interface {
	Write(w io.Writer, indentation string) error
}

// NewFunction creates a new function and adds it to the module.
//
// The function name must be unique in the module.
//
// The inputs are the values that the function will receive as arguments, see NamedValue.
// You can also add new inputs later by calling Function.Input.
// Inputs are checked like in Function.NamedInput: if any is nil, has an invalid shape or repeats a name,
// the error is returned by every operation of the function and by Builder.Build.
//
// The function body is defined by calling ops on the function object, and it must end with Function.Return.
func (b *Builder) NewFunction(name string, inputs ...*Value) *Function {
	fn := &Function{
		Builder: b,
		Name:    NormalizeIdentifier(name),
	}
	for i, input := range inputs {
		if input == nil {
			fn.err = errors.Errorf("input #%d of function %q is nil", i, fn.Name)
			break
		}
		if err := fn.checkInput(input.name, input.shape); err != nil {
			fn.err = err
			break
		}
		input.fn = fn
		fn.Inputs = append(fn.Inputs, input)
	}
	b.functions = append(b.functions, fn)
	return fn
}

const MainFunctionName = "main"

// Main creates the main function of the module.
// It is an alias to Builder.NewFunction("main", inputs...).
//
// Every module must have a main function.
func (b *Builder) Main(inputs ...*Value) *Function {
	return b.NewFunction(MainFunctionName, inputs...)
}

const IndentationStep = "  "

// Write the module (a readable string) to the given writer.
//
// It will write incomplete modules (without a main function or without return statements) without an error
// to help debugging.
//
// See Builder.Build to check and output the module.
func (b *Builder) Write(writer io.Writer) error {
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

	// Write module header
	w("spirv.module @%s Logical GLSL450", NormalizeIdentifier(b.name))
	if b.profile != nil {
		w(" requires %s", b.profile.ToSPIRV())
	}
	w(" {\n")

	for i, fn := range b.functions {
		if i > 0 {
			w("\n")
		}
		we(fn, IndentationStep) // Indent functions inside module
	}
	w("}\n") // Close module block
	return err
}

// Build checks the validity and builds the SPIR-V module.
//
// If you want the output of an incomplete module (without the checking), use Builder.Write instead.
func (b *Builder) Build() ([]byte, error) {
	hasMain := false
	names := utils.MakeSet[string](len(b.functions))
	for _, fn := range b.functions {
		if fn.err != nil {
			return nil, fn.err
		}
		if names.Has(fn.Name) {
			return nil, errors.Errorf("duplicate function name %q", fn.Name)
		}
		names.Insert(fn.Name)
		if fn.Name == MainFunctionName {
			hasMain = true
		}
		if !fn.Returned {
			return nil, errors.Errorf("function %q has no return statement", fn.Name)
		}
	}
	if !hasMain {
		return nil, errors.New("module must have a main function")
	}

	var buf bytes.Buffer
	err := b.Write(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
