package groupops

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/groupops/internal/optypes"
	"github.com/gomlx/groupops/types"
	"github.com/gomlx/groupops/types/shapes"
	"github.com/gomlx/groupops/verifier"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ballotShape is the result of a ballot: a mask of 128 bits as 4 words of 32 bits.
var ballotShape = shapes.Vector(dtypes.Uint32, 4)

// addOp adds a new operation to the function.
func (fn *Function) addOp(opType optypes.OpType, outputShape shapes.Shape, inputs ...*Value) *Statement {
	stmt := &Statement{
		OpType:  opType,
		Inputs:  inputs,
		Outputs: []*Value{fn.newValue(outputShape)},
	}
	fn.Statements = append(fn.Statements, stmt)
	return stmt
}

// checkOperands returns an error if the function already returned or if any of the (non-nil) operands
// belongs to another function.
func (fn *Function) checkOperands(op optypes.OpType, operands ...*Value) error {
	if fn.err != nil {
		return fn.err
	}
	if fn.Returned {
		return errors.Errorf("cannot add operation %s after returning, in function %q", op, fn.Name)
	}
	for _, operand := range operands {
		if operand != nil && operand.fn != fn {
			return errors.Errorf("cannot add operation %s to function %q, because the operand %s is not part of the function",
				op, fn.Name, operand)
		}
	}
	return nil
}

// verify checks the instance against the builder's target. Rejections are logged at verbosity level 1.
func (fn *Function) verify(inst verifier.Instance) error {
	err := verifier.Verify(inst, fn.Builder.target())
	if err != nil {
		klog.V(1).Infof("groupops: rejected %s in function %q: %v", inst.Op, fn.Name, err)
	}
	return err
}

// GroupNonUniformElect returns a boolean that is true only in the active invocation of the group with the
// lowest id.
func (fn *Function) GroupNonUniformElect(scope types.ExecutionScope) (*Value, error) {
	op := optypes.GroupNonUniformElect
	if err := fn.checkOperands(op); err != nil {
		return nil, err
	}
	output := shapes.Scalar(dtypes.Bool)
	if err := fn.verify(verifier.Instance{Op: op, Scope: scope, Result: output}); err != nil {
		return nil, err
	}
	stmt := fn.addOp(op, output)
	stmt.Attributes = map[string]any{"execution_scope": scope}
	return stmt.Outputs[0], nil
}

// GroupNonUniformBallot returns the mask (vector of 4 uint32) of the active invocations of the group for
// which the boolean predicate is true: bit i (bit i%32 of the word i/32) corresponds to invocation i.
func (fn *Function) GroupNonUniformBallot(scope types.ExecutionScope, predicate *Value) (*Value, error) {
	op := optypes.GroupNonUniformBallot
	if err := fn.checkOperands(op, predicate); err != nil {
		return nil, err
	}
	inst := verifier.Instance{Op: op, Scope: scope, Result: ballotShape}
	if predicate != nil {
		inst.Value = predicate
	}
	if err := fn.verify(inst); err != nil {
		return nil, err
	}
	stmt := fn.addOp(op, ballotShape, predicate)
	stmt.Attributes = map[string]any{"execution_scope": scope}
	return stmt.Outputs[0], nil
}

// groupArithmeticOp adds one of the arithmetic group operations. The result has the same shape as the value.
// clusterSize is optional (nil) except for ClusteredReduce.
func (fn *Function) groupArithmeticOp(op optypes.OpType, scope types.ExecutionScope, groupOp types.GroupOperation,
	value, clusterSize *Value) (*Value, error) {
	if err := fn.checkOperands(op, value, clusterSize); err != nil {
		return nil, err
	}
	if value == nil {
		return nil, errors.Errorf("%s in function %q: value operand must be given", op, fn.Name)
	}
	inst := verifier.Instance{
		Op:             op,
		Scope:          scope,
		GroupOperation: groupOp,
		Value:          value,
		Result:         value.shape,
	}
	inputs := []*Value{value}
	if clusterSize != nil {
		inst.ClusterSize = clusterSize
		inputs = append(inputs, clusterSize)
	}
	if err := fn.verify(inst); err != nil {
		return nil, err
	}
	stmt := fn.addOp(op, value.shape, inputs...)
	stmt.Attributes = map[string]any{
		"execution_scope": scope,
		"group_operation": groupOp,
	}
	return stmt.Outputs[0], nil
}
