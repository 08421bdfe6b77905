package verifier

import (
	"fmt"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/groupops/internal/optypes"
	"github.com/gomlx/groupops/schema"
	"github.com/gomlx/groupops/types"
	"github.com/gomlx/groupops/types/shapes"
	"github.com/gomlx/groupops/types/target"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	scalar = shapes.Scalar
	vector = shapes.Vector

	i32 = scalar(dtypes.Int32)
	u32 = scalar(dtypes.Uint32)
	f32 = scalar(dtypes.Float32)
)

// requireKind checks that err is a verification error of the given kind (and role, if not empty).
func requireKind(t *testing.T, err error, kind ErrorKind, role string) {
	t.Helper()
	require.Error(t, err)
	e := AsError(err)
	require.NotNil(t, e, "expected a verification error, got %v", err)
	assert.Equal(t, kind, e.Kind, "unexpected error: %v", err)
	if role != "" {
		assert.Equal(t, role, e.Role, "unexpected error: %v", err)
	}
}

// arithmetic returns a well-formed instance of op on the given type.
func arithmetic(op optypes.OpType, groupOp types.GroupOperation, valueType, resultType shapes.Shape) Instance {
	return Instance{
		Op:             op,
		Scope:          types.ScopeSubgroup,
		GroupOperation: groupOp,
		Value:          TypeOf(valueType),
		Result:         resultType,
	}
}

// typesOfClass returns a sample of shapes accepted for the class.
func typesOfClass(class schema.ElementClass) []shapes.Shape {
	var result []shapes.Shape
	for _, dtype := range class.DTypes() {
		result = append(result, scalar(dtype), vector(dtype, 2), vector(dtype, 4), vector(dtype, 16))
	}
	return result
}

func TestVerifyResultEqualsValue(t *testing.T) {
	groupOps := []types.GroupOperation{types.GroupOperationReduce, types.GroupOperationInclusiveScan,
		types.GroupOperationExclusiveScan}
	for _, op := range schema.ArithmeticOps() {
		s := schema.MustLookup(op)
		candidates := typesOfClass(s.Arithmetic.Class)
		for _, groupOp := range groupOps {
			for _, valueType := range candidates {
				require.NoError(t, Verify(arithmetic(op, groupOp, valueType, valueType), nil),
					"%s %s on %s", op, groupOp, valueType)
				for _, resultType := range candidates {
					if resultType.Equal(valueType) {
						continue
					}
					err := Verify(arithmetic(op, groupOp, valueType, resultType), nil)
					requireKind(t, err, ResultTypeMismatch, "")
				}
			}
		}
	}
}

func TestVerifyElementClass(t *testing.T) {
	for _, tc := range []struct {
		op    optypes.OpType
		value shapes.Shape
	}{
		{optypes.GroupNonUniformFAdd, i32},
		{optypes.GroupNonUniformFMax, scalar(dtypes.BFloat16)},
		{optypes.GroupNonUniformIAdd, f32},
		{optypes.GroupNonUniformIMul, scalar(dtypes.Bool)},
		{optypes.GroupNonUniformSMax, u32},
		{optypes.GroupNonUniformSMin, vector(dtypes.Uint8, 4)},
		{optypes.GroupNonUniformUMax, i32},
		{optypes.GroupNonUniformUMin, vector(dtypes.Int64, 2)},
		{optypes.GroupNonUniformFMul, scalar(dtypes.Complex64)},
		{optypes.GroupNonUniformFAdd, vector(dtypes.Float32, 5)},
		{optypes.GroupNonUniformIAdd, shapes.Make(dtypes.Int32, 2, 2)},
		{optypes.GroupNonUniformIAdd, shapes.Invalid()},
	} {
		t.Run(fmt.Sprintf("%s(%s)", tc.op.ShortName(), tc.value), func(t *testing.T) {
			err := Verify(arithmetic(tc.op, types.GroupOperationReduce, tc.value, tc.value), nil)
			requireKind(t, err, TypeMismatch, schema.RoleValue)
		})
	}

	// Missing value operand.
	inst := arithmetic(optypes.GroupNonUniformIAdd, types.GroupOperationReduce, i32, i32)
	inst.Value = nil
	requireKind(t, Verify(inst, nil), TypeMismatch, schema.RoleValue)
}

func TestVerifyScope(t *testing.T) {
	for _, op := range schema.Ops() {
		for _, scope := range types.ExecutionScopeValues() {
			inst := validInstance(op)
			inst.Scope = scope
			err := Verify(inst, nil)
			if scope.IsGroupScope() {
				assert.NoError(t, err, "%s with scope %s", op, scope)
			} else {
				requireKind(t, err, InvalidScope, "")
			}
		}
	}
}

// validInstance returns a well-formed instance of any group operation.
func validInstance(op optypes.OpType) Instance {
	switch op {
	case optypes.GroupNonUniformElect:
		return Instance{Op: op, Scope: types.ScopeWorkgroup, Result: scalar(dtypes.Bool)}
	case optypes.GroupNonUniformBallot:
		return Instance{Op: op, Scope: types.ScopeSubgroup, Value: TypeOf(scalar(dtypes.Bool)),
			Result: vector(dtypes.Uint32, 4)}
	}
	class := schema.MustLookup(op).Arithmetic.Class
	shape := scalar(class.DTypes()[0])
	if class == schema.ClassFloat || class == schema.ClassInteger {
		shape = vector(dtypes.Float32, 4)
		if class == schema.ClassInteger {
			shape = vector(dtypes.Int32, 4)
		}
	}
	return arithmetic(op, types.GroupOperationReduce, shape, shape)
}

func TestVerifyGroupOperation(t *testing.T) {
	inst := arithmetic(optypes.GroupNonUniformIAdd, types.GroupOperation(9), i32, i32)
	requireKind(t, Verify(inst, nil), InvalidGroupOperation, "")

	// Query operations ignore the group operation.
	elect := validInstance(optypes.GroupNonUniformElect)
	elect.GroupOperation = types.GroupOperation(9)
	require.NoError(t, Verify(elect, nil))
}

func TestVerifyQueryOps(t *testing.T) {
	t.Run("Elect", func(t *testing.T) {
		require.NoError(t, Verify(validInstance(optypes.GroupNonUniformElect), nil))

		inst := validInstance(optypes.GroupNonUniformElect)
		inst.Result = i32
		requireKind(t, Verify(inst, nil), TypeMismatch, schema.RoleResult)

		inst = validInstance(optypes.GroupNonUniformElect)
		inst.Value = TypeOf(scalar(dtypes.Bool))
		requireKind(t, Verify(inst, nil), TypeMismatch, schema.RoleValue)

		inst = validInstance(optypes.GroupNonUniformElect)
		inst.ClusterSize = Constant(u32, 4)
		requireKind(t, Verify(inst, nil), TypeMismatch, schema.RoleClusterSize)
	})

	t.Run("Ballot", func(t *testing.T) {
		require.NoError(t, Verify(validInstance(optypes.GroupNonUniformBallot), nil))

		inst := validInstance(optypes.GroupNonUniformBallot)
		inst.Result = vector(dtypes.Int32, 4)
		require.NoError(t, Verify(inst, nil))

		for _, predicate := range []shapes.Shape{i32, f32, vector(dtypes.Bool, 4)} {
			inst = validInstance(optypes.GroupNonUniformBallot)
			inst.Value = TypeOf(predicate)
			requireKind(t, Verify(inst, nil), TypeMismatch, schema.RolePredicate)
		}

		inst = validInstance(optypes.GroupNonUniformBallot)
		inst.Value = nil
		requireKind(t, Verify(inst, nil), TypeMismatch, schema.RolePredicate)

		for _, result := range []shapes.Shape{vector(dtypes.Uint32, 2), vector(dtypes.Uint64, 4), u32, vector(dtypes.Float32, 4)} {
			inst = validInstance(optypes.GroupNonUniformBallot)
			inst.Result = result
			requireKind(t, Verify(inst, nil), TypeMismatch, schema.RoleResult)
		}
	})
}

func TestVerifyClusterSize(t *testing.T) {
	clustered := func(clusterSize Operand) Instance {
		inst := arithmetic(optypes.GroupNonUniformFAdd, types.GroupOperationClusteredReduce, f32, f32)
		inst.ClusterSize = clusterSize
		return inst
	}

	for _, tc := range []struct {
		size int64
		kind ErrorKind
		ok   bool
	}{
		{size: 0, kind: ClusterSizeNonPositive},
		{size: -4, kind: ClusterSizeNonPositive},
		{size: 3, kind: ClusterSizeNotPowerOfTwo},
		{size: 5, kind: ClusterSizeNotPowerOfTwo},
		{size: 6, kind: ClusterSizeNotPowerOfTwo},
		{size: 1, ok: true},
		{size: 2, ok: true},
		{size: 4, ok: true},
		{size: 8, ok: true},
		{size: 1 << 20, ok: true},
	} {
		t.Run(fmt.Sprintf("size=%d", tc.size), func(t *testing.T) {
			err := Verify(clustered(Constant(u32, tc.size)), nil)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			requireKind(t, err, tc.kind, schema.RoleClusterSize)
		})
	}

	requireKind(t, Verify(clustered(nil), nil), MissingClusterSize, schema.RoleClusterSize)
	requireKind(t, Verify(clustered(TypeOf(u32)), nil), ClusterSizeNotConstant, schema.RoleClusterSize)
	requireKind(t, Verify(clustered(Constant(f32, 4)), nil), TypeMismatch, schema.RoleClusterSize)
	requireKind(t, Verify(clustered(Constant(vector(dtypes.Uint32, 2), 4)), nil), TypeMismatch, schema.RoleClusterSize)
	require.NoError(t, Verify(clustered(Constant(i32, 4)), nil), "signed cluster sizes are accepted")

	// A cluster size above any realistic subgroup size is not a verification concern.
	require.NoError(t, Verify(clustered(Constant(u32, 1<<30)), nil))
}

func TestVerifyClusterSizeOutsideClusteredReduce(t *testing.T) {
	for _, groupOp := range []types.GroupOperation{types.GroupOperationReduce, types.GroupOperationInclusiveScan,
		types.GroupOperationExclusiveScan} {
		// Absent: fine.
		inst := arithmetic(optypes.GroupNonUniformFAdd, groupOp, f32, f32)
		require.NoError(t, Verify(inst, nil))

		// Present, even if it would be invalid under ClusteredReduce: accepted, unconstrained.
		for _, clusterSize := range []Operand{Constant(u32, 3), Constant(u32, 0), TypeOf(u32), TypeOf(f32)} {
			inst.ClusterSize = clusterSize
			require.NoError(t, Verify(inst, nil), "%s with cluster size %v", groupOp, clusterSize)
		}
	}
}

func TestVerifyCheckOrder(t *testing.T) {
	// Everything is wrong: the scope is reported first.
	inst := Instance{
		Op:             optypes.GroupNonUniformIAdd,
		Scope:          types.ScopeDevice,
		GroupOperation: types.GroupOperationClusteredReduce,
		Value:          TypeOf(f32),
		Result:         i32,
		ClusterSize:    Constant(u32, 3),
	}
	requireKind(t, Verify(inst, nil), InvalidScope, "")

	inst.Scope = types.ScopeSubgroup
	requireKind(t, Verify(inst, nil), TypeMismatch, schema.RoleValue)

	inst.Value = TypeOf(u32)
	requireKind(t, Verify(inst, nil), ResultTypeMismatch, "")

	inst.Result = u32
	requireKind(t, Verify(inst, nil), ClusterSizeNotPowerOfTwo, schema.RoleClusterSize)

	noTarget := target.MustNewProfile(target.V1_0, nil, nil)
	inst.ClusterSize = Constant(u32, 4)
	require.NoError(t, Verify(inst, nil))
	requireKind(t, Verify(inst, noTarget), UnsupportedInTarget, "")
}

func TestVerifyEndToEnd(t *testing.T) {
	profile := target.MustNewProfile(target.V1_3,
		[]target.Capability{target.CapabilityShader, target.CapabilityGroupNonUniformClustered}, nil)
	i32x4 := vector(dtypes.Int32, 4)
	inst := func(clusterSize Operand) Instance {
		return Instance{
			Op:             optypes.GroupNonUniformIAdd,
			Scope:          types.ScopeSubgroup,
			GroupOperation: types.GroupOperationClusteredReduce,
			Value:          TypeOf(i32x4),
			Result:         i32x4,
			ClusterSize:    clusterSize,
		}
	}
	require.NoError(t, Verify(inst(Constant(i32, 4)), profile))
	requireKind(t, Verify(inst(Constant(i32, 3)), profile), ClusterSizeNotPowerOfTwo, schema.RoleClusterSize)
	requireKind(t, Verify(inst(nil), profile), MissingClusterSize, schema.RoleClusterSize)

	// No cluster size needed for plain reductions.
	require.NoError(t, Verify(Instance{
		Op:             optypes.GroupNonUniformFAdd,
		Scope:          types.ScopeWorkgroup,
		GroupOperation: types.GroupOperationReduce,
		Value:          TypeOf(f32),
		Result:         f32,
	}, nil))
}

func TestVerifyAvailability(t *testing.T) {
	profile := func(version target.Version, capabilities []target.Capability, extensions ...target.Extension) *target.Profile {
		return target.MustNewProfile(version, capabilities, extensions)
	}
	arithmeticCaps := []target.Capability{target.CapabilityGroupNonUniformArithmetic}
	reduce := arithmetic(optypes.GroupNonUniformFMin, types.GroupOperationReduce, f32, f32)

	t.Run("version window", func(t *testing.T) {
		for _, v := range []target.Version{target.V1_0, target.V1_1, target.V1_2} {
			requireKind(t, Verify(reduce, profile(v, arithmeticCaps)), UnsupportedInTarget, "")
		}
		for _, v := range []target.Version{target.V1_3, target.V1_4, target.V1_5, target.V1_6} {
			require.NoError(t, Verify(reduce, profile(v, arithmeticCaps)), "version %s", v)
		}
	})

	t.Run("operation capabilities", func(t *testing.T) {
		requireKind(t, Verify(reduce, profile(target.V1_3, []target.Capability{target.CapabilityShader})),
			UnsupportedInTarget, "")

		elect := validInstance(optypes.GroupNonUniformElect)
		require.NoError(t, Verify(elect, profile(target.V1_3, []target.Capability{target.CapabilityGroupNonUniform})))
		// Implied GroupNonUniform.
		require.NoError(t, Verify(elect, profile(target.V1_3, []target.Capability{target.CapabilityGroupNonUniformVote})))
		requireKind(t, Verify(elect, profile(target.V1_3, nil)), UnsupportedInTarget, "")

		ballot := validInstance(optypes.GroupNonUniformBallot)
		require.NoError(t, Verify(ballot, profile(target.V1_3, []target.Capability{target.CapabilityGroupNonUniformBallot})))
		requireKind(t, Verify(ballot, profile(target.V1_3, []target.Capability{target.CapabilityGroupNonUniform})),
			UnsupportedInTarget, "")
	})

	t.Run("capabilities requiring extensions", func(t *testing.T) {
		// PartitionedNV + Kernel would allow a Reduce, but only with the NV extension enabled.
		caps := []target.Capability{target.CapabilityGroupNonUniformPartitionedNV, target.CapabilityKernel}
		requireKind(t, Verify(reduce, profile(target.V1_3, caps)), UnsupportedInTarget, "")
		require.NoError(t, Verify(reduce, profile(target.V1_3, caps, target.ExtensionNVShaderSubgroupPartitioned)))
	})

	t.Run("group operation capabilities", func(t *testing.T) {
		clustered := arithmetic(optypes.GroupNonUniformFMin, types.GroupOperationClusteredReduce, f32, f32)
		clustered.ClusterSize = Constant(u32, 2)
		err := Verify(clustered, profile(target.V1_3, arithmeticCaps))
		requireKind(t, err, UnsupportedInTarget, "")
		assert.Contains(t, err.Error(), "GroupNonUniformClustered")
		require.NoError(t, Verify(clustered, profile(target.V1_3, []target.Capability{target.CapabilityGroupNonUniformClustered})))

		// Clustered alone does not enable the plain group operations.
		requireKind(t, Verify(reduce, profile(target.V1_3, []target.Capability{target.CapabilityGroupNonUniformClustered})),
			UnsupportedInTarget, "")
	})

	t.Run("element capabilities", func(t *testing.T) {
		for _, tc := range []struct {
			shape      shapes.Shape
			capability target.Capability
		}{
			{scalar(dtypes.Float16), target.CapabilityFloat16},
			{vector(dtypes.Float64, 2), target.CapabilityFloat64},
			{scalar(dtypes.Int8), target.CapabilityInt8},
			{scalar(dtypes.Uint16), target.CapabilityInt16},
			{vector(dtypes.Int64, 4), target.CapabilityInt64},
			{vector(dtypes.Int32, 8), target.CapabilityVector16},
		} {
			op := optypes.GroupNonUniformIAdd
			if tc.shape.DType.IsFloat() {
				op = optypes.GroupNonUniformFAdd
			}
			inst := arithmetic(op, types.GroupOperationReduce, tc.shape, tc.shape)
			err := Verify(inst, profile(target.V1_3, arithmeticCaps))
			requireKind(t, err, UnsupportedInTarget, schema.RoleResult)
			assert.Contains(t, err.Error(), tc.capability.String())
			require.NoError(t, Verify(inst, profile(target.V1_3, append([]target.Capability{tc.capability}, arithmeticCaps...))))
		}

		// 64-bit cluster sizes need Int64 too.
		clustered := arithmetic(optypes.GroupNonUniformIAdd, types.GroupOperationClusteredReduce, i32, i32)
		clustered.ClusterSize = Constant(scalar(dtypes.Uint64), 4)
		clusteredCaps := []target.Capability{target.CapabilityGroupNonUniformClustered}
		requireKind(t, Verify(clustered, profile(target.V1_3, clusteredCaps)), UnsupportedInTarget, schema.RoleClusterSize)
	})
}

func TestNotAGroupOperation(t *testing.T) {
	err := Verify(Instance{Op: optypes.Constant, Scope: types.ScopeSubgroup}, nil)
	require.Error(t, err)
	_, ok := KindOf(err)
	assert.False(t, ok, "programming errors are not verification errors")
}

func TestErrors(t *testing.T) {
	err := Verify(arithmetic(optypes.GroupNonUniformIAdd, types.GroupOperationReduce, f32, f32), nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, TypeMismatch))
	assert.False(t, IsKind(err, ResultTypeMismatch))
	e := AsError(err)
	require.NotNil(t, e)
	assert.Equal(t, optypes.GroupNonUniformIAdd, e.Op)
	assert.Contains(t, err.Error(), "GroupNonUniformIAdd: TypeMismatch(value)")

	// Still found after wrapping.
	wrapped := errors.WithMessage(err, "while building main")
	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, TypeMismatch, kind)

	assert.Nil(t, AsError(errors.New("something else")))
	assert.False(t, IsKind(nil, TypeMismatch))
	assert.Contains(t, fmt.Sprintf("%+v", err), "verifier.newError", "errors carry a stack trace")
}
