package schema

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/groupops/internal/optypes"
	"github.com/gomlx/groupops/types/shapes"
	"github.com/gomlx/groupops/types/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, op := range Ops() {
		s, err := Lookup(op)
		require.NoError(t, err, "Lookup(%s)", op)
		assert.Equal(t, op, s.Op)
		assert.Equal(t, target.V1_3, s.Availability.MinVersion)
		assert.Equal(t, target.V1_6, s.Availability.MaxVersion)
		assert.NotEmpty(t, s.Availability.CapabilitiesOneOf)
		assert.Equal(t, op.IsArithmetic(), s.IsArithmetic())
		assert.Equal(t, op.IsArithmetic(), s.HasGroupOperation)
	}
	assert.Len(t, Ops(), 12)
	assert.Len(t, ArithmeticOps(), 10)

	for _, op := range []optypes.OpType{optypes.Invalid, optypes.Constant, optypes.FuncReturn, optypes.Last, optypes.OpType(99)} {
		_, err := Lookup(op)
		require.Error(t, err, "Lookup(%s)", op)
		assert.Panics(t, func() { MustLookup(op) })
	}
}

func TestLookupReturnsCopies(t *testing.T) {
	s := MustLookup(optypes.GroupNonUniformIAdd)
	s.Operands[0].Role = "tampered"
	s.Operands[0].Constraint.VectorWidths[0] = 7
	s.Availability.CapabilitiesOneOf[0] = target.CapabilityShader
	s.Arithmetic.Identity = IdentityOne

	s2 := MustLookup(optypes.GroupNonUniformIAdd)
	assert.Equal(t, RoleValue, s2.Operands[0].Role)
	assert.Equal(t, 2, s2.Operands[0].Constraint.VectorWidths[0])
	assert.Equal(t, target.CapabilityGroupNonUniformArithmetic, s2.Availability.CapabilitiesOneOf[0])
	assert.Equal(t, IdentityZero, s2.Arithmetic.Identity)
}

func TestIdentityTable(t *testing.T) {
	want := map[optypes.OpType]IdentityKind{
		optypes.GroupNonUniformFAdd: IdentityZero,
		optypes.GroupNonUniformIAdd: IdentityZero,
		optypes.GroupNonUniformUMax: IdentityZero,
		optypes.GroupNonUniformFMul: IdentityOne,
		optypes.GroupNonUniformIMul: IdentityOne,
		optypes.GroupNonUniformFMax: IdentityNegativeInfinity,
		optypes.GroupNonUniformFMin: IdentityPositiveInfinity,
		optypes.GroupNonUniformSMax: IdentitySignedMin,
		optypes.GroupNonUniformSMin: IdentitySignedMax,
		optypes.GroupNonUniformUMin: IdentityUnsignedMax,
	}
	require.Len(t, want, len(ArithmeticOps()))
	for _, op := range ArithmeticOps() {
		s := MustLookup(op)
		require.NotNil(t, s.Arithmetic, "op %s", op)
		assert.Equal(t, want[op], s.Arithmetic.Identity, "identity of %s", op)
	}
}

func TestQueryOps(t *testing.T) {
	elect := MustLookup(optypes.GroupNonUniformElect)
	assert.Empty(t, elect.Operands)
	assert.Nil(t, elect.Arithmetic)
	assert.True(t, elect.Result.Constraint.Accepts(shapes.Scalar(dtypes.Bool)))
	assert.False(t, elect.Result.Constraint.Accepts(shapes.Vector(dtypes.Bool, 2)))
	assert.Equal(t, []target.Capability{target.CapabilityGroupNonUniform}, elect.Availability.CapabilitiesOneOf)

	ballot := MustLookup(optypes.GroupNonUniformBallot)
	require.NotNil(t, ballot.Operand(RolePredicate))
	assert.Nil(t, ballot.Operand(RoleValue))
	assert.True(t, ballot.Operand(RolePredicate).Constraint.Accepts(shapes.Scalar(dtypes.Bool)))
	assert.False(t, ballot.Operand(RolePredicate).Constraint.Accepts(shapes.Scalar(dtypes.Int32)))
	result := ballot.Result.Constraint
	assert.True(t, result.Accepts(shapes.Vector(dtypes.Uint32, 4)))
	assert.True(t, result.Accepts(shapes.Vector(dtypes.Int32, 4)))
	assert.False(t, result.Accepts(shapes.Vector(dtypes.Uint64, 4)))
	assert.False(t, result.Accepts(shapes.Vector(dtypes.Uint32, 3)))
	assert.False(t, result.Accepts(shapes.Scalar(dtypes.Uint32)))
}

func TestArithmeticOperands(t *testing.T) {
	s := MustLookup(optypes.GroupNonUniformFAdd)
	require.Len(t, s.Operands, 2)
	assert.Equal(t, RoleValue, s.Operands[0].Role)
	assert.False(t, s.Operands[0].Optional)
	assert.Equal(t, RoleClusterSize, s.Operands[1].Role)
	assert.True(t, s.Operands[1].Optional)
	assert.Equal(t, RoleValue, s.Result.SameAs)
}

func TestElementClass(t *testing.T) {
	for _, tc := range []struct {
		class ElementClass
		in    []dtypes.DType
		out   []dtypes.DType
	}{
		{ClassBool, []dtypes.DType{dtypes.Bool}, []dtypes.DType{dtypes.Int8, dtypes.Float32}},
		{ClassFloat, []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64},
			[]dtypes.DType{dtypes.BFloat16, dtypes.Int32, dtypes.Complex64, dtypes.Bool}},
		{ClassInteger, []dtypes.DType{dtypes.Int8, dtypes.Int64, dtypes.Uint16, dtypes.Uint32},
			[]dtypes.DType{dtypes.Bool, dtypes.Float32}},
		{ClassSignedInteger, []dtypes.DType{dtypes.Int16, dtypes.Int32}, []dtypes.DType{dtypes.Uint32, dtypes.Float64}},
		{ClassUnsignedInteger, []dtypes.DType{dtypes.Uint8, dtypes.Uint64}, []dtypes.DType{dtypes.Int32, dtypes.Bool}},
	} {
		for _, dtype := range tc.in {
			assert.True(t, tc.class.Has(dtype), "%s should have %s", tc.class, dtype)
			assert.Contains(t, tc.class.DTypes(), dtype)
		}
		for _, dtype := range tc.out {
			assert.False(t, tc.class.Has(dtype), "%s should not have %s", tc.class, dtype)
			assert.NotContains(t, tc.class.DTypes(), dtype)
		}
	}
	assert.Len(t, ClassInteger.DTypes(), 8)
}

func TestTypeConstraint(t *testing.T) {
	c := ScalarOrVectorOf(ClassFloat)
	assert.True(t, c.Accepts(shapes.Scalar(dtypes.Float32)))
	for _, width := range shapes.VectorWidths {
		assert.True(t, c.Accepts(shapes.Vector(dtypes.Float16, width)), "width %d", width)
	}
	assert.False(t, c.Accepts(shapes.Vector(dtypes.Float32, 5)))
	assert.False(t, c.Accepts(shapes.Vector(dtypes.Float32, 1)))
	assert.False(t, c.Accepts(shapes.Make(dtypes.Float32, 2, 2)))
	assert.False(t, c.Accepts(shapes.Invalid()))
	assert.False(t, c.Accepts(shapes.Scalar(dtypes.Int32)))

	assert.Equal(t, "scalar or vector<2|3|4|8|16> of Float", c.String())
	assert.Equal(t, "scalar of Bool", ScalarOf(ClassBool).String())
	ballot := MustLookup(optypes.GroupNonUniformBallot)
	assert.Equal(t, "vector<4> of 32-bit Integer", ballot.Result.Constraint.String())
}
