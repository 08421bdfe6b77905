package shapes

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestShape(t *testing.T) {
	invalidShape := Invalid()
	if invalidShape.Ok() {
		t.Error("Invalid().Ok() should be false")
	}
	if invalidShape.IsScalar() || invalidShape.IsVector() {
		t.Error("Invalid() should be neither scalar nor vector")
	}
	if invalidShape.Width() != 0 {
		t.Errorf("Invalid().Width() = %d, want 0", invalidShape.Width())
	}

	shape0 := Scalar(dtypes.Float32)
	if !shape0.Ok() || !shape0.IsScalar() || shape0.IsVector() {
		t.Errorf("%s should be a valid scalar", shape0)
	}
	if shape0.Rank() != 0 || shape0.Width() != 1 || shape0.Size() != 1 {
		t.Errorf("unexpected rank/width/size for %s", shape0)
	}

	shape1 := Vector(dtypes.Int32, 4)
	if !shape1.IsVector() || shape1.IsScalar() {
		t.Errorf("%s should be a vector", shape1)
	}
	if shape1.Width() != 4 || shape1.Size() != 4 {
		t.Errorf("unexpected width/size for %s", shape1)
	}
	assert.True(t, shape1.Equal(Make(dtypes.Int32, 4)))
	assert.False(t, shape1.Equal(Vector(dtypes.Int32, 3)))
	assert.False(t, shape1.Equal(Vector(dtypes.Uint32, 4)))
	assert.False(t, shape1.Equal(Scalar(dtypes.Int32)))

	matrix := Make(dtypes.Float32, 2, 3)
	assert.False(t, matrix.IsScalar())
	assert.False(t, matrix.IsVector())
	assert.Equal(t, 0, matrix.Width())
	assert.Equal(t, 6, matrix.Size())
}

func TestClone(t *testing.T) {
	shape := Vector(dtypes.Float64, 2)
	clone := shape.Clone()
	clone.Dimensions[0] = 3
	assert.Equal(t, 2, shape.Dimensions[0])

	dims := []int{4}
	shape = Make(dtypes.Int8, dims...)
	dims[0] = 8
	assert.Equal(t, 4, shape.Width(), "Make must not alias the dimensions given")
}

func TestToSPIRV(t *testing.T) {
	for _, tc := range []struct {
		shape Shape
		want  string
	}{
		{Scalar(dtypes.Int32), "i32"},
		{Scalar(dtypes.Uint32), "ui32"},
		{Scalar(dtypes.Bool), "i1"},
		{Scalar(dtypes.Float16), "f16"},
		{Vector(dtypes.Uint32, 4), "vector<4xui32>"},
		{Vector(dtypes.Float32, 3), "vector<3xf32>"},
		{Make(dtypes.Int8, 2, 2), "tensor<2x2xi8>"},
	} {
		if got := tc.shape.ToSPIRV(); got != tc.want {
			t.Errorf("%s.ToSPIRV() = %q, want %q", tc.shape, got, tc.want)
		}
	}
	assert.Equal(t, "("+dtypes.Int32.String()+")[4]", Vector(dtypes.Int32, 4).String())
	assert.Equal(t, "("+dtypes.Float32.String()+")", Scalar(dtypes.Float32).String())
	assert.Equal(t, "(invalid)", Invalid().String())
}

func TestFromAnyValue(t *testing.T) {
	shape, err := FromAnyValue(int32(3))
	require.NoError(t, err)
	assert.True(t, shape.Equal(Scalar(dtypes.Int32)))

	shape, err = FromAnyValue([]float32{1, 2, 3, 4})
	require.NoError(t, err)
	assert.True(t, shape.Equal(Vector(dtypes.Float32, 4)))

	shape, err = FromAnyValue(float16.Fromfloat32(1))
	require.NoError(t, err)
	assert.True(t, shape.Equal(Scalar(dtypes.Float16)))

	shape, err = FromAnyValue([]float16.Float16{0, 0})
	require.NoError(t, err)
	assert.True(t, shape.Equal(Vector(dtypes.Float16, 2)))

	_, err = FromAnyValue([][]float32{{1, 2}, {3, 4}})
	require.Error(t, err)

	_, err = FromAnyValue([]int32{})
	require.Error(t, err)

	_, err = FromAnyValue(nil)
	require.Error(t, err)

	_, err = FromAnyValue("text")
	require.Error(t, err)
}
