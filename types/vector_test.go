package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(4, 5, 6)

	assert.Equal(t, XYZ(5, 7, 9), a.Add(b))
	assert.Equal(t, XYZ(-3, -3, -3), a.Sub(b))
	assert.Equal(t, XYZ(2, 4, 6), a.Mul(2))
	assert.Equal(t, XYZ(4, 10, 18), a.MulVec(b))
	assert.Equal(t, float32(32), a.Dot(b))
}

func TestVec3Cross(t *testing.T) {
	type spec struct {
		a, b, exp Vec3
	}
	specs := []spec{
		{XYZ(1, 0, 0), XYZ(0, 1, 0), XYZ(0, 0, 1)},
		{XYZ(0, 1, 0), XYZ(1, 0, 0), XYZ(0, 0, -1)},
		{XYZ(0, 0, 1), XYZ(1, 0, 0), XYZ(0, 1, 0)},
	}
	for index, s := range specs {
		if got := s.a.Cross(s.b); got != s.exp {
			t.Fatalf("[spec %d] expected cross product %v; got %v", index, s.exp, got)
		}
	}
}

func TestVec3Normalize(t *testing.T) {
	v := XYZ(3, 0, 4).Normalize()
	assert.InDelta(t, 0.6, v[0], 1e-6)
	assert.InDelta(t, 0.8, v[2], 1e-6)
	assert.InDelta(t, 1.0, v.Len(), 1e-6)

	// Degenerate input stays at zero instead of producing NaNs.
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestVec3MinMax(t *testing.T) {
	a := XYZ(1, 5, 3)
	b := XYZ(4, 2, 3)
	assert.Equal(t, XYZ(1, 2, 3), MinVec3(a, b))
	assert.Equal(t, XYZ(4, 5, 3), MaxVec3(a, b))
	assert.Equal(t, float32(5), a.MaxComponent())
}

func TestVec4LaneArithmetic(t *testing.T) {
	a := XYZW(1, 2, 3, 4)
	b := XYZW(4, 3, 2, 1)

	assert.Equal(t, XYZW(5, 5, 5, 5), a.Add(b))
	assert.Equal(t, XYZW(-3, -1, 1, 3), a.Sub(b))
	assert.Equal(t, XYZW(4, 6, 6, 4), a.Mul(b))
	assert.Equal(t, XYZW(2, 4, 6, 8), a.MulS(2))
	assert.Equal(t, float32(20), a.Dot(b))
	assert.Equal(t, float32(10), a.Sum())
}

func TestVec4Div(t *testing.T) {
	v := XYZW(1, -1, 0, 2).Div(Splat(0))
	assert.True(t, math.IsInf(float64(v[0]), 1))
	assert.True(t, math.IsInf(float64(v[1]), -1))
	assert.True(t, math.IsNaN(float64(v[2])))
}

func TestVec4MinMaxUnordered(t *testing.T) {
	nan := float32(math.NaN())

	// The second operand wins on unordered lanes, so a NaN in the first
	// operand is replaced while a NaN in the second sticks.
	got := XYZW(nan, 2, 3, 4).Min(XYZW(1, nan, 1, 5))
	assert.Equal(t, float32(1), got[0])
	assert.True(t, math.IsNaN(float64(got[1])))
	assert.Equal(t, float32(1), got[2])
	assert.Equal(t, float32(4), got[3])

	got = XYZW(nan, 2, 3, 4).Max(XYZW(1, nan, 1, 5))
	assert.Equal(t, float32(1), got[0])
	assert.True(t, math.IsNaN(float64(got[1])))
	assert.Equal(t, float32(3), got[2])
	assert.Equal(t, float32(5), got[3])
}

func TestVec4Broadcast(t *testing.T) {
	assert.Equal(t, XYZW(2, 2, 2, 2), Splat(2))

	v3 := XYZ(1, 2, 3)
	assert.Equal(t, XYZW(1, 2, 3, 7), v3.Vec4(7))
	assert.Equal(t, v3, v3.Vec4(7).Vec3())
}
