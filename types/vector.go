package types

import (
	"math"

	"golang.org/x/image/math/f32"
)

const floatCmpEpsilon = 1e-9

// Vec4 holds four 32-bit float lanes. All arithmetic is lane-wise; it is the
// register type for every packet kernel in the tracer.
type Vec4 f32.Vec4

// Vec3 is a point or direction in 3-space. It shares the four lane layout
// with Vec4; the fourth lane is kept at zero.
type Vec3 f32.Vec4

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z, 0}
}

// Define a 4 component vector.
func XYZW(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Broadcast a scalar to all four lanes.
func Splat(s float32) Vec4 {
	return Vec4{s, s, s, s}
}

// Expand a 3 component vector to a Vec4.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// Reduce a 4 component vector to a Vec3.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2], 0}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2], 0}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2], 0}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s, 0}
}

// Multiply two vectors component-wise.
func (v Vec3) MulVec(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2], 0}
}

// Get 3 component vector length.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

// Normalize 3 component vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < floatCmpEpsilon {
		return Vec3{}
	}
	return v.Mul(1.0 / l)
}

// Calculate dot product of 2 vectors.
func (v Vec3) Dot(v2 Vec3) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{
		v[1]*v2[2] - v[2]*v2[1],
		v[2]*v2[0] - v[0]*v2[2],
		v[0]*v2[1] - v[1]*v2[0],
		0,
	}
}

// Component-wise square root.
func (v Vec3) Sqrt() Vec3 {
	return Vec3{
		float32(math.Sqrt(float64(v[0]))),
		float32(math.Sqrt(float64(v[1]))),
		float32(math.Sqrt(float64(v[2]))),
		0,
	}
}

// Get the largest of the three components.
func (v Vec3) MaxComponent() float32 {
	out := v[0]
	if v[1] > out {
		out = v[1]
	}
	if v[2] > out {
		out = v[2]
	}
	return out
}

// Calc min component from two vectors.
func MinVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] < out[0] {
		out[0] = v2[0]
	}
	if v2[1] < out[1] {
		out[1] = v2[1]
	}
	if v2[2] < out[2] {
		out[2] = v2[2]
	}
	return out
}

// Calc max component from two vectors.
func MaxVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] > out[0] {
		out[0] = v2[0]
	}
	if v2[1] > out[1] {
		out[1] = v2[1]
	}
	if v2[2] > out[2] {
		out[2] = v2[2]
	}
	return out
}

// Add a vector lane-wise.
func (v Vec4) Add(v2 Vec4) Vec4 {
	return Vec4{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2], v[3] + v2[3]}
}

// Subtract a vector lane-wise.
func (v Vec4) Sub(v2 Vec4) Vec4 {
	return Vec4{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2], v[3] - v2[3]}
}

// Multiply two vectors lane-wise.
func (v Vec4) Mul(v2 Vec4) Vec4 {
	return Vec4{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2], v[3] * v2[3]}
}

// Divide two vectors lane-wise. Divisions by zero produce infinities which
// the slab test filters explicitly.
func (v Vec4) Div(v2 Vec4) Vec4 {
	return Vec4{v[0] / v2[0], v[1] / v2[1], v[2] / v2[2], v[3] / v2[3]}
}

// Multiply a 4 component vector with a scalar.
func (v Vec4) MulS(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Lane-wise minimum of two vectors. When a lane compares unordered the
// second operand wins, matching the hardware min instruction.
func (v Vec4) Min(v2 Vec4) Vec4 {
	out := v2
	for i := 0; i < 4; i++ {
		if v[i] < v2[i] {
			out[i] = v[i]
		}
	}
	return out
}

// Lane-wise maximum of two vectors. When a lane compares unordered the
// second operand wins, matching the hardware max instruction.
func (v Vec4) Max(v2 Vec4) Vec4 {
	out := v2
	for i := 0; i < 4; i++ {
		if v[i] > v2[i] {
			out[i] = v[i]
		}
	}
	return out
}

// Lane-wise square root.
func (v Vec4) Sqrt() Vec4 {
	return Vec4{
		float32(math.Sqrt(float64(v[0]))),
		float32(math.Sqrt(float64(v[1]))),
		float32(math.Sqrt(float64(v[2]))),
		float32(math.Sqrt(float64(v[3]))),
	}
}

// Calculate dot product over all four lanes.
func (v Vec4) Dot(v2 Vec4) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2] + v[3]*v2[3]
}

// Horizontal sum of all four lanes.
func (v Vec4) Sum() float32 {
	return v[0] + v[1] + v[2] + v[3]
}

// Cross product on the low three lanes; the fourth lane is zeroed.
func (v Vec4) Cross(v2 Vec4) Vec4 {
	return Vec4{
		v[1]*v2[2] - v[2]*v2[1],
		v[2]*v2[0] - v[0]*v2[2],
		v[0]*v2[1] - v[1]*v2[0],
		0,
	}
}

// Get 4 component vector length.
func (v Vec4) Len() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize 4 component vector.
func (v Vec4) Normalize() Vec4 {
	l := v.Len()
	if l < floatCmpEpsilon {
		return Vec4{}
	}
	return v.MulS(1.0 / l)
}
