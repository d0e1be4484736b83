package types

import "math"

// Mask4 is the result of a lane-wise comparison: every lane is either all
// ones or all zeros, so it can blend vectors at the bit level exactly like a
// hardware compare register.
type Mask4 [4]uint32

const laneTrue uint32 = 0xffffffff

// MaskNone returns the mask with no lanes set.
func MaskNone() Mask4 {
	return Mask4{}
}

// MaskAll returns the mask with all four lanes set.
func MaskAll() Mask4 {
	return Mask4{laneTrue, laneTrue, laneTrue, laneTrue}
}

// Bitwise and of two masks.
func (m Mask4) And(m2 Mask4) Mask4 {
	return Mask4{m[0] & m2[0], m[1] & m2[1], m[2] & m2[2], m[3] & m2[3]}
}

// Bitwise or of two masks.
func (m Mask4) Or(m2 Mask4) Mask4 {
	return Mask4{m[0] | m2[0], m[1] | m2[1], m[2] | m2[2], m[3] | m2[3]}
}

// Bitwise complement of the mask.
func (m Mask4) Not() Mask4 {
	return Mask4{^m[0], ^m[1], ^m[2], ^m[3]}
}

// MoveMask packs the four lanes into the low four bits of an int, lane 0 in
// bit 0.
func (m Mask4) MoveMask() int {
	out := 0
	for i := 0; i < 4; i++ {
		if m[i] != 0 {
			out |= 1 << i
		}
	}
	return out
}

// Lane reports whether lane i of the mask is set.
func (m Mask4) Lane(i int) bool {
	return m[i] != 0
}

// Lane-wise less-than comparison.
func (v Vec4) CmpLT(v2 Vec4) Mask4 {
	var m Mask4
	for i := 0; i < 4; i++ {
		if v[i] < v2[i] {
			m[i] = laneTrue
		}
	}
	return m
}

// Lane-wise less-or-equal comparison.
func (v Vec4) CmpLE(v2 Vec4) Mask4 {
	var m Mask4
	for i := 0; i < 4; i++ {
		if v[i] <= v2[i] {
			m[i] = laneTrue
		}
	}
	return m
}

// Lane-wise greater-than comparison.
func (v Vec4) CmpGT(v2 Vec4) Mask4 {
	var m Mask4
	for i := 0; i < 4; i++ {
		if v[i] > v2[i] {
			m[i] = laneTrue
		}
	}
	return m
}

// Lane-wise greater-or-equal comparison.
func (v Vec4) CmpGE(v2 Vec4) Mask4 {
	var m Mask4
	for i := 0; i < 4; i++ {
		if v[i] >= v2[i] {
			m[i] = laneTrue
		}
	}
	return m
}

// Take blends two vectors at the bit level: lanes where the mask is set come
// from other, the rest keep the receiver's value.
func (v Vec4) Take(other Vec4, m Mask4) Vec4 {
	var out Vec4
	for i := 0; i < 4; i++ {
		bits := math.Float32bits(v[i])&^m[i] | math.Float32bits(other[i])&m[i]
		out[i] = math.Float32frombits(bits)
	}
	return out
}

// Lane-wise absolute value.
func (v Vec4) Abs() Vec4 {
	var out Vec4
	for i := 0; i < 4; i++ {
		out[i] = math.Float32frombits(math.Float32bits(v[i]) &^ (1 << 31))
	}
	return out
}
