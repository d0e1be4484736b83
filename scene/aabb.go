package scene

import (
	"math"

	"github.com/ndoll1998/FairPT/types"
)

// AABB is an axis-aligned bounding box given by its component-wise low and
// high corners.
type AABB struct {
	Low  types.Vec3
	High types.Vec3
}

// NewAABB creates a box from two arbitrary corners, canonicalizing them so
// that Low is the component-wise minimum.
func NewAABB(a, b types.Vec3) AABB {
	return AABB{
		Low:  types.MinVec3(a, b),
		High: types.MaxVec3(a, b),
	}
}

// Center returns the box midpoint.
func (b AABB) Center() types.Vec3 {
	return b.Low.Add(b.High).Mul(0.5)
}

// Union returns the smallest box enclosing both operands.
func (b AABB) Union(b2 AABB) AABB {
	return AABB{
		Low:  types.MinVec3(b.Low, b2.Low),
		High: types.MaxVec3(b.High, b2.High),
	}
}

// Extend grows the box to cover the given point.
func (b AABB) Extend(p types.Vec3) AABB {
	return AABB{
		Low:  types.MinVec3(b.Low, p),
		High: types.MaxVec3(b.High, p),
	}
}

// minf and maxf pick operands the way a hardware min/max lane does: when
// either side is NaN the second operand wins. The slab test relies on this
// to discard the NaN produced by a 0 * Inf corner case.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Cast performs the slab test against a single ray. Axis slabs the ray runs
// parallel to produce infinite slab intervals which drop out of the min/max
// reduction; a hit requires the interval to be non-empty and to end in front
// of the origin.
func (b AABB) Cast(r *Ray) bool {
	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))
	for i := 0; i < 3; i++ {
		inv := 1.0 / r.Direction[i]
		t1 := (b.Low[i] - r.Origin[i]) * inv
		t2 := (b.High[i] - r.Origin[i]) * inv
		tmin = maxf(tmin, minf(t1, t2))
		tmax = minf(tmax, maxf(t1, t2))
	}
	return tmax >= 0 && tmax >= tmin
}

// AABB4 packs four boxes in component-separated form so one ray can be slab
// tested against all of them at once.
type AABB4 struct {
	Low  [3]types.Vec4
	High [3]types.Vec4
}

// NewAABB4 packs four boxes, box a in lane 0 through box d in lane 3.
func NewAABB4(a, b, c, d AABB) AABB4 {
	var p AABB4
	for i := 0; i < 3; i++ {
		p.Low[i] = types.XYZW(a.Low[i], b.Low[i], c.Low[i], d.Low[i])
		p.High[i] = types.XYZW(a.High[i], b.High[i], c.High[i], d.High[i])
	}
	return p
}

// Cast slab tests a broadcast ray against all four boxes and returns the
// lane mask of boxes hit. Grazing hits where the entry and exit parameters
// coincide count as hits. Lanes whose interval is inverted miss; infinities
// from parallel axes cancel out of the lane min/max the same way they do in
// the scalar test.
func (b *AABB4) Cast(r *Ray4) types.Mask4 {
	entry := types.Splat(float32(math.Inf(-1)))
	exit := types.Splat(float32(math.Inf(1)))
	for i := 0; i < 3; i++ {
		inv := types.Splat(1).Div(r.Direction[i])
		t1 := b.Low[i].Sub(r.Origin[i]).Mul(inv)
		t2 := b.High[i].Sub(r.Origin[i]).Mul(inv)
		entry = entry.Max(t1.Min(t2))
		exit = exit.Min(t1.Max(t2))
	}
	return entry.CmpLE(exit)
}
