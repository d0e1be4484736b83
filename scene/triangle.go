package scene

import "github.com/ndoll1998/FairPT/types"

// TriangleCollection packs triangles four per packet in structure-of-arrays
// form. Each packet stores vertex A and the two edge vectors B-A and C-A,
// one Vec4 per axis, so the intersection kernel touches all four lanes with
// plain lane arithmetic.
type TriangleCollection struct {
	ax, ay, az []types.Vec4
	ux, uy, uz []types.Vec4
	vx, vy, vz []types.Vec4

	tris []*Triangle
}

// NewTriangleCollection packs the given triangles.
func NewTriangleCollection(tris ...*Triangle) *TriangleCollection {
	c := &TriangleCollection{}
	for _, t := range tris {
		c.PushBack(t)
	}
	return c
}

// Len returns the number of triangles in the collection.
func (c *TriangleCollection) Len() int {
	return len(c.tris)
}

// PushBack appends a triangle. A new packet starts with the triangle
// broadcast over all four lanes so padding lanes always hold real geometry;
// later triangles overwrite lanes one to three.
func (c *TriangleCollection) PushBack(t *Triangle) {
	u := t.B.Sub(t.A)
	v := t.C.Sub(t.A)
	lane := len(c.tris) % 4
	if lane == 0 {
		c.ax = append(c.ax, types.Splat(t.A[0]))
		c.ay = append(c.ay, types.Splat(t.A[1]))
		c.az = append(c.az, types.Splat(t.A[2]))
		c.ux = append(c.ux, types.Splat(u[0]))
		c.uy = append(c.uy, types.Splat(u[1]))
		c.uz = append(c.uz, types.Splat(u[2]))
		c.vx = append(c.vx, types.Splat(v[0]))
		c.vy = append(c.vy, types.Splat(v[1]))
		c.vz = append(c.vz, types.Splat(v[2]))
	} else {
		k := len(c.ax) - 1
		c.ax[k][lane], c.ay[k][lane], c.az[k][lane] = t.A[0], t.A[1], t.A[2]
		c.ux[k][lane], c.uy[k][lane], c.uz[k][lane] = u[0], u[1], u[2]
		c.vx[k][lane], c.vy[k][lane], c.vz[k][lane] = v[0], v[1], v[2]
	}
	c.tris = append(c.tris, t)
}

// NumPackets returns the number of four-lane packets.
func (c *TriangleCollection) NumPackets() int {
	return len(c.ax)
}

// PacketIntersect runs the Möller-Trumbore test on packet k, all four lanes
// at once. Lanes that miss come back negative.
func (c *TriangleCollection) PacketIntersect(r *Ray4, k int) types.Vec4 {
	ux, uy, uz := c.ux[k], c.uy[k], c.uz[k]
	vx, vy, vz := c.vx[k], c.vy[k], c.vz[k]
	dx, dy, dz := r.Direction[0], r.Direction[1], r.Direction[2]

	// h = direction x edge2
	hx := dy.Mul(vz).Sub(dz.Mul(vy))
	hy := dz.Mul(vx).Sub(dx.Mul(vz))
	hz := dx.Mul(vy).Sub(dy.Mul(vx))

	a := ux.Mul(hx).Add(uy.Mul(hy)).Add(uz.Mul(hz))
	mask := a.Abs().CmpGT(types.Splat(epsParallel))

	f := types.Splat(1).Div(a)
	sx := r.Origin[0].Sub(c.ax[k])
	sy := r.Origin[1].Sub(c.ay[k])
	sz := r.Origin[2].Sub(c.az[k])

	u := f.Mul(sx.Mul(hx).Add(sy.Mul(hy)).Add(sz.Mul(hz)))
	mask = mask.And(u.CmpGT(types.Splat(0))).And(u.CmpLT(types.Splat(1)))

	// q = s x edge1
	qx := sy.Mul(uz).Sub(sz.Mul(uy))
	qy := sz.Mul(ux).Sub(sx.Mul(uz))
	qz := sx.Mul(uy).Sub(sy.Mul(ux))

	v := f.Mul(dx.Mul(qx).Add(dy.Mul(qy)).Add(dz.Mul(qz)))
	mask = mask.And(v.CmpGT(types.Splat(0))).And(u.Add(v).CmpLT(types.Splat(1)))

	t := f.Mul(vx.Mul(qx).Add(vy.Mul(qy)).Add(vz.Mul(qz)))
	mask = mask.And(t.CmpGT(types.Splat(epsIntersect)))

	return types.Splat(-1).Take(t, mask)
}

// FillHit completes the hit record for triangle i at parameter t. Padding
// lanes replicate the first triangle of their packet.
func (c *TriangleCollection) FillHit(r *Ray, i int, t float32, rec *HitRecord) {
	if i >= len(c.tris) {
		i = (i / 4) * 4
	}
	tri := c.tris[i]
	rec.T = t
	rec.P = r.Origin.Add(r.Direction.Mul(t))
	rec.N = tri.Normal()
	rec.V = r.Direction
	rec.Material = tri.Material
	rec.Valid = true
}
