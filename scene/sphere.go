package scene

import "github.com/ndoll1998/FairPT/types"

// SphereCollection packs spheres four per packet in structure-of-arrays
// form: center per axis plus radius, one Vec4 each.
type SphereCollection struct {
	cx, cy, cz []types.Vec4
	rad        []types.Vec4

	spheres []*Sphere
}

// NewSphereCollection packs the given spheres.
func NewSphereCollection(spheres ...*Sphere) *SphereCollection {
	c := &SphereCollection{}
	for _, s := range spheres {
		c.PushBack(s)
	}
	return c
}

// Len returns the number of spheres in the collection.
func (c *SphereCollection) Len() int {
	return len(c.spheres)
}

// PushBack appends a sphere. A new packet starts with the sphere broadcast
// over all four lanes; later spheres overwrite lanes one to three.
func (c *SphereCollection) PushBack(s *Sphere) {
	lane := len(c.spheres) % 4
	if lane == 0 {
		c.cx = append(c.cx, types.Splat(s.Center[0]))
		c.cy = append(c.cy, types.Splat(s.Center[1]))
		c.cz = append(c.cz, types.Splat(s.Center[2]))
		c.rad = append(c.rad, types.Splat(s.Radius))
	} else {
		k := len(c.cx) - 1
		c.cx[k][lane], c.cy[k][lane], c.cz[k][lane] = s.Center[0], s.Center[1], s.Center[2]
		c.rad[k][lane] = s.Radius
	}
	c.spheres = append(c.spheres, s)
}

// NumPackets returns the number of four-lane packets.
func (c *SphereCollection) NumPackets() int {
	return len(c.cx)
}

// PacketIntersect solves the sphere quadric for packet k, all four lanes at
// once. Each lane yields the nearest root in front of the origin, preferring
// the entry point and falling back to the exit point when the ray starts
// inside the sphere. Lanes that miss come back negative.
func (c *SphereCollection) PacketIntersect(r *Ray4, k int) types.Vec4 {
	ocx := r.Origin[0].Sub(c.cx[k])
	ocy := r.Origin[1].Sub(c.cy[k])
	ocz := r.Origin[2].Sub(c.cz[k])
	dx, dy, dz := r.Direction[0], r.Direction[1], r.Direction[2]

	a := dx.Mul(dx).Add(dy.Mul(dy)).Add(dz.Mul(dz))
	b := ocx.Mul(dx).Add(ocy.Mul(dy)).Add(ocz.Mul(dz))
	cc := ocx.Mul(ocx).Add(ocy.Mul(ocy)).Add(ocz.Mul(ocz)).Sub(c.rad[k].Mul(c.rad[k]))

	disc := b.Mul(b).Sub(a.Mul(cc))
	mask := disc.CmpGE(types.Splat(0))

	// Lanes with a negative discriminant feed a NaN through the select and
	// are cleared by the final mask anyway.
	sq := disc.Sqrt()
	inv := types.Splat(1).Div(a)
	eps := types.Splat(epsIntersect)

	t1 := types.Splat(0).Sub(b).Sub(sq).Mul(inv)
	t2 := types.Splat(0).Sub(b).Add(sq).Mul(inv)
	t := t2.Take(t1, t1.CmpGT(eps))

	mask = mask.And(t.CmpGT(eps))
	return types.Splat(-1).Take(t, mask)
}

// FillHit completes the hit record for sphere i at parameter t. Padding
// lanes replicate the first sphere of their packet.
func (c *SphereCollection) FillHit(r *Ray, i int, t float32, rec *HitRecord) {
	if i >= len(c.spheres) {
		i = (i / 4) * 4
	}
	s := c.spheres[i]
	rec.T = t
	rec.P = r.Origin.Add(r.Direction.Mul(t))
	rec.N = rec.P.Sub(s.Center).Mul(1.0 / s.Radius)
	rec.V = r.Direction
	rec.Material = s.Material
	rec.Valid = true
}
