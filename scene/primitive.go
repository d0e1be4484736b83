package scene

import "github.com/ndoll1998/FairPT/types"

const (
	// epsIntersect is the minimum ray parameter an intersection must exceed.
	// It keeps secondary rays from re-hitting the surface they left.
	epsIntersect = 1e-3

	// epsParallel rejects rays running parallel to a triangle plane.
	epsParallel = 1e-4
)

// Boundable is anything that can report an axis-aligned bound for itself.
// The BVH builder partitions primitives purely through this interface.
type Boundable interface {
	Bound() AABB
}

// Triangle is one triangle with a material handle into the scene arena.
type Triangle struct {
	A, B, C  types.Vec3
	Material uint32
}

// Bound returns the triangle's axis-aligned bound.
func (t *Triangle) Bound() AABB {
	return NewAABB(t.A, t.B).Extend(t.C)
}

// Normal returns the geometric normal of the triangle plane.
func (t *Triangle) Normal() types.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

// Sphere is one sphere with a material handle into the scene arena.
type Sphere struct {
	Center   types.Vec3
	Radius   float32
	Material uint32
}

// Bound returns the sphere's axis-aligned bound.
func (s *Sphere) Bound() AABB {
	r := types.XYZ(s.Radius, s.Radius, s.Radius)
	return AABB{Low: s.Center.Sub(r), High: s.Center.Add(r)}
}

// PrimitiveCollection is a packed group of primitives of one kind that can
// be intersected four at a time. Primitives live in packets of four lanes;
// the last packet may carry duplicated lanes as padding.
type PrimitiveCollection interface {
	// NumPackets returns the number of four-lane packets in the collection.
	NumPackets() int

	// PacketIntersect tests a broadcast ray against packet k and returns the
	// per-lane hit distance, negative in lanes that miss.
	PacketIntersect(r *Ray4, k int) types.Vec4

	// FillHit completes a hit record for primitive i at parameter t.
	FillHit(r *Ray, i int, t float32, rec *HitRecord)
}

// PrimitiveList chains collections of different primitive kinds into one
// intersectable unit. It is the payload type of a BVH leaf.
type PrimitiveList []PrimitiveCollection

// Intersect finds the nearest intersection of the ray with any primitive in
// the list. The record is only written when a closer hit than the one it
// already holds is found; it reports whether the record was improved.
func (l PrimitiveList) Intersect(r *Ray, rec *HitRecord) bool {
	improved := false
	pkt := r.Packet()
	for _, c := range l {
		n := c.NumPackets()
		for k := 0; k < n; k++ {
			ts := c.PacketIntersect(&pkt, k)
			for lane := 0; lane < 4; lane++ {
				t := ts[lane]
				if t < epsIntersect {
					continue
				}
				if rec.Valid && t >= rec.T {
					continue
				}
				c.FillHit(r, k*4+lane, t, rec)
				improved = true
			}
		}
	}
	return improved
}
