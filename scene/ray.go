package scene

import "github.com/ndoll1998/FairPT/types"

// Ray is a single ray with an attached contribution slot handle. The handle
// indexes the tracer's contribution buffer so rays can be sorted and
// regenerated freely without carrying pointers around.
type Ray struct {
	Origin    types.Vec3
	Direction types.Vec3

	// Contrib indexes the contribution record this ray accumulates into.
	Contrib uint32
}

// Ray4 broadcasts one ray over four lanes so it can be tested against a
// packet of four boxes or primitives in a single kernel call. Components are
// stored separated, one Vec4 per axis.
type Ray4 struct {
	Origin    [3]types.Vec4
	Direction [3]types.Vec4
}

// Packet broadcasts the ray into its four lane form.
func (r *Ray) Packet() Ray4 {
	return Ray4{
		Origin: [3]types.Vec4{
			types.Splat(r.Origin[0]),
			types.Splat(r.Origin[1]),
			types.Splat(r.Origin[2]),
		},
		Direction: [3]types.Vec4{
			types.Splat(r.Direction[0]),
			types.Splat(r.Direction[1]),
			types.Splat(r.Direction[2]),
		},
	}
}

// HitRecord captures the nearest intersection found for a ray.
type HitRecord struct {
	// T is the ray parameter at the hit point.
	T float32

	// P is the world-space hit point, N the surface normal there and V the
	// direction of the incoming ray.
	P types.Vec3
	N types.Vec3
	V types.Vec3

	// Material indexes the scene material arena.
	Material uint32

	// Valid is false while no intersection has been recorded.
	Valid bool
}
