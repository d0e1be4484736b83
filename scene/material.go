package scene

import (
	"math/rand"

	"github.com/ndoll1998/FairPT/types"
)

// Texture yields a colour for a point on a surface.
type Texture interface {
	Color(p types.Vec3) types.Vec3
}

// Material is the capability interface the tracer shades through. A
// material reports how much of the incoming light it reflects and emits at
// a hit point and, optionally, scatters a continuation ray. The rng stream
// is owned by the caller so shading stays deterministic for a fixed seed.
type Material interface {
	// Attenuation returns the reflectance at the hit point.
	Attenuation(hit *HitRecord) types.Vec3

	// Emittance returns the radiance the surface emits at the hit point.
	Emittance(hit *HitRecord) types.Vec3

	// Scatter fills out with the continuation ray and reports whether the
	// path continues. Absorbing materials return false and leave out alone.
	Scatter(hit *HitRecord, rng *rand.Rand, out *Ray) bool
}
