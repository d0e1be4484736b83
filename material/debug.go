package material

import (
	"math/rand"

	"github.com/ndoll1998/FairPT/scene"
	"github.com/ndoll1998/FairPT/types"
)

// The debugging materials visualise intersection data instead of shading
// it. None of them scatter, so a debug render terminates after the first
// generation.

// Normal shows the surface normal at the hit point as a colour.
type Normal struct{}

func (Normal) Attenuation(hit *scene.HitRecord) types.Vec3 {
	return types.Vec3{}
}

func (Normal) Emittance(hit *scene.HitRecord) types.Vec3 {
	return hit.N.Add(types.XYZ(1, 1, 1)).Mul(0.5)
}

func (Normal) Scatter(hit *scene.HitRecord, rng *rand.Rand, out *scene.Ray) bool {
	return false
}

// Depth shows the hit distance as a grey value, mapped from the given
// distance range.
type Depth struct {
	MinDist float32
	MaxDist float32
}

func (d Depth) Attenuation(hit *scene.HitRecord) types.Vec3 {
	return types.Vec3{}
}

func (d Depth) Emittance(hit *scene.HitRecord) types.Vec3 {
	g := (hit.T - d.MinDist) / d.MaxDist
	return types.XYZ(g, g, g)
}

func (d Depth) Scatter(hit *scene.HitRecord, rng *rand.Rand, out *scene.Ray) bool {
	return false
}

// Cosine shows the cosine between the incident ray and the surface normal
// as a grey value.
type Cosine struct{}

func (Cosine) Attenuation(hit *scene.HitRecord) types.Vec3 {
	return types.Vec3{}
}

func (Cosine) Emittance(hit *scene.HitRecord) types.Vec3 {
	c := hit.V.Dot(hit.N)
	return types.XYZ(c, c, c)
}

func (Cosine) Scatter(hit *scene.HitRecord, rng *rand.Rand, out *scene.Ray) bool {
	return false
}
