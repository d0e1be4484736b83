package material

import (
	"math"
	"math/rand"

	"github.com/ndoll1998/FairPT/scene"
	"github.com/ndoll1998/FairPT/types"
)

// randUnitVec samples a unit vector uniformly from the sphere surface.
func randUnitVec(rng *rand.Rand) types.Vec3 {
	z := rng.Float32()*2 - 1
	a := rng.Float32() * 2 * math.Pi
	r := float32(math.Sqrt(float64(1 - z*z)))
	return types.XYZ(
		r*float32(math.Cos(float64(a))),
		r*float32(math.Sin(float64(a))),
		z,
	)
}

// Basic is a unified surface material. Its parameters cover the whole
// family of concrete materials: reflectivity picks between mirror and
// diffuse scattering, fuzz perturbs reflected rays and transparent
// materials refract instead of diffusing.
type Basic struct {
	Att         scene.Texture
	Emit        scene.Texture
	Fuzz        float32
	Refl        float32
	Ior         float32
	Transparent bool
}

// Lambertian creates a perfectly diffuse material.
func Lambertian(att scene.Texture) *Basic {
	return &Basic{Att: att, Fuzz: -1, Refl: -1, Ior: 1}
}

// Metallic creates a mirror material. Fuzz larger than zero perturbs the
// reflected direction for brushed surfaces.
func Metallic(att scene.Texture, fuzz float32) *Basic {
	return &Basic{Att: att, Fuzz: fuzz, Refl: 1, Ior: 1}
}

// Dielectric creates a transparent refracting material with the given
// index of refraction.
func Dielectric(att scene.Texture, ior float32) *Basic {
	return &Basic{Att: att, Fuzz: -1, Refl: 0, Ior: ior, Transparent: true}
}

// Attenuation returns the attenuation texture colour at the hit point, or
// black when the material carries none.
func (m *Basic) Attenuation(hit *scene.HitRecord) types.Vec3 {
	if m.Att == nil {
		return types.Vec3{}
	}
	return m.Att.Color(hit.P)
}

// Emittance returns the emittance texture colour at the hit point, or black
// when the material carries none.
func (m *Basic) Emittance(hit *scene.HitRecord) types.Vec3 {
	if m.Emit == nil {
		return types.Vec3{}
	}
	return m.Emit.Color(hit.P)
}

// Scatter builds the continuation ray. Depending on the material
// parameters the ray reflects, refracts or diffuses; the roll against the
// reflectance probability consumes one rng value either way.
func (m *Basic) Scatter(hit *scene.HitRecord, rng *rand.Rand, out *scene.Ray) bool {
	dt := hit.V.Dot(hit.N)
	faceIn := dt > 0

	nr := m.Ior
	if !faceIn {
		nr = 1.0 / m.Ior
	}

	switch {
	case rng.Float32() < m.Refl:
		// Mirror reflection about the surface normal.
		out.Direction = hit.V.Sub(hit.N.Mul(2 * dt))
		if m.Fuzz > 0 {
			out.Direction = out.Direction.Add(randUnitVec(rng).Mul(m.Fuzz)).Normalize()
		}

	case m.Transparent:
		outN := hit.N
		if faceIn {
			outN = hit.N.Mul(-1)
		}
		d := 1 - nr*nr*(1-dt*dt)
		if d > 0 {
			if faceIn {
				dt = -dt
			}
			out.Direction = hit.V.Sub(outN.Mul(dt)).Mul(nr).
				Sub(outN.Mul(float32(math.Sqrt(float64(d)))))
		} else {
			// Total internal reflection.
			out.Direction = hit.V.Sub(hit.N.Mul(2 * dt))
		}
		if m.Fuzz > 0 {
			out.Direction = out.Direction.Add(randUnitVec(rng).Mul(m.Fuzz)).Normalize()
		}

	default:
		// Diffuse scatter: the normal plus a random unit vector, which
		// yields a cosine-weighted direction in the hemisphere about the
		// normal.
		out.Direction = hit.N.Add(randUnitVec(rng)).Normalize()
	}

	out.Origin = hit.P
	return true
}

// Light is an emitter. It never scatters, so every path ends on it.
type Light struct {
	Basic
}

// NewLight creates an emitter with the given emittance texture.
func NewLight(emit scene.Texture) *Light {
	return &Light{Basic{Emit: emit}}
}

// Scatter always reports a terminated path.
func (l *Light) Scatter(hit *scene.HitRecord, rng *rand.Rand, out *scene.Ray) bool {
	return false
}
