package tracer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndoll1998/FairPT/material"
	"github.com/ndoll1998/FairPT/scene"
	"github.com/ndoll1998/FairPT/scene/compiler"
	"github.com/ndoll1998/FairPT/types"
)

// compileSphere builds a one-sphere scene at the origin with the given
// materials; material 0 is assigned to the sphere.
func compileSphere(t *testing.T, materials []scene.Material) *scene.Scene {
	t.Helper()
	sc, err := compiler.Compile(
		[]scene.Boundable{&scene.Sphere{
			Center:   types.XYZ(0, 0, 0),
			Radius:   1,
			Material: 0,
		}},
		materials, 0, 0,
	)
	require.NoError(t, err)
	return sc
}

// towardsOrigin aims every primary ray from z=5 straight at the scene
// center.
func towardsOrigin(x, y, s int, rng *rand.Rand) scene.Ray {
	return scene.Ray{
		Origin:    types.XYZ(0, 0, 5),
		Direction: types.XYZ(0, 0, -1),
	}
}

func TestRenderLightTerminatesPath(t *testing.T) {
	sc := compileSphere(t, []scene.Material{
		material.NewLight(material.RGB(2, 3, 4)),
	})
	tr := New(sc, 10)

	records := make([]ContributionRecord, 1)
	tr.Render(records, 1, 0, 1, 1, rand.New(rand.NewSource(1)), towardsOrigin)

	rec := records[0]
	require.True(t, rec.Hit)
	require.True(t, rec.Done)
	// white albedo times the emittance on the first bounce
	assert.Equal(t, types.XYZ(2, 3, 4), rec.Color)
	assert.Equal(t, types.Vec3{}, rec.Albedo)
}

func TestRenderMissMarksDone(t *testing.T) {
	sc := compileSphere(t, []scene.Material{
		material.NewLight(material.RGB(1, 1, 1)),
	})
	tr := New(sc, 10)

	miss := func(x, y, s int, rng *rand.Rand) scene.Ray {
		return scene.Ray{
			Origin:    types.XYZ(50, 0, 5),
			Direction: types.XYZ(0, 0, -1),
		}
	}

	records := make([]ContributionRecord, 1)
	tr.Render(records, 1, 0, 1, 1, rand.New(rand.NewSource(1)), miss)

	rec := records[0]
	assert.False(t, rec.Hit)
	assert.True(t, rec.Done)
	assert.Equal(t, types.Vec3{}, rec.Color)
	assert.Equal(t, types.XYZ(1, 1, 1), rec.Albedo)
}

func TestRenderAlbedoShrinksPerBounce(t *testing.T) {
	sc := compileSphere(t, []scene.Material{
		material.Lambertian(material.RGB(0.5, 0.5, 0.5)),
	})
	tr := New(sc, 8)

	records := make([]ContributionRecord, 1)
	tr.Render(records, 1, 0, 1, 1, rand.New(rand.NewSource(7)), towardsOrigin)

	rec := records[0]
	require.True(t, rec.Hit)
	require.True(t, rec.Done)
	// no emitter in the scene, so the path collects nothing
	assert.Equal(t, types.Vec3{}, rec.Color)
	// the first bounce alone halves the throughput
	assert.LessOrEqual(t, rec.Albedo[0], float32(0.5))
	assert.Greater(t, rec.Albedo[0], float32(0))
}

func TestRenderZeroBounces(t *testing.T) {
	sc := compileSphere(t, []scene.Material{
		material.NewLight(material.RGB(1, 1, 1)),
	})
	tr := New(sc, 0)

	records := make([]ContributionRecord, 1)
	tr.Render(records, 1, 0, 1, 1, rand.New(rand.NewSource(1)), towardsOrigin)

	rec := records[0]
	assert.False(t, rec.Hit)
	assert.True(t, rec.Done)
	assert.Equal(t, types.XYZ(1, 1, 1), rec.Albedo)
}

func TestRenderDeterministicPerSeed(t *testing.T) {
	// A diffuse sphere above a large emitter sphere acting as a glowing
	// floor, out of reach of the horizontal primary rays: whether a path
	// picks up light depends on the sampled scatter direction, so the
	// records expose the rng stream.
	sc, err := compiler.Compile(
		[]scene.Boundable{
			&scene.Sphere{Center: types.XYZ(0, 0, 0), Radius: 1, Material: 0},
			&scene.Sphere{Center: types.XYZ(0, -101.5, 0), Radius: 100, Material: 1},
		},
		[]scene.Material{
			material.Lambertian(material.RGB(0.8, 0.6, 0.4)),
			material.NewLight(material.RGB(4, 4, 4)),
		},
		0, 0,
	)
	require.NoError(t, err)
	tr := New(sc, 6)

	const frameW, frameH, spp = 4, 4, 2
	jitter := func(x, y, s int, rng *rand.Rand) scene.Ray {
		origin := types.XYZ(
			float32(x)/frameW-0.5+rng.Float32()*0.01,
			float32(y)/frameH-0.5+rng.Float32()*0.01,
			5,
		)
		return scene.Ray{
			Origin:    origin,
			Direction: types.XYZ(0, 0, -1),
		}
	}

	render := func(seed int64) []ContributionRecord {
		records := make([]ContributionRecord, frameW*frameH*spp)
		tr.Render(records, frameW, 0, frameH, spp, rand.New(rand.NewSource(seed)), jitter)
		return records
	}

	first := render(42)
	second := render(42)
	assert.Equal(t, first, second)

	other := render(43)
	assert.NotEqual(t, first, other)
}

func TestRenderTouchesOnlyOwnBlock(t *testing.T) {
	sc := compileSphere(t, []scene.Material{
		material.NewLight(material.RGB(1, 1, 1)),
	})
	tr := New(sc, 4)

	const frameW, frameH, spp = 2, 4, 1
	records := make([]ContributionRecord, frameW*frameH*spp)
	marker := ContributionRecord{Color: types.XYZ(9, 9, 9)}
	for i := range records {
		records[i] = marker
	}

	// render rows 1 and 2 only
	tr.Render(records, frameW, 1, 2, spp, rand.New(rand.NewSource(1)), towardsOrigin)

	for i := range records {
		y := i / (frameW * spp)
		if y < 1 || y > 2 {
			assert.Equal(t, marker, records[i], "record %d outside the block changed", i)
		} else {
			assert.NotEqual(t, marker, records[i], "record %d inside the block untouched", i)
		}
	}
}
