package renderer

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndoll1998/FairPT/material"
	"github.com/ndoll1998/FairPT/scene"
	"github.com/ndoll1998/FairPT/scene/compiler"
	"github.com/ndoll1998/FairPT/types"
)

// lightSphereScene compiles a single emitter sphere at the origin together
// with a camera looking at it down the z axis.
func lightSphereScene(t *testing.T) (*scene.Scene, *scene.Camera) {
	t.Helper()
	sc, err := compiler.Compile(
		[]scene.Boundable{&scene.Sphere{
			Center:   types.XYZ(0, 0, 0),
			Radius:   1,
			Material: 0,
		}},
		[]scene.Material{material.NewLight(material.RGB(1, 1, 1))},
		0, 0,
	)
	require.NoError(t, err)

	cam := scene.NewCamera(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1), types.XYZ(0, 1, 0))
	cam.SetFov(40)
	cam.SetVpDist(1)
	return sc, cam
}

func TestNewValidation(t *testing.T) {
	sc, cam := lightSphereScene(t)

	_, err := New(nil, cam, Options{FrameW: 8, FrameH: 8})
	assert.ErrorIs(t, err, ErrSceneNotDefined)

	_, err = New(sc, nil, Options{FrameW: 8, FrameH: 8})
	assert.ErrorIs(t, err, ErrCameraNotDefined)

	_, err = New(sc, cam, Options{FrameW: 0, FrameH: 8})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = New(sc, cam, Options{FrameW: 8, FrameH: 0})
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{FrameW: 64, FrameH: 2}
	opts.applyDefaults()
	assert.Equal(t, uint32(32), opts.SamplesPerPixel)
	assert.Equal(t, uint32(10), opts.NumBounces)
	// workers default to the cpu count and never exceed the row count
	expWorkers := runtime.NumCPU()
	if expWorkers > 2 {
		expWorkers = 2
	}
	assert.Equal(t, expWorkers, opts.NumWorkers)
}

func TestRenderLightSphere(t *testing.T) {
	sc, cam := lightSphereScene(t)
	r, err := New(sc, cam, Options{
		FrameW:          16,
		FrameH:          16,
		SamplesPerPixel: 2,
		NumBounces:      4,
		Seed:            42,
		NumWorkers:      2,
	})
	require.NoError(t, err)

	fb, err := r.Render()
	require.NoError(t, err)
	require.Equal(t, uint32(16), fb.Width())

	img := fb.Image()
	// the emitter fills the frame center and the corners see nothing
	cr, cg, cb, _ := img.At(8, 8).RGBA()
	assert.Equal(t, uint32(0xffff), cr)
	assert.Equal(t, uint32(0xffff), cg)
	assert.Equal(t, uint32(0xffff), cb)

	kr, _, _, ka := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), kr)
	assert.Equal(t, uint32(0xffff), ka)
}

func TestRenderDeterministic(t *testing.T) {
	sc, cam := lightSphereScene(t)
	opts := Options{
		FrameW:          8,
		FrameH:          8,
		SamplesPerPixel: 2,
		NumBounces:      4,
		Seed:            7,
		NumWorkers:      4,
	}

	render := func() []uint8 {
		r, err := New(sc, cam, opts)
		require.NoError(t, err)
		fb, err := r.Render()
		require.NoError(t, err)

		out := make([]uint8, 0, 8*8*3)
		img := fb.Image()
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				pr, pg, pb, _ := img.At(x, y).RGBA()
				out = append(out, uint8(pr>>8), uint8(pg>>8), uint8(pb>>8))
			}
		}
		return out
	}

	assert.Equal(t, render(), render())
}

func TestStatsBeforeAndAfterRender(t *testing.T) {
	sc, cam := lightSphereScene(t)
	r, err := New(sc, cam, Options{
		FrameW:          8,
		FrameH:          8,
		SamplesPerPixel: 1,
		NumBounces:      2,
		NumWorkers:      3,
	})
	require.NoError(t, err)

	_, err = r.Stats()
	assert.ErrorIs(t, err, ErrFrameNotRendered)

	_, err = r.Render()
	require.NoError(t, err)

	stats, err := r.Stats()
	require.NoError(t, err)
	require.Len(t, stats.Blocks, 3)

	var rows uint32
	var percent float32
	for _, block := range stats.Blocks {
		rows += block.BlockH
		percent += block.FramePercent
	}
	assert.Equal(t, uint32(8), rows)
	assert.InDelta(t, 100, percent, 1e-3)
}
