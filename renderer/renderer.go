package renderer

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/ndoll1998/FairPT/log"
	"github.com/ndoll1998/FairPT/scene"
	"github.com/ndoll1998/FairPT/tracer"
)

// Renderer drives a frame render: it splits the frame into row blocks, runs
// one tracer per block concurrently and develops the collected
// contributions into a frame buffer. Blocks write to disjoint contribution
// slots and derive their rng stream from the seed and their start row, so a
// frame is deterministic for fixed options regardless of worker timing.
type Renderer struct {
	logger log.Logger

	sc        *scene.Scene
	cam       *scene.Camera
	opts      Options
	scheduler BlockScheduler

	stats    FrameStats
	rendered bool
}

// New creates a renderer for the given scene and camera.
func New(sc *scene.Scene, cam *scene.Camera, opts Options) (*Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if cam == nil {
		return nil, ErrCameraNotDefined
	}
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrInvalidDimensions
	}
	opts.applyDefaults()

	return &Renderer{
		logger:    log.New("renderer"),
		sc:        sc,
		cam:       cam,
		opts:      opts,
		scheduler: NaiveScheduler(),
	}, nil
}

// Render traces the frame and returns the developed frame buffer.
func (r *Renderer) Render() (*FrameBuffer, error) {
	opts := r.opts
	frameW, frameH := int(opts.FrameW), int(opts.FrameH)
	spp := int(opts.SamplesPerPixel)

	records := make([]tracer.ContributionRecord, frameW*frameH*spp)
	camRay := r.pixelRayFn()

	assignment := r.scheduler.Schedule(opts.NumWorkers, opts.FrameH)
	r.stats = FrameStats{Blocks: make([]BlockStat, len(assignment))}
	r.logger.Noticef(
		"rendering scene %s: %dx%d, %d spp, %d blocks",
		r.sc.Id, frameW, frameH, spp, len(assignment),
	)

	start := time.Now()
	var wg sync.WaitGroup
	blockY := 0
	for idx, blockH := range assignment {
		wg.Add(1)
		go func(idx, blockY, blockH int) {
			defer wg.Done()
			blockStart := time.Now()

			tr := tracer.New(r.sc, int(opts.NumBounces))
			rng := rand.New(rand.NewSource(opts.Seed + int64(blockY)))
			tr.Render(records, frameW, blockY, blockH, spp, rng, camRay)

			r.stats.Blocks[idx] = BlockStat{
				BlockY:       uint32(blockY),
				BlockH:       uint32(blockH),
				FramePercent: 100 * float32(blockH) / float32(frameH),
				RenderTime:   time.Since(blockStart),
			}
		}(idx, blockY, int(blockH))
		blockY += int(blockH)
	}
	wg.Wait()
	r.stats.RenderTime = time.Since(start)
	r.rendered = true

	fb := NewFrameBuffer(opts.FrameW, opts.FrameH)
	fb.Develop(records, opts.SamplesPerPixel)

	r.logger.Noticef("rendered frame in %d ms", r.stats.RenderTime.Nanoseconds()/1e6)
	return fb, nil
}

// Stats returns the statistics collected while rendering the last frame.
func (r *Renderer) Stats() (FrameStats, error) {
	if !r.rendered {
		return FrameStats{}, ErrFrameNotRendered
	}
	return r.stats, nil
}

// pixelRayFn builds the primary ray generator: every sample lands in a cell
// of a 2x2 sub-pixel grid with an extra noise term, cycling through the
// cells as the sample index grows.
func (r *Renderer) pixelRayFn() tracer.CameraRayFn {
	frameW, frameH := int(r.opts.FrameW), int(r.opts.FrameH)
	vpw := 2 * float32(math.Tan(float64(mgl32.DegToRad(r.cam.Fov()))*0.5))
	vph := vpw * float32(frameH) / float32(frameW)

	return func(x, y, s int, rng *rand.Rand) scene.Ray {
		pi := s / 2 % 2
		pj := s % 2
		su := (float32(y*2+pi)+rng.Float32())/float32(2*frameH) - 0.5
		sv := (float32(x*2+pj)+rng.Float32())/float32(2*frameW) - 0.5
		return r.cam.RayThroughUV(su*vph, sv*vpw)
	}
}
