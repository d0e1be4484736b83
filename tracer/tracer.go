package tracer

import (
	"math/rand"
	"time"

	"github.com/ndoll1998/FairPT/log"
	"github.com/ndoll1998/FairPT/scene"
	"github.com/ndoll1998/FairPT/types"
)

// epsOriginPush is how far a scattered ray origin is pushed along its
// direction before the next generation, keeping it clear of the surface it
// just left.
const epsOriginPush = 1e-4

// ContributionRecord accumulates one path's contribution to a pixel sample.
// Color starts at black and collects emitted light weighted by the path
// throughput; Albedo starts at white and shrinks with every bounce.
type ContributionRecord struct {
	Color  types.Vec3
	Albedo types.Vec3

	// Hit is set once the path intersects anything at all; Done marks a
	// terminated path.
	Hit  bool
	Done bool
}

// CameraRayFn builds the primary ray for sample s of pixel (x, y). The rng
// stream is the tracer's own, so jitter stays deterministic per seed.
type CameraRayFn func(x, y, s int, rng *rand.Rand) scene.Ray

// Tracer runs the generation loop against a compiled scene.
type Tracer struct {
	logger log.Logger

	sc      *scene.Scene
	bounces int
}

// New creates a tracer for the given scene with a maximum path depth.
func New(sc *scene.Scene, bounces int) *Tracer {
	return &Tracer{
		logger:  log.New("tracer"),
		sc:      sc,
		bounces: bounces,
	}
}

// Render traces every sample of rows blockY through blockY+blockH and
// writes the results into records, which must span the whole frame with spp
// slots per pixel laid out row-major. Only the block's own slots are
// touched, so disjoint blocks can render concurrently against the same
// buffer.
func (t *Tracer) Render(records []ContributionRecord, frameW, blockY, blockH, spp int, rng *rand.Rand, camRay CameraRayFn) {
	start := time.Now()

	rays := make([]scene.Ray, 0, blockH*frameW*spp)
	for y := blockY; y < blockY+blockH; y++ {
		for x := 0; x < frameW; x++ {
			for s := 0; s < spp; s++ {
				slot := uint32((y*frameW+x)*spp + s)
				records[slot] = ContributionRecord{Albedo: types.XYZ(1, 1, 1)}
				r := camRay(x, y, s, rng)
				r.Contrib = slot
				rays = append(rays, r)
			}
		}
	}

	for gen := 0; gen < t.bounces && len(rays) > 0; gen++ {
		rays = t.traceGeneration(records, rays, rng)
	}
	for i := range rays {
		records[rays[i].Contrib].Done = true
	}

	t.logger.Debugf(
		"scene %s: traced block y=%d h=%d in %d ms",
		t.sc.Id, blockY, blockH, time.Since(start).Nanoseconds()/1e6,
	)
}

// traceGeneration runs one sort, intersect and shade round over the active
// rays and returns the scattered rays forming the next generation.
func (t *Tracer) traceGeneration(records []ContributionRecord, rays []scene.Ray, rng *rand.Rand) []scene.Ray {
	hits := make([]scene.HitRecord, len(rays))

	// Sort rays into per-leaf queues, then intersect leaf by leaf so each
	// packet of primitives streams through the kernels once per queue. A
	// ray crossing several leaves keeps its nearest hit.
	queues := t.sc.Bvh.SortRays(rays)
	for leaf, queue := range queues {
		prims := t.sc.Bvh.LeafPrimitives(uint32(leaf))
		for _, ri := range queue {
			prims.Intersect(&rays[ri], &hits[ri])
		}
	}

	// Shade in ray order so the rng stream does not depend on how the rays
	// were bucketed.
	next := rays[:0]
	for i := range rays {
		rec := &hits[i]
		contrib := &records[rays[i].Contrib]
		if !rec.Valid {
			contrib.Done = true
			continue
		}
		contrib.Hit = true

		mat := t.sc.Material(rec.Material)
		contrib.Color = contrib.Color.Add(contrib.Albedo.MulVec(mat.Emittance(rec)))
		contrib.Albedo = contrib.Albedo.MulVec(mat.Attenuation(rec))

		var out scene.Ray
		if !mat.Scatter(rec, rng, &out) {
			contrib.Done = true
			continue
		}
		out.Origin = out.Origin.Add(out.Direction.Mul(epsOriginPush))
		out.Contrib = rays[i].Contrib
		next = append(next, out)
	}
	return next
}
