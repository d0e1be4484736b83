package renderer

import "runtime"

// Options control a frame render.
type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// The number of emitted rays per traced pixel.
	SamplesPerPixel uint32

	// Maximum path depth.
	NumBounces uint32

	// Seed for the deterministic rng streams. Each row block derives its
	// own stream from this value.
	Seed int64

	// Number of concurrently rendered row blocks. Defaults to the number
	// of cpus.
	NumWorkers int
}

// applyDefaults fills in unset option values.
func (o *Options) applyDefaults() {
	if o.SamplesPerPixel == 0 {
		o.SamplesPerPixel = 32
	}
	if o.NumBounces == 0 {
		o.NumBounces = 10
	}
	if o.NumWorkers <= 0 {
		o.NumWorkers = runtime.NumCPU()
	}
	if int(o.FrameH) < o.NumWorkers {
		o.NumWorkers = int(o.FrameH)
	}
}
