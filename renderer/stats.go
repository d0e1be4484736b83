package renderer

import "time"

// BlockStat describes one rendered row block.
type BlockStat struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// The percentage of total frame area the block represents.
	FramePercent float32

	// Render time for the block.
	RenderTime time.Duration
}

// FrameStats aggregates statistics for a rendered frame.
type FrameStats struct {
	// Individual block stats, in block order.
	Blocks []BlockStat

	// Total render time for the entire frame.
	RenderTime time.Duration
}
