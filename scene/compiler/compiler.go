package compiler

import (
	"time"

	"github.com/ndoll1998/FairPT/log"
	"github.com/ndoll1998/FairPT/scene"
)

type sceneCompiler struct {
	logger log.Logger
}

// Compile partitions the primitives into a BVH and wraps the result,
// together with the material table, into a traceable scene. Zero values for
// maxDepth and minLeafSize pick the builder defaults.
func Compile(primitives []scene.Boundable, materials []scene.Material, maxDepth, minLeafSize int) (*scene.Scene, error) {
	sc := &sceneCompiler{
		logger: log.New("scene compiler"),
	}

	start := time.Now()
	sc.logger.Noticef("compiling scene with %d primitives", len(primitives))

	bvh := BuildBVH(primitives, maxDepth, minLeafSize)
	compiled := scene.New(bvh, materials)

	sc.logger.Noticef(
		"compiled scene %s in %d ms (%d leafs)",
		compiled.Id, time.Since(start).Nanoseconds()/1e6, bvh.NumLeafs(),
	)
	return compiled, nil
}
