package compiler

import (
	"math"
	"time"

	"github.com/ndoll1998/FairPT/log"
	"github.com/ndoll1998/FairPT/scene"
	"github.com/ndoll1998/FairPT/types"
)

// DefaultMaxDepth caps the tree depth. The effective depth also shrinks
// with the primitive count so tiny scenes do not get towers of empty nodes.
const DefaultMaxDepth = 8

// DefaultMinLeafSize is the smallest work list worth subdividing further;
// anything below twice this size is packed into a leaf as is.
const DefaultMinLeafSize = 8

type bvhStats struct {
	totalItems int
	nodes      int
	leafs      int
	emptyLeafs int
	depth      int
}

type bvhBuilder struct {
	logger log.Logger

	maxDepth    int
	minLeafSize int
	stats       bvhStats
}

// BuildBVH partitions the work list into a complete 4-ary tree of the given
// maximum depth, stored in level order. Every level splits each work list
// into quartiles along the axis with the highest centroid variance; a work
// list smaller than twice minLeafSize stops subdividing and becomes a leaf,
// everything still alive after the last level becomes one too. Slots below
// an early leaf and work lists that run empty turn into sentinel leaves.
func BuildBVH(workList []scene.Boundable, maxDepth, minLeafSize int) *scene.Bvh {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if minLeafSize <= 0 {
		minLeafSize = DefaultMinLeafSize
	}
	builder := &bvhBuilder{
		logger:      log.New("bvhBuilder"),
		maxDepth:    maxDepth,
		minLeafSize: minLeafSize,
		stats: bvhStats{
			totalItems: len(workList),
		},
	}

	start := time.Now()
	bvh := builder.build(workList)
	builder.logger.Debugf(
		"BVH tree build time: %d ms, depth: %d, nodes: %d, leafs: %d (%d empty)",
		time.Since(start).Nanoseconds()/1e6,
		builder.stats.depth, builder.stats.nodes,
		builder.stats.leafs, builder.stats.emptyLeafs,
	)
	return bvh
}

func (b *bvhBuilder) build(workList []scene.Boundable) *scene.Bvh {
	depth := treeDepth(len(workList), b.maxDepth)
	b.stats.depth = depth

	bvh := &scene.Bvh{}
	if depth == 0 || len(workList) < 2*b.minLeafSize {
		// A single leaf holding everything; no inner nodes to test.
		bvh.Nodes = []scene.BvhNode{b.leafNode(bvh, workList)}
		b.stats.nodes = 1
		return bvh
	}

	// Build level by level. Each work list of the current level yields one
	// inner node packing the bounds of its four quartile sublists; lists too
	// small to subdivide become leaves in place. A nil entry marks a slot
	// below such a leaf, kept so the level-order child indexing stays intact.
	level := [][]scene.Boundable{workList}
	for d := 0; d < depth; d++ {
		next := make([][]scene.Boundable, 0, len(level)*4)
		for _, items := range level {
			if len(items) < 2*b.minLeafSize {
				bvh.Nodes = append(bvh.Nodes, b.leafNode(bvh, items))
				next = append(next, nil, nil, nil, nil)
				continue
			}
			parts := splitQuartiles(items)
			var boxes [4]scene.AABB
			for i, part := range parts {
				boxes[i] = boundOf(part)
			}
			bvh.Nodes = append(bvh.Nodes, scene.BvhNode{
				Boxes: scene.NewAABB4(boxes[0], boxes[1], boxes[2], boxes[3]),
			})
			next = append(next, parts[:]...)
		}
		level = next
	}

	// The final level's work lists become leaf nodes.
	for _, items := range level {
		bvh.Nodes = append(bvh.Nodes, b.leafNode(bvh, items))
	}
	b.stats.nodes = len(bvh.Nodes)
	return bvh
}

// leafNode packs a work list into a leaf node, falling back to the sentinel
// when there is nothing behind it.
func (b *bvhBuilder) leafNode(bvh *scene.Bvh, items []scene.Boundable) scene.BvhNode {
	node := scene.BvhNode{IsLeaf: true, LeafID: scene.SentinelLeafID}
	if len(items) > 0 {
		node.LeafID = b.makeLeaf(bvh, items)
	} else if items != nil {
		b.stats.emptyLeafs++
	}
	return node
}

// makeLeaf packs the items into per-kind collections and appends the
// resulting primitive list to the leaf table.
func (b *bvhBuilder) makeLeaf(bvh *scene.Bvh, items []scene.Boundable) uint32 {
	tris := &scene.TriangleCollection{}
	spheres := &scene.SphereCollection{}
	for _, item := range items {
		switch p := item.(type) {
		case *scene.Triangle:
			tris.PushBack(p)
		case *scene.Sphere:
			spheres.PushBack(p)
		}
	}

	var list scene.PrimitiveList
	if tris.Len() > 0 {
		list = append(list, tris)
	}
	if spheres.Len() > 0 {
		list = append(list, spheres)
	}

	id := uint32(len(bvh.Leafs))
	bvh.Leafs = append(bvh.Leafs, list)
	b.stats.leafs++
	return id
}

// treeDepth picks the number of inner levels: enough for roughly one item
// per leaf, capped by maxDepth.
func treeDepth(numItems, maxDepth int) int {
	if numItems <= 1 {
		return 0
	}
	depth := int(math.Ceil(math.Log2(float64(numItems)) / 2))
	if depth > maxDepth {
		depth = maxDepth
	}
	return depth
}

// splitQuartiles reorders the items along their highest-variance axis and
// cuts them at the median and the two quartile points. The selection is
// done in place with three nth-element passes, median first, so no full
// sort is paid.
func splitQuartiles(items []scene.Boundable) [4][]scene.Boundable {
	n := len(items)
	if n == 0 {
		return [4][]scene.Boundable{}
	}
	axis := varianceAxis(items)

	half := n / 2
	nthElement(items, half, axis)
	q1 := half / 2
	nthElement(items[:half], q1, axis)
	q3 := half + (n-half)/2
	nthElement(items[half:], q3-half, axis)

	return [4][]scene.Boundable{
		items[:q1],
		items[q1:half],
		items[half:q3],
		items[q3:],
	}
}

// varianceAxis returns the axis along which the item centroids spread the
// most.
func varianceAxis(items []scene.Boundable) int {
	var mean, m2 types.Vec3
	for i, item := range items {
		c := item.Bound().Center()
		delta := c.Sub(mean)
		mean = mean.Add(delta.Mul(1.0 / float32(i+1)))
		m2 = m2.Add(delta.MulVec(c.Sub(mean)))
	}

	axis := 0
	if m2[1] > m2[axis] {
		axis = 1
	}
	if m2[2] > m2[axis] {
		axis = 2
	}
	return axis
}

// nthElement partially reorders items so the element at position n is the
// one a full centroid sort along axis would place there, with everything
// before it no greater and everything after it no smaller.
func nthElement(items []scene.Boundable, n, axis int) {
	lo, hi := 0, len(items)-1
	for lo < hi {
		pivot := items[(lo+hi)/2].Bound().Center()[axis]
		i, j := lo, hi
		for i <= j {
			for items[i].Bound().Center()[axis] < pivot {
				i++
			}
			for items[j].Bound().Center()[axis] > pivot {
				j--
			}
			if i <= j {
				items[i], items[j] = items[j], items[i]
				i++
				j--
			}
		}
		if n <= j {
			hi = j
		} else if n >= i {
			lo = i
		} else {
			return
		}
	}
}

// boundOf unions the bounds of all items. An empty list yields an inverted
// box that no slab test can hit.
func boundOf(items []scene.Boundable) scene.AABB {
	out := scene.AABB{
		Low:  types.XYZ(math.MaxFloat32, math.MaxFloat32, math.MaxFloat32),
		High: types.XYZ(-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32),
	}
	for _, item := range items {
		out = out.Union(item.Bound())
	}
	return out
}
