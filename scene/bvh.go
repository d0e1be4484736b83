package scene

// SentinelLeafID marks a leaf slot with no primitives behind it. Rays routed
// to a sentinel leaf are simply dropped.
const SentinelLeafID = ^uint32(0)

// BvhNode is one node of the dense 4-ary tree. Inner nodes pack the bounds
// of their four children so a single slab test decides which children a ray
// enters; the children of node i sit at indices 4i+1 through 4i+4. Leaf
// nodes carry an index into the tree's leaf table instead.
type BvhNode struct {
	Boxes  AABB4
	IsLeaf bool
	LeafID uint32
}

// Bvh is a bounding volume hierarchy stored as a complete 4-ary tree in
// level order. Leaves hold primitive lists in a separate table; slots the
// builder could not fill point at the sentinel.
type Bvh struct {
	Nodes []BvhNode
	Leafs []PrimitiveList
}

// NumLeafs returns the number of populated leaves.
func (b *Bvh) NumLeafs() int {
	return len(b.Leafs)
}

// LeafPrimitives returns the primitive list behind leaf id.
func (b *Bvh) LeafPrimitives(id uint32) PrimitiveList {
	return b.Leafs[id]
}

// SortRays routes every ray through the tree and buckets it by the leaves
// it reaches, returning one queue of ray indices per leaf. A ray can land
// in several queues when it cuts through more than one leaf box. Queue
// order follows ray order, so intersecting a queue front to back is
// deterministic.
func (b *Bvh) SortRays(rays []Ray) [][]int {
	queues := make([][]int, len(b.Leafs))

	if len(b.Nodes) == 0 {
		return queues
	}
	if b.Nodes[0].IsLeaf {
		// Degenerate single-leaf tree; every ray visits the one leaf.
		if id := b.Nodes[0].LeafID; id != SentinelLeafID {
			for ri := range rays {
				queues[id] = append(queues[id], ri)
			}
		}
		return queues
	}

	var frontier []uint32
	for ri := range rays {
		pkt := rays[ri].Packet()
		frontier = append(frontier[:0], 0)
		for head := 0; head < len(frontier); head++ {
			node := &b.Nodes[frontier[head]]
			mask := node.Boxes.Cast(&pkt)
			for lane := uint32(0); lane < 4; lane++ {
				if !mask.Lane(int(lane)) {
					continue
				}
				ci := 4*frontier[head] + lane + 1
				child := &b.Nodes[ci]
				if !child.IsLeaf {
					frontier = append(frontier, ci)
					continue
				}
				if child.LeafID != SentinelLeafID {
					queues[child.LeafID] = append(queues[child.LeafID], ri)
				}
			}
		}
	}
	return queues
}
