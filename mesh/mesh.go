package mesh

import (
	"github.com/ndoll1998/FairPT/scene"
	"github.com/ndoll1998/FairPT/types"
)

// Mesh is a triangle soup. Triangles carry material handles into the scene
// arena, so a mesh stays valid across material table rearrangements as long
// as the handles do.
type Mesh []*scene.Triangle

// Extend appends all triangles of another mesh.
func (m *Mesh) Extend(other Mesh) {
	*m = append(*m, other...)
}

// Boundables returns the mesh as a work list for the BVH builder.
func (m Mesh) Boundables() []scene.Boundable {
	out := make([]scene.Boundable, len(m))
	for i, t := range m {
		out[i] = t
	}
	return out
}

// SwapAxes exchanges two coordinate axes on every vertex.
func (m Mesh) SwapAxes(i, j int) Mesh {
	for _, t := range m {
		t.A[i], t.A[j] = t.A[j], t.A[i]
		t.B[i], t.B[j] = t.B[j], t.B[i]
		t.C[i], t.C[j] = t.C[j], t.C[i]
	}
	return m
}

// Mirror negates one coordinate axis on every vertex.
func (m Mesh) Mirror(axis int) Mesh {
	for _, t := range m {
		t.A[axis] *= -1
		t.B[axis] *= -1
		t.C[axis] *= -1
	}
	return m
}

// FlipNormals swaps the vertex winding of every triangle.
func (m Mesh) FlipNormals() Mesh {
	for _, t := range m {
		t.B, t.C = t.C, t.B
	}
	return m
}

// Translate moves every vertex by the given offset.
func (m Mesh) Translate(off types.Vec3) Mesh {
	for _, t := range m {
		t.A = t.A.Add(off)
		t.B = t.B.Add(off)
		t.C = t.C.Add(off)
	}
	return m
}

// Scale multiplies every vertex by the given factor.
func (m Mesh) Scale(s float32) Mesh {
	for _, t := range m {
		t.A = t.A.Mul(s)
		t.B = t.B.Mul(s)
		t.C = t.C.Mul(s)
	}
	return m
}

// FitBox centers the mesh in the given box and scales it uniformly so its
// widest axis fills the box along that axis.
func (m Mesh) FitBox(a, b types.Vec3) Mesh {
	if len(m) == 0 {
		return m
	}

	var mean types.Vec3
	low := m[0].A
	high := m[0].A
	for _, t := range m {
		mean = mean.Add(t.A).Add(t.B).Add(t.C)
		low = types.MinVec3(low, types.MinVec3(t.A, types.MinVec3(t.B, t.C)))
		high = types.MaxVec3(high, types.MaxVec3(t.A, types.MaxVec3(t.B, t.C)))
	}
	mean = mean.Mul(1.0 / float32(len(m)*3))
	boxMean := a.Add(b).Mul(0.5)

	diff := high.Sub(low)
	axis := 0
	if diff[1] > diff[axis] {
		axis = 1
	}
	if diff[2] > diff[axis] {
		axis = 2
	}

	boxDiff := types.MaxVec3(a, b).Sub(types.MinVec3(a, b))
	scale := boxDiff[axis] / diff[axis]

	m.Translate(mean.Mul(-1))
	m.Scale(scale)
	m.Translate(boxMean)
	return m
}
