package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndoll1998/FairPT/scene"
	"github.com/ndoll1998/FairPT/types"
)

func singleTriangle() Mesh {
	return Mesh{&scene.Triangle{
		A: types.XYZ(0, 0, 0),
		B: types.XYZ(1, 0, 0),
		C: types.XYZ(0, 1, 0),
	}}
}

func TestExtendAndBoundables(t *testing.T) {
	m := singleTriangle()
	m.Extend(singleTriangle())
	require.Len(t, m, 2)

	items := m.Boundables()
	require.Len(t, items, 2)
	assert.Equal(t, m[0].Bound(), items[0].Bound())
}

func TestSwapAxes(t *testing.T) {
	m := singleTriangle().SwapAxes(0, 1)
	assert.Equal(t, types.XYZ(0, 1, 0), m[0].B)
	assert.Equal(t, types.XYZ(1, 0, 0), m[0].C)
}

func TestMirror(t *testing.T) {
	m := singleTriangle().Mirror(0)
	assert.Equal(t, types.XYZ(-1, 0, 0), m[0].B)
	assert.Equal(t, types.XYZ(0, 1, 0), m[0].C)
}

func TestFlipNormals(t *testing.T) {
	m := singleTriangle()
	before := m[0].Normal()
	m.FlipNormals()
	after := m[0].Normal()
	for axis := 0; axis < 3; axis++ {
		assert.InDelta(t, -before[axis], after[axis], 1e-6)
	}
}

func TestTranslateScale(t *testing.T) {
	m := singleTriangle().Translate(types.XYZ(1, 2, 3)).Scale(2)
	assert.Equal(t, types.XYZ(2, 4, 6), m[0].A)
	assert.Equal(t, types.XYZ(4, 4, 6), m[0].B)
	assert.Equal(t, types.XYZ(2, 6, 6), m[0].C)
}

func TestFitBox(t *testing.T) {
	// A mesh spanning two units along x, fit into a unit box. The widest
	// axis fills the box, so the scale is 0.5.
	m := Mesh{&scene.Triangle{
		A: types.XYZ(-1, 0, 0),
		B: types.XYZ(1, 0, 0),
		C: types.XYZ(0, 0.5, 0),
	}}
	m.FitBox(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))

	assert.InDelta(t, 1, m[0].B[0]-m[0].A[0], 1e-5)

	// the mesh mean lands on the box center
	mean := m[0].A.Add(m[0].B).Add(m[0].C).Mul(1.0 / 3)
	for axis := 0; axis < 3; axis++ {
		assert.InDelta(t, 0.5, mean[axis], 1e-5)
	}
}

func TestFitBoxEmpty(t *testing.T) {
	var m Mesh
	assert.Empty(t, m.FitBox(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1)))
}

func TestQuad(t *testing.T) {
	m := Quad(
		types.XYZ(0, 0, 0), types.XYZ(1, 0, 0),
		types.XYZ(1, 1, 0), types.XYZ(0, 1, 0), 5,
	)
	require.Len(t, m, 2)
	for _, tri := range m {
		assert.Equal(t, uint32(5), tri.Material)
	}

	// both halves face the same way
	n0 := m[0].Normal()
	n1 := m[1].Normal()
	for axis := 0; axis < 3; axis++ {
		assert.InDelta(t, n0[axis], n1[axis], 1e-6)
	}
}

func TestParallelepiped(t *testing.T) {
	m := Parallelepiped(
		types.XYZ(0, 0, 0),
		types.XYZ(2, 0, 0),
		types.XYZ(0, 3, 0),
		types.XYZ(0, 0, 4),
		1,
	)
	require.Len(t, m, 12)

	low := m[0].A
	high := m[0].A
	for _, tri := range m {
		for _, p := range []types.Vec3{tri.A, tri.B, tri.C} {
			low = types.MinVec3(low, p)
			high = types.MaxVec3(high, p)
		}
	}
	assert.Equal(t, types.XYZ(0, 0, 0), low)
	assert.Equal(t, types.XYZ(2, 3, 4), high)
}

func TestCornellBox(t *testing.T) {
	m := CornellBox(0, 1, 2, 3)
	// three white quads, two walls, one light patch
	require.Len(t, m, 12)

	count := make(map[uint32]int)
	for _, tri := range m {
		count[tri.Material]++
	}
	assert.Equal(t, 6, count[0])
	assert.Equal(t, 2, count[1])
	assert.Equal(t, 2, count[2])
	assert.Equal(t, 2, count[3])

	// everything stays inside the unit box
	for i, tri := range m {
		for _, p := range []types.Vec3{tri.A, tri.B, tri.C} {
			if p[0] < 0 || p[0] > 1 || p[1] < 0 || p[1] > 1 || p[2] < -1 || p[2] > 0 {
				t.Fatalf("triangle %d vertex %v outside the unit box", i, p)
			}
		}
	}
}
