package mesh

import (
	"github.com/ndoll1998/FairPT/types"
)

// Quad builds the quadrilateral a-b-c-d out of two triangles. The corners
// must be given in winding order.
func Quad(a, b, c, d types.Vec3, material uint32) Mesh {
	return Mesh{
		{A: a, B: b, C: c, Material: material},
		{A: a, B: c, C: d, Material: material},
	}
}

// Parallelepiped builds a box spanned by the corner a and its three
// adjacent corners b, c and d.
func Parallelepiped(a, b, c, d types.Vec3, material uint32) Mesh {
	u := b.Sub(a)
	v := c.Sub(a)
	w := d.Sub(a)

	var m Mesh
	m.Extend(Quad(a, b, b.Add(v), c, material))
	m.Extend(Quad(a.Add(w), b.Add(w), b.Add(v).Add(w), c.Add(w), material))
	m.Extend(Quad(a, b, b.Add(w), a.Add(w), material))
	m.Extend(Quad(c, c.Add(u), c.Add(u).Add(w), c.Add(w), material))
	m.Extend(Quad(a, c, c.Add(w), a.Add(w), material))
	m.Extend(Quad(b, b.Add(v), b.Add(v).Add(w), b.Add(w), material))
	return m
}

// CornellBox builds the classic test scene in the unit box spanning x and y
// in [0, 1] and z in [-1, 0], open towards positive z: a coloured wall on
// either side, white floor, ceiling and back wall and a light patch just
// below the ceiling.
func CornellBox(white, left, right, light uint32) Mesh {
	var m Mesh

	// floor, ceiling, back
	m.Extend(Quad(
		types.XYZ(0, 0, 0), types.XYZ(1, 0, 0),
		types.XYZ(1, 0, -1), types.XYZ(0, 0, -1), white,
	))
	m.Extend(Quad(
		types.XYZ(0, 1, 0), types.XYZ(1, 1, 0),
		types.XYZ(1, 1, -1), types.XYZ(0, 1, -1), white,
	))
	m.Extend(Quad(
		types.XYZ(0, 0, -1), types.XYZ(1, 0, -1),
		types.XYZ(1, 1, -1), types.XYZ(0, 1, -1), white,
	))

	// side walls
	m.Extend(Quad(
		types.XYZ(0, 0, 0), types.XYZ(0, 0, -1),
		types.XYZ(0, 1, -1), types.XYZ(0, 1, 0), left,
	))
	m.Extend(Quad(
		types.XYZ(1, 0, 0), types.XYZ(1, 0, -1),
		types.XYZ(1, 1, -1), types.XYZ(1, 1, 0), right,
	))

	// light patch slightly below the ceiling
	const y = 1 - 1e-3
	m.Extend(Quad(
		types.XYZ(0.3, y, -0.3), types.XYZ(0.7, y, -0.3),
		types.XYZ(0.7, y, -0.7), types.XYZ(0.3, y, -0.7), light,
	))

	return m
}
