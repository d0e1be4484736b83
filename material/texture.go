package material

import "github.com/ndoll1998/FairPT/types"

// Constant is a texture with the same colour everywhere.
type Constant struct {
	C types.Vec3
}

// RGB creates a constant texture from colour components in [0, 1].
func RGB(r, g, b float32) Constant {
	return Constant{C: types.XYZ(r, g, b)}
}

// Color returns the texture colour, independent of the surface point.
func (t Constant) Color(p types.Vec3) types.Vec3 {
	return t.C
}
