package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/ndoll1998/FairPT/types"
)

// Camera is a pinhole camera. The viewing basis keeps u along the up axis
// and v along the right axis; the field of view is applied by the caller
// when mapping pixels to uv coordinates, so the camera itself only anchors
// the viewport in space.
type Camera struct {
	origin types.Vec3
	view   types.Vec3
	uDir   types.Vec3
	vDir   types.Vec3

	fov    float32
	vpDist float32
}

// NewCamera builds a camera at origin with the given viewing direction and
// up vector.
func NewCamera(origin, view, up types.Vec3) *Camera {
	v := mgl32.Vec3{view[0], view[1], view[2]}.Normalize()
	u := mgl32.Vec3{up[0], up[1], up[2]}.Normalize()
	right := v.Cross(u).Normalize()
	return &Camera{
		origin: origin,
		view:   types.XYZ(v[0], v[1], v[2]),
		uDir:   types.XYZ(u[0], u[1], u[2]),
		vDir:   types.XYZ(right[0], right[1], right[2]),
	}
}

// LookAt builds a camera at origin facing target, re-deriving an up vector
// orthogonal to the viewing direction.
func LookAt(origin, target, up types.Vec3) *Camera {
	view := mgl32.Vec3{
		target[0] - origin[0],
		target[1] - origin[1],
		target[2] - origin[2],
	}.Normalize()
	right := mgl32.Vec3{up[0], up[1], up[2]}.Cross(view).Normalize()
	trueUp := view.Cross(right).Normalize()
	return NewCamera(
		origin,
		types.XYZ(view[0], view[1], view[2]),
		types.XYZ(trueUp[0], trueUp[1], trueUp[2]),
	)
}

// Origin returns the camera position.
func (c *Camera) Origin() types.Vec3 {
	return c.origin
}

// Fov returns the horizontal field of view in degrees.
func (c *Camera) Fov() float32 {
	return c.fov
}

// SetFov sets the horizontal field of view in degrees.
func (c *Camera) SetFov(fov float32) {
	c.fov = fov
}

// VpDist returns the viewport distance.
func (c *Camera) VpDist() float32 {
	return c.vpDist
}

// SetVpDist sets the distance from the camera origin to the viewport.
func (c *Camera) SetVpDist(d float32) {
	c.vpDist = d
}

// RayThroughUV builds the ray through viewport position (u, v): positive u
// moves down the up axis, like an image row index, and positive v moves
// along the right axis. The ray starts on the viewport itself rather than at
// the camera origin.
func (c *Camera) RayThroughUV(u, v float32) Ray {
	pixOff := c.view.Add(c.vDir.Mul(v)).Sub(c.uDir.Mul(u))
	return Ray{
		Origin:    c.origin.Add(pixOff.Mul(c.vpDist)),
		Direction: pixOff.Normalize(),
	}
}
