package scene

import "github.com/google/uuid"

// Scene is the arena the tracer works against: the acceleration structure
// plus the material table primitives reference by index. The id tags the
// compiler, tracer and renderer log lines so runs against different scenes
// can be told apart; the render statistics do not carry it.
type Scene struct {
	Id        uuid.UUID
	Bvh       *Bvh
	Materials []Material
}

// New creates a scene around a built BVH and its material table.
func New(bvh *Bvh, materials []Material) *Scene {
	return &Scene{
		Id:        uuid.New(),
		Bvh:       bvh,
		Materials: materials,
	}
}

// Material returns the material behind a primitive's material handle.
func (s *Scene) Material(id uint32) Material {
	return s.Materials[id]
}
