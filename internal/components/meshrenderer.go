package components

import (
	"voxelfield/internal/assets"
)

// MeshRenderer draws a store mesh with a material at the entity's
// GlobalTransform.
type MeshRenderer struct {
	Mesh     assets.MeshHandle
	Material assets.Material
	Hidden   bool
}

func NewMeshRenderer(mesh assets.MeshHandle, mat assets.Material) MeshRenderer {
	return MeshRenderer{Mesh: mesh, Material: mat}
}
