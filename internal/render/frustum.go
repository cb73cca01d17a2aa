package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelfield/internal/components"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// FrustumFor extracts the planes seen by cam through proj.
// Uses the Gribb/Hartmann method on the combined view-projection matrix.
func FrustumFor(cam rl.Camera3D, proj components.Projection) Frustum {
	view := rl.MatrixLookAt(cam.Position, cam.Target, cam.Up)
	vp := rl.MatrixMultiply(view, proj.Matrix())

	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}
	combine := func(row int, sign float32) Plane {
		return normalizePlane(Plane{
			normal: rl.Vector3{
				X: rows[3][0] + sign*rows[row][0],
				Y: rows[3][1] + sign*rows[row][1],
				Z: rows[3][2] + sign*rows[row][2],
			},
			distance: rows[3][3] + sign*rows[row][3],
		})
	}

	var f Frustum
	f.planes[0] = combine(0, 1)  // left
	f.planes[1] = combine(0, -1) // right
	f.planes[2] = combine(1, 1)  // bottom
	f.planes[3] = combine(1, -1) // top
	f.planes[4] = combine(2, 1)  // near
	f.planes[5] = combine(2, -1) // far
	return f
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}
