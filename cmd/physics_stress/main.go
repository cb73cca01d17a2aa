// Stress test comparing the spatial-hash contact pass with a naive sweep
// over voxel scenes of growing radius.
package main

import (
	"flag"
	"fmt"
	"testing/fstest"
	"time"

	"voxelfield/internal/assets"
	"voxelfield/internal/engine"
	"voxelfield/internal/physics"
	"voxelfield/internal/world"
)

func main() {
	cell := flag.Float64("cell", 1.5, "cell size; below 2 neighbouring voxels overlap")
	mode := flag.String("pose", "cell", "pose mode (origin or cell)")
	flag.Parse()

	pose, err := world.ParsePoseMode(*mode)
	if err != nil {
		panic(err)
	}

	for _, radius := range []int{2, 4, 6, 8, 10} {
		testContacts(radius, float32(*cell), pose)
	}
}

func testContacts(radius int, cell float32, pose world.PoseMode) {
	store := assets.NewStore(fstest.MapFS{"cube.obj": {Data: []byte("v 0 0 0\n")}})
	cfg := world.DefaultConfig()
	cfg.Radius = radius
	cfg.CellSize = cell
	cfg.PoseMode = pose

	w := engine.NewWorld()
	scene, err := world.Bootstrap(w, store, cfg)
	if err != nil {
		fmt.Printf("r=%2d: ERROR: %v\n", radius, err)
		return
	}
	reader := scene.Contacts.Register()

	// Warm up
	physics.DetectContacts(w)
	scene.Contacts.Read(reader)

	const iterations = 10
	hashStart := time.Now()
	var contacts int
	for i := 0; i < iterations; i++ {
		contacts = physics.DetectContacts(w)
		scene.Contacts.Read(reader)
	}
	hashTime := time.Since(hashStart) / iterations

	// Naive O(n²) bound overlap, ignoring tags
	bounds := make([]physics.AABB, 0, len(scene.Voxels))
	for _, e := range scene.Voxels {
		shape, _ := engine.Get[physics.CollisionShape](w, e)
		p, _ := engine.Get[physics.BodyPose](w, e)
		bounds = append(bounds, shape.WorldBound(p))
	}
	naiveStart := time.Now()
	var overlaps int
	for iter := 0; iter < iterations; iter++ {
		overlaps = 0
		for i := 0; i < len(bounds); i++ {
			for j := i + 1; j < len(bounds); j++ {
				if bounds[i].Intersects(bounds[j]) {
					overlaps++
				}
			}
		}
	}
	naiveTime := time.Since(naiveStart) / iterations

	fmt.Printf("r=%2d %6d voxels | hash: %10v (%d contacts) | naive: %10v (%d overlapping bounds)\n",
		radius, len(scene.Voxels), hashTime, contacts, naiveTime, overlaps)
}
