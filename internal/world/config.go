package world

import (
	"errors"
	"fmt"

	"voxelfield/internal/voxel"
)

// PoseMode selects where a voxel's physics pose is anchored.
type PoseMode string

const (
	// PoseOrigin anchors every body at the world origin regardless of where
	// the voxel is drawn.
	PoseOrigin PoseMode = "origin"
	// PoseCell places each body at its voxel's translation.
	PoseCell PoseMode = "cell"
)

var ErrInvalidPoseMode = errors.New("world: unknown pose mode")

func ParsePoseMode(s string) (PoseMode, error) {
	switch PoseMode(s) {
	case PoseOrigin, PoseCell:
		return PoseMode(s), nil
	case "":
		return PoseOrigin, nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidPoseMode, s)
}

// Config is everything Bootstrap needs to lay out a scene.
type Config struct {
	Radius   int
	CellSize float32
	Mesh     string

	Aspect float32
	FovY   float32 // degrees

	Ambient  voxel.Color
	PoseMode PoseMode
}

func DefaultConfig() Config {
	return Config{
		Radius:   4,
		CellSize: 1.0,
		Mesh:     "cube.obj",
		Aspect:   1.3,
		FovY:     60,
		Ambient:  voxel.Color{R: 1, G: 1, B: 1, A: 1},
		PoseMode: PoseOrigin,
	}
}

// Grid returns the lattice the config describes.
func (c Config) Grid() voxel.Grid {
	return voxel.Grid{Radius: c.Radius, CellSize: c.CellSize}
}

func (c Config) Validate() error {
	if err := c.Grid().Validate(); err != nil {
		return err
	}
	if _, err := ParsePoseMode(string(c.PoseMode)); err != nil {
		return err
	}
	if c.Mesh == "" {
		return errors.New("world: mesh name is empty")
	}
	if !(c.Aspect > 0) || !(c.FovY > 0 && c.FovY < 180) {
		return fmt.Errorf("world: invalid camera lens aspect=%v fov=%v", c.Aspect, c.FovY)
	}
	return nil
}
