package voxel

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelfield/internal/engine"
)

var (
	ErrInvalidRadius   = errors.New("voxel: radius must be between 1 and MaxRadius")
	ErrInvalidCellSize = errors.New("voxel: cell size must be positive and finite")
)

// MaxRadius bounds the lattice at (2*64)^3, about two million cells.
const MaxRadius = 64

// Grid describes the cubic lattice [-Radius, Radius)^3 with cells spaced
// CellSize apart.
type Grid struct {
	Radius   int
	CellSize float32
}

// Cell is one generated lattice entry: its coordinate, the derived color and
// the visual transform.
type Cell struct {
	Coord     Coord
	Color     Color
	Transform engine.Transform
}

func (g Grid) Validate() error {
	if g.Radius <= 0 || g.Radius > MaxRadius {
		return fmt.Errorf("%w: got %d", ErrInvalidRadius, g.Radius)
	}
	if g.CellSize <= 0 || math32.IsInf(g.CellSize, 0) || math32.IsNaN(g.CellSize) {
		return fmt.Errorf("%w: got %v", ErrInvalidCellSize, g.CellSize)
	}
	return nil
}

// Side is the number of cells along one axis.
func (g Grid) Side() int {
	return 2 * g.Radius
}

// Count is the total number of cells, (2r)^3.
func (g Grid) Count() int {
	s := g.Side()
	return s * s * s
}

// Contains reports whether c lies inside the lattice.
func (g Grid) Contains(c Coord) bool {
	in := func(v int) bool { return v >= -g.Radius && v < g.Radius }
	return in(c.X) && in(c.Y) && in(c.Z)
}

// Coords enumerates every lattice coordinate. Callers must not rely on the order.
func (g Grid) Coords() []Coord {
	if g.Radius <= 0 || g.Radius > MaxRadius {
		return nil
	}
	out := make([]Coord, 0, g.Count())
	for x := -g.Radius; x < g.Radius; x++ {
		for y := -g.Radius; y < g.Radius; y++ {
			for z := -g.Radius; z < g.Radius; z++ {
				out = append(out, Coord{X: x, Y: y, Z: z})
			}
		}
	}
	return out
}

// Translation returns the world position of c.
func (g Grid) Translation(c Coord) rl.Vector3 {
	return rl.Vector3{
		X: float32(c.X) * g.CellSize,
		Y: float32(c.Y) * g.CellSize,
		Z: float32(c.Z) * g.CellSize,
	}
}

// Generate produces one Cell per coordinate. An invalid grid is rejected
// before anything is produced.
func (g Grid) Generate() ([]Cell, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	coords := g.Coords()
	cells := make([]Cell, 0, len(coords))
	for _, c := range coords {
		cells = append(cells, Cell{
			Coord:     c,
			Color:     ColorAt(c, g.Radius),
			Transform: engine.Translated(g.Translation(c)),
		})
	}
	return cells, nil
}
