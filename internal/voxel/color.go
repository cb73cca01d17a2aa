package voxel

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Coord is a lattice cell index.
type Coord struct {
	X, Y, Z int
}

// Color is a normalized RGBA color.
type Color struct {
	R, G, B, A float32
}

// ColorAt maps c to a color whose channels climb from 0 at -radius toward 1
// at radius, one channel per axis. radius must be positive.
func ColorAt(c Coord, radius int) Color {
	span := float32(radius) * 2
	return Color{
		R: float32(c.X+radius) / span,
		G: float32(c.Y+radius) / span,
		B: float32(c.Z+radius) / span,
		A: 1.0,
	}
}

// RGBA converts to an 8-bit raylib color.
func (c Color) RGBA() rl.Color {
	return rl.ColorFromNormalized(rl.Vector4{X: c.R, Y: c.G, Z: c.B, W: c.A})
}

// Array returns the channels in r, g, b, a order.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
