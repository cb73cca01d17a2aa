package assets

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Material defines surface properties for rendering
type Material struct {
	Albedo    TextureHandle
	Metallic  float32
	Roughness float32
	Emissive  float32
}

// MaterialDefaults is the template materials are derived from.
type MaterialDefaults struct {
	Material
}

func DefaultMaterial() MaterialDefaults {
	return MaterialDefaults{Material{
		Metallic:  0,
		Roughness: 0.5,
		Emissive:  0,
	}}
}

func (s *Store) Defaults() MaterialDefaults {
	return s.defaults
}

// MaterialFromColor builds a default material whose albedo is a solid-color
// texture loaded from c.
func (s *Store) MaterialFromColor(c rl.Color) Material {
	m := s.defaults.Material
	m.Albedo = s.LoadTextureFromColor(c)
	return m
}
