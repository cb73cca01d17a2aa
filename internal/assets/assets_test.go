package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"cube.obj":        {Data: []byte("v 0 0 0\n")},
		"empty.obj":       {Data: []byte{}},
		"models/ship.obj": {Data: []byte("v 1 1 1\n")},
		"cube.fbx":        {Data: []byte("binary")},
	}
}

func TestLoadMeshCaches(t *testing.T) {
	s := NewStore(testFS())

	a, err := s.LoadMesh("cube.obj")
	require.NoError(t, err)
	b, err := s.LoadMesh("cube.obj")
	require.NoError(t, err)

	assert.True(t, a.Valid())
	assert.Equal(t, a, b, "same name must share a handle")

	p, err := s.MeshPath(a)
	require.NoError(t, err)
	assert.Equal(t, "cube.obj", p)

	ship, err := s.LoadMesh("/models/ship.obj")
	require.NoError(t, err)
	assert.NotEqual(t, a, ship)
	meshes, _ := s.Counts()
	assert.Equal(t, 2, meshes)
}

func TestLoadMeshFailures(t *testing.T) {
	s := NewStore(testFS())

	cases := map[string]error{
		"missing.obj": ErrAssetNotFound,
		"empty.obj":   ErrEmptyMesh,
		"cube.fbx":    ErrUnsupportedFormat,
		"models":      ErrUnsupportedFormat,
	}
	for name, want := range cases {
		h, err := s.LoadMesh(name)
		assert.ErrorIs(t, err, want, name)
		assert.False(t, h.Valid(), name)

		var ae *AssetError
		require.True(t, errors.As(err, &ae), name)
		assert.Equal(t, name, ae.Name)
	}
	meshes, _ := s.Counts()
	assert.Equal(t, 0, meshes, "failed loads must not be cached")
}

func TestTexturesFromColor(t *testing.T) {
	s := NewStore(testFS())

	red := s.LoadTextureFromColor(rl.Red)
	again := s.LoadTextureFromColor(rl.Red)
	blue := s.LoadTextureFromColor(rl.Blue)

	assert.Equal(t, red, again)
	assert.NotEqual(t, red, blue)

	c, err := s.TextureColor(blue)
	require.NoError(t, err)
	assert.Equal(t, rl.Blue, c)

	_, err = s.TextureColor(TextureHandle{})
	assert.ErrorIs(t, err, ErrInvalidHandle)
}

func TestMaterialFromColorUsesDefaults(t *testing.T) {
	s := NewStore(testFS())

	m := s.MaterialFromColor(rl.Green)
	assert.True(t, m.Albedo.Valid())
	assert.Equal(t, s.Defaults().Roughness, m.Roughness)

	c, _ := s.TextureColor(m.Albedo)
	assert.Equal(t, rl.Green, c)
}

func TestUnloadInvalidatesHandles(t *testing.T) {
	s := NewStore(testFS())
	h, _ := s.LoadMesh("cube.obj")
	s.LoadTextureFromColor(rl.Red)

	s.Unload()

	_, err := s.MeshPath(h)
	assert.ErrorIs(t, err, ErrInvalidHandle)
	meshes, textures := s.Counts()
	assert.Zero(t, meshes)
	assert.Zero(t, textures)
}
