package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrAssetNotFound     = errors.New("asset not found")
	ErrUnsupportedFormat = errors.New("unsupported mesh format")
	ErrEmptyMesh         = errors.New("mesh file is empty")
	ErrInvalidHandle     = errors.New("invalid asset handle")
)

// AssetError reports a failed load. Asset names come from configuration,
// so retrying never helps; callers abort startup.
type AssetError struct {
	Name string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("load asset %q: %v", e.Name, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// MeshHandle is an opaque, copyable reference to a loaded mesh.
type MeshHandle struct {
	id uint32
}

func (h MeshHandle) Valid() bool {
	return h.id != 0
}

// TextureHandle is an opaque, copyable reference to a loaded texture.
type TextureHandle struct {
	id uint32
}

func (h TextureHandle) Valid() bool {
	return h.id != 0
}

// meshFormats lists the mesh extensions the store accepts.
var meshFormats = map[string]bool{
	".obj": true,
}

type mesh struct {
	name string
	size int
}

// Store resolves meshes by name under a root file system and synthesizes
// solid-color textures from raw data. Handles stay valid until Unload.
type Store struct {
	root fs.FS

	mu         sync.Mutex
	meshes     []mesh
	meshByName map[string]MeshHandle
	textures   []rl.Color
	texByColor map[rl.Color]TextureHandle
	defaults   MaterialDefaults
}

func NewStore(root fs.FS) *Store {
	s := &Store{root: root}
	s.reset()
	s.defaults = DefaultMaterial()
	return s
}

func (s *Store) reset() {
	s.meshes = make([]mesh, 0)
	s.meshByName = make(map[string]MeshHandle)
	s.textures = make([]rl.Color, 0)
	s.texByColor = make(map[rl.Color]TextureHandle)
}

// LoadMesh resolves name, caching the handle. The file must exist, be
// non-empty and have a supported extension.
func (s *Store) LoadMesh(name string) (MeshHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.meshByName[name]; ok {
		return h, nil
	}

	clean := path.Clean(strings.TrimPrefix(name, "/"))
	if !meshFormats[strings.ToLower(path.Ext(clean))] {
		return MeshHandle{}, &AssetError{Name: name, Err: ErrUnsupportedFormat}
	}
	info, err := fs.Stat(s.root, clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return MeshHandle{}, &AssetError{Name: name, Err: ErrAssetNotFound}
		}
		return MeshHandle{}, &AssetError{Name: name, Err: err}
	}
	if info.IsDir() {
		return MeshHandle{}, &AssetError{Name: name, Err: ErrAssetNotFound}
	}
	if info.Size() == 0 {
		return MeshHandle{}, &AssetError{Name: name, Err: ErrEmptyMesh}
	}

	s.meshes = append(s.meshes, mesh{name: clean, size: int(info.Size())})
	h := MeshHandle{id: uint32(len(s.meshes))}
	s.meshByName[name] = h
	return h, nil
}

// MeshPath returns the root-relative path a handle was loaded from.
func (s *Store) MeshPath(h MeshHandle) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !h.Valid() || int(h.id) > len(s.meshes) {
		return "", ErrInvalidHandle
	}
	return s.meshes[h.id-1].name, nil
}

// LoadTextureFromColor returns a 1x1 texture of the given color. Identical
// colors share a handle.
func (s *Store) LoadTextureFromColor(c rl.Color) TextureHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.texByColor[c]; ok {
		return h
	}
	s.textures = append(s.textures, c)
	h := TextureHandle{id: uint32(len(s.textures))}
	s.texByColor[c] = h
	return h
}

// TextureColor returns the color a texture was synthesized from.
func (s *Store) TextureColor(h TextureHandle) (rl.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !h.Valid() || int(h.id) > len(s.textures) {
		return rl.Color{}, ErrInvalidHandle
	}
	return s.textures[h.id-1], nil
}

// Counts returns how many meshes and textures are loaded.
func (s *Store) Counts() (meshes, textures int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.meshes), len(s.textures)
}

// Unload drops every cached asset. Outstanding handles become invalid.
func (s *Store) Unload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}
