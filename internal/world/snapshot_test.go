package world

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxelfield/internal/engine"
)

func TestSnapshotRoundTrip(t *testing.T) {
	w := engine.NewWorld()
	s, err := Bootstrap(w, testStore(), smallConfig())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "scene.snap.zst")
	require.NoError(t, ExportSnapshot(path, s))

	got, err := ReadSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, SnapshotVersion, got.Header.Version)
	assert.Equal(t, 1, got.Header.Radius)
	assert.Equal(t, "origin", got.Header.PoseMode)
	assert.Equal(t, 8, got.Header.Voxels)
	require.Len(t, got.Voxels, 8)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, got.Ambient)
	assert.Equal(t, s.Camera.ID, got.Camera.ID)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, got.Camera.Rotation)

	for i, v := range got.Voxels {
		if i > 0 {
			assert.Less(t, got.Voxels[i-1].ID, v.ID)
		}
		assert.Equal(t, "Box", v.Tag)
		assert.Equal(t, "infinite", v.Mass)
		assert.Equal(t, [3]float32{}, v.Pose)
		assert.Equal(t, float32(1), v.Color[3])
	}
}

func TestReadSnapshotRejectsVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v9.snap.zst")
	require.NoError(t, WriteSnapshot(path, Snapshot{Header: SnapshotHeader{Version: 9}}))

	_, err := ReadSnapshot(path)
	assert.ErrorIs(t, err, ErrSnapshotVersion)
}

func TestWriteSnapshotReportsEncodeErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "nan-header.snap.zst")
	err := WriteSnapshot(bad, Snapshot{Header: SnapshotHeader{Version: SnapshotVersion, CellSize: float32(math.NaN())}})
	assert.Error(t, err)
	_, statErr := os.Stat(bad)
	assert.True(t, os.IsNotExist(statErr), "nothing is written when the header cannot be encoded")

	body := filepath.Join(dir, "nan-body.snap.zst")
	err = WriteSnapshot(body, Snapshot{
		Header:  SnapshotHeader{Version: SnapshotVersion},
		Ambient: [4]float32{float32(math.Inf(1)), 0, 0, 1},
	})
	assert.Error(t, err)
}

func TestReadSnapshotMissing(t *testing.T) {
	_, err := ReadSnapshot(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
