package world

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/zstd"

	"voxelfield/internal/components"
	"voxelfield/internal/engine"
	"voxelfield/internal/physics"
	"voxelfield/internal/voxel"
)

const SnapshotVersion = 1

var ErrSnapshotVersion = errors.New("world: unsupported snapshot version")

type SnapshotHeader struct {
	Version  int     `json:"version"`
	Radius   int     `json:"radius"`
	CellSize float32 `json:"cell_size"`
	PoseMode string  `json:"pose_mode"`
	Voxels   int     `json:"voxels"`
}

type CameraRecord struct {
	ID       uint32     `json:"id"`
	Position [3]float32 `json:"position"`
	Rotation [4]float32 `json:"rotation"`
	FovY     float32    `json:"fov_y"`
	Aspect   float32    `json:"aspect"`
}

type VoxelRecord struct {
	ID       uint32     `json:"id"`
	Coord    [3]int     `json:"coord"`
	Position [3]float32 `json:"position"`
	Pose     [3]float32 `json:"pose"`
	Color    [4]float32 `json:"color"`
	Tag      string     `json:"tag"`
	Mass     string     `json:"mass"`
}

// Snapshot is a read-only dump of a bootstrapped scene.
type Snapshot struct {
	Header  SnapshotHeader `json:"header"`
	Ambient [4]float32     `json:"ambient"`
	Camera  CameraRecord   `json:"camera"`
	Voxels  []VoxelRecord  `json:"voxels"`
}

// Capture records the scene's camera and voxels, ordered by entity ID.
func Capture(s *Scene) Snapshot {
	w := s.World
	snap := Snapshot{
		Header: SnapshotHeader{
			Version:  SnapshotVersion,
			Radius:   s.Config.Radius,
			CellSize: s.Config.CellSize,
			PoseMode: string(s.Config.PoseMode),
		},
		Ambient: Ambient(w).Array(),
	}

	if t, ok := engine.Get[engine.Transform](w, s.Camera); ok {
		cam, _ := engine.Get[components.Camera](w, s.Camera)
		snap.Camera = CameraRecord{
			ID:       s.Camera.ID,
			Position: vec3(t.Position.X, t.Position.Y, t.Position.Z),
			Rotation: [4]float32{t.Rotation.X, t.Rotation.Y, t.Rotation.Z, t.Rotation.W},
			FovY:     cam.Projection.FovY,
			Aspect:   cam.Projection.Aspect,
		}
	}

	for _, e := range s.Voxels {
		coord, ok := engine.Get[voxel.Coord](w, e)
		if !ok {
			continue
		}
		t, _ := engine.Get[engine.Transform](w, e)
		pose, _ := engine.Get[physics.BodyPose](w, e)
		tag, _ := engine.Get[physics.ObjectType](w, e)
		mass, _ := engine.Get[physics.Mass](w, e)
		snap.Voxels = append(snap.Voxels, VoxelRecord{
			ID:       e.ID,
			Coord:    [3]int{coord.X, coord.Y, coord.Z},
			Position: vec3(t.Position.X, t.Position.Y, t.Position.Z),
			Pose:     vec3(pose.Position.X, pose.Position.Y, pose.Position.Z),
			Color:    voxel.ColorAt(coord, s.Config.Radius).Array(),
			Tag:      tag.String(),
			Mass:     mass.String(),
		})
	}
	sort.Slice(snap.Voxels, func(i, j int) bool { return snap.Voxels[i].ID < snap.Voxels[j].ID })
	snap.Header.Voxels = len(snap.Voxels)
	return snap
}

func vec3(x, y, z float32) [3]float32 {
	return [3]float32{x, y, z}
}

// ExportSnapshot captures s and writes it to path.
func ExportSnapshot(path string, s *Scene) error {
	return WriteSnapshot(path, Capture(s))
}

// WriteSnapshot writes a zstd stream holding a JSON header line followed by
// the JSON body.
func WriteSnapshot(path string, snap Snapshot) (err error) {
	hb, err := json.Marshal(snap.Header)
	if err != nil {
		return fmt.Errorf("json encode header: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := writeBody(enc, hb, &snap); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func writeBody(w io.Writer, header []byte, snap *Snapshot) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	if _, err := bw.Write(header); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	if err := json.NewEncoder(bw).Encode(snap); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return bw.Flush()
}

// ReadSnapshot reads a file written by WriteSnapshot.
func ReadSnapshot(path string) (Snapshot, error) {
	var snap Snapshot
	f, err := os.Open(path)
	if err != nil {
		return snap, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return snap, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 64*1024)
	line, err := br.ReadBytes('\n')
	if err != nil {
		return snap, fmt.Errorf("read header: %w", err)
	}
	var hdr SnapshotHeader
	if err := json.Unmarshal(line, &hdr); err != nil {
		return snap, fmt.Errorf("decode header: %w", err)
	}
	if hdr.Version != SnapshotVersion {
		return snap, fmt.Errorf("%w: %d", ErrSnapshotVersion, hdr.Version)
	}
	if err := json.NewDecoder(br).Decode(&snap); err != nil {
		return snap, fmt.Errorf("json decode: %w", err)
	}
	return snap, nil
}
