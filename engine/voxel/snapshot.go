package voxel

import (
	"fmt"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
	"github.com/pkg/errors"
)

// WorldSnapshot is the raw grid plus the extents needed to check it against
// a world. Voxels are in y, z, x order and serialize as base64.
type WorldSnapshot struct {
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
	Depth     int32  `json:"depth"`
	ChunkSize int32  `json:"chunk_size"`
	Voxels    []byte `json:"voxels"`
}

func (w *World) Snapshot() WorldSnapshot {
	return WorldSnapshot{
		Width:     w.width,
		Height:    w.height,
		Depth:     w.depth,
		ChunkSize: w.chunkSize,
		Voxels:    w.Voxels(),
	}
}

// Restore replaces the grid with the snapshot and rebuilds every chunk.
// The chunk size may differ; the extents may not.
func (w *World) Restore(snapshot WorldSnapshot) error {
	if snapshot.Width != w.width || snapshot.Height != w.height || snapshot.Depth != w.depth {
		return errors.Errorf("snapshot is %dx%dx%d, world is %dx%dx%d",
			snapshot.Width, snapshot.Height, snapshot.Depth, w.width, w.height, w.depth)
	}
	if len(snapshot.Voxels) != len(w.voxels) {
		return errors.Errorf("snapshot holds %d voxels, expected %d", len(snapshot.Voxels), len(w.voxels))
	}
	copy(w.voxels, snapshot.Voxels)
	util.LogVoxelInfo(fmt.Sprintf("[VoxelWorld] Restored %dx%dx%d grid", w.width, w.height, w.depth))
	w.RebuildAll()
	return nil
}
