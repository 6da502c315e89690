package voxel

import (
	"fmt"
	"math"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
)

// TerrainOptions shape the radial mountain height function. An all-zero
// value means unconfigured and takes DefaultTerrainOptions; otherwise every
// field is used as given, so a zero PeakHeight or RippleAmplitude switches
// that term off. A zero Radius means a third of the smaller horizontal extent.
type TerrainOptions struct {
	BaseHeight      float64 `yaml:"base_height"`
	PeakHeight      float64 `yaml:"peak_height"`
	Radius          float64 `yaml:"radius"`
	RippleFrequency float64 `yaml:"ripple_frequency"`
	RippleAmplitude float64 `yaml:"ripple_amplitude"`
}

func DefaultTerrainOptions() TerrainOptions {
	return TerrainOptions{
		BaseHeight:      3,
		PeakHeight:      8,
		RippleFrequency: 0.4,
		RippleAmplitude: 1,
	}
}

func (t TerrainOptions) withDefaults() TerrainOptions {
	if t == (TerrainOptions{}) {
		return DefaultTerrainOptions()
	}
	return t
}

func (w *World) mountainRadius() float64 {
	if w.terrain.Radius > 0 {
		return w.terrain.Radius
	}
	return math.Min(float64(w.width), float64(w.depth)) / 3
}

// HeightAt is the terrain column height at (x, z), clamped to [1, height-1].
// It is a pure function of the coordinate and the world's extents.
func (w *World) HeightAt(x, z int32) int32 {
	centerX := float64(w.width) / 2
	centerZ := float64(w.depth) / 2
	dx := float64(x) - centerX
	dz := float64(z) - centerZ
	distance := math.Sqrt(dx*dx + dz*dz)

	height := w.terrain.BaseHeight
	radius := w.mountainRadius()
	if distance < radius {
		height += w.terrain.PeakHeight * (1 - distance/radius)
	}
	height += w.terrain.RippleAmplitude * (math.Sin(float64(x)*w.terrain.RippleFrequency) + math.Sin(float64(z)*w.terrain.RippleFrequency))

	return int32(math.Max(1, math.Min(math.Floor(height), float64(w.height-1))))
}

// terrainBlock picks the block for height y in a column of the given height.
func terrainBlock(y, columnHeight int32) byte {
	switch {
	case y < columnHeight-3:
		return BlockStone
	case y < columnHeight-1:
		return BlockDirt
	case y < columnHeight:
		return BlockGrass
	case y < 2 && columnHeight < 3:
		return BlockWater
	}
	return EMPTY
}

// GenerateTerrain overwrites the whole grid with the height-mapped terrain
// and then meshes every chunk once. Existing chunk meshes are discarded.
func (w *World) GenerateTerrain() {
	stop := w.timer.Start("generate_terrain")
	for x := int32(0); x < w.width; x++ {
		for z := int32(0); z < w.depth; z++ {
			columnHeight := w.HeightAt(x, z)
			for y := int32(0); y < w.height; y++ {
				w.voxels[w.voxelIndex(x, y, z)] = terrainBlock(y, columnHeight)
			}
		}
	}
	util.LogVoxelInfo(fmt.Sprintf("[VoxelWorld] Filled terrain in %.2fms", stop()))
	w.RebuildAll()
}

// SurfaceHeight returns the y of the highest non-air voxel in the column, or
// -1 for an empty column.
func (w *World) SurfaceHeight(x, z int32) int32 {
	for y := w.height - 1; y >= 0; y-- {
		if w.GetVoxel(x, y, z) != EMPTY {
			return y
		}
	}
	return -1
}
