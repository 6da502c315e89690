package voxel

import (
	"bytes"
	"testing"
)

func TestTerrainIsDeterministic(t *testing.T) {
	first, _, _ := newTestWorld(t, 8, 8, 8, 4)
	second, _, _ := newTestWorld(t, 8, 8, 8, 4)
	first.GenerateTerrain()
	second.GenerateTerrain()
	if !bytes.Equal(first.Voxels(), second.Voxels()) {
		t.Fatal("terrain differs between runs")
	}
}

func assertColumn(t *testing.T, w *World, x, z int32, want []byte) {
	t.Helper()
	for y, code := range want {
		if got := w.GetVoxel(x, int32(y), z); got != code {
			t.Errorf("column %d,%d y=%d: got %d, want %d", x, z, y, got, code)
		}
	}
}

func TestTerrainColumns(t *testing.T) {
	world, _, _ := newTestWorld(t, 8, 8, 8, 4)
	world.GenerateTerrain()

	if got := world.HeightAt(4, 4); got != 7 {
		t.Errorf("peak height = %d, want 7", got)
	}
	assertColumn(t, world, 4, 4, []byte{
		BlockStone, BlockStone, BlockStone, BlockStone,
		BlockDirt, BlockDirt, BlockGrass, BlockAir,
	})

	if got := world.HeightAt(0, 0); got != 3 {
		t.Errorf("corner height = %d, want 3", got)
	}
	assertColumn(t, world, 0, 0, []byte{
		BlockDirt, BlockDirt, BlockGrass, BlockAir,
		BlockAir, BlockAir, BlockAir, BlockAir,
	})
}

func TestTerrainWater(t *testing.T) {
	world, _, _ := newTestWorld(t, 16, 8, 16, 4)
	world.GenerateTerrain()

	if got := world.HeightAt(12, 12); got != 1 {
		t.Fatalf("height at 12,12 = %d, want 1", got)
	}
	assertColumn(t, world, 12, 12, []byte{BlockGrass, BlockWater, BlockAir})
}

func TestTerrainHeightIsClamped(t *testing.T) {
	world, _, _ := newTestWorld(t, 8, 4, 8, 4)
	for x := int32(0); x < 8; x++ {
		for z := int32(0); z < 8; z++ {
			h := world.HeightAt(x, z)
			if h < 1 || h > 3 {
				t.Errorf("HeightAt(%d,%d) = %d outside [1,3]", x, z, h)
			}
		}
	}
}

func TestTerrainBuildsChunksOnce(t *testing.T) {
	world, _, recorder := newTestWorld(t, 8, 8, 8, 4)
	world.GenerateTerrain()
	if len(recorder.updates) != 0 {
		t.Errorf("terrain went through per-voxel updates: %d", len(recorder.updates))
	}
	if world.Stats().Chunks == 0 {
		t.Error("terrain produced no chunks")
	}
	state := world.Timings().GetState("generate_chunks")
	if state == nil || state.Count() != 1 {
		t.Error("chunks should be generated exactly once")
	}
}

func TestSurfaceHeight(t *testing.T) {
	world, _, _ := newTestWorld(t, 8, 8, 8, 4)
	world.GenerateTerrain()
	if got := world.SurfaceHeight(4, 4); got != 6 {
		t.Errorf("SurfaceHeight(4,4) = %d, want 6", got)
	}
	if got := world.SurfaceHeight(-1, 0); got != -1 {
		t.Errorf("SurfaceHeight outside = %d, want -1", got)
	}
}

func TestTerrainOptionsOverride(t *testing.T) {
	world, err := NewWorld(Options{Width: 8, Height: 16, Depth: 8, Terrain: TerrainOptions{BaseHeight: 5, PeakHeight: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if got := world.HeightAt(0, 0); got != 5 {
		t.Errorf("HeightAt(0,0) = %d, want 5", got)
	}
	if got := world.HeightAt(4, 4); got != 6 {
		t.Errorf("HeightAt(4,4) = %d, want 6", got)
	}
}

func TestTerrainZeroOptionsAreKept(t *testing.T) {
	flat, err := NewWorld(Options{Width: 32, Height: 16, Depth: 32, Terrain: TerrainOptions{BaseHeight: 3}})
	if err != nil {
		t.Fatal(err)
	}
	for x := int32(0); x < 32; x++ {
		for z := int32(0); z < 32; z++ {
			if got := flat.HeightAt(x, z); got != 3 {
				t.Fatalf("HeightAt(%d,%d) = %d, want a flat 3", x, z, got)
			}
		}
	}

	ground, err := NewWorld(Options{Width: 8, Height: 8, Depth: 8, Terrain: TerrainOptions{PeakHeight: 4}})
	if err != nil {
		t.Fatal(err)
	}
	if got := ground.HeightAt(0, 0); got != 1 {
		t.Errorf("HeightAt(0,0) with zero base = %d, want the floor of 1", got)
	}

	unset, err := NewWorld(Options{Width: 16, Height: 8, Depth: 16})
	if err != nil {
		t.Fatal(err)
	}
	if got := unset.HeightAt(12, 12); got != 1 {
		t.Errorf("unconfigured HeightAt(12,12) = %d, want the default terrain's 1", got)
	}
}
