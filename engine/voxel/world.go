package voxel

import (
	"fmt"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
	"github.com/pkg/errors"
)

// Options configure a World. Zero values fall back to defaults: chunk size
// 16, block size 1, a NopScene, DefaultBlockTypes, DefaultBuildingBlocks and
// DefaultTerrainOptions.
type Options struct {
	ChunkSize int32
	Width     int32
	Height    int32
	Depth     int32
	BlockSize float32

	Scene          Scene
	BlockTypes     BlockPalette
	BuildingBlocks map[string]byte
	Terrain        TerrainOptions

	// OnChunkUpdate runs after a chunk coordinate has been torn down and
	// regenerated, whether or not it ended up with a mesh.
	OnChunkUpdate func(chunk Int3)
}

// World owns a dense voxel grid and the chunk meshes derived from it.
// The grid is the only source of truth; chunks are caches rebuilt from it.
// A World is not safe for concurrent use.
type World struct {
	chunkSize int32
	width     int32
	height    int32
	depth     int32
	blockSize float32

	scene          Scene
	blockTypes     BlockPalette
	buildingBlocks map[string]byte
	terrain        TerrainOptions
	onChunkUpdate  func(chunk Int3)

	voxels      []byte
	chunks      map[Int3]*Chunk
	chunkMeshes []*ChunkMesh

	timer *util.Timer
}

func NewWorld(opts Options) (*World, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Depth <= 0 {
		return nil, errors.Errorf("world size must be positive, got %dx%dx%d", opts.Width, opts.Height, opts.Depth)
	}
	if opts.ChunkSize < 0 {
		return nil, errors.Errorf("chunk size must be positive, got %d", opts.ChunkSize)
	}
	if opts.ChunkSize == 0 {
		opts.ChunkSize = DEFAULT_CHUNK_SIZE
	}
	if opts.BlockSize < 0 {
		return nil, errors.Errorf("block size must be positive, got %f", opts.BlockSize)
	}
	if opts.BlockSize == 0 {
		opts.BlockSize = DEFAULT_BLOCK_SIZE
	}
	if opts.Scene == nil {
		opts.Scene = NopScene{}
	}
	if opts.BlockTypes == nil {
		opts.BlockTypes = DefaultBlockTypes()
	}
	if air, ok := opts.BlockTypes[EMPTY]; !ok || air.Solid || air.Transparent {
		return nil, errors.New("block palette must define code 0 as non-solid, opaque air")
	}
	if opts.BuildingBlocks == nil {
		opts.BuildingBlocks = DefaultBuildingBlocks()
	}
	for building, code := range opts.BuildingBlocks {
		if code == EMPTY {
			return nil, errors.Errorf("building %q maps to air", building)
		}
		if !opts.BlockTypes.Has(code) {
			util.LogVoxelDebug(fmt.Sprintf("[VoxelWorld] Building %q uses unknown block %d", building, code))
		}
	}
	terrain := opts.Terrain.withDefaults()

	w := &World{
		chunkSize:      opts.ChunkSize,
		width:          opts.Width,
		height:         opts.Height,
		depth:          opts.Depth,
		blockSize:      opts.BlockSize,
		scene:          opts.Scene,
		blockTypes:     opts.BlockTypes.clone(),
		buildingBlocks: make(map[string]byte, len(opts.BuildingBlocks)),
		terrain:        terrain,
		onChunkUpdate:  opts.OnChunkUpdate,
		voxels:         make([]byte, int(opts.Width)*int(opts.Height)*int(opts.Depth)),
		chunks:         make(map[Int3]*Chunk),
		timer:          util.NewTimer(),
	}
	for building, code := range opts.BuildingBlocks {
		w.buildingBlocks[building] = code
	}
	util.LogVoxelDebug(fmt.Sprintf("[VoxelWorld] Created %dx%dx%d world with chunk size %d", w.width, w.height, w.depth, w.chunkSize))
	return w, nil
}

func (w *World) Width() int32 {
	return w.width
}

func (w *World) Height() int32 {
	return w.height
}

func (w *World) Depth() int32 {
	return w.depth
}

func (w *World) ChunkSize() int32 {
	return w.chunkSize
}

func (w *World) BlockSize() float32 {
	return w.blockSize
}

func (w *World) BlockTypes() BlockPalette {
	return w.blockTypes.clone()
}

func (w *World) Timings() *util.Timer {
	return w.timer
}

func (w *World) Contains(x, y, z int32) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height && z >= 0 && z < w.depth
}

func (w *World) ContainsGrid(position Int3) bool {
	return w.Contains(position.X, position.Y, position.Z)
}

func (w *World) voxelIndex(x, y, z int32) int {
	return int(y)*int(w.width)*int(w.depth) + int(z)*int(w.width) + int(x)
}

// GetVoxel returns the code at the coordinate, or air outside the world.
func (w *World) GetVoxel(x, y, z int32) byte {
	if !w.Contains(x, y, z) {
		return EMPTY
	}
	return w.voxels[w.voxelIndex(x, y, z)]
}

func (w *World) GetVoxelAt(position Int3) byte {
	return w.GetVoxel(position.X, position.Y, position.Z)
}

// SetVoxel writes the code and synchronously rebuilds the affected chunks.
// Writes outside the world are ignored.
func (w *World) SetVoxel(x, y, z int32, code byte) {
	if !w.Contains(x, y, z) {
		return
	}
	w.voxels[w.voxelIndex(x, y, z)] = code
	w.UpdateChunkForVoxel(x, y, z)
}

// GetMeshes returns the chunk meshes currently eligible for ray casts.
// The slice is a copy; the meshes are shared.
func (w *World) GetMeshes() []*ChunkMesh {
	result := make([]*ChunkMesh, len(w.chunkMeshes))
	copy(result, w.chunkMeshes)
	return result
}

// Voxels returns a copy of the raw grid in y, z, x order.
func (w *World) Voxels() []byte {
	result := make([]byte, len(w.voxels))
	copy(result, w.voxels)
	return result
}

type Stats struct {
	Chunks    int
	Meshes    int
	Faces     int
	Triangles int
	Vertices  int
}

func (w *World) Stats() Stats {
	stats := Stats{Chunks: len(w.chunks), Meshes: len(w.chunkMeshes)}
	for _, mesh := range w.chunkMeshes {
		stats.Faces += mesh.Geometry.FaceCount()
		stats.Triangles += mesh.Geometry.TriangleCount()
		stats.Vertices += mesh.Geometry.VertexCount()
	}
	return stats
}

// Dispose removes every mesh from the scene. The grid is kept.
func (w *World) Dispose() {
	w.disposeChunks()
}

// RebuildAll throws away every chunk and meshes the whole grid again.
func (w *World) RebuildAll() {
	w.disposeChunks()
	w.GenerateChunks()
}
