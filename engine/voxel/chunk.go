package voxel

import (
	"fmt"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
	"github.com/go-gl/mathgl/mgl32"
)

type Int3 struct {
	X int32 `json:"x" yaml:"x"`
	Y int32 `json:"y" yaml:"y"`
	Z int32 `json:"z" yaml:"z"`
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

func (i Int3) Sub(other Int3) Int3 {
	return Int3{i.X - other.X, i.Y - other.Y, i.Z - other.Z}
}

func (i Int3) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X), float32(i.Y), float32(i.Z)}
}

func (i Int3) ToBlockCenterVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X) + 0.5, float32(i.Y) + 0.5, float32(i.Z) + 0.5}
}

func (i Int3) String() string {
	return fmt.Sprintf("%d,%d,%d", i.X, i.Y, i.Z)
}

// ChunkMesh is the renderable geometry of one chunk. It belongs to that chunk
// alone and is replaced, never patched, when the chunk changes.
type ChunkMesh struct {
	Chunk    Int3
	Geometry *MeshBuffer
}

func (m *ChunkMesh) Name() string {
	return "chunk_" + m.Chunk.String()
}

func (m *ChunkMesh) Dispose() {
	m.Geometry.Dispose()
}

// Chunk records the voxel range [Start, End) covered by one chunk. End is
// clamped to the world edge, so the last chunk on an axis can be smaller.
type Chunk struct {
	Position Int3
	Start    Int3
	End      Int3
	Mesh     *ChunkMesh
}

func (c *Chunk) Contains(x, y, z int32) bool {
	return x >= c.Start.X && x < c.End.X && y >= c.Start.Y && y < c.End.Y && z >= c.Start.Z && z < c.End.Z
}

func (c *Chunk) Size() Int3 {
	return c.End.Sub(c.Start)
}

// ChunkCounts is the number of chunks along each axis.
func (w *World) ChunkCounts() Int3 {
	return Int3{
		X: int32(util.CeilDiv(int(w.width), int(w.chunkSize))),
		Y: int32(util.CeilDiv(int(w.height), int(w.chunkSize))),
		Z: int32(util.CeilDiv(int(w.depth), int(w.chunkSize))),
	}
}

func (w *World) IsValidChunk(cx, cy, cz int32) bool {
	counts := w.ChunkCounts()
	return cx >= 0 && cx < counts.X && cy >= 0 && cy < counts.Y && cz >= 0 && cz < counts.Z
}

func (w *World) ChunkPosition(x, y, z int32) Int3 {
	return Int3{
		X: int32(util.FloorDiv(int(x), int(w.chunkSize))),
		Y: int32(util.FloorDiv(int(y), int(w.chunkSize))),
		Z: int32(util.FloorDiv(int(z), int(w.chunkSize))),
	}
}

func (w *World) GetChunk(cx, cy, cz int32) *Chunk {
	return w.chunks[Int3{cx, cy, cz}]
}

func (w *World) ChunkExists(cx, cy, cz int32) bool {
	return w.GetChunk(cx, cy, cz) != nil
}

func (w *World) GetChunkFromBlock(x, y, z int32) *Chunk {
	pos := w.ChunkPosition(x, y, z)
	return w.GetChunk(pos.X, pos.Y, pos.Z)
}

func (w *World) chunkBounds(cx, cy, cz int32) (start, end Int3) {
	start = Int3{cx * w.chunkSize, cy * w.chunkSize, cz * w.chunkSize}
	end = Int3{
		X: min32(start.X+w.chunkSize, w.width),
		Y: min32(start.Y+w.chunkSize, w.height),
		Z: min32(start.Z+w.chunkSize, w.depth),
	}
	return start, end
}

// GenerateChunks builds every chunk of the world that has visible faces.
func (w *World) GenerateChunks() {
	stop := w.timer.Start("generate_chunks")
	counts := w.ChunkCounts()
	for cx := int32(0); cx < counts.X; cx++ {
		for cy := int32(0); cy < counts.Y; cy++ {
			for cz := int32(0); cz < counts.Z; cz++ {
				w.GenerateChunk(cx, cy, cz)
			}
		}
	}
	elapsed := stop()
	stats := w.Stats()
	util.LogVoxelInfo(fmt.Sprintf("[VoxelWorld] Built %d chunks with %d faces (%d triangles) in %.2fms", stats.Chunks, stats.Faces, stats.Triangles, elapsed))
}

// GenerateChunk meshes the chunk at the given chunk coordinate. It does
// nothing if the chunk already exists or lies outside the world. Chunks
// without visible faces are not registered.
func (w *World) GenerateChunk(cx, cy, cz int32) {
	key := Int3{cx, cy, cz}
	if _, exists := w.chunks[key]; exists {
		return
	}
	if !w.IsValidChunk(cx, cy, cz) {
		return
	}
	start, end := w.chunkBounds(cx, cy, cz)
	geometry := w.generateChunkGeometry(start, end)
	if geometry.IsEmpty() {
		return
	}
	mesh := &ChunkMesh{Chunk: key, Geometry: geometry}
	w.scene.Add(mesh)
	w.chunks[key] = &Chunk{
		Position: key,
		Start:    start,
		End:      end,
		Mesh:     mesh,
	}
	w.chunkMeshes = append(w.chunkMeshes, mesh)
}

// UpdateChunk tears down the chunk at the given coordinate, if any, and
// builds it again from the current grid.
func (w *World) UpdateChunk(cx, cy, cz int32) {
	key := Int3{cx, cy, cz}
	if chunk, exists := w.chunks[key]; exists {
		w.scene.Remove(chunk.Mesh)
		w.removeFromMeshList(chunk.Mesh)
		chunk.Mesh.Dispose()
		delete(w.chunks, key)
	}
	w.GenerateChunk(cx, cy, cz)
	if w.onChunkUpdate != nil && w.IsValidChunk(cx, cy, cz) {
		w.onChunkUpdate(key)
	}
}

// UpdateChunkForVoxel rebuilds the chunk owning the voxel, plus every
// neighbor chunk across a boundary the voxel touches.
func (w *World) UpdateChunkForVoxel(x, y, z int32) {
	if !w.Contains(x, y, z) {
		return
	}
	c := w.ChunkPosition(x, y, z)
	counts := w.ChunkCounts()
	last := w.chunkSize - 1

	w.UpdateChunk(c.X, c.Y, c.Z)

	if x%w.chunkSize == 0 && c.X > 0 {
		w.UpdateChunk(c.X-1, c.Y, c.Z)
	}
	if x%w.chunkSize == last && c.X < counts.X-1 {
		w.UpdateChunk(c.X+1, c.Y, c.Z)
	}
	if y%w.chunkSize == 0 && c.Y > 0 {
		w.UpdateChunk(c.X, c.Y-1, c.Z)
	}
	if y%w.chunkSize == last && c.Y < counts.Y-1 {
		w.UpdateChunk(c.X, c.Y+1, c.Z)
	}
	if z%w.chunkSize == 0 && c.Z > 0 {
		w.UpdateChunk(c.X, c.Y, c.Z-1)
	}
	if z%w.chunkSize == last && c.Z < counts.Z-1 {
		w.UpdateChunk(c.X, c.Y, c.Z+1)
	}
}

func (w *World) removeFromMeshList(mesh *ChunkMesh) {
	for i, candidate := range w.chunkMeshes {
		if candidate == mesh {
			w.chunkMeshes = append(w.chunkMeshes[:i], w.chunkMeshes[i+1:]...)
			return
		}
	}
}

// disposeChunks removes every chunk mesh from the scene and forgets all chunks.
func (w *World) disposeChunks() {
	for key, chunk := range w.chunks {
		w.scene.Remove(chunk.Mesh)
		chunk.Mesh.Dispose()
		delete(w.chunks, key)
	}
	w.chunkMeshes = w.chunkMeshes[:0]
}

// generateChunkGeometry emits a quad for every visible face of every
// non-air voxel in [start, end). Neighbors are read from the whole grid, so
// faces on a chunk edge are culled against the adjacent chunk's voxels.
func (w *World) generateChunkGeometry(start, end Int3) *MeshBuffer {
	buffer := NewMeshBuffer()
	for x := start.X; x < end.X; x++ {
		for y := start.Y; y < end.Y; y++ {
			for z := start.Z; z < end.Z; z++ {
				code := w.GetVoxel(x, y, z)
				if code == EMPTY {
					continue
				}
				blockType := w.blockTypes.Lookup(code)
				color := blockType.RGB()
				for _, face := range AllFaces {
					d := face.Direction()
					neighbor := w.GetVoxel(x+d.X, y+d.Y, z+d.Z)
					if !w.isFaceVisible(blockType, neighbor) {
						continue
					}
					buffer.AppendQuad(FaceVertices(x, y, z, face, w.blockSize), face, color)
				}
			}
		}
	}
	return buffer
}

// isFaceVisible reports whether a face of a voxel of blockType shows
// against the neighbor code: the neighbor is air, or the neighbor is
// transparent and the voxel itself is not.
func (w *World) isFaceVisible(blockType BlockType, neighbor byte) bool {
	if neighbor == EMPTY {
		return true
	}
	return w.blockTypes.IsTransparent(neighbor) && !blockType.Transparent
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
