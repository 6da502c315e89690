package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MeshBuffer is flat triangle geometry: three floats per vertex for
// position, normal and colour, three indices per triangle.
type MeshBuffer struct {
	Positions []float32
	Normals   []float32
	Colors    []float32
	Indices   []uint32
	faceCount int
	disposed  bool
}

func NewMeshBuffer() *MeshBuffer {
	return &MeshBuffer{}
}

func (m *MeshBuffer) VertexCount() int {
	return len(m.Positions) / 3
}

func (m *MeshBuffer) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *MeshBuffer) FaceCount() int {
	return m.faceCount
}

func (m *MeshBuffer) IsEmpty() bool {
	return m.faceCount == 0
}

// AppendQuad adds one face with a flat normal and colour. The quad is split
// into the triangles (v0,v1,v2) and (v2,v3,v0).
func (m *MeshBuffer) AppendQuad(corners [4]mgl32.Vec3, normal FaceType, color mgl32.Vec3) {
	first := uint32(m.VertexCount())
	n := normal.Normal()
	for _, corner := range corners {
		m.Positions = append(m.Positions, corner.X(), corner.Y(), corner.Z())
		m.Normals = append(m.Normals, n.X(), n.Y(), n.Z())
		m.Colors = append(m.Colors, color.X(), color.Y(), color.Z())
	}
	m.Indices = append(m.Indices,
		first, first+1, first+2,
		first+2, first+3, first,
	)
	m.faceCount++
}

func (m *MeshBuffer) Position(vertex uint32) mgl32.Vec3 {
	i := vertex * 3
	return mgl32.Vec3{m.Positions[i], m.Positions[i+1], m.Positions[i+2]}
}

func (m *MeshBuffer) Normal(vertex uint32) mgl32.Vec3 {
	i := vertex * 3
	return mgl32.Vec3{m.Normals[i], m.Normals[i+1], m.Normals[i+2]}
}

func (m *MeshBuffer) Color(vertex uint32) mgl32.Vec3 {
	i := vertex * 3
	return mgl32.Vec3{m.Colors[i], m.Colors[i+1], m.Colors[i+2]}
}

// IterateTriangles calls back with the corners of every triangle and the
// index of its first vertex.
func (m *MeshBuffer) IterateTriangles(callback func(triangle [3]mgl32.Vec3, firstVertex uint32)) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		callback([3]mgl32.Vec3{m.Position(a), m.Position(b), m.Position(c)}, a)
	}
}

// Dispose releases the buffers. A disposed buffer reads as empty.
func (m *MeshBuffer) Dispose() {
	m.Positions = nil
	m.Normals = nil
	m.Colors = nil
	m.Indices = nil
	m.faceCount = 0
	m.disposed = true
}

func (m *MeshBuffer) IsDisposed() bool {
	return m.disposed
}

func (m *MeshBuffer) vec3Slices(data []float32) [][3]float32 {
	result := make([][3]float32, len(data)/3)
	for i := range result {
		result[i] = [3]float32{data[i*3], data[i*3+1], data[i*3+2]}
	}
	return result
}
