package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RayHit is the closest intersection of a segment with the world's meshes.
type RayHit struct {
	Intersection
	Distance float32
	Chunk    Int3
}

// Raycast tests the segment from start to end against every triangle of the
// current chunk meshes and returns the closest hit.
func (w *World) Raycast(start, end mgl32.Vec3) (RayHit, bool) {
	closest := RayHit{Distance: float32(math.Inf(1))}
	found := false
	for _, mesh := range w.chunkMeshes {
		geometry := mesh.Geometry
		geometry.IterateTriangles(func(triangle [3]mgl32.Vec3, firstVertex uint32) {
			hit, point := intersectLineSegmentTriangle(start, end, triangle[0], triangle[1], triangle[2])
			if !hit {
				return
			}
			distance := point.Sub(start).Len()
			if distance >= closest.Distance {
				return
			}
			closest = RayHit{
				Intersection: Intersection{Point: point, Normal: geometry.Normal(firstVertex)},
				Distance:     distance,
				Chunk:        mesh.Chunk,
			}
			found = true
		})
	}
	return closest, found
}

// intersectLineSegmentTriangle is Moeller-Trumbore limited to the segment.
func intersectLineSegmentTriangle(rayStart, rayEnd mgl32.Vec3, v0, v1, v2 mgl32.Vec3) (bool, mgl32.Vec3) {
	const epsilon = 0.000001

	direction := rayEnd.Sub(rayStart)
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	h := direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return false, mgl32.Vec3{}
	}

	f := 1.0 / a
	s := rayStart.Sub(v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return false, mgl32.Vec3{}
	}

	q := s.Cross(edge1)
	v := f * direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return false, mgl32.Vec3{}
	}

	t := f * edge2.Dot(q)
	if t > epsilon && t <= 1.0 {
		return true, rayStart.Add(direction.Mul(t))
	}
	return false, mgl32.Vec3{}
}
