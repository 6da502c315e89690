package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type HitInfo3D struct {
	Hit                   bool
	Distance              float64
	Face                  FaceType
	CollisionPosition     mgl32.Vec3
	PreviousGridPosition  Int3
	CollisionGridPosition Int3
	// StartedInside is set when the very first cell stopped the ray.
	StartedInside bool
}

// DDARaycast walks the grid cells crossed by the segment in grid units and
// stops at the first cell for which stopRay returns true.
func DDARaycast(rayStart, rayEnd mgl32.Vec3, stopRay func(x, y, z int32) bool) HitInfo3D {
	// adapted from: https://github.com/fenomas/fast-voxel-raycast/blob/master/index.js
	t := 0.0
	ix := int32(math.Floor(float64(rayStart.X())))
	iy := int32(math.Floor(float64(rayStart.Y())))
	iz := int32(math.Floor(float64(rayStart.Z())))

	ray := rayEnd.Sub(rayStart)
	maxRayLength := float64(ray.Len())
	if maxRayLength == 0 {
		start := Int3{ix, iy, iz}
		if stopRay(ix, iy, iz) {
			return HitInfo3D{Hit: true, StartedInside: true, CollisionPosition: rayStart, PreviousGridPosition: start, CollisionGridPosition: start}
		}
		return HitInfo3D{}
	}
	rayDir := ray.Normalize()

	stepx := stepFor(rayDir.X())
	stepy := stepFor(rayDir.Y())
	stepz := stepFor(rayDir.Z())

	txDelta := math.Abs(1.0 / float64(rayDir.X()))
	tyDelta := math.Abs(1.0 / float64(rayDir.Y()))
	tzDelta := math.Abs(1.0 / float64(rayDir.Z()))

	txMax := boundaryDistance(rayStart.X(), ix, stepx, txDelta)
	tyMax := boundaryDistance(rayStart.Y(), iy, stepy, tyDelta)
	tzMax := boundaryDistance(rayStart.Z(), iz, stepz, tzDelta)

	steppedIndex := -1

	for t <= maxRayLength {
		if stopRay(ix, iy, iz) {
			current := Int3{ix, iy, iz}
			hit := HitInfo3D{
				Hit:                   true,
				Distance:              t,
				CollisionPosition:     rayStart.Add(rayDir.Mul(float32(t))),
				PreviousGridPosition:  current,
				CollisionGridPosition: current,
			}
			switch steppedIndex {
			case 0:
				hit.Face = entryFace(stepx, XN, XP)
				hit.PreviousGridPosition = Int3{ix - stepx, iy, iz}
			case 1:
				hit.Face = entryFace(stepy, YN, YP)
				hit.PreviousGridPosition = Int3{ix, iy - stepy, iz}
			case 2:
				hit.Face = entryFace(stepz, ZN, ZP)
				hit.PreviousGridPosition = Int3{ix, iy, iz - stepz}
			default:
				hit.StartedInside = true
			}
			return hit
		}

		if txMax < tyMax {
			if txMax < tzMax {
				ix += stepx
				t = txMax
				txMax += txDelta
				steppedIndex = 0
			} else {
				iz += stepz
				t = tzMax
				tzMax += tzDelta
				steppedIndex = 2
			}
		} else {
			if tyMax < tzMax {
				iy += stepy
				t = tyMax
				tyMax += tyDelta
				steppedIndex = 1
			} else {
				iz += stepz
				t = tzMax
				tzMax += tzDelta
				steppedIndex = 2
			}
		}
	}

	return HitInfo3D{Hit: false}
}

func stepFor(direction float32) int32 {
	if direction > 0 {
		return 1
	}
	return -1
}

func boundaryDistance(start float32, cell, step int32, delta float64) float64 {
	if math.IsInf(delta, 1) {
		return math.Inf(1)
	}
	if step > 0 {
		return delta * (float64(cell+1) - float64(start))
	}
	return delta * (float64(start) - float64(cell))
}

// entryFace is the face of the new cell the ray crossed into it through.
func entryFace(step int32, forward, backward FaceType) FaceType {
	if step > 0 {
		return forward
	}
	return backward
}

// PickVoxel walks the grid from start to end, both in world space, and
// returns the first non-air voxel. Cells outside the world read as air.
func (w *World) PickVoxel(start, end mgl32.Vec3) HitInfo3D {
	scale := 1 / w.blockSize
	hit := DDARaycast(start.Mul(scale), end.Mul(scale), func(x, y, z int32) bool {
		return w.GetVoxel(x, y, z) != EMPTY
	})
	if hit.Hit {
		hit.Distance *= float64(w.blockSize)
		hit.CollisionPosition = hit.CollisionPosition.Mul(w.blockSize)
	}
	return hit
}
