package voxel

import (
	"github.com/SoyUnGlitch/utuado-game/engine/util"
	"github.com/go-gl/mathgl/mgl32"
)

// Intersection is a ray hit against chunk geometry in world space. Normal is
// the outward normal of the face that was struck.
type Intersection struct {
	Point  mgl32.Vec3
	Normal mgl32.Vec3
}

// VoxelPositionFromIntersect maps a hit to the grid cell that was struck by
// stepping half a block back along the normal, into the solid voxel.
func (w *World) VoxelPositionFromIntersect(hit Intersection) Int3 {
	inside := hit.Point.Sub(hit.Normal.Mul(0.5 * w.blockSize)).Mul(1 / w.blockSize)
	cell := util.ToGrid(inside)
	return Int3{X: int32(cell[0]), Y: int32(cell[1]), Z: int32(cell[2])}
}

// PlacementTarget is the empty cell in front of the struck face, where a new
// building would go. It may lie outside the world.
func (w *World) PlacementTarget(hit Intersection) Int3 {
	return w.VoxelPositionFromIntersect(hit).Add(FaceFromNormal(hit.Normal).Direction())
}
