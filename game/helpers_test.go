package game

import "github.com/go-gl/mathgl/mgl32"

func mgl(x, y, z float32) mgl32.Vec3 {
	return mgl32.Vec3{x, y, z}
}
