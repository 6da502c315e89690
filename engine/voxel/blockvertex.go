package voxel

import "github.com/go-gl/mathgl/mgl32"

type FaceType int32

// Face order matches the order faces are visited while meshing.
const (
	XP FaceType = iota
	XN
	YP
	YN
	ZP
	ZN
)

var AllFaces = [6]FaceType{XP, XN, YP, YN, ZP, ZN}

func (f FaceType) String() string {
	switch f {
	case XP:
		return "x+"
	case XN:
		return "x-"
	case YP:
		return "y+"
	case YN:
		return "y-"
	case ZP:
		return "z+"
	case ZN:
		return "z-"
	}
	return "invalid"
}

// Direction is the unit grid step from a voxel to the neighbor behind this face.
func (f FaceType) Direction() Int3 {
	switch f {
	case XP:
		return Int3{X: 1}
	case XN:
		return Int3{X: -1}
	case YP:
		return Int3{Y: 1}
	case YN:
		return Int3{Y: -1}
	case ZP:
		return Int3{Z: 1}
	case ZN:
		return Int3{Z: -1}
	}
	return Int3{}
}

func (f FaceType) Normal() mgl32.Vec3 {
	return f.Direction().ToVec3()
}

// FaceFromNormal snaps an arbitrary normal to the dominant axis.
func FaceFromNormal(normal mgl32.Vec3) FaceType {
	ax, ay, az := abs32(normal.X()), abs32(normal.Y()), abs32(normal.Z())
	switch {
	case ax >= ay && ax >= az:
		if normal.X() >= 0 {
			return XP
		}
		return XN
	case ay >= az:
		if normal.Y() >= 0 {
			return YP
		}
		return YN
	default:
		if normal.Z() >= 0 {
			return ZP
		}
		return ZN
	}
}

// faceCorners lists the unit cube corners of a face. Triangles are (0,1,2)
// and (2,3,0).
var faceCorners = [6][4]mgl32.Vec3{
	XP: {{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	XN: {{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0}},
	YP: {{0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1}},
	YN: {{0, 0, 1}, {1, 0, 1}, {1, 0, 0}, {0, 0, 0}},
	ZP: {{1, 0, 1}, {1, 1, 1}, {0, 1, 1}, {0, 0, 1}},
	ZN: {{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
}

// FaceVertices returns the four corners of the given face of the voxel at
// (x, y, z), scaled by blockSize.
func FaceVertices(x, y, z int32, face FaceType, blockSize float32) [4]mgl32.Vec3 {
	origin := mgl32.Vec3{float32(x) * blockSize, float32(y) * blockSize, float32(z) * blockSize}
	var result [4]mgl32.Vec3
	for i, corner := range faceCorners[face] {
		result[i] = origin.Add(corner.Mul(blockSize))
	}
	return result
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
