package voxel

import (
	"image"
	"image/color"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
)

// GLTFMeshes converts the live chunk meshes for export.
func (w *World) GLTFMeshes() []util.GLTFMesh {
	result := make([]util.GLTFMesh, 0, len(w.chunkMeshes))
	for _, mesh := range w.chunkMeshes {
		geometry := mesh.Geometry
		indices := make([]uint32, len(geometry.Indices))
		copy(indices, geometry.Indices)
		result = append(result, util.GLTFMesh{
			Name:      mesh.Name(),
			Positions: geometry.vec3Slices(geometry.Positions),
			Normals:   geometry.vec3Slices(geometry.Normals),
			Colors:    geometry.vec3Slices(geometry.Colors),
			Indices:   indices,
		})
	}
	return result
}

func (w *World) ExportGLB(filename string) error {
	return util.SaveGLB(filename, w.GLTFMeshes())
}

// TopDownImage renders the topmost voxel of every column, one pixel per
// column, x to the right and z downwards. Lower surfaces are darker. Empty
// columns stay transparent.
func (w *World) TopDownImage(scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(w.width), int(w.depth)))
	for x := int32(0); x < w.width; x++ {
		for z := int32(0); z < w.depth; z++ {
			y := w.SurfaceHeight(x, z)
			if y < 0 {
				continue
			}
			rgb := w.blockTypes.Lookup(w.GetVoxel(x, y, z)).RGB()
			shade := 0.5 + 0.5*float32(y+1)/float32(w.height)
			img.SetRGBA(int(x), int(z), color.RGBA{
				R: uint8(rgb.X() * shade * 255),
				G: uint8(rgb.Y() * shade * 255),
				B: uint8(rgb.Z() * shade * 255),
				A: 255,
			})
		}
	}
	if scale <= 1 {
		return img
	}
	return util.ScaleNearest(img, scale)
}
