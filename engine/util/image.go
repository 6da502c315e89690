package util

import (
	"image"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// ScaleNearest enlarges src by an integer factor without smoothing, so every
// source pixel stays a crisp square.
func ScaleNearest(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}

func SavePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return errors.Wrapf(err, "encoding png %s", filename)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", filename)
	}
	LogIOInfo("[Preview] Wrote " + filename)
	return nil
}
