package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func FloorToInt(x float32) int {
	return int(math.Floor(float64(x)))
}

func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}

// FloorDiv rounds towards negative infinity, unlike the / operator.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ToGrid(position mgl32.Vec3) [3]int {
	return [3]int{FloorToInt(position.X()), FloorToInt(position.Y()), FloorToInt(position.Z())}
}

// HexToRGB splits a 0xRRGGBB colour into normalized channels.
func HexToRGB(color uint32) mgl32.Vec3 {
	r := float32((color>>16)&0xFF) / 255.0
	g := float32((color>>8)&0xFF) / 255.0
	b := float32(color&0xFF) / 255.0
	return mgl32.Vec3{r, g, b}
}
