package main

import (
	"image"

	"golang.org/x/exp/constraints"

	eb "github.com/hajimehoshi/ebiten/v2"
)

func f64[N constraints.Integer | constraints.Float](n N) float64 {
	return float64(n)
}

func f32[N constraints.Integer | constraints.Float](n N) float32 {
	return float32(n)
}

func CursorFPt() FPoint {
	mx, my := eb.CursorPosition()
	return FPt(f64(mx), f64(my))
}

func TransformToCenter(
	width, height float64,
	scaleX, scaleY float64,
	rotation float64,
) eb.GeoM {
	geom := eb.GeoM{}
	geom.Translate(-width*0.5, -height*0.5)
	geom.Scale(scaleX, scaleY)
	geom.Rotate(rotation)

	return geom
}

func ImageSize(img image.Image) (int, int) {
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func ImageSizeFPt(img image.Image) FPoint {
	bound := img.Bounds()
	return FPoint{f64(bound.Dx()), f64(bound.Dy())}
}

// ImageImageFromEbImage reads img back from the gpu.
// Slow, only meant for screenshots and exports.
func ImageImageFromEbImage(img *eb.Image) *image.RGBA {
	w, h := ImageSize(img)

	converted := image.NewRGBA(RectWH(w, h))
	img.ReadPixels(converted.Pix)

	return converted
}
