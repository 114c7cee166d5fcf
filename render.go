package main

import (
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RenderImage renders the disguise effect on the cpu into an image
// sized width x height. Every pixel is independent so rows are split
// into bands and rendered in parallel. Output is deterministic, the
// same inputs always produce the same bytes.
func RenderImage(
	params DisguiseParams,
	sample SampleFunc,
	width, height int,
) *image.NRGBA {
	out := image.NewNRGBA(RectWH(width, height))

	var wg errgroup.Group
	wg.SetLimit(runtime.GOMAXPROCS(0))

	const bandHeight = 32

	for bandStart := 0; bandStart < height; bandStart += bandHeight {
		bandEnd := min(bandStart+bandHeight, height)

		wg.Go(func() error {
			renderBand(out, params, sample, width, bandStart, bandEnd)
			return nil
		})
	}

	// bands don't error, Wait only joins them
	_ = wg.Wait()

	return out
}

func renderBand(
	out *image.NRGBA,
	params DisguiseParams,
	sample SampleFunc,
	width int,
	yStart, yEnd int,
) {
	height := out.Bounds().Dy()

	for y := yStart; y < yEnd; y++ {
		for x := range width {
			// sample at pixel centers, same spots the gpu shades
			normX := (f64(x) + 0.5) / f64(width)
			normY := (f64(y) + 0.5) / f64(height)

			clr := DisguisePixel(
				normX, normY,
				f64(width), f64(height),
				params, sample,
			)

			i := out.PixOffset(x, y)
			out.Pix[i+0] = colorComponentByte(clr[0])
			out.Pix[i+1] = colorComponentByte(clr[1])
			out.Pix[i+2] = colorComponentByte(clr[2])
			out.Pix[i+3] = colorComponentByte(clr[3])
		}
	}
}

func colorComponentByte(c float64) uint8 {
	return uint8(Clamp(c, 0, 1)*255 + 0.5)
}
