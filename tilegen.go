//go:build ignore

// ====================================================
// generates the builtin tile texture
//
// usage :
// 	go run tilegen.go [-size N] [-seed N] [-out path]
//
// The noise lattice wraps, so the result tiles
// seamlessly. Same seed always gives the same image.
// ====================================================

package main

import (
	"flag"
	"image"
	"image/png"
	"math"
	"math/rand"
	"os"

	"untile/misc"
)

var (
	Size int
	Seed int64
	Out  string
)

func init() {
	flag.IntVar(&Size, "size", 256, "texture size in pixels")
	flag.Int64Var(&Seed, "seed", 9, "noise seed")
	flag.StringVar(&Out, "out", "assets/tile.png", "output path")
}

func main() {
	flag.Parse()

	if Size <= 0 {
		misc.ErrLogger.Printf("size %d is not positive", Size)
		os.Exit(1)
	}

	misc.InfoLogger.Printf("generating %dx%d tile with seed %d", Size, Size, Seed)

	img := GenerateTile(Size, Seed)

	file, err := os.Create(Out)
	if err != nil {
		misc.ErrLogger.Printf("failed to create %s: %v", Out, err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		misc.ErrLogger.Printf("failed to encode %s: %v", Out, err)
		os.Exit(1)
	}

	misc.InfoLogger.Printf("wrote %s", Out)
}

// three stop gradient, ceramic-ish
var palette = [3][3]float64{
	{0.14, 0.31, 0.47},
	{0.35, 0.59, 0.67},
	{0.92, 0.90, 0.84},
}

func GenerateTile(size int, seed int64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	octaves := makeOctaves(seed)

	for y := 0; y < size; y++ {
		v := float64(y) / float64(size)
		for x := 0; x < size; x++ {
			u := float64(x) / float64(size)

			n := fbm(octaves, u, v)

			// diagonal banding so rotations are easy to spot,
			// integer frequency keeps it seamless
			n += 0.15 * math.Sin(2*math.Pi*3*(u+v))

			r, g, b := paletteColor(clamp01(n*0.5 + 0.5))

			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(r*255 + 0.5)
			img.Pix[i+1] = uint8(g*255 + 0.5)
			img.Pix[i+2] = uint8(b*255 + 0.5)
			img.Pix[i+3] = 255
		}
	}

	return img
}

func paletteColor(t float64) (r, g, b float64) {
	if t < 0.5 {
		return lerpColor(palette[0], palette[1], t*2)
	}
	return lerpColor(palette[1], palette[2], (t-0.5)*2)
}

func lerpColor(a, b [3]float64, t float64) (float64, float64, float64) {
	return a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ====================================================
// periodic value noise
// ====================================================

type noiseOctave struct {
	period int
	amp    float64
	table  []float64
}

func makeOctaves(seed int64) []noiseOctave {
	var octaves []noiseOctave

	period := 4
	amp := 1.0

	for i := 0; i < 5; i++ {
		rng := rand.New(rand.NewSource(seed + int64(i)*1000))

		table := make([]float64, period*period)
		for j := range table {
			table[j] = rng.Float64()*2 - 1
		}

		octaves = append(octaves, noiseOctave{
			period: period,
			amp:    amp,
			table:  table,
		})

		period *= 2
		amp *= 0.5
	}

	return octaves
}

func fbm(octaves []noiseOctave, u, v float64) float64 {
	sum := 0.0
	norm := 0.0

	for _, oct := range octaves {
		sum += oct.amp * valueNoise(oct, u, v)
		norm += oct.amp
	}

	return sum / norm
}

func valueNoise(oct noiseOctave, u, v float64) float64 {
	x := u * float64(oct.period)
	y := v * float64(oct.period)

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))

	fx := smoothstep(x - math.Floor(x))
	fy := smoothstep(y - math.Floor(y))

	v00 := latticeAt(oct, x0, y0)
	v10 := latticeAt(oct, x0+1, y0)
	v01 := latticeAt(oct, x0, y0+1)
	v11 := latticeAt(oct, x0+1, y0+1)

	top := v00 + (v10-v00)*fx
	bottom := v01 + (v11-v01)*fx

	return top + (bottom-top)*fy
}

// lattice wraps at period, that's what makes the noise tile
func latticeAt(oct noiseOctave, x, y int) float64 {
	x = ((x % oct.period) + oct.period) % oct.period
	y = ((y % oct.period) + oct.period) % oct.period

	return oct.table[y*oct.period+x]
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
