package main

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// Textures bigger than this get downscaled on load.
const MaxTextureDim = 2048

// Texture is a source image for the disguise shader.
// CPU copy is what RenderImage samples, gpu copy is created
// lazily so image decoding stays usable in headless code.
type Texture struct {
	CPU  *image.NRGBA
	Name string

	gpu *eb.Image
}

func NewTextureFromImage(img image.Image, name string) *Texture {
	img = fitTextureImage(img)

	return &Texture{
		CPU:  toNRGBA(img),
		Name: name,
	}
}

func DecodeTexture(r io.Reader, name string) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	return NewTextureFromImage(img, name), nil
}

func LoadTextureFile(path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeTexture(file, filepath.Base(path))
}

// FirstTextureFromFS decodes the first usable image in fsys.
// Used for files dropped onto the window.
func FirstTextureFromFS(fsys fs.FS) (*Texture, error) {
	var texture *Texture
	var firstErr error

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		file, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		decoded, decodeErr := DecodeTexture(file, filepath.Base(path))
		if decodeErr != nil {
			if firstErr == nil {
				firstErr = decodeErr
			}
			return nil
		}

		texture = decoded
		return fs.SkipAll
	})

	if err != nil {
		return nil, err
	}
	if texture == nil {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, fmt.Errorf("no image files")
	}

	return texture, nil
}

func (t *Texture) GPUImage() *eb.Image {
	if t.gpu == nil {
		t.gpu = eb.NewImageFromImage(t.CPU)
	}
	return t.gpu
}

func (t *Texture) Deallocate() {
	if t.gpu != nil {
		t.gpu.Deallocate()
		t.gpu = nil
	}
}

func (t *Texture) SizeString() string {
	return fmt.Sprintf("%dx%d", t.CPU.Bounds().Dx(), t.CPU.Bounds().Dy())
}

// Sample bilinearly samples the texture at pos where both axes
// span [0, 1) over the whole image. Out of range positions wrap,
// so the texture tiles seamlessly in every direction.
func (t *Texture) Sample(pos FPoint) [4]float64 {
	w := t.CPU.Bounds().Dx()
	h := t.CPU.Bounds().Dy()

	// sample at texel centers
	tx := pos.X*f64(w) - 0.5
	ty := pos.Y*f64(h) - 0.5

	x0 := int(math.Floor(tx))
	y0 := int(math.Floor(ty))

	fx := tx - f64(x0)
	fy := ty - f64(y0)

	c00 := t.texelAt(x0, y0)
	c10 := t.texelAt(x0+1, y0)
	c01 := t.texelAt(x0, y0+1)
	c11 := t.texelAt(x0+1, y0+1)

	var out [4]float64
	for i := range out {
		top := Lerp(c00[i], c10[i], fx)
		bottom := Lerp(c01[i], c11[i], fx)
		out[i] = Lerp(top, bottom, fy)
	}

	return out
}

func (t *Texture) texelAt(x, y int) [4]float64 {
	w := t.CPU.Bounds().Dx()
	h := t.CPU.Bounds().Dy()

	x = ((x % w) + w) % w
	y = ((y % h) + h) % h

	i := t.CPU.PixOffset(x, y)
	pix := t.CPU.Pix[i : i+4 : i+4]

	return [4]float64{
		f64(pix[0]) / 255,
		f64(pix[1]) / 255,
		f64(pix[2]) / 255,
		f64(pix[3]) / 255,
	}
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == (image.Point{}) {
		return nrgba
	}

	converted := image.NewNRGBA(RectWH(img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(converted, converted.Bounds(), img, img.Bounds().Min, draw.Src)

	return converted
}

func fitTextureImage(img image.Image) image.Image {
	w, h := ImageSize(img)

	if w <= MaxTextureDim && h <= MaxTextureDim {
		return img
	}

	scale := min(MaxTextureDim/f64(w), MaxTextureDim/f64(h))

	dstW := max(int(f64(w)*scale), 1)
	dstH := max(int(f64(h)*scale), 1)

	InfoLogger.Printf("downscaling texture %dx%d to %dx%d", w, h, dstW, dstH)

	dst := image.NewNRGBA(RectWH(dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	return dst
}
