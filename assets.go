package main

import (
	"bytes"
	_ "embed"
	"image"
	"os"

	"github.com/hajimehoshi/bitmapfont/v3"
	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	//go:embed assets/disguise_shader.go
	disguiseShaderCode []byte

	DisguiseShader *eb.Shader

	// error from the last shader compile
	// only set when hot reloading, embedded shader has to compile
	DisguiseShaderError error
)

// path the shader is reloaded from when -hot is on
const disguiseShaderSrcPath = "assets/disguise_shader.go"

var (
	//go:embed assets/tile.png
	defaultTileImageData []byte

	DefaultTileTexture *Texture
)

// ClearFace needs no font file, glyphs come compiled in.
var ClearFace ebt.Face = ebt.NewGoXFace(bitmapfont.Face)

func FontSize(face ebt.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent
}

func FontLineSpacing(face ebt.Face) float64 {
	m := face.Metrics()
	return m.HLineGap + m.HAscent + m.HDescent
}

// LoadAssets compiles the disguise shader and decodes the builtin
// tile texture. Safe to call again, F5 does exactly that.
func LoadAssets() {
	// compile shader
	{
		loadedFromDisk := false

		if FlagHotReload {
			if code, err := os.ReadFile(disguiseShaderSrcPath); err == nil {
				if shader, shaderErr := eb.NewShader(code); shaderErr == nil {
					if DisguiseShader != nil {
						DisguiseShader.Deallocate()
					}
					DisguiseShader = shader
					DisguiseShaderError = nil
					loadedFromDisk = true
				} else {
					// keep the old shader, error goes to the debug console
					DisguiseShaderError = shaderErr
					ErrorLogger.Printf("failed to compile %s: %v", disguiseShaderSrcPath, shaderErr)
				}
			} else {
				ErrorLogger.Printf("failed to read %s: %v", disguiseShaderSrcPath, err)
			}
		}

		if !loadedFromDisk && DisguiseShader == nil {
			shader, err := eb.NewShader(disguiseShaderCode)
			if err != nil {
				ErrorLogger.Fatalf("failed to compile embedded shader: %v", err)
			}
			DisguiseShader = shader
		}
	}

	// decode builtin texture, embedded bytes never change so once is enough
	if DefaultTileTexture == nil {
		img, _, err := image.Decode(bytes.NewReader(defaultTileImageData))
		if err != nil {
			ErrorLogger.Fatalf("failed to decode builtin texture: %v", err)
		}
		DefaultTileTexture = NewTextureFromImage(img, "tile.png (builtin)")
	}
}
