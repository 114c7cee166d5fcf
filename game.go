package main

import (
	"fmt"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	Params     DisguiseParams
	UseChecker bool

	Texture *Texture

	// file path the current texture was loaded from,
	// empty for the builtin tile and dropped files
	TexturePath string

	Editor *ParamEditor

	Presets []PresetConfig

	ConfigPath string

	doScreenshot bool

	prevParams     DisguiseParams
	prevUseChecker bool

	drawTimes CircularQueue[time.Duration]
}

func NewGame(cfg AppConfig, configPath string) *Game {
	g := new(Game)

	g.Params = cfg.Params
	g.Presets = cfg.Presets
	g.ConfigPath = configPath
	g.TexturePath = cfg.Texture

	g.Texture = DefaultTileTexture

	g.drawTimes = NewCircularQueue[time.Duration](60)

	g.Editor = NewParamEditor(&g.Params)
	g.Editor.OnReset = func() {
		g.Params = DefaultDisguiseParams()
	}
	g.Editor.OnSave = func() {
		g.SaveConfig()
	}

	g.prevParams = g.Params
	g.prevUseChecker = g.UseChecker

	return g
}

// SetTexture swaps the sampled texture.
// Pass an empty path for textures that didn't come from a file.
func (g *Game) SetTexture(tex *Texture, path string) {
	if g.Texture != nil && g.Texture != DefaultTileTexture {
		g.Texture.Deallocate()
	}

	g.Texture = tex
	g.TexturePath = path

	SetRedraw()
}

func (g *Game) SaveConfig() {
	var cfg AppConfig

	cfg.Window.Width = int(ScreenWidth)
	cfg.Window.Height = int(ScreenHeight)
	cfg.Params = g.Params
	cfg.Texture = g.TexturePath
	cfg.Theme = ThemeFromColorTable()
	cfg.Presets = g.Presets

	if err := SaveAppConfig(g.ConfigPath, cfg); err != nil {
		ErrorLogger.Printf("failed to save config: %v", err)
		return
	}

	InfoLogger.Printf("saved config to \"%s\"", g.ConfigPath)
}

func (g *Game) Update() error {
	// ==========================
	// editor
	// ==========================
	if IsKeyJustPressed(ShowEditorKey) {
		g.Editor.DoShow = !g.Editor.DoShow
		SetRedraw()
	}

	g.Editor.Texture = g.Texture
	g.Editor.Update()

	if g.Editor.DoShow {
		SetRedraw()
	}

	// ==========================
	// param hotkeys
	// ==========================
	if IsKeyJustPressed(ResetParamsKey) {
		g.Params = DefaultDisguiseParams()
	}

	if IsKeyJustPressed(ToggleCheckerKey) {
		g.UseChecker = !g.UseChecker
	}

	for i, key := range PresetKeys {
		if i >= len(g.Presets) {
			break
		}
		if IsKeyJustPressed(key) {
			g.Params = g.Presets[i].DisguiseParams
			InfoLogger.Printf("applied preset \"%s\"", g.Presets[i].Name)
		}
	}

	// ==========================
	// clipboard copy and paste
	// ==========================
	if IsKeyJustPressed(CopyParamsKey) {
		if paramsJson, err := ParamsToJson(g.Params); err == nil {
			ClipboardWriteText(string(paramsJson))
			InfoLogger.Print("copied params to clipboard")
		} else {
			ErrorLogger.Printf("failed to copy params: %v", err)
		}
	}

	if IsKeyJustPressed(PasteParamsKey) {
		if params, err := ParamsFromJson([]byte(ClipboardReadText())); err == nil {
			g.Params = params
			InfoLogger.Print("pasted params from clipboard")
		} else {
			ErrorLogger.Printf("failed to paste params: %v", err)
		}
	}

	// ==========================
	// captures
	// ==========================
	if IsKeyJustPressed(ScreenshotKey) {
		g.doScreenshot = true
		SetRedraw()
	}

	if IsKeyJustPressed(ExportRenderKey) {
		g.exportRender()
	}

	// ==========================
	// dropped textures
	// ==========================
	if files := eb.DroppedFiles(); files != nil {
		if tex, err := FirstTextureFromFS(files); err == nil {
			g.SetTexture(tex, "")
			InfoLogger.Printf("loaded dropped texture \"%s\"", tex.Name)
		} else {
			ErrorLogger.Printf("failed to load dropped texture: %v", err)
		}
	}

	// ==========================
	// redraw on change
	// ==========================
	if g.Params != g.prevParams || g.UseChecker != g.prevUseChecker {
		SetRedraw()
	}
	g.prevParams = g.Params
	g.prevUseChecker = g.UseChecker

	// ==========================
	// DebugPrint
	// ==========================
	DebugPuts("texture", g.Texture.Name+" ("+g.Texture.SizeString()+")")
	DebugPrintf("params", "scale %.3f rotation %.3f offset %.3f falloff %.3f",
		g.Params.Scale, g.Params.Rotation, g.Params.BlendOffset, g.Params.BlendFalloff)
	if g.UseChecker {
		DebugPuts("checker", "on")
	}
	if DisguiseShaderError != nil {
		DebugPuts("shader error", DisguiseShaderError.Error())
	}
	if !g.drawTimes.IsEmpty() {
		var sum time.Duration
		for i := 0; i < g.drawTimes.Length; i++ {
			sum += g.drawTimes.At(i)
		}
		DebugPuts("draw time", (sum / time.Duration(g.drawTimes.Length)).String())
	}

	return nil
}

func (g *Game) Draw(dst *eb.Image) {
	if !ConsumeRedraw() {
		return
	}

	start := time.Now()

	dst.Fill(TheColorTable[ColorBg])

	g.drawDisguise(dst)

	g.Editor.Draw(dst)

	g.drawTimes.Enqueue(time.Since(start))

	if g.doScreenshot {
		g.doScreenshot = false

		if path, err := TakeScreenshot(dst); err == nil {
			InfoLogger.Printf("saved screenshot to \"%s\"", path)
		} else {
			ErrorLogger.Printf("failed to take screenshot: %v", err)
		}
	}
}

func (g *Game) drawDisguise(dst *eb.Image) {
	if DisguiseShader == nil {
		return
	}

	texImg := g.Texture.GPUImage()
	imgW, imgH := ImageSize(texImg)

	checker := 0.0
	if g.UseChecker {
		checker = 1.0
	}

	op := &DrawRectShaderOptions{}
	op.Images[0] = texImg
	op.Uniforms = map[string]any{
		"Scale":        g.Params.Scale,
		"Rotation":     g.Params.Rotation,
		"BlendOffset":  g.Params.BlendOffset,
		"BlendFalloff": g.Params.BlendFalloff,
		"ScreenSize":   [2]float64{ScreenWidth, ScreenHeight},
		"UseChecker":   checker,
	}

	// DrawRectShader wants the rect to match the source image size
	op.GeoM.Scale(
		ScreenWidth/f64(imgW),
		ScreenHeight/f64(imgH),
	)

	// shader output is opaque and covers the whole screen,
	// no point in blending with what's underneath
	BeginBlend(eb.BlendCopy)
	DrawRectShader(dst, imgW, imgH, DisguiseShader, op)
	EndBlend()
}

// exportRender redraws the current view with the cpu renderer
// and writes it out as a png
func (g *Game) exportRender() {
	width, height := int(ScreenWidth), int(ScreenHeight)

	sample := SampleFunc(g.Texture.Sample)
	if g.UseChecker {
		sample = CheckerSample
	}

	timer := NewProfTimer(fmt.Sprintf("cpu render %dx%d", width, height))
	rendered := RenderImage(g.Params, sample, width, height)
	timer.Report()

	path, err := WritePNGFile(rendered, "untile")
	if err != nil {
		ErrorLogger.Printf("failed to export render: %v", err)
		return
	}

	InfoLogger.Printf("exported render to \"%s\"", path)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
