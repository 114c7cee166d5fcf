package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/silbinarywolf/preferdiscretegpu"
	"net/http"
	_ "net/http/pprof"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	ScreenWidth  float64 = 900
	ScreenHeight float64 = 900
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var FlagHotReload bool
var FlagPProf bool
var FlagTexture string
var FlagConfig string

func init() {
	flag.BoolVar(&FlagHotReload, "hot", false, "enable shader hot reloading")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
	flag.StringVar(&FlagTexture, "texture", "", "texture image to sample")
	flag.StringVar(&FlagConfig, "config", DefaultConfigPath, "config file path")
}

type App struct {
	ShowDebugConsole bool
	Game             *Game
}

func NewApp(cfg AppConfig, configPath string) *App {
	a := new(App)
	a.Game = NewGame(cfg, configPath)
	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update windows title
	// ==========================
	eb.SetWindowTitle("untile FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)

	// ==========================
	// asset loading and saving
	// ==========================
	if IsKeyJustPressed(ReloadAssetsKey) {
		LoadAssets()
		SetRedraw()
	}

	if IsKeyJustPressed(SaveConfigKey) {
		a.Game.SaveConfig()
	}

	// ==========================
	// debug showing
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
		SetRedraw()
	}

	if a.ShowDebugConsole {
		SetRedraw()
	}

	if err := a.Game.Update(); err != nil {
		return err
	}

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	a.Game.Draw(dst)

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if ScreenWidth != f64(outsideWidth) || ScreenHeight != f64(outsideHeight) {
		SetRedraw()
	}

	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	return a.Game.Layout(outsideWidth, outsideHeight)
}

func main() {
	flag.Parse()

	if FlagPProf {
		go func() {
			InfoLogger.Print("initializing pprof")
			InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	cfg, err := LoadAppConfig(FlagConfig)
	if err != nil {
		ErrorLogger.Printf("failed to load config \"%s\": %v", FlagConfig, err)
		cfg = DefaultAppConfig()
	}

	ApplyColorTheme(cfg.Theme)

	InitClipboardManager()

	LoadAssets()

	app := NewApp(cfg, FlagConfig)

	// -texture beats the config
	texturePath := FlagTexture
	if texturePath == "" {
		texturePath = cfg.Texture
	}
	if texturePath != "" {
		if tex, texErr := LoadTextureFile(texturePath); texErr == nil {
			app.Game.SetTexture(tex, texturePath)
		} else {
			ErrorLogger.Printf("failed to load texture \"%s\": %v", texturePath, texErr)
		}
	}

	if cfg.Window.Width > 0 && cfg.Window.Height > 0 {
		ScreenWidth = f64(cfg.Window.Width)
		ScreenHeight = f64(cfg.Window.Height)
	}

	eb.SetScreenClearedEveryFrame(false)
	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("untile")

	if err := eb.RunGame(app); err != nil {
		panic(err)
	}
}
