package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

const DefaultConfigPath = "untile.toml"

type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type ThemeConfig struct {
	Background    string `toml:"background"`
	EditorBg      string `toml:"editor_bg"`
	EditorText    string `toml:"editor_text"`
	EditorTextDim string `toml:"editor_text_dim"`
	EditorFocus   string `toml:"editor_focus"`
	SliderTrack   string `toml:"slider_track"`
	SliderFill    string `toml:"slider_fill"`
	SliderHandle  string `toml:"slider_handle"`
}

// PresetConfig is a named parameter set bound to a number key.
type PresetConfig struct {
	Name string `toml:"name"`
	DisguiseParams
}

type AppConfig struct {
	Window  WindowConfig   `toml:"window"`
	Params  DisguiseParams `toml:"params"`
	Texture string         `toml:"texture"`
	Theme   ThemeConfig    `toml:"theme"`
	Presets []PresetConfig `toml:"presets"`
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		Window: WindowConfig{
			Width:  900,
			Height: 900,
		},
		Params: DefaultDisguiseParams(),
		Presets: []PresetConfig{
			{
				Name:           "classic",
				DisguiseParams: DefaultDisguiseParams(),
			},
			{
				Name: "subtle",
				DisguiseParams: DisguiseParams{
					Scale:        1,
					Rotation:     0.1,
					BlendOffset:  1,
					BlendFalloff: 4,
				},
			},
			{
				Name: "patchwork",
				DisguiseParams: DisguiseParams{
					Scale:        0.6,
					Rotation:     1,
					BlendOffset:  1.5,
					BlendFalloff: 6,
				},
			},
			{
				Name: "haze",
				DisguiseParams: DisguiseParams{
					Scale:        1,
					Rotation:     0.5,
					BlendOffset:  0.5,
					BlendFalloff: 0.7,
				},
			},
		},
	}
}

// LoadAppConfig reads path. A missing file is not an error,
// you just get the defaults.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := DefaultAppConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	// config presets replace the builtin ones entirely
	cfg.Presets = nil

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultAppConfig(), err
	}

	if len(cfg.Presets) == 0 {
		cfg.Presets = DefaultAppConfig().Presets
	}

	return cfg, nil
}

func SaveAppConfig(path string, cfg AppConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyColorTheme moves the css color strings in theme into
// TheColorTable. Empty entries keep the builtin color, bad ones
// get reported and skipped.
func ApplyColorTheme(theme ThemeConfig) {
	apply := func(str string, index ColorTableIndex) {
		if str == "" {
			return
		}

		clr, err := ParseColorString(str)
		if err != nil {
			ErrorLogger.Printf("bad theme color %q: %v", str, err)
			return
		}

		TheColorTable[index] = clr
	}

	apply(theme.Background, ColorBg)
	apply(theme.EditorBg, ColorEditorBg)
	apply(theme.EditorText, ColorEditorText)
	apply(theme.EditorTextDim, ColorEditorTextDim)
	apply(theme.EditorFocus, ColorEditorFocus)
	apply(theme.SliderTrack, ColorSliderTrack)
	apply(theme.SliderFill, ColorSliderFill)
	apply(theme.SliderHandle, ColorSliderHandle)
}

// ThemeFromColorTable snapshots the live color table so a saved
// config reproduces what's currently on screen.
func ThemeFromColorTable() ThemeConfig {
	return ThemeConfig{
		Background:    ColorToString(TheColorTable[ColorBg]),
		EditorBg:      ColorToString(TheColorTable[ColorEditorBg]),
		EditorText:    ColorToString(TheColorTable[ColorEditorText]),
		EditorTextDim: ColorToString(TheColorTable[ColorEditorTextDim]),
		EditorFocus:   ColorToString(TheColorTable[ColorEditorFocus]),
		SliderTrack:   ColorToString(TheColorTable[ColorSliderTrack]),
		SliderFill:    ColorToString(TheColorTable[ColorSliderFill]),
		SliderHandle:  ColorToString(TheColorTable[ColorSliderHandle]),
	}
}
