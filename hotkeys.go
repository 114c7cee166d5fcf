package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ReloadAssetsKey eb.Key = eb.KeyF5
	SaveConfigKey   eb.Key = eb.KeyF10

	ShowDebugConsoleKey = eb.KeyF1

	ShowEditorKey  = eb.KeyF3
	EditorUpKey    = eb.KeyW
	EditorDownKey  = eb.KeyS
	EditorLeftKey  = eb.KeyArrowLeft
	EditorRightKey = eb.KeyArrowRight

	ResetParamsKey   eb.Key = eb.KeyR
	ToggleCheckerKey eb.Key = eb.KeyT

	CopyParamsKey  eb.Key = eb.KeyC
	PasteParamsKey eb.Key = eb.KeyV

	ScreenshotKey   eb.Key = eb.KeyP
	ExportRenderKey eb.Key = eb.KeyO
)

// number keys 1 to 9 apply presets
var PresetKeys = [...]eb.Key{
	eb.KeyDigit1,
	eb.KeyDigit2,
	eb.KeyDigit3,
	eb.KeyDigit4,
	eb.KeyDigit5,
	eb.KeyDigit6,
	eb.KeyDigit7,
	eb.KeyDigit8,
	eb.KeyDigit9,
}
