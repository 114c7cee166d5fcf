package main

import (
	"image/color"
)

type ColorTableIndex int

const (
	ColorBg ColorTableIndex = iota

	ColorEditorBg
	ColorEditorText
	ColorEditorTextDim
	ColorEditorFocus

	ColorSliderTrack
	ColorSliderFill
	ColorSliderHandle

	ColorButton
	ColorButtonHover
	ColorButtonDown
	ColorButtonText

	ColorTableSize
)

var TheColorTable [ColorTableSize]color.NRGBA

func init() {
	TheColorTable[ColorBg] = color.NRGBA{10, 10, 10, 255}

	TheColorTable[ColorEditorBg] = color.NRGBA{20, 20, 20, 230}
	TheColorTable[ColorEditorText] = color.NRGBA{255, 255, 255, 255}
	TheColorTable[ColorEditorTextDim] = color.NRGBA{160, 160, 160, 255}
	TheColorTable[ColorEditorFocus] = color.NRGBA{255, 80, 80, 255}

	TheColorTable[ColorSliderTrack] = color.NRGBA{50, 50, 50, 255}
	TheColorTable[ColorSliderFill] = color.NRGBA{105, 130, 255, 255}
	TheColorTable[ColorSliderHandle] = color.NRGBA{230, 230, 230, 255}

	TheColorTable[ColorButton] = color.NRGBA{50, 50, 50, 255}
	TheColorTable[ColorButtonHover] = color.NRGBA{80, 80, 80, 255}
	TheColorTable[ColorButtonDown] = color.NRGBA{30, 30, 30, 255}
	TheColorTable[ColorButtonText] = color.NRGBA{255, 255, 255, 255}
}
