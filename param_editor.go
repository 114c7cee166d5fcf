package main

import (
	"fmt"
	"image/color"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type ParamEditorRow int

const (
	ParamRowScale ParamEditorRow = iota
	ParamRowRotation
	ParamRowBlendOffset
	ParamRowBlendFalloff

	ParamRowCount
)

var paramRowNames = [ParamRowCount]string{
	"scale",
	"rotation",
	"blend offset",
	"blend falloff",
}

type paramRowRange struct {
	Min, Max float64
}

// slider ranges, the disguise itself accepts anything
var paramRowRanges = [ParamRowCount]paramRowRange{
	{0, 1},
	{0, 1},
	{0, 4},
	{0, 8},
}

const (
	editorWidth     = 340
	editorMargin    = 12
	editorRowH      = 44
	editorTrackH    = 6
	editorHandleR   = 7
	editorButtonW   = 70
	editorButtonH   = 24
	editorNudgeW    = 18
	editorThumbSize = 96
)

type ParamEditor struct {
	DoShow bool

	Rect FRectangle

	Params *DisguiseParams

	// texture shown in the preview block, set by the owner
	Texture *Texture

	FocusedRow ParamEditorRow

	dragging    bool
	draggingRow ParamEditorRow

	minusButtons [ParamRowCount]*TextButton
	plusButtons  [ParamRowCount]*TextButton

	resetButton *TextButton
	saveButton  *TextButton

	OnReset func()
	OnSave  func()
}

func NewParamEditor(params *DisguiseParams) *ParamEditor {
	pe := new(ParamEditor)

	pe.Params = params

	const firstRate = 200 * time.Millisecond
	const repeatRate = 50 * time.Millisecond

	for row := ParamEditorRow(0); row < ParamRowCount; row++ {
		minus := NewTextButton()
		minus.Text = "-"
		minus.RepeateOnHold = true
		minus.FirstRate = firstRate
		minus.RepeatRate = repeatRate
		minus.OnPress = func(bool) {
			pe.FocusedRow = row
			pe.nudgeRow(row, -1)
		}
		pe.minusButtons[row] = minus

		plus := NewTextButton()
		plus.Text = "+"
		plus.RepeateOnHold = true
		plus.FirstRate = firstRate
		plus.RepeatRate = repeatRate
		plus.OnPress = func(bool) {
			pe.FocusedRow = row
			pe.nudgeRow(row, 1)
		}
		pe.plusButtons[row] = plus
	}

	pe.resetButton = NewTextButton()
	pe.resetButton.Text = "Reset"
	pe.resetButton.OnPress = func(bool) {
		if pe.OnReset != nil {
			pe.OnReset()
		}
	}

	pe.saveButton = NewTextButton()
	pe.saveButton.Text = "Save"
	pe.saveButton.OnPress = func(bool) {
		if pe.OnSave != nil {
			pe.OnSave()
		}
	}

	return pe
}

func (pe *ParamEditor) rowValue(row ParamEditorRow) float64 {
	switch row {
	case ParamRowScale:
		return pe.Params.Scale
	case ParamRowRotation:
		return pe.Params.Rotation
	case ParamRowBlendOffset:
		return pe.Params.BlendOffset
	case ParamRowBlendFalloff:
		return pe.Params.BlendFalloff
	}
	return 0
}

func (pe *ParamEditor) setRowValue(row ParamEditorRow, v float64) {
	rng := paramRowRanges[row]
	v = Clamp(v, rng.Min, rng.Max)

	switch row {
	case ParamRowScale:
		pe.Params.Scale = v
	case ParamRowRotation:
		pe.Params.Rotation = v
	case ParamRowBlendOffset:
		pe.Params.BlendOffset = v
	case ParamRowBlendFalloff:
		pe.Params.BlendFalloff = v
	}
}

func (pe *ParamEditor) nudgeRow(row ParamEditorRow, direction float64) {
	rng := paramRowRanges[row]
	step := (rng.Max - rng.Min) * 0.01

	pe.setRowValue(row, pe.rowValue(row)+step*direction)
}

// layout

func (pe *ParamEditor) headerRect() FRectangle {
	lineSpacing := FontLineSpacing(ClearFace)

	return FRectXYWH(
		pe.Rect.Min.X+editorMargin, pe.Rect.Min.Y+editorMargin,
		pe.Rect.Dx()-editorMargin*2, lineSpacing*2,
	)
}

func (pe *ParamEditor) rowRect(row ParamEditorRow) FRectangle {
	header := pe.headerRect()

	return FRectXYWH(
		header.Min.X, header.Max.Y+8+f64(row)*editorRowH,
		header.Dx(), editorRowH,
	)
}

func (pe *ParamEditor) rowTrackRect(row ParamEditorRow) FRectangle {
	rowRect := pe.rowRect(row)

	trackY := rowRect.Max.Y - editorRowH*0.35

	return FRect(
		rowRect.Min.X+editorNudgeW+10, trackY-editorTrackH*0.5,
		rowRect.Max.X-editorNudgeW-10, trackY+editorTrackH*0.5,
	)
}

// grabRect is the forgiving hit area around the thin track
func (pe *ParamEditor) rowTrackGrabRect(row ParamEditorRow) FRectangle {
	return pe.rowTrackRect(row).Inset(-editorHandleR)
}

func (pe *ParamEditor) rowNudgeRects(row ParamEditorRow) (FRectangle, FRectangle) {
	track := pe.rowTrackRect(row)
	trackCenterY := (track.Min.Y + track.Max.Y) * 0.5

	minus := FRectXYWH(
		track.Min.X-editorNudgeW-10, trackCenterY-editorNudgeW*0.5,
		editorNudgeW, editorNudgeW,
	)
	plus := FRectXYWH(
		track.Max.X+10, trackCenterY-editorNudgeW*0.5,
		editorNudgeW, editorNudgeW,
	)

	return minus, plus
}

func (pe *ParamEditor) buttonsRect() FRectangle {
	lastRow := pe.rowRect(ParamRowCount - 1)

	return FRectXYWH(
		lastRow.Min.X, lastRow.Max.Y+8,
		lastRow.Dx(), editorButtonH,
	)
}

func (pe *ParamEditor) textureBlockRect() FRectangle {
	buttons := pe.buttonsRect()
	lineSpacing := FontLineSpacing(ClearFace)

	return FRectXYWH(
		buttons.Min.X, buttons.Max.Y+10,
		buttons.Dx(), lineSpacing+6+editorThumbSize,
	)
}

func (pe *ParamEditor) editorHeight() float64 {
	return pe.textureBlockRect().Max.Y + editorMargin - pe.Rect.Min.Y
}

func (pe *ParamEditor) Update() {
	if !pe.DoShow {
		pe.dragging = false
		return
	}

	// place the panel at the top right corner
	pe.Rect = FRectXYWH(ScreenWidth-editorWidth-10, 10, editorWidth, 100)
	pe.Rect.Max.Y = pe.Rect.Min.Y + pe.editorHeight()

	const firstRate = 200 * time.Millisecond
	const repeatRate = 50 * time.Millisecond

	// move focus
	if HandleKeyRepeat(firstRate, repeatRate, EditorUpKey) {
		pe.FocusedRow--
	}
	if HandleKeyRepeat(firstRate, repeatRate, EditorDownKey) {
		pe.FocusedRow++
	}
	pe.FocusedRow = Clamp(pe.FocusedRow, 0, ParamRowCount-1)

	// adjust focused row
	if HandleKeyRepeat(firstRate, repeatRate, EditorLeftKey) {
		pe.nudgeRow(pe.FocusedRow, -1)
	}
	if HandleKeyRepeat(firstRate, repeatRate, EditorRightKey) {
		pe.nudgeRow(pe.FocusedRow, 1)
	}

	// slider dragging
	pt := CursorFPt()

	for row := ParamEditorRow(0); row < ParamRowCount; row++ {
		grabRect := pe.rowTrackGrabRect(row)

		if pt.In(grabRect) && IsMouseButtonJustPressed(eb.MouseButtonLeft) {
			pe.dragging = true
			pe.draggingRow = row
			pe.FocusedRow = row
		}
	}

	if !IsMouseButtonPressed(eb.MouseButtonLeft) {
		pe.dragging = false
	}

	if pe.dragging {
		track := pe.rowTrackRect(pe.draggingRow)
		rng := paramRowRanges[pe.draggingRow]

		t := Clamp((pt.X-track.Min.X)/track.Dx(), 0, 1)
		pe.setRowValue(pe.draggingRow, Lerp(rng.Min, rng.Max, t))
	}

	// buttons
	for row := ParamEditorRow(0); row < ParamRowCount; row++ {
		minusRect, plusRect := pe.rowNudgeRects(row)
		pe.minusButtons[row].Rect = minusRect
		pe.plusButtons[row].Rect = plusRect

		pe.minusButtons[row].Update()
		pe.plusButtons[row].Update()
	}

	buttons := pe.buttonsRect()
	pe.resetButton.Rect = FRectXYWH(
		buttons.Min.X, buttons.Min.Y, editorButtonW, buttons.Dy())
	pe.saveButton.Rect = FRectXYWH(
		buttons.Min.X+editorButtonW+10, buttons.Min.Y, editorButtonW, buttons.Dy())

	pe.resetButton.Update()
	pe.saveButton.Update()
}

func (pe *ParamEditor) Draw(dst *eb.Image) {
	if !pe.DoShow {
		return
	}

	lineSpacing := FontLineSpacing(ClearFace)

	// panel background
	FillRect(dst, pe.Rect, TheColorTable[ColorEditorBg])

	// help text
	{
		helpText := fmt.Sprintf(
			"%s/%s to select, %s/%s to adjust\n"+
				"press %s to save config",
			EditorUpKey.String(), EditorDownKey.String(),
			EditorLeftKey.String(), EditorRightKey.String(),
			SaveConfigKey.String(),
		)

		header := pe.headerRect()

		op := &DrawTextOptions{}
		op.GeoM.Translate(header.Min.X, header.Min.Y)
		op.ColorScale.ScaleWithColor(TheColorTable[ColorEditorTextDim])
		op.LayoutOptions.LineSpacing = lineSpacing

		DrawText(dst, helpText, ClearFace, op)
	}

	// param rows
	for row := ParamEditorRow(0); row < ParamRowCount; row++ {
		rowRect := pe.rowRect(row)
		track := pe.rowTrackRect(row)
		rng := paramRowRanges[row]

		focused := row == pe.FocusedRow

		nameColor := TheColorTable[ColorEditorText]
		if focused {
			nameColor = TheColorTable[ColorEditorFocus]
		}

		// name
		{
			op := &DrawTextOptions{}
			op.GeoM.Translate(rowRect.Min.X, rowRect.Min.Y)
			op.ColorScale.ScaleWithColor(nameColor)

			DrawText(dst, paramRowNames[row], ClearFace, op)
		}

		// value readout
		{
			valueText := fmt.Sprintf("%.3f", pe.rowValue(row))
			textW, _ := ebt.Measure(valueText, ClearFace, lineSpacing)

			op := &DrawTextOptions{}
			op.GeoM.Translate(rowRect.Max.X-textW, rowRect.Min.Y)
			op.ColorScale.ScaleWithColor(TheColorTable[ColorEditorText])

			DrawText(dst, valueText, ClearFace, op)
		}

		// track and fill
		t := (pe.rowValue(row) - rng.Min) / (rng.Max - rng.Min)
		handleX := Lerp(track.Min.X, track.Max.X, t)

		fillColor := TheColorTable[ColorSliderFill]
		if !focused {
			fillColor = ColorFade(fillColor, 0.6)
		}

		FillRect(dst, track, TheColorTable[ColorSliderTrack])
		FillRect(
			dst,
			FRect(track.Min.X, track.Min.Y, handleX, track.Max.Y),
			fillColor,
		)

		// handle
		handleColor := TheColorTable[ColorSliderHandle]
		if pe.dragging && pe.draggingRow == row {
			handleColor = LerpColorRGB(handleColor, color.NRGBA{255, 255, 255, 255}, 0.35)
		}

		trackCenterY := (track.Min.Y + track.Max.Y) * 0.5
		DrawFilledCircle(
			dst, handleX, trackCenterY, editorHandleR,
			handleColor, true,
		)
		if focused {
			StrokeCircle(
				dst, handleX, trackCenterY, editorHandleR, 2,
				TheColorTable[ColorEditorFocus], true,
			)
		}

		pe.minusButtons[row].Draw(dst)
		pe.plusButtons[row].Draw(dst)
	}

	pe.resetButton.Draw(dst)
	pe.saveButton.Draw(dst)

	// texture preview
	if pe.Texture != nil {
		block := pe.textureBlockRect()

		{
			infoText := fmt.Sprintf("texture: %s (%s)", pe.Texture.Name, pe.Texture.SizeString())

			op := &DrawTextOptions{}
			op.GeoM.Translate(block.Min.X, block.Min.Y)
			op.ColorScale.ScaleWithColor(TheColorTable[ColorEditorTextDim])

			DrawText(dst, infoText, ClearFace, op)
		}

		thumbRect := FRectXYWH(
			block.Min.X, block.Min.Y+lineSpacing+6,
			editorThumbSize, editorThumbSize,
		)

		sv := SubViewWholeImage(pe.Texture.GPUImage())
		svSize := ImageSizeFPt(sv)

		scale := min(thumbRect.Dx()/svSize.X, thumbRect.Dy()/svSize.Y)

		op := &DrawSubViewOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(thumbRect.Min.X, thumbRect.Min.Y)

		// tile textures tend to be pixel art, keep the preview crisp
		BeginFilter(eb.FilterNearest)
		DrawSubView(dst, sv, op)
		EndFilter()

		StrokeRect(dst, thumbRect, 1, TheColorTable[ColorSliderTrack], false)
	}
}
