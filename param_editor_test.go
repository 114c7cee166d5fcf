package main

import (
	"math"
	"testing"
)

func TestParamEditorRowBinding(t *testing.T) {
	params := DisguiseParams{
		Scale:        0.1,
		Rotation:     0.2,
		BlendOffset:  0.3,
		BlendFalloff: 0.4,
	}

	pe := NewParamEditor(&params)

	wants := [ParamRowCount]float64{0.1, 0.2, 0.3, 0.4}
	for row := ParamEditorRow(0); row < ParamRowCount; row++ {
		if got := pe.rowValue(row); got != wants[row] {
			t.Errorf("rowValue(%s) = %v, want %v", paramRowNames[row], got, wants[row])
		}
	}

	pe.setRowValue(ParamRowBlendFalloff, 5)
	if params.BlendFalloff != 5 {
		t.Errorf("setRowValue did not write through, BlendFalloff = %v", params.BlendFalloff)
	}
}

func TestParamEditorSetRowValueClamps(t *testing.T) {
	params := DefaultDisguiseParams()
	pe := NewParamEditor(&params)

	for row := ParamEditorRow(0); row < ParamRowCount; row++ {
		rng := paramRowRanges[row]

		pe.setRowValue(row, rng.Max+100)
		if got := pe.rowValue(row); got != rng.Max {
			t.Errorf("%s overflow gave %v, want %v", paramRowNames[row], got, rng.Max)
		}

		pe.setRowValue(row, rng.Min-100)
		if got := pe.rowValue(row); got != rng.Min {
			t.Errorf("%s underflow gave %v, want %v", paramRowNames[row], got, rng.Min)
		}
	}
}

func TestParamEditorNudgeRow(t *testing.T) {
	params := DefaultDisguiseParams()
	pe := NewParamEditor(&params)

	pe.setRowValue(ParamRowScale, 0.5)
	pe.nudgeRow(ParamRowScale, 1)

	// one nudge is a hundredth of the slider range
	if got := pe.rowValue(ParamRowScale); math.Abs(got-0.51) > 1e-12 {
		t.Errorf("nudged scale = %v, want 0.51", got)
	}

	pe.nudgeRow(ParamRowScale, -1)
	pe.nudgeRow(ParamRowScale, -1)
	if got := pe.rowValue(ParamRowScale); math.Abs(got-0.49) > 1e-12 {
		t.Errorf("nudged scale = %v, want 0.49", got)
	}

	// nudging off the end stops at the range
	pe.setRowValue(ParamRowRotation, 1)
	pe.nudgeRow(ParamRowRotation, 1)
	if got := pe.rowValue(ParamRowRotation); got != 1 {
		t.Errorf("nudged rotation past the end = %v, want 1", got)
	}
}
