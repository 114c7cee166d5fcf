package main

import (
	"encoding/json"
	"math"
)

// TileDensity is the baseline tile count across the short screen side at
// Scale 1. CheckerFrequency is odd so that one whole tile step flips the
// checker parity.
const (
	TileDensity      = 4.0
	CheckerFrequency = 5.0
)

var (
	checkerTone1 = [4]float64{0.25, 0.25, 0.25, 1}
	checkerTone2 = [4]float64{0.75, 0.75, 0.75, 1}
)

// DisguiseParams are the four tuning scalars of the tiling disguise.
//
// Scale multiplies the tile density, Rotation caps the per-tile random
// rotation (in turns), BlendOffset weights the center distances and
// BlendFalloff sharpens the corner/center transition.
type DisguiseParams struct {
	Scale        float64 `json:"scale" toml:"scale"`
	Rotation     float64 `json:"rotation" toml:"rotation"`
	BlendOffset  float64 `json:"blend_offset" toml:"blend_offset"`
	BlendFalloff float64 `json:"blend_falloff" toml:"blend_falloff"`
}

func DefaultDisguiseParams() DisguiseParams {
	return DisguiseParams{
		Scale:        1,
		Rotation:     0.25,
		BlendOffset:  1,
		BlendFalloff: 2,
	}
}

func ParamsToJson(params DisguiseParams) ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(params, "", "    ")
	if err != nil {
		return nil, err
	}

	return jsonBytes, nil
}

func ParamsFromJson(paramsJson []byte) (DisguiseParams, error) {
	var params DisguiseParams

	err := json.Unmarshal(paramsJson, &params)
	if err != nil {
		return params, err
	}

	return params, nil
}

// SampleFunc samples a color at a wrapped coordinate in [0,1) x [0,1).
// Channels are normalized to [0,1].
type SampleFunc func(pos FPoint) [4]float64

// CheckerSample is the fallback sampler used when no texture is bound:
// two gray tones by parity of the scaled cell, alpha always 1.
func CheckerSample(pos FPoint) [4]float64 {
	fx := math.Floor(pos.X * CheckerFrequency)
	fy := math.Floor(pos.Y * CheckerFrequency)

	if math.Mod(fx+fy, 2) == 0 {
		return checkerTone1
	}
	return checkerTone2
}

// cell corner offsets, in scan order
var cornerOffsets = [4]FPoint{
	{0, 0},
	{0, 1},
	{1, 0},
	{1, 1},
}

type gridPick struct {
	Corner     FPoint
	CornerDist float64

	Center FPoint
	// weighted by BlendOffset
	CenterDist float64
}

// pickReferencePoints scans the 2x2 corner neighborhood of uv's cell for the
// nearest corner and the BlendOffset-weighted nearest center. Both scans run
// over the corners in the same order; only strict < moves a minimum, so the
// earliest candidate wins ties, and the center scan starts from the first
// corner's center.
func pickReferencePoints(uv FPoint, blendOffset float64) gridPick {
	gridPos := FPt(math.Floor(uv.X), math.Floor(uv.Y))

	var pick gridPick

	pick.Corner = gridPos.Add(cornerOffsets[0])
	pick.CornerDist = uv.Sub(pick.Corner).LengthSquared()

	pick.Center = pick.Corner.Add(FPt(0.5, 0.5))
	pick.CenterDist = uv.Sub(pick.Center).LengthSquared() * blendOffset

	for _, offset := range cornerOffsets[1:] {
		corner := gridPos.Add(offset)
		if d := uv.Sub(corner).LengthSquared(); d < pick.CornerDist {
			pick.Corner = corner
			pick.CornerDist = d
		}

		center := corner.Add(FPt(0.5, 0.5))
		if d := uv.Sub(center).LengthSquared() * blendOffset; d < pick.CenterDist {
			pick.Center = center
			pick.CenterDist = d
		}
	}

	return pick
}

func rotateAround(p, pivot FPoint, theta float64) FPoint {
	return p.Sub(pivot).Rotate(theta).Add(pivot)
}

func blendFactor(centerDist, cornerDist, blendFalloff float64) float64 {
	return Clamp((centerDist-cornerDist)*blendFalloff, 0, 1)
}

func mixColor(c1, c2 [4]float64, t float64) [4]float64 {
	return [4]float64{
		Lerp(c1[0], c2[0], t),
		Lerp(c1[1], c2[1], t),
		Lerp(c1[2], c2[2], t),
		Lerp(c1[3], c2[3], t),
	}
}

// DisguiseColorAt evaluates the tiling disguise at a working coordinate uv
// (tile units). It blends a corner-anchored and a center-anchored rotated
// sampling of sample, each rotated by an angle hashed from its anchor.
func DisguiseColorAt(uv FPoint, params DisguiseParams, sample SampleFunc) [4]float64 {
	pick := pickReferencePoints(uv, params.BlendOffset)

	angle1 := params.Rotation * 2 * math.Pi * (hashPoint(pick.Corner).X + 1)
	angle2 := params.Rotation * 2 * math.Pi * (hashPoint(pick.Center.Sub(FPt(0.5, 0.5))).X + 1)

	color1 := sample(FPointFract(rotateAround(uv, pick.Corner, angle1)))
	color2 := sample(FPointFract(rotateAround(uv, pick.Center, angle2)))

	blend := blendFactor(pick.CenterDist, pick.CornerDist, params.BlendFalloff)

	return mixColor(color2, color1, blend)
}

// DisguisePixel maps a normalized screen coordinate to the working
// coordinate and evaluates the disguise there: recenter on the screen
// middle, divide by the short screen side so tiles stay square at any
// aspect ratio, then scale by Scale * TileDensity.
func DisguisePixel(
	normX, normY float64,
	screenW, screenH float64,
	params DisguiseParams,
	sample SampleFunc,
) [4]float64 {
	short := math.Min(screenW, screenH)

	uv := FPt(
		(normX*screenW-screenW*0.5)/short,
		(normY*screenH-screenH*0.5)/short,
	).Scale(params.Scale * TileDensity)

	return DisguiseColorAt(uv, params, sample)
}

// hashPoint derives a pseudo random vector in [0,1) x [0,1) from a position.
// Pure and stateless: the same position always hashes to the same vector.
// The constants carry enough digits that integer lattice points inside any
// realistic grid don't collapse to identical fractional parts.
func hashPoint(p FPoint) FPoint {
	p = FPt(Fract(p.X*127.1731), Fract(p.Y*311.7157))
	d := p.X*(p.X+43.7585) + p.Y*(p.Y+43.7585)
	return FPt(Fract(p.X+d), Fract(p.Y+d))
}
