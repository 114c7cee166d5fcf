package main

import (
	"math"
	"strings"
	"testing"
)

// posSample encodes the sampled position in the color so tests can tell
// where the disguise actually sampled. Alpha stays 1 like a real texture.
func posSample(pos FPoint) [4]float64 {
	return [4]float64{pos.X, pos.Y, 0, 1}
}

// recordSample wraps posSample and appends every sampled position to dst.
func recordSample(dst *[]FPoint) SampleFunc {
	return func(pos FPoint) [4]float64 {
		*dst = append(*dst, pos)
		return posSample(pos)
	}
}

func TestDisguisePixelDeterministic(t *testing.T) {
	params := []DisguiseParams{
		DefaultDisguiseParams(),
		{Scale: 0.6, Rotation: 1, BlendOffset: 1.5, BlendFalloff: 6},
		{Scale: 2, Rotation: 0.1, BlendOffset: 0, BlendFalloff: 0},
	}

	coords := [][2]float64{
		{0, 0}, {0.5, 0.5}, {0.25, 0.75}, {0.999, 0.001}, {1, 1},
	}

	for _, p := range params {
		for _, c := range coords {
			first := DisguisePixel(c[0], c[1], 800, 600, p, CheckerSample)
			second := DisguisePixel(c[0], c[1], 800, 600, p, CheckerSample)

			if first != second {
				t.Errorf(
					"DisguisePixel(%v, %v) not deterministic: %v vs %v",
					c[0], c[1], first, second,
				)
			}
		}
	}
}

func TestHashPointRange(t *testing.T) {
	for i := -50; i <= 50; i++ {
		for j := -50; j <= 50; j++ {
			p := FPt(f64(i), f64(j))
			h := hashPoint(p)

			if h.X < 0 || h.X >= 1 || h.Y < 0 || h.Y >= 1 {
				t.Fatalf("hashPoint(%v) = %v, outside [0,1)", p, h)
			}

			if again := hashPoint(p); h != again {
				t.Fatalf("hashPoint(%v) unstable: %v vs %v", p, h, again)
			}
		}
	}
}

// Sloppy hashes show up as rotations synchronized across tiles, so the
// hash has to spread lattice points over the whole range. Thresholds here
// are far below what a uniform spread would give.
func TestHashPointSpread(t *testing.T) {
	const n = 1000

	var bins [10]int
	seen := make(map[float64]bool)

	for i := 0; i < n; i++ {
		h := hashPoint(FPt(f64(i), f64(i*3-500)))

		bins[int(h.X*10)]++
		seen[h.X] = true
	}

	if len(seen) < n*9/10 {
		t.Errorf("only %d distinct hashes out of %d lattice points", len(seen), n)
	}

	for i, count := range bins {
		if count < n/50 {
			t.Errorf("bin %d got %d hashes, spread is too uneven", i, count)
		}
	}
}

func TestPickReferencePointsNearest(t *testing.T) {
	tests := []struct {
		name        string
		uv          FPoint
		blendOffset float64
		wantCorner  FPoint
		wantCenter  FPoint
	}{
		{
			name:        "near cell origin",
			uv:          FPt(0.1, 0.1),
			blendOffset: 1,
			wantCorner:  FPt(0, 0),
			wantCenter:  FPt(0.5, 0.5),
		},
		{
			name:        "near right corner",
			uv:          FPt(0.9, 0.2),
			blendOffset: 1,
			wantCorner:  FPt(1, 0),
			wantCenter:  FPt(0.5, 0.5),
		},
		{
			name:        "negative cell",
			uv:          FPt(-0.75, -0.25),
			blendOffset: 1,
			wantCorner:  FPt(-1, 0),
			wantCenter:  FPt(-0.5, -0.5),
		},
		{
			// zero offset makes every weighted center distance 0,
			// strict < keeps the first candidate
			name:        "zero offset keeps first center",
			uv:          FPt(0.9, 0.9),
			blendOffset: 0,
			wantCorner:  FPt(1, 1),
			wantCenter:  FPt(0.5, 0.5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pick := pickReferencePoints(tt.uv, tt.blendOffset)

			if !pick.Corner.Eq(tt.wantCorner) {
				t.Errorf("Corner = %v, want %v", pick.Corner, tt.wantCorner)
			}
			if !pick.Center.Eq(tt.wantCenter) {
				t.Errorf("Center = %v, want %v", pick.Center, tt.wantCenter)
			}
		})
	}
}

// Equidistant candidates must resolve by scan order, not by float luck.
func TestPickReferencePointsTieBreak(t *testing.T) {
	// all four corners are 0.5 away
	pick := pickReferencePoints(FPt(0.5, 0.5), 1)
	if !pick.Corner.Eq(FPt(0, 0)) {
		t.Errorf("Corner = %v, want first candidate (0,0)", pick.Corner)
	}

	// (0,0) and (1,0) tie
	pick = pickReferencePoints(FPt(0.5, 0.2), 1)
	if !pick.Corner.Eq(FPt(0, 0)) {
		t.Errorf("Corner = %v, want earlier candidate (0,0)", pick.Corner)
	}
}

// Selection only depends on the position inside the cell, so moving the
// query by whole cells moves both picks by exactly the same amount.
func TestPickReferencePointsTranslation(t *testing.T) {
	// dyadic coordinates keep the shifted arithmetic exact
	uvs := []FPoint{
		FPt(0.3125, 0.71875),
		FPt(0.0625, 0.0625),
		FPt(0.875, 0.125),
	}
	deltas := []FPoint{
		FPt(1, 0), FPt(0, 1), FPt(3, -2), FPt(-7, 11),
	}

	for _, uv := range uvs {
		for _, delta := range deltas {
			base := pickReferencePoints(uv, 1.5)
			moved := pickReferencePoints(uv.Add(delta), 1.5)

			if !moved.Corner.Eq(base.Corner.Add(delta)) {
				t.Errorf(
					"uv %v delta %v: corner %v, want %v",
					uv, delta, moved.Corner, base.Corner.Add(delta),
				)
			}
			if !moved.Center.Eq(base.Center.Add(delta)) {
				t.Errorf(
					"uv %v delta %v: center %v, want %v",
					uv, delta, moved.Center, base.Center.Add(delta),
				)
			}
			if moved.CornerDist != base.CornerDist {
				t.Errorf(
					"uv %v delta %v: corner dist %v, want %v",
					uv, delta, moved.CornerDist, base.CornerDist,
				)
			}
			if moved.CenterDist != base.CenterDist {
				t.Errorf(
					"uv %v delta %v: center dist %v, want %v",
					uv, delta, moved.CenterDist, base.CenterDist,
				)
			}
		}
	}
}

// With Rotation 0 both hashed angles collapse to 0, the rotations become
// identity and the disguise degenerates to plain wrapped sampling.
func TestRotationZeroSamplesInPlace(t *testing.T) {
	params := DisguiseParams{
		Scale:        1,
		Rotation:     0,
		BlendOffset:  1,
		BlendFalloff: 2,
	}

	// dyadic coordinates, so pivot round trips don't lose bits
	uvs := []FPoint{
		FPt(0.25, 0.75),
		FPt(3.5, -1.25),
		FPt(-0.375, 2.625),
		FPt(100.0625, -41.9375),
	}

	for _, uv := range uvs {
		var positions []FPoint
		got := DisguiseColorAt(uv, params, recordSample(&positions))

		want := posSample(FPointFract(uv))
		if got != want {
			t.Errorf("DisguiseColorAt(%v) = %v, want %v", uv, got, want)
		}

		if len(positions) != 2 {
			t.Fatalf("sampled %d times, want 2", len(positions))
		}
		if !positions[0].Eq(FPointFract(uv)) || !positions[1].Eq(FPointFract(uv)) {
			t.Errorf(
				"uv %v sampled at %v and %v, want %v for both",
				uv, positions[0], positions[1], FPointFract(uv),
			)
		}
	}
}

// Zero falloff clamps the blend to 0, which hands the whole pixel to the
// center anchored sampling no matter how close a corner is.
func TestBlendFalloffZeroUsesCenterSample(t *testing.T) {
	params := DisguiseParams{
		Scale:        1,
		Rotation:     0.37,
		BlendOffset:  1,
		BlendFalloff: 0,
	}

	uvs := []FPoint{
		FPt(0.05, 0.08), // nearly on a corner
		FPt(0.42, 0.61),
		FPt(-3.8, 7.2),
	}

	for _, uv := range uvs {
		var positions []FPoint
		got := DisguiseColorAt(uv, params, recordSample(&positions))

		if len(positions) != 2 {
			t.Fatalf("sampled %d times, want 2", len(positions))
		}

		want := posSample(positions[1])
		if got != want {
			t.Errorf(
				"DisguiseColorAt(%v) = %v, want center sample %v",
				uv, got, want,
			)
		}
	}
}

// A query exactly on a grid corner with a steep falloff takes the corner
// anchored sampling alone. Rotating around your own anchor is a no-op,
// so the sampled spot is the corner itself.
func TestCornerExactQuery(t *testing.T) {
	params := DisguiseParams{
		Scale:        1,
		Rotation:     0.6,
		BlendOffset:  1,
		BlendFalloff: 1000,
	}

	got := DisguiseColorAt(FPt(2, 3), params, posSample)

	// corner (2,3) wraps to sampling position (0,0)
	want := [4]float64{0, 0, 0, 1}
	if got != want {
		t.Errorf("DisguiseColorAt(2,3) = %v, want %v", got, want)
	}
}

// A query exactly on a cell center makes the weighted center distance 0,
// so the blend clamps to 0 and only the center sampling shows.
func TestCenterExactQuery(t *testing.T) {
	params := DisguiseParams{
		Scale:        1,
		Rotation:     0.8,
		BlendOffset:  1,
		BlendFalloff: 2,
	}

	got := DisguiseColorAt(FPt(2.5, 3.5), params, posSample)

	want := [4]float64{0.5, 0.5, 0, 1}
	if got != want {
		t.Errorf("DisguiseColorAt(2.5,3.5) = %v, want %v", got, want)
	}
}

func TestBlendFactorClamped(t *testing.T) {
	tests := []struct {
		centerDist, cornerDist, falloff float64
		want                            float64
	}{
		{0.5, 0, 1000, 1},
		{0, 0.5, 2, 0},
		{0.75, 0.25, 1, 0.5},
		{3, 1, 0, 0},
		{1, 3, 0, 0},
	}

	for _, tt := range tests {
		got := blendFactor(tt.centerDist, tt.cornerDist, tt.falloff)
		if got != tt.want {
			t.Errorf(
				"blendFactor(%v, %v, %v) = %v, want %v",
				tt.centerDist, tt.cornerDist, tt.falloff, got, tt.want,
			)
		}
	}

	// whatever the inputs, the factor stays a valid mix weight
	for _, center := range []float64{-2, 0, 0.1, 0.5, 10} {
		for _, corner := range []float64{-2, 0, 0.1, 0.5, 10} {
			for _, falloff := range []float64{-8, 0, 0.5, 2, 1e6} {
				got := blendFactor(center, corner, falloff)
				if got < 0 || got > 1 {
					t.Fatalf(
						"blendFactor(%v, %v, %v) = %v, outside [0,1]",
						center, corner, falloff, got,
					)
				}
			}
		}
	}
}

func TestCheckerSample(t *testing.T) {
	tests := []struct {
		pos  FPoint
		want [4]float64
	}{
		{FPt(0.1, 0.1), checkerTone1},  // cell (0,0)
		{FPt(0.3, 0.1), checkerTone2},  // cell (1,0)
		{FPt(0.3, 0.3), checkerTone1},  // cell (1,1)
		{FPt(0.9, 0.1), checkerTone1},  // cell (4,0)
		{FPt(0.9, 0.3), checkerTone2},  // cell (4,1)
		{FPt(0.5, 0.5), checkerTone1},  // cell (2,2)
		{FPt(0.02, 0.9), checkerTone1}, // cell (0,4)
	}

	for _, tt := range tests {
		got := CheckerSample(tt.pos)
		if got != tt.want {
			t.Errorf("CheckerSample(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

// CheckerFrequency is odd on purpose: stepping a whole tile flips the
// parity, so neighboring tiles never line their checkers up.
func TestCheckerSampleTileStepFlipsParity(t *testing.T) {
	positions := []FPoint{
		FPt(0.1, 0.1), FPt(0.3, 0.5), FPt(0.7, 0.9),
	}

	for _, pos := range positions {
		base := CheckerSample(pos)

		if got := CheckerSample(pos.Add(FPt(1, 0))); got == base {
			t.Errorf("CheckerSample(%v + x tile) did not flip", pos)
		}
		if got := CheckerSample(pos.Add(FPt(0, 1))); got == base {
			t.Errorf("CheckerSample(%v + y tile) did not flip", pos)
		}
		if got := CheckerSample(pos.Add(FPt(1, 1))); got != base {
			t.Errorf("CheckerSample(%v + diagonal tile) flipped twice wrong", pos)
		}
	}
}

func TestParamsJsonRoundTrip(t *testing.T) {
	params := DisguiseParams{
		Scale:        0.6,
		Rotation:     0.35,
		BlendOffset:  1.2,
		BlendFalloff: 3.4,
	}

	jsonBytes, err := ParamsToJson(params)
	if err != nil {
		t.Fatalf("ParamsToJson failed: %v", err)
	}

	// the clipboard format is snake_case, keep it that way
	for _, key := range []string{"scale", "rotation", "blend_offset", "blend_falloff"} {
		if !strings.Contains(string(jsonBytes), "\""+key+"\"") {
			t.Errorf("json %s missing key %q", jsonBytes, key)
		}
	}

	parsed, err := ParamsFromJson(jsonBytes)
	if err != nil {
		t.Fatalf("ParamsFromJson failed: %v", err)
	}

	if parsed != params {
		t.Errorf("round trip gave %+v, want %+v", parsed, params)
	}
}

func TestParamsFromJsonRejectsGarbage(t *testing.T) {
	if _, err := ParamsFromJson([]byte("{scale:")); err == nil {
		t.Error("ParamsFromJson accepted malformed json")
	}
}

// The screen center always lands on working coordinate (0,0), whatever
// the resolution, and square screens of any size shade identically.
func TestDisguisePixelResolutionIndependent(t *testing.T) {
	params := DefaultDisguiseParams()

	sizes := [][2]float64{
		{512, 512}, {1024, 1024}, {800, 400}, {333, 777},
	}

	base := DisguisePixel(0.5, 0.5, sizes[0][0], sizes[0][1], params, CheckerSample)
	for _, size := range sizes[1:] {
		got := DisguisePixel(0.5, 0.5, size[0], size[1], params, CheckerSample)
		if got != base {
			t.Errorf(
				"center pixel at %vx%v = %v, want %v",
				size[0], size[1], got, base,
			)
		}
	}

	// doubling a square screen scales the mapping by an exact power of two
	coords := [][2]float64{
		{0.372, 0.81}, {0.1, 0.9}, {0.25, 0.125},
	}
	for _, c := range coords {
		small := DisguisePixel(c[0], c[1], 512, 512, params, CheckerSample)
		large := DisguisePixel(c[0], c[1], 1024, 1024, params, CheckerSample)
		if small != large {
			t.Errorf(
				"norm (%v, %v): 512 screen %v, 1024 screen %v",
				c[0], c[1], small, large,
			)
		}
	}
}

// Tiles are sized by the short screen side so they stay square on wide
// and tall screens alike.
func TestDisguisePixelUsesShortSide(t *testing.T) {
	params := DefaultDisguiseParams()

	// on 800x400, normX 0.75 is 200px right of center, half the short
	// side, the same working coordinate as normX 1.0 on a 400 square
	wide := DisguisePixel(0.75, 0.5, 800, 400, params, CheckerSample)
	square := DisguisePixel(1.0, 0.5, 400, 400, params, CheckerSample)

	if wide != square {
		t.Errorf("wide screen %v, square screen %v, want equal", wide, square)
	}

	tall := DisguisePixel(0.5, 0.75, 400, 800, params, CheckerSample)
	squareY := DisguisePixel(0.5, 1.0, 400, 400, params, CheckerSample)

	if tall != squareY {
		t.Errorf("tall screen %v, square screen %v, want equal", tall, squareY)
	}
}

func TestDisguiseColorAtBlendsWithinSamples(t *testing.T) {
	params := DefaultDisguiseParams()

	// the output of a blend can't leave the range its two inputs span,
	// checker tones make that range easy to state
	for i := 0; i < 100; i++ {
		uv := FPt(f64(i)*0.173, f64(i)*0.311)
		got := DisguiseColorAt(uv, params, CheckerSample)

		for ch := 0; ch < 3; ch++ {
			if got[ch] < checkerTone1[ch]-1e-9 || got[ch] > checkerTone2[ch]+1e-9 {
				t.Fatalf(
					"DisguiseColorAt(%v)[%d] = %v, outside tone range",
					uv, ch, got[ch],
				)
			}
		}
		if got[3] != 1 {
			t.Fatalf("DisguiseColorAt(%v) alpha = %v, want 1", uv, got[3])
		}
	}
}

func TestRotateAround(t *testing.T) {
	// rotating the pivot itself goes nowhere
	pivot := FPt(2.5, -1.5)
	if got := rotateAround(pivot, pivot, 1.23); !got.Eq(pivot) {
		t.Errorf("rotateAround(pivot, pivot) = %v, want %v", got, pivot)
	}

	// quarter turn around the origin
	got := rotateAround(FPt(1, 0), FPt(0, 0), math.Pi/2)
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
		t.Errorf("quarter turn = %v, want (0,1)", got)
	}

	// distance to the pivot is preserved
	p := FPt(3.25, 0.75)
	rotated := rotateAround(p, pivot, 0.77)

	before := p.Sub(pivot).LengthSquared()
	after := rotated.Sub(pivot).LengthSquared()
	if math.Abs(before-after) > 1e-9 {
		t.Errorf("rotation changed pivot distance: %v vs %v", before, after)
	}
}

func BenchmarkDisguisePixel(b *testing.B) {
	params := DefaultDisguiseParams()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DisguisePixel(0.372, 0.81, 800, 600, params, CheckerSample)
	}
}

func BenchmarkHashPoint(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hashPoint(FPt(f64(i), f64(i*3)))
	}
}
