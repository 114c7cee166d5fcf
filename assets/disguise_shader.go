//go:build ignore

//kage:unit pixels

package main

const Pi = 3.141592

// baseline tile count across the short screen side at Scale 1
const TileDensity = 4.0

// odd, so that one whole tile step flips the checker parity
const CheckerFrequency = 5.0

// Uniform variables.
var Scale float
var Rotation float
var BlendOffset float
var BlendFalloff float
var ScreenSize vec2
var UseChecker float

func hashPoint(p vec2) vec2 {
	p = fract(p * vec2(127.1731, 311.7157))
	d := dot(p, p+vec2(43.7585, 43.7585))
	return fract(p + vec2(d, d))
}

func rotateAround(v, pivot vec2, theta float) vec2 {
	c := cos(theta)
	s := sin(theta)
	v -= pivot
	v = vec2(v.x*c-v.y*s, v.x*s+v.y*c)
	return v + pivot
}

func distSq(a, b vec2) float {
	d := b - a
	return dot(d, d)
}

// nearest texel with repeat wrapping
func imageSrc0RepeatAt(p vec2) vec4 {
	origin0 := imageSrc0Origin()
	imgSize := imageSrc0Size()
	return imageSrc0UnsafeAt(mod(p, imgSize) + origin0)
}

// at is in [0,1); texel centers sit at integer + 0.5
func imageSrc0Bilinear01(at vec2) vec4 {
	imgSize := imageSrc0Size()
	t := at*imgSize - vec2(0.5, 0.5)
	i := floor(t)
	f := t - i

	c00 := imageSrc0RepeatAt(i + vec2(0.5, 0.5))
	c10 := imageSrc0RepeatAt(i + vec2(1.5, 0.5))
	c01 := imageSrc0RepeatAt(i + vec2(0.5, 1.5))
	c11 := imageSrc0RepeatAt(i + vec2(1.5, 1.5))

	return mix(mix(c00, c10, f.x), mix(c01, c11, f.x), f.y)
}

func checkerColor(at vec2) vec4 {
	f := floor(at * vec2(CheckerFrequency, CheckerFrequency))
	if mod(f.x+f.y, 2) < 0.5 {
		return vec4(0.25, 0.25, 0.25, 1)
	}
	return vec4(0.75, 0.75, 0.75, 1)
}

func sampleAt(at vec2) vec4 {
	if UseChecker > 0.5 {
		return checkerColor(at)
	}
	return imageSrc0Bilinear01(at)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	pixel := dstPos.xy - imageDstOrigin()
	short := min(ScreenSize.x, ScreenSize.y)

	uv := (pixel - ScreenSize*0.5) / short * (Scale * TileDensity)

	gridPos := floor(uv)

	// 2x2 corner neighborhood; scan order decides ties, only strict < moves
	// the minimum, and the center scan starts from the first corner's center
	corner := gridPos
	cornerDist := distSq(uv, corner)
	center := corner + vec2(0.5, 0.5)
	centerDist := distSq(uv, center) * BlendOffset

	p := gridPos + vec2(0, 1)
	d := distSq(uv, p)
	if d < cornerDist {
		corner = p
		cornerDist = d
	}
	q := p + vec2(0.5, 0.5)
	d = distSq(uv, q) * BlendOffset
	if d < centerDist {
		center = q
		centerDist = d
	}

	p = gridPos + vec2(1, 0)
	d = distSq(uv, p)
	if d < cornerDist {
		corner = p
		cornerDist = d
	}
	q = p + vec2(0.5, 0.5)
	d = distSq(uv, q) * BlendOffset
	if d < centerDist {
		center = q
		centerDist = d
	}

	p = gridPos + vec2(1, 1)
	d = distSq(uv, p)
	if d < cornerDist {
		corner = p
		cornerDist = d
	}
	q = p + vec2(0.5, 0.5)
	d = distSq(uv, q) * BlendOffset
	if d < centerDist {
		center = q
		centerDist = d
	}

	angle1 := Rotation * 2 * Pi * (hashPoint(corner).x + 1)
	angle2 := Rotation * 2 * Pi * (hashPoint(center-vec2(0.5, 0.5)).x + 1)

	color1 := sampleAt(fract(rotateAround(uv, corner, angle1)))
	color2 := sampleAt(fract(rotateAround(uv, center, angle2)))

	blend := clamp((centerDist-cornerDist)*BlendFalloff, 0, 1)

	return mix(color2, color1, blend)
}
