package palette

import "github.com/gnana997/huekit/pkg/colormath"

// Steps are the nominal ramp indices, lightest first.
var Steps = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

const (
	rampMaxLightness  = 0.95
	rampLightnessStep = 0.1

	// Chroma is damped at the extremes where saturated colors fall out of
	// gamut or read as implausible.
	highLightnessThreshold = 0.8
	highLightnessChroma    = 0.5
	lowLightnessThreshold  = 0.2
	lowLightnessChroma     = 0.6
)

// RampStep is one entry of a lightness ramp.
type RampStep struct {
	Step      int     `json:"step"`
	Lightness float64 `json:"lightness"`
	Chroma    float64 `json:"chroma"`
	Hex       string  `json:"hex"`
}

// Ramp returns ten variants of base at Steps with lightness falling linearly
// from 0.95 to 0.05. Hue is held and chroma is attenuated above lightness
// 0.8 and below 0.2. The result is empty when base cannot be parsed.
func (e *Engine) Ramp(base string) []RampStep {
	lch, err := e.conv.ToOKLCH(base)
	if err != nil {
		return []RampStep{}
	}
	return e.rampFrom(lch)
}

func (e *Engine) rampFrom(lch colormath.OKLCH) []RampStep {
	out := make([]RampStep, 0, len(Steps))
	for i, step := range Steps {
		l := colormath.RoundTo(rampMaxLightness-float64(i)*rampLightnessStep, 3)
		c := lch.C
		switch {
		case l > highLightnessThreshold:
			c *= highLightnessChroma
		case l < lowLightnessThreshold:
			c *= lowLightnessChroma
		}
		out = append(out, RampStep{
			Step:      step,
			Lightness: l,
			Chroma:    c,
			Hex:       e.conv.FromOKLCH(colormath.OKLCH{L: l, C: c, H: lch.H}),
		})
	}
	return out
}
