// Package contrast computes WCAG contrast ratios and simulates color vision
// deficiencies.
package contrast

import (
	"math"

	"github.com/gnana997/huekit/pkg/colormath"
)

// WCAG 2.x compliance thresholds.
const (
	AANormal  = 4.5
	AALarge   = 3.0
	AAANormal = 7.0
	AAALarge  = 4.5
)

const (
	linearThreshold = 0.03928
	linearDivisor   = 12.92
	gammaExponent   = 2.4
)

// Compliance reports which WCAG levels a ratio satisfies.
type Compliance struct {
	AANormal  bool `json:"aa_normal"`
	AALarge   bool `json:"aa_large"`
	AAANormal bool `json:"aaa_normal"`
	AAALarge  bool `json:"aaa_large"`
}

// Report is the full contrast check of a foreground/background pair.
type Report struct {
	Foreground string     `json:"foreground"`
	Background string     `json:"background"`
	Ratio      float64    `json:"ratio"`
	Compliance Compliance `json:"compliance"`
}

// Engine evaluates contrast using an injected color converter.
type Engine struct {
	conv colormath.Converter
}

// NewEngine returns an Engine backed by conv.
func NewEngine(conv colormath.Converter) *Engine {
	return &Engine{conv: conv}
}

func channelToLinear(c float64) float64 {
	if c <= linearThreshold {
		return c / linearDivisor
	}
	return math.Pow((c+0.055)/1.055, gammaExponent)
}

// Luminance returns the WCAG relative luminance of an sRGB triple.
func Luminance(c colormath.RGB) float64 {
	return 0.2126*channelToLinear(c.R) + 0.7152*channelToLinear(c.G) + 0.0722*channelToLinear(c.B)
}

// RatioOf returns the contrast ratio between two luminances.
func RatioOf(l1, l2 float64) float64 {
	lighter, darker := math.Max(l1, l2), math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// Ratio returns the contrast ratio between two colors. ok is false when
// either color cannot be parsed.
func (e *Engine) Ratio(c1, c2 string) (ratio float64, ok bool) {
	rgb1, err := e.conv.ToRGB(c1)
	if err != nil {
		return 0, false
	}
	rgb2, err := e.conv.ToRGB(c2)
	if err != nil {
		return 0, false
	}
	return RatioOf(Luminance(rgb1), Luminance(rgb2)), true
}

// Evaluate maps a ratio onto the fixed WCAG thresholds.
func Evaluate(ratio float64) Compliance {
	return Compliance{
		AANormal:  ratio >= AANormal,
		AALarge:   ratio >= AALarge,
		AAANormal: ratio >= AAANormal,
		AAALarge:  ratio >= AAALarge,
	}
}

// Check computes the ratio and compliance of fg on bg. ok is false when
// either color cannot be parsed.
func (e *Engine) Check(fg, bg string) (Report, bool) {
	ratio, ok := e.Ratio(fg, bg)
	if !ok {
		return Report{}, false
	}
	return Report{
		Foreground: fg,
		Background: bg,
		Ratio:      colormath.RoundTo(ratio, 2),
		Compliance: Evaluate(ratio),
	}, true
}

// SuggestText returns black or white, whichever contrasts more with bg.
// Unparseable backgrounds get black.
func (e *Engine) SuggestText(bg string) string {
	const black, white = "#000000", "#ffffff"
	onBlack, ok := e.Ratio(black, bg)
	if !ok {
		return black
	}
	onWhite, _ := e.Ratio(white, bg)
	if onBlack >= onWhite {
		return black
	}
	return white
}
