package palette

import (
	"strconv"

	"github.com/gnana997/huekit/pkg/tokens"
)

// roleNames label harmony members by position.
var roleNames = []string{"primary", "secondary", "tertiary", "quaternary", "quinary"}

// NamedRamp is a harmony member with its full lightness ramp.
type NamedRamp struct {
	Name  string       `json:"name"`
	Base  HarmonyColor `json:"base"`
	Steps []RampStep   `json:"steps"`
}

// Palette builds the harmony of the given kind around base and expands each
// member into a ramp. Empty when base cannot be parsed.
func (e *Engine) Palette(base string, kind Kind) []NamedRamp {
	harmony := e.Harmony(base, kind)
	out := make([]NamedRamp, 0, len(harmony))
	for i, c := range harmony {
		name := "color" + strconv.Itoa(i+1)
		if i < len(roleNames) {
			name = roleNames[i]
		}
		out = append(out, NamedRamp{
			Name:  name,
			Base:  c,
			Steps: e.rampFrom(c.OKLCH()),
		})
	}
	return out
}

// ToTokens converts ramps into color tokens named color.<name>.<step>, ready
// for any tokens export format.
func ToTokens(ramps []NamedRamp) *tokens.TokenSet {
	set := tokens.NewTokenSet()
	for _, r := range ramps {
		for _, s := range r.Steps {
			step := strconv.Itoa(s.Step)
			set.Set(tokens.Token{
				Name:  "color." + r.Name + "." + step,
				Value: s.Hex,
				Type:  tokens.TypeColor,
				Path:  []string{"color", r.Name, step},
			})
		}
	}
	return set
}
