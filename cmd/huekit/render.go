package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gnana997/huekit/pkg/colormath"
	"github.com/gnana997/huekit/pkg/contrast"
	"github.com/gnana997/huekit/pkg/converter"
	"github.com/gnana997/huekit/pkg/palette"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// renderer prints engine results for terminals.
type renderer struct {
	text *contrast.Engine
}

// newRenderer picks swatch label colors with conv.
func newRenderer(conv colormath.Converter) *renderer {
	return &renderer{text: contrast.NewEngine(conv)}
}

// swatch renders hex as a colored block with its own label.
func (r *renderer) swatch(hex string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(r.text.SuggestText(hex))).
		Padding(0, 1).
		Render(hex)
}

func mark(ok bool) string {
	if ok {
		return passStyle.Render("pass")
	}
	return failStyle.Render("fail")
}

func (r *renderer) printConversion(w io.Writer, c converter.Conversion) {
	fmt.Fprintln(w, r.swatch(c.Hex))
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("hex  "), c.Hex)
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("oklch"), c.CSS)
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("rgb  "), c.RGBCSS)
}

func (r *renderer) printReport(w io.Writer, rep contrast.Report) {
	fmt.Fprintf(w, "%s on %s  ratio %.2f:1\n", r.swatch(rep.Foreground), r.swatch(rep.Background), rep.Ratio)
	fmt.Fprintf(w, "  AA normal   %s  (>= %.1f)\n", mark(rep.Compliance.AANormal), contrast.AANormal)
	fmt.Fprintf(w, "  AA large    %s  (>= %.1f)\n", mark(rep.Compliance.AALarge), contrast.AALarge)
	fmt.Fprintf(w, "  AAA normal  %s  (>= %.1f)\n", mark(rep.Compliance.AAANormal), contrast.AAANormal)
	fmt.Fprintf(w, "  AAA large   %s  (>= %.1f)\n", mark(rep.Compliance.AAALarge), contrast.AAALarge)
}

func (r *renderer) printHarmony(w io.Writer, kind palette.Kind, colors []palette.HarmonyColor) {
	fmt.Fprintln(w, labelStyle.Render(string(kind)))
	for _, c := range colors {
		fmt.Fprintf(w, "  %s  %s\n", r.swatch(c.Hex),
			mutedStyle.Render(fmt.Sprintf("L %.3f  C %.3f  H %.1f", c.Lightness, c.Chroma, c.Hue)))
	}
}

func (r *renderer) printRamp(w io.Writer, name string, steps []palette.RampStep) {
	if name != "" {
		fmt.Fprintln(w, labelStyle.Render(name))
	}
	blocks := make([]string, 0, len(steps))
	for _, s := range steps {
		blocks = append(blocks, fmt.Sprintf("%3d %s", s.Step, r.swatch(s.Hex)))
	}
	fmt.Fprintln(w, "  "+strings.Join(blocks, "\n  "))
}
