package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnana997/huekit/pkg/colormath"
	"github.com/gnana997/huekit/pkg/contrast"
)

// countingConverter records how often colors are parsed.
type countingConverter struct {
	colormath.Converter
	parses int
}

func (c *countingConverter) ToRGB(hex string) (colormath.RGB, error) {
	c.parses++
	return c.Converter.ToRGB(hex)
}

func TestRenderer_UsesInjectedConverter(t *testing.T) {
	conv := &countingConverter{Converter: colormath.NewColorful()}
	r := newRenderer(conv)

	assert.Contains(t, r.swatch("#3366ff"), "#3366ff")
	assert.Positive(t, conv.parses)

	before := conv.parses
	var buf bytes.Buffer
	report, ok := contrast.NewEngine(colormath.NewColorful()).Check("#000000", "#ffffff")
	assert.True(t, ok)
	r.printReport(&buf, report)
	assert.Greater(t, conv.parses, before)
	assert.Contains(t, buf.String(), "ratio 21.00:1")
}
