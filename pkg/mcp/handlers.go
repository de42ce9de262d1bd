package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/huekit/pkg/contrast"
	"github.com/gnana997/huekit/pkg/palette"
	"github.com/gnana997/huekit/pkg/tokens"
)

// jsonResult marshals v into a text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleConvertColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, err := req.RequireString("hex")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	conv, err := s.converter.FromHex(ctx, hex)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid hex color: %v", err)), nil
	}
	return jsonResult(conv)
}

func (s *Server) handleOKLCHToHex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l, err := req.RequireFloat("l")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c, err := req.RequireFloat("c")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	h, err := req.RequireFloat("h")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	conv, err := s.converter.FromOKLCH(ctx, l, c, h)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid OKLCH color: %v", err)), nil
	}
	return jsonResult(conv)
}

func (s *Server) handleContrastRatio(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fg, err := req.RequireString("foreground")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	bg, err := req.RequireString("background")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	report, ok := s.contrast.Check(fg, bg)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid color pair: %q on %q", fg, bg)), nil
	}
	return jsonResult(report)
}

func (s *Server) handleSimulateColorBlindness(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	color, err := req.RequireString("color")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, err := s.conv.ToRGB(color); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid hex color: %q", color)), nil
	}

	kind := req.GetString("type", "")
	if strings.TrimSpace(kind) == "" {
		return jsonResult(s.contrast.SimulateAll(color))
	}
	d, ok := contrast.ParseDeficiency(kind)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown deficiency %q", kind)), nil
	}
	return jsonResult(map[contrast.Deficiency]string{d: s.contrast.Simulate(color, d)})
}

type textSuggestion struct {
	Background string  `json:"background"`
	Text       string  `json:"text"`
	Ratio      float64 `json:"ratio"`
}

func (s *Server) handleSuggestTextColor(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bg, err := req.RequireString("background")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text := s.contrast.SuggestText(bg)
	report, ok := s.contrast.Check(text, bg)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid hex color: %q", bg)), nil
	}
	return jsonResult(textSuggestion{Background: bg, Text: text, Ratio: report.Ratio})
}

// harmonyArgs reads the base color and harmony kind shared by the harmony
// and palette tools.
func harmonyArgs(req mcp.CallToolRequest) (string, palette.Kind, error) {
	base, err := req.RequireString("base")
	if err != nil {
		return "", "", err
	}
	name, err := req.RequireString("type")
	if err != nil {
		return "", "", err
	}
	kind, err := palette.ParseKind(name)
	if err != nil {
		return "", "", err
	}
	return base, kind, nil
}

func (s *Server) handleGenerateHarmony(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	base, kind, err := harmonyArgs(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	colors := s.palette.Harmony(base, kind)
	if len(colors) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid base color: %q", base)), nil
	}
	return jsonResult(colors)
}

func (s *Server) handleGenerateRamp(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	base, err := req.RequireString("base")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	steps := s.palette.Ramp(base)
	if len(steps) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid base color: %q", base)), nil
	}
	return jsonResult(steps)
}

func (s *Server) handleGeneratePalette(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	base, kind, err := harmonyArgs(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ramps := s.palette.Palette(base, kind)
	if len(ramps) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid base color: %q", base)), nil
	}

	name := req.GetString("format", "")
	if name == "" {
		return jsonResult(ramps)
	}
	format, err := tokens.ParseFormat(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := tokens.Generate(format, palette.ToTokens(ramps))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

// parseInput parses the "input" argument, turning parser errors into
// user-facing status messages.
func parseInput(req mcp.CallToolRequest) (*tokens.TokenSet, error) {
	input, err := req.RequireString("input")
	if err != nil {
		return nil, err
	}
	set, err := tokens.Parse(input)
	if err != nil {
		var formatErr *tokens.FormatError
		if errors.As(err, &formatErr) {
			return nil, fmt.Errorf("unable to detect token format. Provide JSON, CSS custom properties (--name: value;) or SCSS variables ($name: value;)")
		}
		return nil, fmt.Errorf("failed to parse tokens: %w", err)
	}
	return set, nil
}

func (s *Server) handleParseTokens(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	set, err := parseInput(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if name := req.GetString("type", ""); name != "" {
		t, ok := tokens.ParseType(name)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Unknown token type %q", name)), nil
		}
		set = set.Filter(t)
	}
	return jsonResult(set.All())
}

func (s *Server) handleExportTokens(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("format")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format, err := tokens.ParseFormat(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	set, err := parseInput(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := tokens.Generate(format, set)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleExportAllTokens(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	set, err := parseInput(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	files, err := tokens.GenerateAll(set)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(files)
}

func (s *Server) handleColorHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	switch action := req.GetString("action", "list"); action {
	case "", "list":
		return jsonResult(s.converter.History())
	case "clear":
		if err := s.converter.ClearHistory(ctx); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(s.converter.History())
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Unknown action %q (want list or clear)", action)), nil
	}
}
