// Package converter implements the hex/OKLCH converter tool, recording each
// conversion into a capped history.
package converter

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/gnana997/huekit/pkg/colormath"
	"github.com/gnana997/huekit/pkg/history"
)

// Conversion is a color expressed in every supported notation.
type Conversion struct {
	Hex    string          `json:"hex"`
	OKLCH  colormath.OKLCH `json:"oklch"`
	RGB    colormath.RGB   `json:"rgb"`
	CSS    string          `json:"css"`
	RGBCSS string          `json:"rgb_css"`
}

// Service converts colors and keeps the history list in sync with an
// optional Store.
type Service struct {
	conv    colormath.Converter
	history *history.List
	store   history.Store // may be nil
	logger  *slog.Logger
}

// NewService wires a Service. store may be nil, in which case history is
// kept in memory only. A nil logger uses slog.Default().
func NewService(conv colormath.Converter, list *history.List, store history.Store, logger *slog.Logger) *Service {
	if list == nil {
		list = history.NewList(history.DefaultCapacity)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{conv: conv, history: list, store: store, logger: logger}
}

// LoadHistory replaces the in-memory history with the store's contents.
func (s *Service) LoadHistory(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	entries, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	s.history.Replace(entries)
	s.logger.Debug("history loaded", "entries", s.history.Len())
	return nil
}

// FromHex converts a hex color and records it.
func (s *Service) FromHex(ctx context.Context, hex string) (Conversion, error) {
	norm, err := colormath.NormalizeHex(hex)
	if err != nil {
		return Conversion{}, err
	}
	lch, err := s.conv.ToOKLCH(norm)
	if err != nil {
		return Conversion{}, err
	}
	rgb, err := s.conv.ToRGB(norm)
	if err != nil {
		return Conversion{}, err
	}

	conv := s.describe(norm, lch, rgb)
	s.record(ctx, conv)
	return conv, nil
}

// FromOKLCH converts an OKLCH triple to hex and records it. Lightness must
// be in [0,1] and chroma non-negative; hue is wrapped into [0,360). NaN and
// infinite components are rejected.
func (s *Service) FromOKLCH(ctx context.Context, l, c, h float64) (Conversion, error) {
	for _, v := range []float64{l, c, h} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Conversion{}, fmt.Errorf("invalid OKLCH component %v", v)
		}
	}
	if l < 0 || l > 1 {
		return Conversion{}, fmt.Errorf("lightness %v out of range [0,1]", l)
	}
	if c < 0 {
		return Conversion{}, fmt.Errorf("chroma %v must not be negative", c)
	}
	lch := colormath.OKLCH{L: l, C: c, H: colormath.NormalizeHue(h)}
	hex := s.conv.FromOKLCH(lch)
	rgb, err := s.conv.ToRGB(hex)
	if err != nil {
		return Conversion{}, err
	}

	conv := s.describe(hex, lch, rgb)
	s.record(ctx, conv)
	return conv, nil
}

func (s *Service) describe(hex string, lch colormath.OKLCH, rgb colormath.RGB) Conversion {
	return Conversion{
		Hex:    hex,
		OKLCH:  colormath.Round(lch),
		RGB:    rgb,
		CSS:    colormath.FormatCSS(lch),
		RGBCSS: colormath.FormatRGB(rgb),
	}
}

// record adds the conversion to history and persists it. Persistence
// failures are logged; the conversion itself still succeeds.
func (s *Service) record(ctx context.Context, c Conversion) {
	s.history.Add(history.Entry{
		Hex: c.Hex,
		L:   c.OKLCH.L,
		C:   c.OKLCH.C,
		H:   c.OKLCH.H,
	})
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, s.history.Entries()); err != nil {
		s.logger.Warn("failed to persist history", "error", err)
	}
}

// History returns recent conversions, most recent first.
func (s *Service) History() []history.Entry {
	return s.history.Entries()
}

// ClearHistory empties the history and the store.
func (s *Service) ClearHistory(ctx context.Context) error {
	s.history.Clear()
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, nil); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
