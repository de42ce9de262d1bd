package converter

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/huekit/pkg/colormath"
	"github.com/gnana997/huekit/pkg/history"
)

type failingStore struct{}

func (failingStore) Load(context.Context) ([]history.Entry, error) {
	return nil, errors.New("boom")
}

func (failingStore) Save(context.Context, []history.Entry) error {
	return errors.New("boom")
}

func TestFromHex(t *testing.T) {
	ctx := context.Background()
	store := &history.MemoryStore{}
	s := NewService(colormath.NewColorful(), history.NewList(0), store, nil)

	c, err := s.FromHex(ctx, "F00")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", c.Hex)
	assert.Equal(t, "oklch(0.628 0.258 29.2)", c.CSS)
	assert.Equal(t, "rgb(255, 0, 0)", c.RGBCSS)
	assert.Equal(t, 0.628, c.OKLCH.L)

	entries := s.History()
	require.Len(t, entries, 1)
	assert.Equal(t, "#ff0000", entries[0].Hex)

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, persisted, 1)
}

func TestFromHex_Invalid(t *testing.T) {
	s := NewService(colormath.NewColorful(), nil, nil, nil)
	_, err := s.FromHex(context.Background(), "#zzz")
	var pe *colormath.ParseError
	require.Error(t, err)
	assert.True(t, errors.As(err, &pe))
	assert.Empty(t, s.History())
}

func TestFromOKLCH(t *testing.T) {
	ctx := context.Background()
	s := NewService(colormath.NewColorful(), nil, nil, nil)

	red, err := s.FromHex(ctx, "#ff0000")
	require.NoError(t, err)

	back, err := s.FromOKLCH(ctx, red.OKLCH.L, red.OKLCH.C, red.OKLCH.H+360)
	require.NoError(t, err)
	r, g, b := back.RGB.RGB255()
	assert.InDelta(t, 255, int(r), 2)
	assert.InDelta(t, 0, int(g), 2)
	assert.InDelta(t, 0, int(b), 2)

	_, err = s.FromOKLCH(ctx, 1.5, 0.1, 0)
	assert.Error(t, err)
	_, err = s.FromOKLCH(ctx, 0.5, -0.1, 0)
	assert.Error(t, err)

	before := len(s.History())
	for _, tc := range []struct {
		name    string
		l, c, h float64
	}{
		{"NaN lightness", math.NaN(), 0.1, 30},
		{"NaN chroma", 0.5, math.NaN(), 30},
		{"NaN hue", 0.5, 0.1, math.NaN()},
		{"infinite chroma", 0.5, math.Inf(1), 30},
		{"infinite hue", 0.5, 0.1, math.Inf(-1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.FromOKLCH(ctx, tc.l, tc.c, tc.h)
			assert.Error(t, err)
		})
	}
	assert.Len(t, s.History(), before)
}

func TestHistoryDedupesAcrossCalls(t *testing.T) {
	ctx := context.Background()
	s := NewService(colormath.NewColorful(), history.NewList(3), nil, nil)
	for _, hex := range []string{"#111", "#222", "#111111", "#333", "#444"} {
		_, err := s.FromHex(ctx, hex)
		require.NoError(t, err)
	}

	var hexes []string
	for _, e := range s.History() {
		hexes = append(hexes, e.Hex)
	}
	assert.Equal(t, []string{"#444444", "#333333", "#111111"}, hexes)
}

func TestStoreFailuresDegrade(t *testing.T) {
	ctx := context.Background()
	s := NewService(colormath.NewColorful(), nil, failingStore{}, nil)

	assert.Error(t, s.LoadHistory(ctx))

	_, err := s.FromHex(ctx, "#123456")
	require.NoError(t, err, "persistence errors must not fail the conversion")
	assert.Len(t, s.History(), 1)

	assert.Error(t, s.ClearHistory(ctx))
	assert.Empty(t, s.History())
}

func TestLoadHistory(t *testing.T) {
	ctx := context.Background()
	store := &history.MemoryStore{}
	require.NoError(t, store.Save(ctx, []history.Entry{{ID: "x", Hex: "#abcdef"}}))

	s := NewService(colormath.NewColorful(), nil, store, nil)
	require.NoError(t, s.LoadHistory(ctx))
	require.Len(t, s.History(), 1)
	assert.Equal(t, "x", s.History()[0].ID)
}
