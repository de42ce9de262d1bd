package colormath

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of parsed colors kept by a CachedConverter
// when no size is given.
const DefaultCacheSize = 512

// parsed is one cached parse result.
type parsed struct {
	rgb   RGB
	oklch OKLCH
}

// CachedConverter memoizes hex parsing of an underlying Converter.
//
// Keys are normalized hex strings, so "#ABC", "abc" and "#aabbcc" share one
// entry. Encoding (FromOKLCH, FromRGB) is passed through uncached.
//
// Safe for concurrent use.
type CachedConverter struct {
	next  Converter
	cache *lru.Cache[string, parsed]

	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits   int64
	Misses int64
	Size   int
}

// NewCachedConverter wraps next with an LRU cache of the given size.
// A size <= 0 uses DefaultCacheSize.
func NewCachedConverter(next Converter, size int) (*CachedConverter, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, parsed](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create color cache: %w", err)
	}
	return &CachedConverter{next: next, cache: cache}, nil
}

func (cc *CachedConverter) lookup(hex string) (parsed, error) {
	key, err := NormalizeHex(hex)
	if err != nil {
		return parsed{}, err
	}
	if p, ok := cc.cache.Get(key); ok {
		cc.hits.Add(1)
		return p, nil
	}
	cc.misses.Add(1)

	rgb, err := cc.next.ToRGB(key)
	if err != nil {
		return parsed{}, err
	}
	lch, err := cc.next.ToOKLCH(key)
	if err != nil {
		return parsed{}, err
	}
	p := parsed{rgb: rgb, oklch: lch}
	cc.cache.Add(key, p)
	return p, nil
}

func (cc *CachedConverter) ToOKLCH(hex string) (OKLCH, error) {
	p, err := cc.lookup(hex)
	if err != nil {
		return OKLCH{}, err
	}
	return p.oklch, nil
}

func (cc *CachedConverter) ToRGB(hex string) (RGB, error) {
	p, err := cc.lookup(hex)
	if err != nil {
		return RGB{}, err
	}
	return p.rgb, nil
}

func (cc *CachedConverter) FromOKLCH(c OKLCH) string {
	return cc.next.FromOKLCH(c)
}

func (cc *CachedConverter) FromRGB(c RGB) string {
	return cc.next.FromRGB(c)
}

// Stats returns the current hit/miss counters.
func (cc *CachedConverter) Stats() CacheStats {
	return CacheStats{
		Hits:   cc.hits.Load(),
		Misses: cc.misses.Load(),
		Size:   cc.cache.Len(),
	}
}
