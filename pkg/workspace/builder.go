package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gnana997/huekit/pkg/tokens"
	"github.com/gnana997/huekit/pkg/util"
)

// SourceError records a token source that could not be parsed. Such
// sources are skipped; the rest of the build continues.
type SourceError struct {
	Path string `json:"path"`
	Err  string `json:"error"`
}

// BuildResult summarizes one build.
type BuildResult struct {
	Sources    []string      `json:"sources"`
	Tokens     int           `json:"tokens"`
	Files      []string      `json:"files"`
	Errors     []SourceError `json:"errors,omitempty"`
	DurationMs int64         `json:"duration_ms"`
}

// Builder turns the token sources under a root directory into export files.
// Builds are serialized.
type Builder struct {
	root   string
	cfg    Config
	reader *SourceReader
	logger *slog.Logger

	mu sync.Mutex
}

// NewBuilder creates a Builder for root. A nil logger uses slog.Default().
func NewBuilder(root string, cfg Config, logger *slog.Logger) (*Builder, error) {
	if logger == nil {
		logger = slog.Default()
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}
	for _, f := range cfg.formats() {
		if _, err := tokens.ParseFormat(string(f)); err != nil {
			return nil, err
		}
	}
	return &Builder{
		root:   absRoot,
		cfg:    cfg,
		reader: NewSourceReader(logger),
		logger: logger,
	}, nil
}

// Root returns the absolute workspace root.
func (b *Builder) Root() string {
	return b.root
}

// OutputDir returns the absolute output directory.
func (b *Builder) OutputDir() string {
	return b.cfg.outputPath(b.root)
}

// Collect discovers and parses every source, merging them in path order so
// later files win on name collisions. Sources are read and parsed in
// parallel; the merge order does not depend on scheduling.
func (b *Builder) Collect(ctx context.Context) (*tokens.TokenSet, []string, []SourceError, error) {
	sources, err := Discover(b.root, b.cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to discover token sources: %w", err)
	}

	results := b.parseAll(ctx, sources)
	if err := ctx.Err(); err != nil {
		return nil, nil, nil, err
	}

	merged := tokens.NewTokenSet()
	var errs []SourceError
	for i, res := range results {
		if res.err != nil {
			b.logger.Warn("skipping token source", "file", sources[i], "error", res.err)
			errs = append(errs, SourceError{Path: sources[i], Err: res.err.Error()})
			continue
		}
		b.logger.Debug("parsed token source", "file", sources[i], "tokens", res.set.Len())
		merged = merged.Merge(res.set)
	}
	return merged, sources, errs, nil
}

type parseResult struct {
	set *tokens.TokenSet
	err error
}

// parseAll fans sources out to a fixed set of workers. Results are stored
// by index.
func (b *Builder) parseAll(ctx context.Context, sources []string) []parseResult {
	results := make([]parseResult, len(sources))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < util.PoolSize(len(sources)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = b.parseSource(sources[i])
			}
		}()
	}

	for i := range sources {
		select {
		case jobs <- i:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

func (b *Builder) parseSource(path string) parseResult {
	data, err := b.reader.Read(path)
	if err != nil {
		return parseResult{err: err}
	}
	set, err := tokens.Parse(string(data))
	if err != nil {
		return parseResult{err: err}
	}
	return parseResult{set: set}
}

// Build collects all sources and writes one file per configured format into
// the output directory.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	start := time.Now()

	set, sources, errs, err := b.Collect(ctx)
	if err != nil {
		return nil, err
	}

	outDir := b.OutputDir()
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BuildResult{
		Sources: sources,
		Tokens:  set.Len(),
		Errors:  errs,
	}
	for _, f := range b.cfg.formats() {
		content, err := tokens.Generate(f, set)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(outDir, f.FileName())
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		result.Files = append(result.Files, path)
	}

	result.DurationMs = time.Since(start).Milliseconds()
	b.logger.Info("token build complete",
		"sources", len(sources),
		"tokens", result.Tokens,
		"files", len(result.Files),
		"errors", len(errs),
		"ms", result.DurationMs)

	stats := b.reader.Stats()
	b.logger.Debug("source reader stats",
		"files_read", stats.FilesRead,
		"mmap_failures", stats.MmapFailures)

	return result, nil
}
