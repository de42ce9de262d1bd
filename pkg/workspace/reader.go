package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/edsrzf/mmap-go"
)

// SourceReader reads token source files through a read-only memory map,
// falling back to os.ReadFile when mapping fails.
//
// Safe for concurrent use.
type SourceReader struct {
	logger *slog.Logger

	filesRead    atomic.Int64
	mmapFailures atomic.Int64
}

// SourceReaderStats reports reader activity.
type SourceReaderStats struct {
	FilesRead    int64
	MmapFailures int64
}

// NewSourceReader returns a reader. A nil logger uses slog.Default().
func NewSourceReader(logger *slog.Logger) *SourceReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &SourceReader{logger: logger}
}

// Read returns the contents of path. The returned slice is owned by the
// caller; the mapping is released before Read returns.
func (r *SourceReader) Read(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file %q: %w", path, err)
	}
	r.filesRead.Add(1)

	// Zero-length files cannot be mapped.
	if stat.Size() == 0 {
		return []byte{}, nil
	}

	mapped, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		r.mmapFailures.Add(1)
		r.logger.Warn("mmap failed, using fallback",
			"file", path,
			"size", stat.Size(),
			"error", err)

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("mmap failed and fallback failed for %q: mmap error: %v, read error: %w",
				path, err, readErr)
		}
		return data, nil
	}

	data := make([]byte, len(mapped))
	copy(data, mapped)
	if err := mapped.Unmap(); err != nil {
		r.logger.Warn("failed to unmap file", "file", path, "error", err)
	}
	return data, nil
}

// Stats returns the reader's counters.
func (r *SourceReader) Stats() SourceReaderStats {
	return SourceReaderStats{
		FilesRead:    r.filesRead.Load(),
		MmapFailures: r.mmapFailures.Load(),
	}
}
