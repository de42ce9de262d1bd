// Package mcplog records MCP tool calls as JSONL and summarizes the result.
package mcplog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/huekit/pkg/tokens"
)

// Call outcomes.
const (
	StatusOK        = "ok"
	StatusToolError = "tool_error"
	StatusFailed    = "failed"
)

// LogEntry is the schema for one JSONL line written per MCP tool call.
type LogEntry struct {
	Ts            string         `json:"ts"`
	Tool          string         `json:"tool"`
	Args          map[string]any `json:"args"`
	DurationMs    int64          `json:"duration_ms"`
	ResponseBytes int            `json:"response_bytes"`
	Status        string         `json:"status"`
	Error         *string        `json:"error,omitempty"`
}

// Logger appends structured JSONL entries to a file.
// It is safe for concurrent use.
type Logger struct {
	mu   sync.Mutex
	path string
	f    *os.File
	enc  *json.Encoder
}

// NewLogger opens (or creates) the file at path for append-only writing.
// Parent directories are created automatically.
// Returns nil, nil if path is empty; a nil Logger is disabled.
func NewLogger(path string) (*Logger, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("mcplog: create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("mcplog: open log file: %w", err)
	}
	return &Logger{path: path, f: f, enc: json.NewEncoder(f)}, nil
}

// Path returns the log file location.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Write appends a single JSONL entry. Writing to a nil Logger is a no-op.
func (l *Logger) Write(entry LogEntry) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enc.Encode(entry)
}

// Close closes the underlying log file.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

// SanitizeArgs returns a copy of args safe for logging.
//
// Colors and option names pass through. Strings longer than 64 bytes
// (token sources, mostly) are replaced by "{key}_len" and, when the text is
// a recognizable token source, "{key}_format".
func SanitizeArgs(args map[string]any) map[string]any {
	const shortStringMax = 64
	out := make(map[string]any, len(args))
	for k, v := range args {
		s, ok := v.(string)
		if !ok || len(s) <= shortStringMax {
			out[k] = v
			continue
		}
		out[k+"_len"] = len(s)
		if format, err := tokens.DetectFormat(s); err == nil {
			out[k+"_format"] = string(format)
		}
	}
	return out
}

// ResponseBytes returns the serialized byte length of a CallToolResult's
// content. Returns 0 for a nil result or on marshal error.
func ResponseBytes(result *mcp.CallToolResult) int {
	if result == nil {
		return 0
	}
	b, err := json.Marshal(result.Content)
	if err != nil {
		return 0
	}
	return len(b)
}

// StatusOf classifies a handler outcome.
func StatusOf(result *mcp.CallToolResult, err error) string {
	switch {
	case err != nil:
		return StatusFailed
	case result != nil && result.IsError:
		return StatusToolError
	default:
		return StatusOK
	}
}

// Now is a replaceable clock for testing.
var Now = func() time.Time { return time.Now() }

// ReadEntries loads every entry of a JSONL log. Blank lines are skipped.
func ReadEntries(path string) ([]LogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mcplog: open log file: %w", err)
	}
	defer f.Close()

	var entries []LogEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var e LogEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("mcplog: line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mcplog: read log file: %w", err)
	}
	return entries, nil
}

// ToolStats aggregates the calls of one tool.
type ToolStats struct {
	Tool          string  `json:"tool"`
	Calls         int     `json:"calls"`
	ToolErrors    int     `json:"tool_errors"`
	Failures      int     `json:"failures"`
	AvgDurationMs float64 `json:"avg_duration_ms"`
	TotalBytes    int     `json:"total_bytes"`
}

// Summarize groups entries by tool, busiest tool first.
func Summarize(entries []LogEntry) []ToolStats {
	byTool := make(map[string]*ToolStats)
	totalMs := make(map[string]int64)
	for _, e := range entries {
		s, ok := byTool[e.Tool]
		if !ok {
			s = &ToolStats{Tool: e.Tool}
			byTool[e.Tool] = s
		}
		s.Calls++
		s.TotalBytes += e.ResponseBytes
		totalMs[e.Tool] += e.DurationMs
		switch e.Status {
		case StatusToolError:
			s.ToolErrors++
		case StatusFailed:
			s.Failures++
		}
	}

	out := make([]ToolStats, 0, len(byTool))
	for tool, s := range byTool {
		s.AvgDurationMs = float64(totalMs[tool]) / float64(s.Calls)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Calls != out[j].Calls {
			return out[i].Calls > out[j].Calls
		}
		return out[i].Tool < out[j].Tool
	})
	return out
}
