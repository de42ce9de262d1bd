package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/huekit/pkg/colormath"
	"github.com/gnana997/huekit/pkg/contrast"
	"github.com/gnana997/huekit/pkg/converter"
	"github.com/gnana997/huekit/pkg/mcplog"
	"github.com/gnana997/huekit/pkg/palette"
)

const serverVersion = "0.1.0-dev"

// Server exposes the color engines and the token tools over MCP.
type Server struct {
	mcpServer *server.MCPServer
	conv      colormath.Converter
	converter *converter.Service
	contrast  *contrast.Engine
	palette   *palette.Engine
	logger    *mcplog.Logger // nil disables call logging
}

// NewServer creates an MCP server around conv. svc may be nil, in which
// case conversions keep an in-memory history only. callLog may be nil.
func NewServer(conv colormath.Converter, svc *converter.Service, callLog *mcplog.Logger) *Server {
	if svc == nil {
		svc = converter.NewService(conv, nil, nil, nil)
	}
	s := &Server{
		conv:      conv,
		converter: svc,
		contrast:  contrast.NewEngine(conv),
		palette:   palette.NewEngine(conv),
		logger:    callLog,
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if callLog != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}
	s.mcpServer = server.NewMCPServer("huekit", serverVersion, opts...)

	s.mcpServer.AddTools(s.tools()...)

	return s
}

func (s *Server) tools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: convertColorTool(), Handler: s.handleConvertColor},
		{Tool: oklchToHexTool(), Handler: s.handleOKLCHToHex},
		{Tool: contrastRatioTool(), Handler: s.handleContrastRatio},
		{Tool: simulateColorBlindnessTool(), Handler: s.handleSimulateColorBlindness},
		{Tool: suggestTextColorTool(), Handler: s.handleSuggestTextColor},
		{Tool: generateHarmonyTool(), Handler: s.handleGenerateHarmony},
		{Tool: generateRampTool(), Handler: s.handleGenerateRamp},
		{Tool: generatePaletteTool(), Handler: s.handleGeneratePalette},
		{Tool: parseTokensTool(), Handler: s.handleParseTokens},
		{Tool: exportTokensTool(), Handler: s.handleExportTokens},
		{Tool: exportAllTokensTool(), Handler: s.handleExportAllTokens},
		{Tool: colorHistoryTool(), Handler: s.handleColorHistory},
	}
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
