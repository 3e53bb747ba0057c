// Package mcp exposes the seeded dataset over the Model Context Protocol.
//
// All tools are read-only views over the same dataset the HTTP API serves,
// so an MCP-compatible assistant sees exactly what the dashboard sees.
package mcp

import (
	"encoding/json"
	"log/slog"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/dataset"
)

// Server wraps the MCP server around the seeded dataset.
type Server struct {
	mcpServer *mcpserver.MCPServer
	data      *dataset.Dataset
	logger    *slog.Logger
}

// New creates and configures the MCP server with all portal tools.
func New(data *dataset.Dataset, version string, logger *slog.Logger) *Server {
	s := &Server{
		data:   data,
		logger: logger,
	}

	s.mcpServer = mcpserver.NewMCPServer(
		"retail-agents-portal",
		version,
		mcpserver.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// MCPServer returns the underlying mcp-go server for transport setup.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpServer
}

// jsonResult renders a tool result as indented JSON text.
func jsonResult(v any) *mcplib.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("encoding failed: " + err.Error())
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{
			mcplib.TextContent{Type: "text", Text: string(data)},
		},
	}
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{
			mcplib.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
