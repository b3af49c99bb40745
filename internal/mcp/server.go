// ABOUTME: MCP server setup for the coaching data core.
// ABOUTME: Wraps the MCP server with a data.Manager connection.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/contratempo/internal/data"
)

// Server wraps the MCP server with data access.
type Server struct {
	mcpServer *mcp.Server
	manager   *data.Manager
}

// NewServer creates a new MCP server over the given manager.
func NewServer(manager *data.Manager) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "contratempo",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		manager:   manager,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
