// ABOUTME: MCP server setup for the fitness tracker.
// ABOUTME: Wraps the MCP server with database access and optional sync.
package mcp

import (
	"context"

	"github.com/harperreed/fittrack/internal/goals"
	"github.com/harperreed/fittrack/internal/storage"
	syncengine "github.com/harperreed/fittrack/internal/sync"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access. engine is nil when the
// device is not linked to a cloud account; sync tools report that instead of
// failing.
type Server struct {
	mcpServer *mcp.Server
	db        *storage.DB
	engine    *syncengine.Engine
	userID    string
}

// NewServer creates a new MCP server over the given database.
func NewServer(db *storage.DB, engine *syncengine.Engine, userID string) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fittrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		db:        db,
		engine:    engine,
		userID:    userID,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// afterMutation recomputes auto goals and schedules a debounced sync pass.
func (s *Server) afterMutation() {
	_, _ = goals.Recompute(s.db, s.userID)
	if s.engine != nil {
		s.engine.RequestSync()
	}
}
