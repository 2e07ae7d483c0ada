package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/semantic-movement-mcp/internal/client"
	"github.com/averycrespi/semantic-movement-mcp/internal/navigation"
	"github.com/averycrespi/semantic-movement-mcp/internal/tools"
	"github.com/averycrespi/semantic-movement-mcp/pkg/project"
	"github.com/averycrespi/semantic-movement-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &SemanticMovementServer{}

// SemanticMovementServer serves the navigation commands over MCP
type SemanticMovementServer struct {
	mcpServer *server.MCPServer
	manager   *client.Manager
	commands  *navigation.CommandTable
	config    *types.Config
}

// NewSemanticMovementServer creates a new server with every navigation command registered
func NewSemanticMovementServer(config *types.Config) *SemanticMovementServer {
	return newServerWithManager(config, client.NewManager(config))
}

func newServerWithManager(config *types.Config, manager *client.Manager) *SemanticMovementServer {
	s := &SemanticMovementServer{
		mcpServer: server.NewMCPServer(project.Name, project.Version, server.WithToolCapabilities(false)),
		manager:   manager,
		commands:  navigation.NewCommandTable(),
		config:    config,
	}
	s.registerTools()
	return s
}

func (s *SemanticMovementServer) registerTools() {
	for _, command := range s.commands.All() {
		tool := tools.NewNavigationTool(command, s.manager, *s.config)
		s.mcpServer.AddTool(tool.GetTool(), tool.Handle)
		slog.Debug("Registered navigation tool", "command", command.ID, "tool", command.ToolName())
	}

	containingTool := tools.NewContainingSymbolsTool(s.manager, *s.config)
	s.mcpServer.AddTool(containingTool.GetTool(), containingTool.Handle)
}

// Start serves MCP over stdio until the input stream closes
func (s *SemanticMovementServer) Start(ctx context.Context) error {
	slog.Info("Starting semantic movement MCP server",
		"workspace_root", s.config.WorkspaceRoot,
		"commands", len(s.commands.All()),
		"servers", len(s.config.Servers))

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

// Shutdown stops every language server that was started
func (s *SemanticMovementServer) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down language servers", "servers", s.manager.Running())
	if err := s.manager.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown language servers: %w", err)
	}

	return nil
}
