package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/averycrespi/semantic-movement-mcp/pkg/types"

	"github.com/bmatcuk/doublestar/v4"
	"go.lsp.dev/uri"
)

// ClientFactory creates a client for a configured language server
type ClientFactory func(config types.LanguageServerConfig) types.Client

// Manager routes documents to language servers and manages their lifecycle.
// Servers are started on first use.
type Manager struct {
	workspaceRoot string
	servers       []types.LanguageServerConfig
	newClient     ClientFactory
	clients       map[string]types.Client
	mu            sync.Mutex
}

// NewManager creates a new manager that spawns language server processes
func NewManager(config *types.Config) *Manager {
	return NewManagerWithFactory(config, func(server types.LanguageServerConfig) types.Client {
		return NewLanguageServerClient(server)
	})
}

// NewManagerWithFactory creates a new manager with a custom client factory
func NewManagerWithFactory(config *types.Config, factory ClientFactory) *Manager {
	return &Manager{
		workspaceRoot: config.WorkspaceRoot,
		servers:       config.Servers,
		newClient:     factory,
		clients:       make(map[string]types.Client),
	}
}

// GetDocumentSymbols returns the symbols of a document from the server that handles it
func (m *Manager) GetDocumentSymbols(ctx context.Context, documentURI string) ([]types.DocumentSymbol, error) {
	client, err := m.ClientFor(ctx, documentURI)
	if err != nil {
		return nil, err
	}
	return client.GetDocumentSymbols(ctx, documentURI)
}

// ClientFor returns the started client for a document, starting it if needed
func (m *Manager) ClientFor(ctx context.Context, documentURI string) (types.Client, error) {
	server, err := m.route(documentURI)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if client, ok := m.clients[server.Name]; ok {
		return client, nil
	}

	slog.Info("Starting language server", "server", server.Name, "workspace_root", m.workspaceRoot)
	client := m.newClient(server)
	if err := client.Start(ctx, m.workspaceRoot); err != nil {
		return nil, fmt.Errorf("failed to start language server %s: %w", server.Name, err)
	}

	m.clients[server.Name] = client
	return client, nil
}

// route picks the first server with a pattern matching the document path. Paths inside the
// workspace are matched relative to its root, others without their leading slash.
func (m *Manager) route(documentURI string) (types.LanguageServerConfig, error) {
	if !strings.HasPrefix(documentURI, uri.FileScheme+"://") {
		return types.LanguageServerConfig{}, fmt.Errorf("unsupported document URI: %s", documentURI)
	}
	path := uri.URI(documentURI).Filename()

	candidate := strings.TrimPrefix(filepath.ToSlash(path), "/")
	if rel, err := filepath.Rel(m.workspaceRoot, path); err == nil && !strings.HasPrefix(rel, "..") {
		candidate = filepath.ToSlash(rel)
	}

	for _, server := range m.servers {
		for _, pattern := range server.Patterns {
			matched, err := doublestar.Match(pattern, candidate)
			if err != nil {
				return types.LanguageServerConfig{}, fmt.Errorf("invalid pattern %q for server %s: %w", pattern, server.Name, err)
			}
			if matched {
				return server, nil
			}
		}
	}

	return types.LanguageServerConfig{}, fmt.Errorf("no language server configured for %s", candidate)
}

// Running returns the names of the started language servers
func (m *Manager) Running() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var names []string
	for _, server := range m.servers {
		if _, ok := m.clients[server.Name]; ok {
			names = append(names, server.Name)
		}
	}
	return names
}

// Shutdown stops every started language server
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for name, client := range m.clients {
		slog.Info("Stopping language server", "server", name)
		if err := client.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop language server %s: %w", name, err))
		}
		delete(m.clients, name)
	}
	return errors.Join(errs...)
}
