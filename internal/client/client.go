package client

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/averycrespi/semantic-movement-mcp/internal/transport"
	"github.com/averycrespi/semantic-movement-mcp/pkg/project"
	"github.com/averycrespi/semantic-movement-mcp/pkg/types"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

var _ types.Client = &LanguageServerClient{}

// LanguageServerClient implements the Client interface for any stdio language server
type LanguageServerClient struct {
	config    types.LanguageServerConfig
	cmd       *exec.Cmd
	transport types.Transport
}

// NewLanguageServerClient creates a new client for the configured language server
func NewLanguageServerClient(config types.LanguageServerConfig) *LanguageServerClient {
	slog.Debug("Creating new language server client", "server", config.Name, "command", config.Command)

	return &LanguageServerClient{
		config: config,
	}
}

// newClientWithTransport creates a client that talks over an existing transport instead of
// spawning a process.
func newClientWithTransport(config types.LanguageServerConfig, t types.Transport) *LanguageServerClient {
	return &LanguageServerClient{
		config:    config,
		transport: t,
	}
}

// Start starts the language server and runs the initialize handshake
func (c *LanguageServerClient) Start(ctx context.Context, workspaceRoot string) error {
	if c.transport == nil {
		if err := c.spawn(); err != nil {
			return err
		}
	}

	if err := c.transport.Start(); err != nil {
		c.abort()
		return fmt.Errorf("failed to start transport: %w", err)
	}
	slog.Debug("JSON-RPC transport started successfully", "server", c.config.Name)

	rootURI := uri.File(workspaceRoot)
	slog.Debug("Initializing language server", "server", c.config.Name, "root_uri", rootURI)
	if err := c.initialize(ctx, rootURI); err != nil {
		c.abort()
		return fmt.Errorf("failed to initialize %s: %w", c.config.Name, err)
	}
	slog.Info("Language server initialized", "server", c.config.Name)

	return nil
}

func (c *LanguageServerClient) spawn() error {
	slog.Debug("Starting language server process", "server", c.config.Name, "command", c.config.Command, "args", c.config.Args)

	// The process outlives the context of the first request that starts it.
	c.cmd = exec.Command(c.config.Command, c.config.Args...)

	stdin, err := c.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdin pipe: %w", err)
	}

	stdout, err := c.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	stderr, err := c.cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	c.transport = transport.NewJsonRpcTransport(stdin, stdout)

	if err := c.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s command: %w", c.config.Name, err)
	}
	slog.Debug("Language server process started", "server", c.config.Name, "pid", c.cmd.Process.Pid)

	go c.drainStderr(stderr)
	return nil
}

// abort tears down a server whose start failed part way. No shutdown handshake is attempted.
func (c *LanguageServerClient) abort() {
	if err := c.transport.Stop(); err != nil {
		slog.Debug("Failed to stop transport after failed start", "server", c.config.Name, "error", err)
	}

	if c.cmd == nil || c.cmd.Process == nil {
		return
	}
	if err := c.cmd.Process.Kill(); err != nil {
		slog.Debug("Failed to kill language server after failed start", "server", c.config.Name, "error", err)
	}
	_ = c.cmd.Wait()
	slog.Debug("Language server process reaped after failed start", "server", c.config.Name)
}

func (c *LanguageServerClient) drainStderr(stderr io.Reader) {
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		slog.Debug("Language server stderr", "server", c.config.Name, "line", scanner.Text())
	}
}

func (c *LanguageServerClient) initialize(ctx context.Context, rootURI uri.URI) error {
	params := &protocol.InitializeParams{
		ProcessID: int32(os.Getpid()),
		RootURI:   protocol.DocumentURI(rootURI),
		ClientInfo: &protocol.ClientInfo{
			Name:    project.Name,
			Version: project.Version,
		},
		Capabilities: protocol.ClientCapabilities{
			TextDocument: &protocol.TextDocumentClientCapabilities{
				DocumentSymbol: &protocol.DocumentSymbolClientCapabilities{
					HierarchicalDocumentSymbolSupport: true,
				},
			},
		},
	}

	if _, err := c.transport.SendRequest(ctx, "initialize", params); err != nil {
		return fmt.Errorf("failed to send initialization request: %w", err)
	}

	if err := c.transport.SendNotification(ctx, "initialized", &protocol.InitializedParams{}); err != nil {
		return fmt.Errorf("failed to send initialization notification: %w", err)
	}

	return nil
}

// Stop shuts the language server down and waits for its process to exit
func (c *LanguageServerClient) Stop(ctx context.Context) error {
	if c.transport == nil {
		return nil
	}

	if _, err := c.transport.SendRequest(ctx, "shutdown", nil); err != nil {
		return fmt.Errorf("failed to send JSON-RPC shutdown request: %w", err)
	}

	if err := c.transport.SendNotification(ctx, "exit", nil); err != nil {
		return fmt.Errorf("failed to send JSON-RPC exit notification: %w", err)
	}

	if err := c.transport.Stop(); err != nil {
		return fmt.Errorf("failed to stop transport: %w", err)
	}

	if c.cmd != nil && c.cmd.Process != nil {
		if err := c.cmd.Process.Kill(); err != nil {
			return fmt.Errorf("failed to kill %s process: %w", c.config.Name, err)
		}
		// Exit status after a kill is expected to be non-zero.
		_ = c.cmd.Wait()
	}

	return nil
}

// GetDocumentSymbols opens the document with its current disk content, asks for its
// symbols and closes it again, so every call sees a fresh tree.
func (c *LanguageServerClient) GetDocumentSymbols(ctx context.Context, documentURI string) ([]types.DocumentSymbol, error) {
	slog.Debug("Getting document symbols", "server", c.config.Name, "uri", documentURI)

	if !strings.HasPrefix(documentURI, uri.FileScheme+"://") {
		return nil, fmt.Errorf("unsupported document URI: %s", documentURI)
	}
	content, err := os.ReadFile(uri.URI(documentURI).Filename())
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	docURI := protocol.DocumentURI(documentURI)
	openParams := &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        docURI,
			LanguageID: protocol.LanguageIdentifier(c.config.LanguageID),
			Version:    1,
			Text:       string(content),
		},
	}
	if err := c.transport.SendNotification(ctx, "textDocument/didOpen", openParams); err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer func() {
		closeParams := &protocol.DidCloseTextDocumentParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
		}
		if err := c.transport.SendNotification(ctx, "textDocument/didClose", closeParams); err != nil {
			slog.Warn("Failed to close document", "uri", documentURI, "error", err)
		}
	}()

	params := &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
	}
	response, err := c.transport.SendRequest(ctx, "textDocument/documentSymbol", params)
	if err != nil {
		return nil, fmt.Errorf("failed to get document symbols: %w", err)
	}

	symbols, err := decodeDocumentSymbols(response)
	if err != nil {
		return nil, err
	}

	slog.Debug("Document symbols retrieved", "uri", documentURI, "symbol_count", len(symbols))
	return symbols, nil
}

// decodeDocumentSymbols accepts the three shapes a documentSymbol response can take:
// null, DocumentSymbol[] or SymbolInformation[].
func decodeDocumentSymbols(response json.RawMessage) ([]types.DocumentSymbol, error) {
	if len(response) == 0 || string(response) == "null" {
		return []types.DocumentSymbol{}, nil
	}

	var shapes []struct {
		Location *types.Location `json:"location"`
	}
	if err := json.Unmarshal(response, &shapes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document symbols response: %w", err)
	}

	if len(shapes) > 0 && shapes[0].Location != nil {
		var infos []types.SymbolInformation
		if err := json.Unmarshal(response, &infos); err != nil {
			return nil, fmt.Errorf("failed to unmarshal symbol information: %w", err)
		}
		return nestSymbolInformation(infos), nil
	}

	var symbols []types.DocumentSymbol
	if err := json.Unmarshal(response, &symbols); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document symbols: %w", err)
	}
	return symbols, nil
}

// nestSymbolInformation rebuilds a hierarchy from a flat symbol list by range containment.
// Flat symbols carry no name range, so the selection range is the whole range.
func nestSymbolInformation(infos []types.SymbolInformation) []types.DocumentSymbol {
	sorted := make([]types.SymbolInformation, len(infos))
	copy(sorted, infos)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Location.Range, sorted[j].Location.Range
		if c := a.Start.Compare(b.Start); c != 0 {
			return c < 0
		}
		return a.End.After(b.End)
	})

	type node struct {
		symbol   types.DocumentSymbol
		children []*node
	}

	var roots []*node
	var stack []*node
	for _, info := range sorted {
		n := &node{symbol: types.DocumentSymbol{
			Name:           info.Name,
			Kind:           info.Kind,
			Range:          info.Location.Range,
			SelectionRange: info.Location.Range,
		}}
		for len(stack) > 0 && !stack[len(stack)-1].symbol.Range.ContainsRange(n.symbol.Range) {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, n)
		} else {
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, n)
		}
		stack = append(stack, n)
	}

	var build func(nodes []*node) []types.DocumentSymbol
	build = func(nodes []*node) []types.DocumentSymbol {
		if len(nodes) == 0 {
			return nil
		}
		symbols := make([]types.DocumentSymbol, 0, len(nodes))
		for _, n := range nodes {
			symbol := n.symbol
			symbol.Children = build(n.children)
			symbols = append(symbols, symbol)
		}
		return symbols
	}
	return build(roots)
}
