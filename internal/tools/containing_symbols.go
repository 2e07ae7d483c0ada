package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/averycrespi/semantic-movement-mcp/internal/navigation"
	"github.com/averycrespi/semantic-movement-mcp/internal/results"
	"github.com/averycrespi/semantic-movement-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ContainingSymbolsTool lists the symbols that contain a position
type ContainingSymbolsTool struct {
	provider navigation.SymbolProvider
	config   types.Config
}

// NewContainingSymbolsTool creates a new list_containing_symbols tool
func NewContainingSymbolsTool(provider navigation.SymbolProvider, config types.Config) *ContainingSymbolsTool {
	return &ContainingSymbolsTool{
		provider: provider,
		config:   config,
	}
}

// GetTool returns the MCP tool definition
func (t *ContainingSymbolsTool) GetTool() mcp.Tool {
	tool := mcp.NewTool("list_containing_symbols",
		mcp.WithDescription("List the symbols whose definition contains a position, outermost first"),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Path to the file")),
		mcp.WithNumber("line", mcp.Required(), mcp.Description("Line number (1-indexed)")),
		mcp.WithNumber("character", mcp.Required(), mcp.Description("Character offset (1-indexed)")),
	)
	return tool
}

// Handle processes the tool request
func (t *ContainingSymbolsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath := mcp.ParseString(req, "file_path", "")
	if filePath == "" {
		slog.Debug("MCP tool called with missing file_path parameter", "tool", "list_containing_symbols")
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}

	displayPosition := GetDisplayPosition(req)
	position, err := displayPosition.ToPosition()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid position: %v", err)), nil
	}

	slog.Debug("MCP tool called",
		"tool", "list_containing_symbols",
		"file_path", filePath,
		"line", displayPosition.Line,
		"character", displayPosition.Character)

	uri := PathToUri(filePath, t.config.WorkspaceRoot)
	docSymbols, err := t.provider.GetDocumentSymbols(ctx, uri)
	if err != nil {
		return mcp.NewToolResultError(
			fmt.Sprintf("Failed to get document symbols for file: %s: %v", filePath, err),
		), nil
	}

	chain := navigation.ResolveAncestorsAt(navigation.FromDocumentSymbols(docSymbols), position)

	relativePath := GetRelativePath(UriToPath(uri), t.config.WorkspaceRoot)
	toolResult := results.ContainingSymbolsToolResult{
		Arguments: results.ContainingSymbolsToolArgs{
			FilePath:  filePath,
			Line:      displayPosition.Line,
			Character: displayPosition.Character,
		},
		Symbols: make([]results.ContainingSymbol, 0, len(chain)),
	}
	for depth, symbol := range chain {
		containing := results.ContainingSymbol{
			Name:  symbol.Name,
			Kind:  results.NewSymbolKind(symbol.LSPKind),
			Depth: depth,
			Definition: results.SymbolLocation{
				File:  relativePath,
				Range: results.NewDisplayRange(symbol.Definition),
			},
		}
		if symbol.HasNameToken() {
			nameToken := results.NewDisplayRange(symbol.NameRange)
			containing.NameToken = &nameToken
		}
		toolResult.Symbols = append(toolResult.Symbols, containing)
	}

	if len(toolResult.Symbols) == 0 {
		toolResult.Message = "No symbol contains this position."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d containing symbols.", len(toolResult.Symbols))
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
