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

const revealContextLines = 2

var displayPositionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"line":      map[string]any{"type": "integer", "minimum": 1, "description": "Line number (1-indexed)"},
		"character": map[string]any{"type": "integer", "minimum": 1, "description": "Character offset (1-indexed)"},
	},
	"required": []string{"line", "character"},
}

// NavigationTool runs one navigation command against the cursors sent by the host
type NavigationTool struct {
	command   navigation.Command
	navigator *navigation.Navigator
	config    types.Config
}

// NewNavigationTool creates a new tool for a navigation command
func NewNavigationTool(command navigation.Command, provider navigation.SymbolProvider, config types.Config) *NavigationTool {
	return &NavigationTool{
		command:   command,
		navigator: navigation.NewNavigator(provider),
		config:    config,
	}
}

// GetTool returns the MCP tool definition
func (t *NavigationTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(t.command.ToolName(),
		mcp.WithDescription(t.command.Description+
			". Returns the resulting selection of every cursor and the line to reveal. "+
			"Cursors without a containing symbol are left unchanged."),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Path to the file")),
		mcp.WithArray("selections",
			mcp.Required(),
			mcp.Description("Current cursors. Omit active for a plain cursor at anchor."),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"anchor": displayPositionSchema,
					"active": displayPositionSchema,
				},
				"required": []string{"anchor"},
			}),
		),
	)
	return tool
}

// Handle processes the tool request
func (t *NavigationTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	toolName := t.command.ToolName()

	filePath := mcp.ParseString(req, "file_path", "")
	if filePath == "" {
		slog.Debug("MCP tool called with missing file_path parameter", "tool", toolName)
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}

	displaySelections, selections, err := parseSelections(req)
	if err != nil {
		slog.Debug("MCP tool called with invalid selections", "tool", toolName, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Invalid selections: %v", err)), nil
	}

	slog.Debug("MCP tool called",
		"tool", toolName,
		"file_path", filePath,
		"cursor_count", len(selections))

	uri := PathToUri(filePath, t.config.WorkspaceRoot)
	editor := navigation.NewStaticEditor(uri, selections)
	outcome := t.navigator.Execute(ctx, editor, t.command)

	relativePath := GetRelativePath(UriToPath(uri), t.config.WorkspaceRoot)
	toolResult := results.NavigationToolResult{
		Arguments: results.NavigationToolArgs{
			FilePath:   filePath,
			Selections: displaySelections,
		},
		Command: t.command.ID,
		Status:  string(outcome.Status),
		Moved:   outcome.Moved(),
		Cursors: make([]results.CursorResult, len(outcome.Selections)),
	}

	for i, selection := range outcome.Selections {
		cursor := results.CursorResult{Selection: results.NewDisplaySelection(selection)}
		if target := outcome.Targets[i]; target != nil {
			cursor.Moved = true
			cursor.Target = &results.TargetSymbol{
				Name: target.Symbol.Name,
				Kind: results.NewSymbolKind(target.Symbol.LSPKind),
				Location: results.SymbolLocation{
					File:  relativePath,
					Range: results.NewDisplayRange(target.Symbol.Definition),
				},
			}
		}
		toolResult.Cursors[i] = cursor
	}

	switch outcome.Status {
	case navigation.StatusNavigated:
		toolResult.Message = fmt.Sprintf("Moved %d of %d cursors.", toolResult.Moved, len(selections))
		toolResult.Reveal = &results.Reveal{Line: outcome.RevealLine + 1}
		sourceContext, err := readFileSourceContext(UriToPath(uri), outcome.RevealLine, revealContextLines)
		if err != nil {
			slog.Debug("Failed to read reveal context", "tool", toolName, "file_path", filePath, "error", err)
		} else {
			toolResult.Reveal.Context = sourceContext
		}
	case navigation.StatusNoContainingSymbol:
		toolResult.Message = "No containing symbol found for any cursor. Selections are unchanged."
	default:
		toolResult.Message = "Document symbols are unavailable for this file. Selections are unchanged."
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// parseSelections decodes the selections argument into display and LSP coordinates
func parseSelections(req mcp.CallToolRequest) ([]results.DisplaySelection, []types.Selection, error) {
	raw, ok := req.GetArguments()["selections"]
	if !ok || raw == nil {
		return nil, nil, fmt.Errorf("selections parameter is required")
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode selections: %w", err)
	}

	var displaySelections []results.DisplaySelection
	if err := json.Unmarshal(encoded, &displaySelections); err != nil {
		return nil, nil, fmt.Errorf("failed to decode selections: %w", err)
	}
	if len(displaySelections) == 0 {
		return nil, nil, fmt.Errorf("at least one selection is required")
	}

	selections := make([]types.Selection, len(displaySelections))
	for i, display := range displaySelections {
		selection, err := display.ToSelection()
		if err != nil {
			return nil, nil, fmt.Errorf("selection %d: %w", i, err)
		}
		selections[i] = selection
	}

	return displaySelections, selections, nil
}
