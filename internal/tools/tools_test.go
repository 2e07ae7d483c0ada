package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/averycrespi/semantic-movement-mcp/internal/navigation"
	"github.com/averycrespi/semantic-movement-mcp/internal/results"
	"github.com/averycrespi/semantic-movement-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleSource = `type Foo struct {

  func bar() {
    return
  }

}

var x = 1

end

var y = 2

// done
`

type fakeProvider struct {
	symbols []types.DocumentSymbol
	err     error
	calls   int
}

func (p *fakeProvider) GetDocumentSymbols(ctx context.Context, uri string) ([]types.DocumentSymbol, error) {
	p.calls++
	return p.symbols, p.err
}

func rng(sl, sc, el, ec int) types.Range {
	return types.Range{
		Start: types.Position{Line: sl, Character: sc},
		End:   types.Position{Line: el, Character: ec},
	}
}

// exampleSymbols is class Foo [0:0-10:0] holding method bar [2:2-4:2].
func exampleSymbols() []types.DocumentSymbol {
	return []types.DocumentSymbol{{
		Name:           "Foo",
		Kind:           5,
		Range:          rng(0, 0, 10, 0),
		SelectionRange: rng(0, 6, 0, 9),
		Children: []types.DocumentSymbol{{
			Name:           "bar",
			Kind:           6,
			Range:          rng(2, 2, 4, 2),
			SelectionRange: rng(2, 9, 2, 12),
		}},
	}}
}

func setupWorkspace(t *testing.T) types.Config {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "example.go"), []byte(exampleSource), 0o644))
	return types.Config{WorkspaceRoot: root}
}

func cursorArg(line, character int) map[string]any {
	return map[string]any{"anchor": map[string]any{"line": float64(line), "character": float64(character)}}
}

func callTool(t *testing.T, handle func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args

	result, err := handle(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func lookupCommand(t *testing.T, id string) navigation.Command {
	t.Helper()
	command, ok := navigation.NewCommandTable().Lookup(id)
	require.True(t, ok, "command %s", id)
	return command
}

func TestNavigationToolDefinition(t *testing.T) {
	tool := NewNavigationTool(lookupCommand(t, "jumpToContainingFunction"), &fakeProvider{}, types.Config{})
	definition := tool.GetTool()

	assert.Equal(t, "jump_to_containing_function", definition.Name)
	assert.Contains(t, definition.InputSchema.Required, "file_path")
	assert.Contains(t, definition.InputSchema.Required, "selections")
}

func TestNavigationToolHandle(t *testing.T) {
	tests := []struct {
		name            string
		command         string
		selections      []any
		expectedStatus  string
		expectedCursors []results.DisplaySelection
		expectedTargets []string
		expectedReveal  int
	}{
		{
			name:           "jump to method name",
			command:        "jumpToContainingFunction",
			selections:     []any{cursorArg(4, 1)},
			expectedStatus: "navigated",
			expectedCursors: []results.DisplaySelection{{
				Anchor: results.DisplayPosition{Line: 3, Character: 10},
				Active: &results.DisplayPosition{Line: 3, Character: 13},
			}},
			expectedTargets: []string{"bar"},
			expectedReveal:  3,
		},
		{
			name:           "select containing class",
			command:        "selectContainingClass",
			selections:     []any{cursorArg(4, 1)},
			expectedStatus: "navigated",
			expectedCursors: []results.DisplaySelection{{
				Anchor: results.DisplayPosition{Line: 1, Character: 1},
				Active: &results.DisplayPosition{Line: 11, Character: 1},
			}},
			expectedTargets: []string{"Foo"},
			expectedReveal:  1,
		},
		{
			name:           "cursor outside every symbol keeps its place",
			command:        "jumpToContainingSymbol",
			selections:     []any{cursorArg(13, 1)},
			expectedStatus: "no_containing_symbol",
			expectedCursors: []results.DisplaySelection{{
				Anchor: results.DisplayPosition{Line: 13, Character: 1},
			}},
			expectedTargets: []string{""},
		},
		{
			name:           "multiple cursors move independently",
			command:        "jumpToContainingFunction",
			selections:     []any{cursorArg(13, 1), cursorArg(4, 1)},
			expectedStatus: "navigated",
			expectedCursors: []results.DisplaySelection{
				{Anchor: results.DisplayPosition{Line: 13, Character: 1}},
				{
					Anchor: results.DisplayPosition{Line: 3, Character: 10},
					Active: &results.DisplayPosition{Line: 3, Character: 13},
				},
			},
			expectedTargets: []string{"", "bar"},
			expectedReveal:  13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := setupWorkspace(t)
			provider := &fakeProvider{symbols: exampleSymbols()}
			tool := NewNavigationTool(lookupCommand(t, tt.command), provider, config)

			result := callTool(t, tool.Handle, map[string]any{
				"file_path":  "example.go",
				"selections": tt.selections,
			})
			require.False(t, result.IsError, resultText(t, result))
			assert.Equal(t, 1, provider.calls)

			var toolResult results.NavigationToolResult
			require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &toolResult))

			assert.Equal(t, tt.command, toolResult.Command)
			assert.Equal(t, tt.expectedStatus, toolResult.Status)
			require.Len(t, toolResult.Cursors, len(tt.expectedCursors))
			for i, cursor := range toolResult.Cursors {
				assert.Equal(t, tt.expectedCursors[i], cursor.Selection, "cursor %d", i)
				if tt.expectedTargets[i] == "" {
					assert.False(t, cursor.Moved)
					assert.Nil(t, cursor.Target)
				} else {
					assert.True(t, cursor.Moved)
					require.NotNil(t, cursor.Target)
					assert.Equal(t, tt.expectedTargets[i], cursor.Target.Name)
					assert.Equal(t, "example.go", cursor.Target.Location.File)
				}
			}

			if tt.expectedReveal == 0 {
				assert.Nil(t, toolResult.Reveal)
				return
			}
			require.NotNil(t, toolResult.Reveal)
			assert.Equal(t, tt.expectedReveal, toolResult.Reveal.Line)
			require.NotNil(t, toolResult.Reveal.Context)
			highlighted := 0
			for _, line := range toolResult.Reveal.Context.Lines {
				if line.Highlight {
					highlighted++
					assert.Equal(t, tt.expectedReveal, line.Number)
				}
			}
			assert.Equal(t, 1, highlighted)
		})
	}
}

func TestNavigationToolRepeatedJumpStepsOutward(t *testing.T) {
	config := setupWorkspace(t)
	provider := &fakeProvider{symbols: exampleSymbols()}
	tool := NewNavigationTool(lookupCommand(t, "jumpToContainingSymbol"), provider, config)

	// Selection already on bar's name token.
	result := callTool(t, tool.Handle, map[string]any{
		"file_path": "example.go",
		"selections": []any{map[string]any{
			"anchor": map[string]any{"line": float64(3), "character": float64(10)},
			"active": map[string]any{"line": float64(3), "character": float64(13)},
		}},
	})

	var toolResult results.NavigationToolResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &toolResult))
	require.Len(t, toolResult.Cursors, 1)
	require.NotNil(t, toolResult.Cursors[0].Target)
	assert.Equal(t, "Foo", toolResult.Cursors[0].Target.Name)
	assert.Equal(t, results.DisplayPosition{Line: 1, Character: 7}, toolResult.Cursors[0].Selection.Anchor)
}

func TestNavigationToolSymbolsUnavailable(t *testing.T) {
	config := setupWorkspace(t)
	provider := &fakeProvider{err: fmt.Errorf("no language server configured")}
	tool := NewNavigationTool(lookupCommand(t, "selectContainingFunction"), provider, config)

	result := callTool(t, tool.Handle, map[string]any{
		"file_path":  "example.go",
		"selections": []any{cursorArg(4, 1)},
	})
	assert.False(t, result.IsError)

	var toolResult results.NavigationToolResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &toolResult))
	assert.Equal(t, "symbols_unavailable", toolResult.Status)
	assert.Equal(t, 0, toolResult.Moved)
	assert.Nil(t, toolResult.Reveal)
	require.Len(t, toolResult.Cursors, 1)
	assert.Equal(t, results.DisplayPosition{Line: 4, Character: 1}, toolResult.Cursors[0].Selection.Anchor)
}

func TestNavigationToolInvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		args   map[string]any
		errMsg string
	}{
		{
			name:   "missing file path",
			args:   map[string]any{"selections": []any{cursorArg(1, 1)}},
			errMsg: "file_path parameter is required",
		},
		{
			name:   "missing selections",
			args:   map[string]any{"file_path": "example.go"},
			errMsg: "selections parameter is required",
		},
		{
			name:   "empty selections",
			args:   map[string]any{"file_path": "example.go", "selections": []any{}},
			errMsg: "at least one selection is required",
		},
		{
			name:   "selections not an array",
			args:   map[string]any{"file_path": "example.go", "selections": "1:1"},
			errMsg: "failed to decode selections",
		},
		{
			name:   "zero-indexed position",
			args:   map[string]any{"file_path": "example.go", "selections": []any{cursorArg(0, 0)}},
			errMsg: "selection 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{symbols: exampleSymbols()}
			tool := NewNavigationTool(lookupCommand(t, "jumpToContainingSymbol"), provider, setupWorkspace(t))

			result := callTool(t, tool.Handle, tt.args)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.errMsg)
			assert.Equal(t, 0, provider.calls)
		})
	}
}

func TestContainingSymbolsTool(t *testing.T) {
	config := setupWorkspace(t)
	provider := &fakeProvider{symbols: exampleSymbols()}
	tool := NewContainingSymbolsTool(provider, config)

	assert.Equal(t, "list_containing_symbols", tool.GetTool().Name)

	t.Run("chain is outermost first", func(t *testing.T) {
		result := callTool(t, tool.Handle, map[string]any{
			"file_path": "example.go", "line": float64(4), "character": float64(3),
		})
		require.False(t, result.IsError)

		var toolResult results.ContainingSymbolsToolResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &toolResult))
		require.Len(t, toolResult.Symbols, 2)
		assert.Equal(t, "Foo", toolResult.Symbols[0].Name)
		assert.Equal(t, results.SymbolKindClass, toolResult.Symbols[0].Kind)
		assert.Equal(t, 0, toolResult.Symbols[0].Depth)
		assert.Equal(t, "bar", toolResult.Symbols[1].Name)
		assert.Equal(t, results.SymbolKindMethod, toolResult.Symbols[1].Kind)
		require.NotNil(t, toolResult.Symbols[1].NameToken)
		assert.Equal(t, results.DisplayPosition{Line: 3, Character: 10}, toolResult.Symbols[1].NameToken.Start)
	})

	t.Run("no containing symbol", func(t *testing.T) {
		result := callTool(t, tool.Handle, map[string]any{
			"file_path": "example.go", "line": float64(13), "character": float64(1),
		})

		var toolResult results.ContainingSymbolsToolResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &toolResult))
		assert.Empty(t, toolResult.Symbols)
		assert.True(t, strings.HasPrefix(toolResult.Message, "No symbol"))
	})

	t.Run("invalid position", func(t *testing.T) {
		result := callTool(t, tool.Handle, map[string]any{"file_path": "example.go"})
		assert.True(t, result.IsError)
	})

	t.Run("provider error", func(t *testing.T) {
		failing := NewContainingSymbolsTool(&fakeProvider{err: fmt.Errorf("boom")}, config)
		result := callTool(t, failing.Handle, map[string]any{
			"file_path": "example.go", "line": float64(1), "character": float64(1),
		})
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "boom")
	})
}
