package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/averycrespi/semantic-movement-mcp/internal/client"
	"github.com/averycrespi/semantic-movement-mcp/internal/navigation"
	"github.com/averycrespi/semantic-movement-mcp/internal/tools"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func newNavigateCmd(opts *rootOptions) *cobra.Command {
	var cursors []string

	cmd := &cobra.Command{
		Use:   "navigate COMMAND FILE",
		Short: "Run one navigation command and print the resulting selections as JSON",
		Long: "Run one navigation command against a file and print the result.\n" +
			"Cursors are 1-indexed LINE:CHAR, or ANCHOR-ACTIVE for a selection (e.g. 3:1-7:2).",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			command, ok := navigation.NewCommandTable().Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown command: %s", args[0])
			}

			selections := make([]any, 0, len(cursors))
			for _, cursor := range cursors {
				selection, err := parseCursor(cursor)
				if err != nil {
					return err
				}
				selections = append(selections, selection)
			}

			manager := client.NewManager(opts.config)
			defer func() { _ = manager.Shutdown(context.WithoutCancel(cmd.Context())) }()

			tool := tools.NewNavigationTool(command, manager, *opts.config)
			request := mcp.CallToolRequest{}
			request.Params.Name = command.ToolName()
			request.Params.Arguments = map[string]any{
				"file_path":  args[1],
				"selections": selections,
			}

			result, err := tool.Handle(cmd.Context(), request)
			if err != nil {
				return err
			}
			for _, content := range result.Content {
				if text, ok := content.(mcp.TextContent); ok {
					fmt.Fprintln(cmd.OutOrStdout(), text.Text)
				}
			}
			if result.IsError {
				return fmt.Errorf("navigation failed")
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&cursors, "cursor", "c", nil, "Cursor or selection (repeatable)")
	_ = cmd.MarkFlagRequired("cursor")
	return cmd
}

// parseCursor turns LINE:CHAR or LINE:CHAR-LINE:CHAR into a selection argument
func parseCursor(value string) (map[string]any, error) {
	anchorText, activeText, isSelection := strings.Cut(value, "-")

	anchor, err := parseDisplayPosition(anchorText)
	if err != nil {
		return nil, fmt.Errorf("invalid cursor %q: %w", value, err)
	}
	selection := map[string]any{"anchor": anchor}

	if isSelection {
		active, err := parseDisplayPosition(activeText)
		if err != nil {
			return nil, fmt.Errorf("invalid cursor %q: %w", value, err)
		}
		selection["active"] = active
	}
	return selection, nil
}

func parseDisplayPosition(value string) (map[string]any, error) {
	lineText, charText, ok := strings.Cut(value, ":")
	if !ok {
		return nil, fmt.Errorf("expected LINE:CHAR, got %q", value)
	}
	line, err := strconv.Atoi(lineText)
	if err != nil {
		return nil, fmt.Errorf("invalid line %q: %w", lineText, err)
	}
	character, err := strconv.Atoi(charText)
	if err != nil {
		return nil, fmt.Errorf("invalid character %q: %w", charText, err)
	}
	return map[string]any{"line": line, "character": character}, nil
}
