package tools

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/averycrespi/semantic-movement-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
	"go.lsp.dev/uri"
)

// PathToUri converts a file path to a file URI, resolving relative paths against the workspace root
func PathToUri(filePath string, workspaceRoot string) string {
	if strings.HasPrefix(filePath, uri.FileScheme+"://") {
		return filePath
	}

	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(workspaceRoot, filePath)
	}

	return string(uri.File(filePath))
}

// UriToPath converts a file URI to a local file path, decoding escaped characters.
// Anything that is not a parseable file URI is returned unchanged.
func UriToPath(fileUri string) string {
	if !strings.HasPrefix(fileUri, uri.FileScheme+"://") {
		return fileUri
	}
	if _, err := url.ParseRequestURI(fileUri); err != nil {
		return fileUri
	}
	return uri.URI(fileUri).Filename()
}

// GetRelativePath converts an absolute path to a path relative to the workspace root
func GetRelativePath(absolutePath, workspaceRoot string) string {
	if rel, err := filepath.Rel(workspaceRoot, absolutePath); err == nil {
		return rel
	}
	return filepath.Base(absolutePath)
}

// GetDisplayPosition extracts a 1-indexed position from an MCP request
func GetDisplayPosition(req mcp.CallToolRequest) results.DisplayPosition {
	return results.DisplayPosition{
		Line:      mcp.ParseInt(req, "line", 0),
		Character: mcp.ParseInt(req, "character", 0),
	}
}

// ReadSourceLines reads the 0-indexed lines startLine..endLine, marking highlightLine
func ReadSourceLines(r io.Reader, startLine, endLine, highlightLine int) ([]results.SourceLine, error) {
	var lines []results.SourceLine
	scanner := bufio.NewScanner(r)
	currentLine := 0

	for scanner.Scan() {
		if currentLine >= startLine && currentLine <= endLine {
			lines = append(lines, results.SourceLine{
				Number:    currentLine + 1,
				Content:   scanner.Text(),
				Highlight: currentLine == highlightLine,
			})
		}
		currentLine++
		if currentLine > endLine {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan source lines: %w", err)
	}

	return lines, nil
}

// ReadSourceContext reads contextLines lines on each side of the 0-indexed line
func ReadSourceContext(r io.Reader, line, contextLines int) (*results.SourceContext, error) {
	start := line - contextLines
	if start < 0 {
		start = 0
	}

	lines, err := ReadSourceLines(r, start, line+contextLines, line)
	if err != nil {
		return nil, fmt.Errorf("failed to read source lines: %w", err)
	}

	return &results.SourceContext{Lines: lines}, nil
}

// readFileSourceContext reads the source context of a line from a file on disk
func readFileSourceContext(filePath string, line, contextLines int) (*results.SourceContext, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer file.Close()

	return ReadSourceContext(file, line, contextLines)
}
