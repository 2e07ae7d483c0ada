package navigation

import "github.com/averycrespi/semantic-movement-mcp/pkg/types"

func pos(line, character int) types.Position {
	return types.Position{Line: line, Character: character}
}

func rng(startLine, startChar, endLine, endChar int) types.Range {
	return types.Range{Start: pos(startLine, startChar), End: pos(endLine, endChar)}
}

// fooBarTree is a class Foo [0:0-10:0] holding a method bar [2:2-4:2] named at [2:9-2:12].
func fooBarTree() []types.DocumentSymbol {
	return []types.DocumentSymbol{
		{
			Name:           "Foo",
			Kind:           5,
			Range:          rng(0, 0, 10, 0),
			SelectionRange: rng(0, 6, 0, 9),
			Children: []types.DocumentSymbol{
				{
					Name:           "bar",
					Kind:           6,
					Range:          rng(2, 2, 4, 2),
					SelectionRange: rng(2, 9, 2, 12),
				},
			},
		},
	}
}

func symbolNames(symbols []Symbol) []string {
	names := make([]string, len(symbols))
	for i, symbol := range symbols {
		names[i] = symbol.Name
	}
	return names
}
