package navigation

import "github.com/averycrespi/semantic-movement-mcp/pkg/types"

// ResolveAncestors returns the symbols whose definitions contain target, outermost first.
//
// The walk is depth-first and pre-order: at each level the siblings containing target are
// kept in tree order and only their children are visited. The result is nil when no symbol
// contains target.
func ResolveAncestors(roots []Symbol, target types.Range) []Symbol {
	var chain []Symbol
	for _, symbol := range roots {
		if !symbol.Definition.ContainsRange(target) {
			continue
		}
		chain = append(chain, symbol)
		chain = append(chain, ResolveAncestors(symbol.Children, target)...)
	}
	return chain
}

// ResolveAncestorsAt is ResolveAncestors for a single position.
func ResolveAncestorsAt(roots []Symbol, pos types.Position) []Symbol {
	return ResolveAncestors(roots, types.EmptyRange(pos))
}
