package navigation

import "github.com/averycrespi/semantic-movement-mcp/pkg/types"

// Target is the outcome of a navigation for one cursor.
type Target struct {
	Symbol Symbol
	Range  types.Range
}

// SelectTarget picks the destination for a cursor whose current range is current.
//
// The innermost symbol of chain matching pred is projected with proj. When that range is
// already current and there is an enclosing match, the enclosing match is used instead, so
// repeating a command steps outward. The second result is false when nothing matches.
func SelectTarget(chain []Symbol, pred Predicate, proj Projector, current types.Range) (Target, bool) {
	matches := filterSymbols(chain, pred)
	if len(matches) == 0 && len(chain) > 0 && pred.FallsBackToChain() {
		matches = chain
	}
	if len(matches) == 0 {
		return Target{}, false
	}

	innermost := matches[len(matches)-1]
	target := Target{Symbol: innermost, Range: proj.Project(innermost)}

	if target.Range == current && len(matches) >= 2 {
		outer := matches[len(matches)-2]
		target = Target{Symbol: outer, Range: proj.Project(outer)}
	}

	return target, true
}

func filterSymbols(symbols []Symbol, pred Predicate) []Symbol {
	var matched []Symbol
	for _, symbol := range symbols {
		if pred.Match(symbol) {
			matched = append(matched, symbol)
		}
	}
	return matched
}
