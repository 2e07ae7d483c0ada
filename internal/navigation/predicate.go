package navigation

import (
	"fmt"

	"github.com/averycrespi/semantic-movement-mcp/pkg/types"
)

// Predicate selects which containing symbols a command navigates to.
type Predicate int

const (
	PredicateAny Predicate = iota
	PredicateFunction
	PredicateNamedFunction
	PredicateClass
)

var predicateNames = map[Predicate]string{
	PredicateAny:           "any",
	PredicateFunction:      "function",
	PredicateNamedFunction: "named_function",
	PredicateClass:         "class",
}

func (p Predicate) String() string {
	if name, ok := predicateNames[p]; ok {
		return name
	}
	return fmt.Sprintf("predicate(%d)", int(p))
}

// Match reports whether the symbol satisfies the predicate.
func (p Predicate) Match(symbol Symbol) bool {
	switch p {
	case PredicateAny:
		return true
	case PredicateFunction:
		return symbol.Kind == KindFunction || symbol.Kind == KindMethod
	case PredicateNamedFunction:
		return PredicateFunction.Match(symbol) && symbol.HasNameToken()
	case PredicateClass:
		return symbol.Kind == KindClass
	default:
		return false
	}
}

// FallsBackToChain reports whether a command using this predicate navigates to any
// containing symbol when no containing symbol matches.
//
// Language servers report some functions under another kind (a function assigned to a
// property shows up as a property), so the function predicates fall back. A class
// predicate never does.
func (p Predicate) FallsBackToChain() bool {
	return p == PredicateFunction || p == PredicateNamedFunction
}

// Projector maps the chosen symbol to the range the cursor moves to.
type Projector int

const (
	// ProjectNameToken places the cursor on the symbol's name token.
	ProjectNameToken Projector = iota
	// ProjectDefinition selects the symbol's whole definition.
	ProjectDefinition
)

func (p Projector) String() string {
	switch p {
	case ProjectNameToken:
		return "name_token"
	case ProjectDefinition:
		return "definition"
	default:
		return fmt.Sprintf("projector(%d)", int(p))
	}
}

// Project returns the destination range for symbol.
//
// Without a distinct name token, ProjectNameToken yields the empty range at the start of
// the definition.
func (p Projector) Project(symbol Symbol) types.Range {
	if p == ProjectDefinition {
		return symbol.Definition
	}
	if !symbol.HasNameToken() {
		return types.EmptyRange(symbol.Definition.Start)
	}
	return symbol.NameRange
}
