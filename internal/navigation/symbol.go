// Package navigation moves cursors and selections to the symbols that contain them.
//
// A navigation runs in two steps. ResolveAncestors computes the chain of symbols whose
// definitions contain a cursor, outermost first. SelectTarget filters that chain with a
// Predicate and projects the chosen symbol to a range with a Projector, stepping one level
// out when the cursor already sits on the innermost match.
package navigation

import (
	"github.com/averycrespi/semantic-movement-mcp/pkg/types"

	"go.lsp.dev/protocol"
)

// Kind is the coarse classification of a symbol used by predicates.
type Kind int

const (
	KindOther Kind = iota
	KindFunction
	KindMethod
	KindClass
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	case KindClass:
		return "class"
	default:
		return "other"
	}
}

// KindFromLSP classifies an LSP symbol kind number.
func KindFromLSP(kind int) Kind {
	switch kind {
	case int(protocol.SymbolKindFunction):
		return KindFunction
	case int(protocol.SymbolKindMethod):
		return KindMethod
	case int(protocol.SymbolKindClass):
		return KindClass
	default:
		return KindOther
	}
}

// Symbol is a node of the document symbol tree.
type Symbol struct {
	Name    string
	Kind    Kind
	LSPKind int

	// Definition spans the whole construct. NameRange spans its identifying token and
	// equals Definition when the provider reports no distinct name token.
	Definition types.Range
	NameRange  types.Range

	Children []Symbol
}

// HasNameToken reports whether the symbol has a name token distinct from its definition.
func (s Symbol) HasNameToken() bool {
	return s.NameRange != s.Definition
}

// FromDocumentSymbols converts a language server symbol forest.
func FromDocumentSymbols(docSymbols []types.DocumentSymbol) []Symbol {
	if len(docSymbols) == 0 {
		return nil
	}

	symbols := make([]Symbol, len(docSymbols))
	for i, docSym := range docSymbols {
		symbols[i] = Symbol{
			Name:       docSym.Name,
			Kind:       KindFromLSP(docSym.Kind),
			LSPKind:    docSym.Kind,
			Definition: docSym.Range,
			NameRange:  docSym.SelectionRange,
			Children:   FromDocumentSymbols(docSym.Children),
		}
	}
	return symbols
}
