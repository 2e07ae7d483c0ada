package navigation

import (
	"context"
	"log/slog"

	"github.com/averycrespi/semantic-movement-mcp/pkg/types"
)

// SymbolProvider supplies the symbol forest of a document.
type SymbolProvider interface {
	GetDocumentSymbols(ctx context.Context, uri string) ([]types.DocumentSymbol, error)
}

// Editor exposes the cursor state of one document.
type Editor interface {
	DocumentURI() string
	Selections() []types.Selection
	SetSelections(selections []types.Selection)
	RevealLine(line int)
}

// Status summarizes what a navigation did.
type Status string

const (
	StatusNavigated          Status = "navigated"
	StatusNoContainingSymbol Status = "no_containing_symbol"
	StatusSymbolsUnavailable Status = "symbols_unavailable"
)

// Outcome describes a finished navigation. Targets is parallel to Selections; a nil entry
// marks a cursor that was left where it was.
type Outcome struct {
	Status     Status
	Selections []types.Selection
	Targets    []*Target
	RevealLine int
}

// Moved reports how many cursors received a target.
func (o Outcome) Moved() int {
	moved := 0
	for _, target := range o.Targets {
		if target != nil {
			moved++
		}
	}
	return moved
}

// Navigator runs commands against an editor using a symbol provider.
type Navigator struct {
	provider SymbolProvider
}

// NewNavigator creates a new navigator
func NewNavigator(provider SymbolProvider) *Navigator {
	return &Navigator{provider: provider}
}

// Execute runs cmd for every cursor of editor.
//
// The symbol tree is fetched once. If it cannot be fetched the editor is left untouched.
// Each cursor is then navigated on its own; a cursor without a containing match keeps its
// selection. The editor is written and the view revealed only when some cursor moved.
func (n *Navigator) Execute(ctx context.Context, editor Editor, cmd Command) Outcome {
	uri := editor.DocumentURI()
	current := editor.Selections()

	outcome := Outcome{
		Status:     StatusSymbolsUnavailable,
		Selections: current,
		Targets:    make([]*Target, len(current)),
		RevealLine: -1,
	}

	docSymbols, err := n.provider.GetDocumentSymbols(ctx, uri)
	if err != nil {
		slog.Warn("Document symbols unavailable", "command", cmd.ID, "uri", uri, "error", err)
		return outcome
	}
	if len(docSymbols) == 0 {
		slog.Debug("No document symbols", "command", cmd.ID, "uri", uri)
		return outcome
	}

	roots := FromDocumentSymbols(docSymbols)
	next := make([]types.Selection, len(current))
	for i, selection := range current {
		next[i] = selection

		selRange := selection.Range()
		chain := ResolveAncestors(roots, selRange)
		target, ok := SelectTarget(chain, cmd.Predicate, cmd.Projector, selRange)
		if !ok {
			slog.Debug("No containing symbol for cursor",
				"command", cmd.ID,
				"cursor", i,
				"range", selRange.String(),
				"chain_length", len(chain))
			continue
		}

		next[i] = types.NewSelection(target.Range)
		outcome.Targets[i] = &target
		slog.Debug("Resolved navigation target",
			"command", cmd.ID,
			"cursor", i,
			"symbol", target.Symbol.Name,
			"kind", target.Symbol.Kind.String(),
			"range", target.Range.String())
	}

	if outcome.Moved() == 0 {
		outcome.Status = StatusNoContainingSymbol
		return outcome
	}

	outcome.Status = StatusNavigated
	outcome.Selections = next
	outcome.RevealLine = next[0].Range().Start.Line

	editor.SetSelections(next)
	editor.RevealLine(outcome.RevealLine)

	return outcome
}

// StaticEditor is an Editor over a fixed document URI and cursor list. It records what a
// navigation writes back.
type StaticEditor struct {
	URI        string
	Current    []types.Selection
	Revealed   []int
	writeCount int
}

// NewStaticEditor creates an editor for uri with the given cursors.
func NewStaticEditor(uri string, selections []types.Selection) *StaticEditor {
	return &StaticEditor{URI: uri, Current: selections}
}

func (e *StaticEditor) DocumentURI() string { return e.URI }

func (e *StaticEditor) Selections() []types.Selection {
	selections := make([]types.Selection, len(e.Current))
	copy(selections, e.Current)
	return selections
}

func (e *StaticEditor) SetSelections(selections []types.Selection) {
	e.Current = selections
	e.writeCount++
}

func (e *StaticEditor) RevealLine(line int) {
	e.Revealed = append(e.Revealed, line)
}

// Writes returns how many times selections were replaced.
func (e *StaticEditor) Writes() int {
	return e.writeCount
}
