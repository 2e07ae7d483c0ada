package results

import (
	"fmt"

	"github.com/averycrespi/semantic-movement-mcp/pkg/types"
)

// DisplayPosition is a 1-indexed position as shown to users.
// Unlike types.Position, both line and character start at 1.
type DisplayPosition struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// NewDisplayPosition converts an LSP position to display coordinates
func NewDisplayPosition(pos types.Position) DisplayPosition {
	return DisplayPosition{Line: pos.Line + 1, Character: pos.Character + 1}
}

// ToPosition converts display coordinates back to an LSP position
func (p DisplayPosition) ToPosition() (types.Position, error) {
	if p.Line < 1 {
		return types.Position{}, fmt.Errorf("display line must be positive (starts at 1): %d", p.Line)
	}
	if p.Character < 1 {
		return types.Position{}, fmt.Errorf("display character must be positive (starts at 1): %d", p.Character)
	}
	return types.Position{Line: p.Line - 1, Character: p.Character - 1}, nil
}

// DisplayRange is a range in display coordinates
type DisplayRange struct {
	Start DisplayPosition `json:"start"`
	End   DisplayPosition `json:"end"`
}

// NewDisplayRange converts an LSP range to display coordinates
func NewDisplayRange(r types.Range) DisplayRange {
	return DisplayRange{Start: NewDisplayPosition(r.Start), End: NewDisplayPosition(r.End)}
}

// DisplaySelection is a selection in display coordinates. A missing active position
// means a cursor at the anchor.
type DisplaySelection struct {
	Anchor DisplayPosition  `json:"anchor"`
	Active *DisplayPosition `json:"active,omitempty"`
}

// NewDisplaySelection converts a selection to display coordinates
func NewDisplaySelection(sel types.Selection) DisplaySelection {
	display := DisplaySelection{Anchor: NewDisplayPosition(sel.Anchor)}
	if !sel.IsEmpty() {
		active := NewDisplayPosition(sel.Active)
		display.Active = &active
	}
	return display
}

// ToSelection converts display coordinates back to a selection
func (s DisplaySelection) ToSelection() (types.Selection, error) {
	anchor, err := s.Anchor.ToPosition()
	if err != nil {
		return types.Selection{}, fmt.Errorf("invalid anchor: %w", err)
	}
	if s.Active == nil {
		return types.NewCursor(anchor), nil
	}
	active, err := s.Active.ToPosition()
	if err != nil {
		return types.Selection{}, fmt.Errorf("invalid active position: %w", err)
	}
	return types.Selection{Anchor: anchor, Active: active}, nil
}

// SymbolLocation is where a symbol lives, relative to the workspace root
type SymbolLocation struct {
	File  string       `json:"file"`
	Range DisplayRange `json:"range"`
}
