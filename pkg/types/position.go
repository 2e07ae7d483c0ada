package types

import "fmt"

// Position represents a position in a text document
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Compare returns -1 if p is before other, 0 if they are equal, 1 if p is after other.
func (p Position) Compare(other Position) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Character < other.Character:
		return -1
	case p.Character > other.Character:
		return 1
	}
	return 0
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After reports whether p comes strictly after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// Range represents a range in a text document.
// Start is expected to be at or before End.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// EmptyRange returns the zero-width range at pos.
func EmptyRange(pos Position) Range {
	return Range{Start: pos, End: pos}
}

// IsEmpty reports whether the range has no extent.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether pos lies within the range, both ends inclusive.
func (r Range) Contains(pos Position) bool {
	return !pos.Before(r.Start) && !pos.After(r.End)
}

// ContainsRange reports whether other lies entirely within the range.
func (r Range) ContainsRange(other Range) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s-%s]", r.Start, r.End)
}

// Selection is a cursor state. Anchor is where the selection started and Active is
// where the cursor currently is. When Anchor == Active the selection is a plain cursor.
type Selection struct {
	Anchor Position `json:"anchor"`
	Active Position `json:"active"`
}

// NewCursor creates a selection with no extent at pos.
func NewCursor(pos Position) Selection {
	return Selection{Anchor: pos, Active: pos}
}

// NewSelection creates a forward selection covering r.
func NewSelection(r Range) Selection {
	return Selection{Anchor: r.Start, Active: r.End}
}

// IsEmpty reports whether the selection is a plain cursor.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// Range returns the selection as a normalized range.
func (s Selection) Range() Range {
	if s.Active.Before(s.Anchor) {
		return Range{Start: s.Active, End: s.Anchor}
	}
	return Range{Start: s.Anchor, End: s.Active}
}
