package results

// NavigationToolResult represents the result of a jump or select tool
type NavigationToolResult struct {
	Message   string             `json:"message"`
	Arguments NavigationToolArgs `json:"arguments"`
	Command   string             `json:"command"`
	Status    string             `json:"status"`
	Moved     int                `json:"moved"`
	Cursors   []CursorResult     `json:"cursors"`
	Reveal    *Reveal            `json:"reveal,omitempty"`
}

// NavigationToolArgs represents the input arguments of a navigation tool
type NavigationToolArgs struct {
	FilePath   string             `json:"file_path"`
	Selections []DisplaySelection `json:"selections"`
}

// CursorResult is the resulting selection of one cursor.
// Target is omitted when the cursor was left unchanged.
type CursorResult struct {
	Selection DisplaySelection `json:"selection"`
	Moved     bool             `json:"moved"`
	Target    *TargetSymbol    `json:"target,omitempty"`
}

// TargetSymbol is the symbol a cursor moved to
type TargetSymbol struct {
	Name     string         `json:"name"`
	Kind     SymbolKind     `json:"kind"`
	Location SymbolLocation `json:"location"`
}

// Reveal is the line the editor should scroll into view (1-indexed)
type Reveal struct {
	Line    int            `json:"line"`
	Context *SourceContext `json:"context,omitempty"`
}
