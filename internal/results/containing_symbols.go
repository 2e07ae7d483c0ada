package results

// ContainingSymbolsToolResult represents the result of the list_containing_symbols tool
type ContainingSymbolsToolResult struct {
	Message   string                    `json:"message"`
	Arguments ContainingSymbolsToolArgs `json:"arguments"`
	Symbols   []ContainingSymbol        `json:"symbols"`
}

// ContainingSymbolsToolArgs represents the input arguments of the list_containing_symbols tool
type ContainingSymbolsToolArgs struct {
	FilePath  string `json:"file_path"`
	Line      int    `json:"line"`
	Character int    `json:"character"`
}

// ContainingSymbol is one entry of an ancestor chain, outermost first.
// NameToken is omitted for symbols without a separate name.
type ContainingSymbol struct {
	Name       string         `json:"name"`
	Kind       SymbolKind     `json:"kind"`
	Depth      int            `json:"depth"`
	Definition SymbolLocation `json:"definition"`
	NameToken  *DisplayRange  `json:"name_token,omitempty"`
}
