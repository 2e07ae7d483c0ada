package results

// SourceContext is a window of source lines around a line of interest
type SourceContext struct {
	Lines []SourceLine `json:"lines"`
}

// SourceLine is one line of source code. Number is 1-indexed.
type SourceLine struct {
	Number    int    `json:"number"`
	Content   string `json:"content"`
	Highlight bool   `json:"highlight"`
}
