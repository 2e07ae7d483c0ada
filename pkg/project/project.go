package project

const (
	Name    = "semantic-movement-mcp"
	Version = "0.1.0"
)
