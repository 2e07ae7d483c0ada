package types

// Config represents the configuration for the semantic-movement-mcp server
type Config struct {
	WorkspaceRoot string                 `yaml:"workspace_root" json:"workspace_root"`
	LogLevel      string                 `yaml:"log_level,omitempty" json:"log_level,omitempty"`
	LogFormat     string                 `yaml:"log_format,omitempty" json:"log_format,omitempty"`
	Servers       []LanguageServerConfig `yaml:"servers,omitempty" json:"servers,omitempty"`
}

// LanguageServerConfig describes a language server that provides document symbols
// for the files matching one of its patterns.
type LanguageServerConfig struct {
	Name       string   `yaml:"name" json:"name"`
	Command    string   `yaml:"command" json:"command"`
	Args       []string `yaml:"args,omitempty" json:"args,omitempty"`
	LanguageID string   `yaml:"language_id" json:"language_id"`
	Patterns   []string `yaml:"patterns" json:"patterns"`
}
