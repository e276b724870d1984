package config

// Config is the top-level application configuration.
// It is loaded from ~/.config/netscope/config.yaml; every field is an
// optional default that the matching CLI flag overrides.
type Config struct {
	AWS     AWSConfig     `yaml:"aws"     json:"aws"`
	Diagram DiagramConfig `yaml:"diagram" json:"diagram"`
}

// AWSConfig holds AWS-specific defaults used when flags are not provided.
type AWSConfig struct {
	// DefaultRegion is used when no region flag or profile region is set.
	DefaultRegion string `yaml:"default_region" json:"default_region"`

	// DefaultProfile is used when no --profile flag is provided.
	DefaultProfile string `yaml:"default_profile" json:"default_profile"`
}

// DiagramConfig holds defaults for the diagram command.
type DiagramConfig struct {
	// Format is the default image format, "png" or "svg".
	Format string `yaml:"format" json:"format"`

	// MaxItems caps the lines a service panel shows before truncation.
	MaxItems int `yaml:"max_items" json:"max_items"`
}

// Loader is the interface for reading Config from disk.
// Default implementation reads from ~/.config/netscope/config.yaml.
type Loader interface {
	// Load reads, parses, and validates the configuration file.
	Load() (*Config, error)

	// ConfigPath returns the absolute path to the configuration file.
	ConfigPath() string
}
