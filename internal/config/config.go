package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides (APIDOC2BLUE_OUTPUT_DIR, ...)
const EnvPrefix = "APIDOC2BLUE"

// Config represents the application configuration
type Config struct {
	Input   InputConfig   `mapstructure:"input" yaml:"input"`
	Convert ConvertConfig `mapstructure:"convert" yaml:"convert"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
}

// InputConfig holds the location of the apiDoc JSON files
type InputConfig struct {
	Dir        string   `mapstructure:"dir" yaml:"dir"`                 // Directory holding the apiDoc output
	APIData    string   `mapstructure:"api_data" yaml:"api_data"`       // Endpoint list file name
	APIProject string   `mapstructure:"api_project" yaml:"api_project"` // Project metadata file name
	Encoding   []string `mapstructure:"encoding" yaml:"encoding"`       // Encoding hints (e.g., ["utf-8", "gb18030"])
}

// ConvertConfig holds rendering switches
type ConvertConfig struct {
	LegacyUndefined bool `mapstructure:"legacy_undefined" yaml:"legacy_undefined"`
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir      string   `mapstructure:"dir" yaml:"dir"`             // Output directory
	FileName string   `mapstructure:"file_name" yaml:"file_name"` // Output file name (without extension)
	Formats  []string `mapstructure:"formats" yaml:"formats"`     // Exporters to run
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses sensible defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if !isNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is present
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	// apiDoc writes its JSON next to the generated site
	v.SetDefault("input.dir", "./doc")
	v.SetDefault("input.api_data", "api_data.json")
	v.SetDefault("input.api_project", "api_project.json")
	v.SetDefault("input.encoding", []string{"utf-8", "gb18030", "euc-kr"})

	v.SetDefault("convert.legacy_undefined", false)

	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "api")
	v.SetDefault("output.formats", []string{"blueprint"})
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "no such file") || strings.Contains(msg, "cannot find")
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absInput, err := filepath.Abs(c.Input.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve input.dir: %w", err)
	}
	c.Input.Dir = absInput

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// DataPath returns the full path of api_data.json
func (c *Config) DataPath() string {
	return filepath.Join(c.Input.Dir, c.Input.APIData)
}

// ProjectPath returns the full path of api_project.json
func (c *Config) ProjectPath() string {
	return filepath.Join(c.Input.Dir, c.Input.APIProject)
}

// GetOutputPath returns the full output path for the given extension (".apib", ".xlsx", ...)
func (c *Config) GetOutputPath(ext string) string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+ext)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := os.Stat(c.DataPath()); os.IsNotExist(err) {
		return fmt.Errorf("api_data file does not exist: %s", c.DataPath())
	}

	if len(c.Input.Encoding) == 0 {
		return fmt.Errorf("input.encoding must contain at least one encoding")
	}

	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}

	if len(c.Output.Formats) == 0 {
		return fmt.Errorf("output.formats must contain at least one format")
	}

	return nil
}

// WriteDefault writes the default configuration as YAML to path
func WriteDefault(path string) error {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Print displays the current configuration
func (c *Config) Print(w io.Writer) {
	fmt.Fprintln(w, "=== apidoc2blue Configuration ===")
	fmt.Fprintf(w, "API Data:         %s\n", c.DataPath())
	fmt.Fprintf(w, "API Project:      %s\n", c.ProjectPath())
	fmt.Fprintf(w, "Encoding Hints:   %v\n", c.Input.Encoding)
	fmt.Fprintf(w, "Legacy Undefined: %v\n", c.Convert.LegacyUndefined)
	fmt.Fprintf(w, "Output Directory: %s\n", c.Output.Dir)
	fmt.Fprintf(w, "Output File Name: %s\n", c.Output.FileName)
	fmt.Fprintf(w, "Formats:          %v\n", c.Output.Formats)
	fmt.Fprintln(w, "=================================")
}
