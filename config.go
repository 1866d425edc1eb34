package minijava

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// DefaultConfigFile is the configuration file looked up by the command-line driver.
const DefaultConfigFile = "minijava.yaml"

// Output formats accepted by output.format
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config represents the MiniJava front-end configuration
type Config struct {
	Source SourceConfig `yaml:"source"`
	Parser ParserConfig `yaml:"parser"`
	Output OutputConfig `yaml:"output"`
	Format FormatConfig `yaml:"format"`
}

// SourceConfig controls how input files are read
type SourceConfig struct {
	// Fenced code block languages extracted from Markdown documents
	MarkdownLanguages []string `yaml:"markdown_languages"`
}

// ParserConfig controls the parser
type ParserConfig struct {
	PositionTrace *bool `yaml:"position_trace"` // Pointer to distinguish between unset and false
	SyntaxOnly    bool  `yaml:"syntax_only"`
}

// OutputConfig controls what the driver prints
type OutputConfig struct {
	Format string `yaml:"format"`
	Color  *bool  `yaml:"color"`
	// Directory receiving one tree file per input. Trees go to stdout when empty.
	Dir string `yaml:"dir"`
}

// FormatConfig controls the source formatter
type FormatConfig struct {
	Indent int `yaml:"indent"` // Spaces per nesting level
}

// ShowPositions reports whether error messages carry line and column. Defaults to true.
func (c *ParserConfig) ShowPositions() bool {
	return c.PositionTrace == nil || *c.PositionTrace
}

// UseColor reports whether terminal output is colourised. Defaults to true.
func (c *OutputConfig) UseColor() bool {
	return c.Color == nil || *c.Color
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if file doesn't exist
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := DefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Strict mode detects unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			MarkdownLanguages: []string{"java", "minijava"},
		},
		Parser: ParserConfig{
			PositionTrace: boolPtr(true),
		},
		Output: OutputConfig{
			Format: FormatYAML,
			Color:  boolPtr(true),
		},
		Format: FormatConfig{
			Indent: 4,
		},
	}
}

// applyDefaults fills in values omitted from the configuration file
func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if len(config.Source.MarkdownLanguages) == 0 {
		config.Source.MarkdownLanguages = defaults.Source.MarkdownLanguages
	}

	if config.Parser.PositionTrace == nil {
		config.Parser.PositionTrace = defaults.Parser.PositionTrace
	}

	if config.Output.Format == "" {
		config.Output.Format = defaults.Output.Format
	}

	if config.Output.Color == nil {
		config.Output.Color = defaults.Output.Color
	}

	if config.Format.Indent == 0 {
		config.Format.Indent = defaults.Format.Indent
	}
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	switch config.Output.Format {
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: invalid output.format '%s': must be one of yaml, json", ErrConfigValidation, config.Output.Format)
	}

	for i, language := range config.Source.MarkdownLanguages {
		if strings.TrimSpace(language) == "" {
			return fmt.Errorf("%w: source.markdown_languages[%d] is empty", ErrConfigValidation, i)
		}

		if strings.ContainsAny(language, " \t") {
			return fmt.Errorf("%w: source.markdown_languages[%d] '%s' must be a single word", ErrConfigValidation, i, language)
		}
	}

	if config.Format.Indent < 1 || config.Format.Indent > 8 {
		return fmt.Errorf("%w: format.indent must be between 1 and 8, got %d", ErrConfigValidation, config.Format.Indent)
	}

	return nil
}

func boolPtr(b bool) *bool {
	return &b
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareEnvVar   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in path-like values
func expandConfigEnvVars(config *Config) {
	config.Output.Dir = expandEnvVars(config.Output.Dir)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
