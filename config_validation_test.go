package minijava

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoadConfig_StrictMode_UnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), DefaultConfigFile)

	configContent := `
parser:
  position_trace: true
  recover: true
`

	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	assert.NoError(t, err)

	_, err = LoadConfig(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_InvalidFormat(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), DefaultConfigFile)

	err := os.WriteFile(configPath, []byte("output:\n  format: xml\n"), 0o644)
	assert.NoError(t, err)

	_, err = LoadConfig(configPath)
	assert.True(t, errors.Is(err, ErrConfigValidation))
	assert.Contains(t, err.Error(), "invalid output.format 'xml'")
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		message string
	}{
		{
			name:   "defaults",
			config: *DefaultConfig(),
		},
		{
			name: "json output",
			config: Config{
				Source: SourceConfig{MarkdownLanguages: []string{"java"}},
				Output: OutputConfig{Format: FormatJSON},
				Format: FormatConfig{Indent: 2},
			},
		},
		{
			name:    "unknown format",
			config:  Config{Output: OutputConfig{Format: "toml"}},
			message: "invalid output.format 'toml'",
		},
		{
			name:    "empty format",
			config:  Config{},
			message: "invalid output.format ''",
		},
		{
			name: "blank language",
			config: Config{
				Source: SourceConfig{MarkdownLanguages: []string{"java", " "}},
				Output: OutputConfig{Format: FormatYAML},
			},
			message: "source.markdown_languages[1] is empty",
		},
		{
			name: "language with spaces",
			config: Config{
				Source: SourceConfig{MarkdownLanguages: []string{"mini java"}},
				Output: OutputConfig{Format: FormatYAML},
			},
			message: "must be a single word",
		},
		{
			name: "indent too large",
			config: Config{
				Output: OutputConfig{Format: FormatYAML},
				Format: FormatConfig{Indent: 12},
			},
			message: "format.indent must be between 1 and 8, got 12",
		},
		{
			name: "negative indent",
			config: Config{
				Output: OutputConfig{Format: FormatYAML},
				Format: FormatConfig{Indent: -1},
			},
			message: "format.indent must be between 1 and 8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.config)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}

			assert.True(t, errors.Is(err, ErrConfigValidation))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
