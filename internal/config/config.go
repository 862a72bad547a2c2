// Package config handles tool configuration loading and management.
package config

import (
	"fmt"

	"github.com/google/uuid"
)

// Input encodings accepted for wire buffers.
const (
	InputHex    = "hex"
	InputBase64 = "base64"
)

// Output formats for decoded entries.
const (
	OutputYAML = "yaml"
	OutputSpew = "spew"
)

// Config holds all tool settings.
type Config struct {
	Codec   CodecConfig   `yaml:"codec"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// CodecConfig holds texture entry codec settings.
type CodecConfig struct {
	InputFormat    string `yaml:"input_format"`    // hex or base64
	DefaultTexture string `yaml:"default_texture"` // used by "new" entries
	StrictDecode   bool   `yaml:"strict_decode"`   // treat truncated input as an error
}

// OutputConfig holds how results are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // yaml or spew
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Codec: CodecConfig{
			InputFormat:    InputHex,
			DefaultTexture: "89556747-24cb-43ed-920b-47caed15465f",
			StrictDecode:   false,
		},
		Output: OutputConfig{
			Format: OutputYAML,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks enumerated values and the default texture ID.
func (c *Config) Validate() error {
	switch c.Codec.InputFormat {
	case InputHex, InputBase64:
	default:
		return fmt.Errorf("codec.input_format: unknown format %q", c.Codec.InputFormat)
	}
	switch c.Output.Format {
	case OutputYAML, OutputSpew:
	default:
		return fmt.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	if _, err := uuid.Parse(c.Codec.DefaultTexture); err != nil {
		return fmt.Errorf("codec.default_texture: %w", err)
	}
	return nil
}

// DefaultTextureID returns the parsed default texture, or uuid.Nil if invalid.
func (c *Config) DefaultTextureID() uuid.UUID {
	id, err := uuid.Parse(c.Codec.DefaultTexture)
	if err != nil {
		return uuid.Nil
	}
	return id
}
