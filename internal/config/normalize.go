package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeOutput()
	if err := c.normalizeTokenizer(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.Filename = strings.TrimSpace(c.Output.Filename)
	if c.Output.Filename == "" {
		c.Output.Filename = defaultOutputFilename
	}
	// Whitespace is a legitimate separator, so only an unset value falls back.
	if c.Output.Separator == "" {
		c.Output.Separator = defaultSeparator
	}
}

func (c *Config) normalizeTokenizer() error {
	if value, ok := os.LookupEnv(tokenizerBackendEnv); ok && strings.TrimSpace(value) != "" {
		c.Tokenizer.Backend = value
	}
	if value, ok := os.LookupEnv(tokenizerNameEnv); ok && strings.TrimSpace(value) != "" {
		c.Tokenizer.Name = value
	}

	c.Tokenizer.Backend = strings.ToLower(strings.TrimSpace(c.Tokenizer.Backend))
	if c.Tokenizer.Backend == "" {
		c.Tokenizer.Backend = defaultTokenizer
	}
	c.Tokenizer.Name = strings.TrimSpace(c.Tokenizer.Name)
	c.ApplyTokenizerDefaults()

	if c.Tokenizer.Path != "" {
		path, err := expandPath(strings.TrimSpace(c.Tokenizer.Path))
		if err != nil {
			return fmt.Errorf("tokenizer.path: %w", err)
		}
		c.Tokenizer.Path = path
	}
	return nil
}

// ApplyTokenizerDefaults fills in the tokenizer name when it is unset or
// belongs to a different backend. Callers that override the backend after
// Load should invoke it again.
func (c *Config) ApplyTokenizerDefaults() {
	switch c.Tokenizer.Backend {
	case TokenizerGPT2:
		if c.Tokenizer.Name == "" || IsTiktokenEncoding(c.Tokenizer.Name) {
			c.Tokenizer.Name = defaultGPT2Name
		}
	case TokenizerTiktoken:
		if c.Tokenizer.Name == "" || c.Tokenizer.Name == defaultGPT2Name {
			c.Tokenizer.Name = defaultTiktokenName
		}
	}
}

// IsTiktokenEncoding reports whether name is one of the encodings bundled
// with the tiktoken backend.
func IsTiktokenEncoding(name string) bool {
	switch name {
	case "r50k_base", "p50k_base", "p50k_edit", "cl100k_base", "o200k_base":
		return true
	}
	return false
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
}
