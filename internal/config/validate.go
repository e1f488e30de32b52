package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateTokenizer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.Filename == "" {
		return errors.New("output.filename must be set")
	}
	if c.Output.Separator == "" {
		return errors.New("output.separator must not be empty")
	}
	return nil
}

func (c *Config) validateTokenizer() error {
	switch c.Tokenizer.Backend {
	case TokenizerGPT2, TokenizerTiktoken:
		if c.Tokenizer.Name == "" {
			return fmt.Errorf("tokenizer.name is required for the %s backend", c.Tokenizer.Backend)
		}
	case TokenizerHuggingFace:
		if c.Tokenizer.Path == "" {
			return errors.New("tokenizer.path is required for the huggingface backend")
		}
	default:
		return fmt.Errorf("tokenizer.backend: unsupported value %q (expected %s, %s or %s)",
			c.Tokenizer.Backend, TokenizerGPT2, TokenizerTiktoken, TokenizerHuggingFace)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
