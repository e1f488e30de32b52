// Package config loads, normalizes, and validates badwords configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the BADWORDS_TOKENIZER and
// BADWORDS_TOKENIZER_BACKEND environment overrides. Command-line flags are
// layered on top by the CLI after Load returns.
package config
