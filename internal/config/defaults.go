package config

// Tokenizer backends understood by the tokenizer package.
const (
	TokenizerGPT2        = "gpt2"
	TokenizerTiktoken    = "tiktoken"
	TokenizerHuggingFace = "huggingface"
)

const (
	defaultConfigPath     = "~/.config/badwords/config.toml"
	projectConfigName     = "badwords.toml"
	defaultOutputFilename = "output.badwords"
	defaultSeparator      = "\n"
	defaultTokenizer      = TokenizerGPT2
	defaultGPT2Name       = "gpt2"
	defaultTiktokenName   = "r50k_base"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	tokenizerNameEnv      = "BADWORDS_TOKENIZER"
	tokenizerBackendEnv   = "BADWORDS_TOKENIZER_BACKEND"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Filename:  defaultOutputFilename,
			Separator: defaultSeparator,
		},
		Tokenizer: Tokenizer{
			Backend: defaultTokenizer,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
