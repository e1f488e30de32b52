package preflight

import (
	"log/slog"
	"path/filepath"

	"badwords/internal/config"
	"badwords/internal/tokenizer"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Loader builds the tokenizer described by opts.
type Loader func(opts tokenizer.Options, logger *slog.Logger) (tokenizer.Tokenizer, error)

// RunAll executes all applicable preflight checks for the given config.
// Checks are only run when the corresponding setting is present.
func RunAll(cfg *config.Config, load Loader, logger *slog.Logger) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	// Output directory (always checked)
	results = append(results, CheckDirectoryAccess("Output directory", outputDir(cfg.Output.Filename)))

	// Tokenizer file for the huggingface backend
	if cfg.Tokenizer.Backend == config.TokenizerHuggingFace {
		results = append(results, CheckReadableFile("Tokenizer file", cfg.Tokenizer.Path))
	}

	// Log file directory (when configured)
	if cfg.Logging.File != "" {
		results = append(results, CheckDirectoryAccess("Log directory", filepath.Dir(cfg.Logging.File)))
	}

	if load != nil {
		results = append(results, CheckTokenizer("Tokenizer", tokenizer.OptionsFromConfig(cfg), load, logger))
	}

	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}

func outputDir(filename string) string {
	dir := filepath.Dir(filename)
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
