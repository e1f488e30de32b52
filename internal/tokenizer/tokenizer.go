package tokenizer

import (
	"fmt"
	"log/slog"
	"time"

	"badwords/internal/config"
	"badwords/internal/logging"
)

// Tokenizer maps a string to its token-ID sequence.
type Tokenizer interface {
	Encode(text string) ([]int, error)
}

// Func adapts an ordinary function to the Tokenizer interface.
type Func func(text string) ([]int, error)

// Encode calls f(text).
func (f Func) Encode(text string) ([]int, error) {
	return f(text)
}

// Options selects a pretrained tokenizer.
type Options struct {
	Backend string
	Name    string
	Path    string
}

// OptionsFromConfig extracts tokenizer options from the application config.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		def := config.Default()
		cfg = &def
		cfg.ApplyTokenizerDefaults()
	}
	return Options{
		Backend: cfg.Tokenizer.Backend,
		Name:    cfg.Tokenizer.Name,
		Path:    cfg.Tokenizer.Path,
	}
}

// Load constructs the tokenizer described by opts. It blocks until the
// vocabulary is ready.
func Load(opts Options, logger *slog.Logger) (Tokenizer, error) {
	logger = logging.NewComponentLogger(logger, "tokenizer")
	start := time.Now()

	var (
		tok Tokenizer
		err error
	)
	switch opts.Backend {
	case config.TokenizerGPT2, "":
		tok, err = newGPT2(opts.Name)
	case config.TokenizerTiktoken:
		tok, err = newTiktoken(opts.Name)
	case config.TokenizerHuggingFace:
		tok, err = newHuggingFace(opts.Path)
	default:
		return nil, fmt.Errorf("unsupported tokenizer backend %q", opts.Backend)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("tokenizer loaded",
		logging.String(logging.FieldBackend, backendLabel(opts.Backend)),
		logging.String("name", opts.Name),
		logging.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
	)
	return tok, nil
}

func backendLabel(backend string) string {
	if backend == "" {
		return config.TokenizerGPT2
	}
	return backend
}
