package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"badwords/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose output file lives in a unique temp
// directory per test. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Output.Filename = filepath.Join(base, "output.badwords")
	cfgVal.ApplyTokenizerDefaults()

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSeparator overrides the word-list separator on the test config.
func WithSeparator(sep string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Separator = sep
	}
}

// WithTokenizer selects the tokenizer backend and name on the test config.
func WithTokenizer(backend, name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Tokenizer.Backend = backend
		b.cfg.Tokenizer.Name = name
	}
}

// WithLogFile sends logs to a file inside the test directory.
func WithLogFile(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = filepath.Join(b.baseDir, name)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Output.Filename)
}

// WriteConfig encodes cfg as TOML next to its output file and returns the
// config path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "badwords.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
