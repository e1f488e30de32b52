package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"badwords/internal/config"
	"badwords/internal/logging"
	"badwords/internal/prompt"
	"badwords/internal/tokenizer"
)

type tokenizerLoader func(tokenizer.Options, *slog.Logger) (tokenizer.Tokenizer, error)

type commandContext struct {
	configFlag string
	debugFlag  bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	loadTokenizer tokenizerLoader
}

func newCommandContext() *commandContext {
	return &commandContext{loadTokenizer: tokenizer.Load}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if c.debugFlag {
			cfg.Logging.Level = "debug"
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// log returns the configured logger, falling back to console defaults when
// the config could not be loaded.
func (c *commandContext) log() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			logger, _ = logging.New(logging.Options{Level: "info", Format: "console"})
		}
		c.logger = logger
	})
	return c.logger
}

// asker picks how the continuation question is answered. Piped input is
// still read line by line so runs can be scripted.
func (c *commandContext) asker(cmd *cobra.Command, assumeYes bool) prompt.Asker {
	if assumeYes {
		return prompt.Always(true)
	}
	return prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
}

func isInteractive(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
