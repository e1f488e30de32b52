package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"badwords/internal/badwords"
	"badwords/internal/config"
	"badwords/internal/fileutil"
	"badwords/internal/logging"
	"badwords/internal/prompt"
	"badwords/internal/textutil"
	"badwords/internal/tokenizer"
)

// runSettings is the effective configuration after flags are layered over
// the config file.
type runSettings struct {
	output    string
	separator string
	tokenizer tokenizer.Options
}

func runRoot(cmd *cobra.Command, ctx *commandContext, opts rootOptions, args []string) error {
	switch {
	case opts.merge && opts.createFromFile:
		return withExitCode(exitUsage, errModeConflict)
	case !opts.merge && !opts.createFromFile:
		if err := cmd.Help(); err != nil {
			return err
		}
		return withExitCode(exitUsage, nil)
	}
	if len(args) == 0 {
		return withExitCode(exitUsage, errNoFiles)
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	settings, err := resolveSettings(cmd, cfg, opts)
	if err != nil {
		return withExitCode(exitUsage, err)
	}

	ctx.log().Debug("resolved run settings",
		logging.Bool("merge", opts.merge),
		logging.Bool("assume_yes", opts.assumeYes),
		logging.String(logging.FieldPath, settings.output),
		logging.String(logging.FieldBackend, settings.tokenizer.Backend),
		logging.Int("inputs", len(args)),
	)

	asker := ctx.asker(cmd, opts.assumeYes)
	if opts.merge {
		return runMerge(cmd, ctx.log(), asker, settings, args)
	}
	return runCreate(cmd, ctx, asker, settings, args)
}

func resolveSettings(cmd *cobra.Command, cfg *config.Config, opts rootOptions) (runSettings, error) {
	effective := *cfg
	flags := cmd.Flags()

	if flags.Changed("filename") {
		effective.Output.Filename = strings.TrimSpace(opts.filename)
	}
	if flags.Changed("separator") {
		effective.Output.Separator = textutil.DecodeEscapes(opts.separator)
	}
	if flags.Changed("tokenizer-backend") {
		backend := strings.ToLower(strings.TrimSpace(opts.tokenizerBackend))
		// A name from the config belongs to the config's backend.
		if backend != effective.Tokenizer.Backend && !flags.Changed("tokenizer") {
			effective.Tokenizer.Name = ""
		}
		effective.Tokenizer.Backend = backend
	}
	if flags.Changed("tokenizer") {
		effective.Tokenizer.Name = strings.TrimSpace(opts.tokenizerName)
	}
	if flags.Changed("tokenizer-path") {
		path, err := config.ExpandPath(strings.TrimSpace(opts.tokenizerPath))
		if err != nil {
			return runSettings{}, fmt.Errorf("--tokenizer-path: %w", err)
		}
		effective.Tokenizer.Path = path
	}
	effective.ApplyTokenizerDefaults()

	if err := effective.Validate(); err != nil {
		return runSettings{}, err
	}
	return runSettings{
		output:    effective.Output.Filename,
		separator: effective.Output.Separator,
		tokenizer: tokenizer.OptionsFromConfig(&effective),
	}, nil
}

func runMerge(cmd *cobra.Command, logger *slog.Logger, asker prompt.Asker, settings runSettings, args []string) error {
	logger = logging.NewComponentLogger(logger, "merge")
	out := cmd.OutOrStdout()

	openable, bad := fileutil.DetectOpenable(args, out)
	if len(openable) <= 1 {
		return withExitCode(exitNotEnoughFiles, errNotEnoughFiles)
	}
	if err := confirmRemaining(cmd, logger, asker, openable, bad); err != nil {
		return err
	}

	merged, err := badwords.MergeFiles(openable)
	if err != nil {
		return err
	}
	if err := badwords.WriteFile(settings.output, merged.BadWordsIDs); err != nil {
		return err
	}

	logger.Info("merged bad-words files",
		logging.Strings("inputs", openable),
		logging.String(logging.FieldPath, settings.output),
		logging.Int("sequences", len(merged.BadWordsIDs)),
	)
	fmt.Fprintf(out, "Merged %d files into %s: %d token sequences (%s)\n",
		len(openable), settings.output, len(merged.BadWordsIDs), fileSize(settings.output))
	return nil
}

func runCreate(cmd *cobra.Command, ctx *commandContext, asker prompt.Asker, settings runSettings, args []string) error {
	logger := logging.NewComponentLogger(ctx.log(), "create")
	out := cmd.OutOrStdout()

	openable, bad := fileutil.DetectOpenable(args, out)
	if len(openable) == 0 {
		return withExitCode(exitNotEnoughFiles, errNoWordLists)
	}
	if err := confirmRemaining(cmd, logger, asker, openable, bad); err != nil {
		return err
	}

	fmt.Fprintf(out, "Loading the %s tokenizer, this can take a while on the first run\n", tokenizerLabel(settings.tokenizer))
	tok, err := ctx.loadTokenizer(settings.tokenizer, ctx.log())
	if err != nil {
		return err
	}

	start := time.Now()
	builder := badwords.Builder{Tokenizer: tok, Separator: settings.separator, Logger: ctx.log()}
	result, err := builder.BuildFromFiles(openable)
	if err != nil {
		return err
	}
	if err := badwords.WriteFile(settings.output, result.Sequences); err != nil {
		return err
	}

	logger.Info("created bad-words file",
		logging.Strings("inputs", openable),
		logging.String(logging.FieldPath, settings.output),
		logging.Int("words", len(result.Words)),
		logging.Int("sequences", len(result.Sequences)),
		logging.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
	)
	fmt.Fprintf(out, "Wrote %d token sequences for %d words to %s (%s)\n",
		len(result.Sequences), len(result.Words), settings.output, fileSize(settings.output))
	return nil
}

// confirmRemaining asks whether to go on when some inputs could not be
// opened. Declining maps to errDeclined before anything is written.
func confirmRemaining(cmd *cobra.Command, logger *slog.Logger, asker prompt.Asker, openable, bad []string) error {
	if len(bad) == 0 {
		return nil
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Some files failed to be opened, do you want to continue with the current files ?")
	fmt.Fprintf(out, "remaining files: (%s)\n", strings.Join(openable, ","))
	if _, reading := asker.(*prompt.Confirmer); reading && !isInteractive(cmd.InOrStdin()) {
		logger.Warn("stdin is not a terminal; reading the answer from the input stream")
	}

	ok, err := asker.Confirm("Do you want to process only the remaining files ?")
	if err != nil {
		return err
	}
	if !ok {
		logger.Debug("user declined partial input set", logging.Strings("unreadable", bad))
		return withExitCode(exitDeclined, errDeclined)
	}
	logger.Info("continuing without unreadable files", logging.Strings("unreadable", bad))
	return nil
}

func tokenizerLabel(opts tokenizer.Options) string {
	switch {
	case opts.Backend == config.TokenizerHuggingFace:
		return opts.Path
	case opts.Name != "" && opts.Name != opts.Backend:
		return opts.Backend + "/" + opts.Name
	default:
		return opts.Backend
	}
}
