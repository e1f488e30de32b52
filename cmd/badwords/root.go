package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	merge            bool
	createFromFile   bool
	filename         string
	separator        string
	tokenizerName    string
	tokenizerBackend string
	tokenizerPath    string
	assumeYes        bool
}

func newRootCommand() *cobra.Command {
	return buildRootCommand(newCommandContext())
}

func buildRootCommand(ctx *commandContext) *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "badwords [--merge | --create_from_file] [flags] FILE...",
		Short: "Build and merge bad-words token files",
		Long: "Tools for the bad-words files used to ban token sequences during text generation.\n\n" +
			"--merge combines existing bad-words files into one.\n" +
			"--create_from_file builds a bad-words file from word lists, banning each word\n" +
			"with and without a leading space, capitalized, and upper-cased.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, ctx, opts, args)
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return withExitCode(exitUsage, err)
	})

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.merge, "merge", false, "Merge an arbitrary number of bad-words files")
	flags.BoolVar(&opts.createFromFile, "create_from_file", false, "Create a bad-words file from word lists split on a common separator")
	flags.StringVar(&opts.filename, "filename", "output.badwords", "The output filename")
	flags.StringVar(&opts.separator, "separator", "\n", `Separator between words in word-list files (\n and \t escapes are understood)`)
	flags.StringVar(&opts.tokenizerName, "tokenizer", "", "Pretrained tokenizer or encoding name (default from config)")
	flags.StringVar(&opts.tokenizerBackend, "tokenizer-backend", "", "Tokenizer backend: gpt2, tiktoken or huggingface (default from config)")
	flags.StringVar(&opts.tokenizerPath, "tokenizer-path", "", "Path to tokenizer.json for the huggingface backend")
	flags.BoolVarP(&opts.assumeYes, "yes", "y", false, "Continue with the readable files without asking")

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&ctx.debugFlag, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))

	return rootCmd
}
