// Package main hosts the badwords CLI entrypoint.
//
// The root command runs in one of two mutually exclusive modes. --merge
// concatenates existing bad-words files; --create_from_file turns word lists
// into token sequences through a pretrained tokenizer. Both modes check the
// input files up front and ask before continuing with a partial set. Helper
// subcommands scaffold configuration and summarize bad-words files.
//
// Keep this package thin: file formats and encoding live in
// internal/badwords, and tokenizer backends in internal/tokenizer.
package main
