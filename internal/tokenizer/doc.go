// Package tokenizer defines the capability badwords needs from a text
// tokenizer, a function from a string to token IDs, and adapts three
// pretrained tokenizer libraries to it.
//
// Loading a pretrained tokenizer is a one-time blocking step. After that,
// Encode calls are stateless and may be repeated freely. Callers pass the
// Tokenizer value explicitly to every encoding step; nothing is held in
// package-level state.
package tokenizer
