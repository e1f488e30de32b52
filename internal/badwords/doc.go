// Package badwords reads, merges, and builds bad-words files: JSON documents
// of the form {"bad_words_ids": [[id, ...], ...]} that a text-generation
// service uses to ban token sequences during sampling.
//
// Merging concatenates the token lists of several files in order, keeping
// duplicates. Building splits word lists, deduplicates the words, expands
// each into six casing and leading-space variants, and encodes every variant
// with a caller-supplied tokenizer.
package badwords
