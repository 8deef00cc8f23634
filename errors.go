package tokenizer

import "errors"

// ErrLoadFailed wraps any I/O or parse failure while loading a
// vocabulary.
var ErrLoadFailed = errors.New("tokenizer: load failed")

// ErrCapacity reports an output buffer too small to hold an encoding.
// EncodeInto on CL100K and GPT2 appends to its destination slice and
// grows it as needed, so neither of them returns ErrCapacity.
var ErrCapacity = errors.New("tokenizer: output buffer too small")

// ErrVocabMiss indicates a byte sequence has no rank or id anywhere
// in the vocabulary, including the single-byte fallback. This can
// only happen for a corrupt GPT-2 load: cl100k always has a dense
// byte-to-rank table.
var ErrVocabMiss = errors.New("tokenizer: vocabulary miss during encode")
