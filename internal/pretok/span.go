// Package pretok splits raw text into BPE pretoken spans, one pass
// left to right, for both tokenizer families. Spans are half-open
// byte ranges into the caller's input; the pretokenizer never copies
// the input, only slices it.
package pretok

// Span is a half-open byte range [Start, End) into the text passed to
// SplitCL100K or SplitGPT2. Spans from a single call exactly cover the input: no gaps,
// no overlap.
type Span struct {
	Start, End int
}
