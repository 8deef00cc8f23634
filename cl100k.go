// Package tokenizer is the facade over the two BPE tokenizer
// families: CL100K (tiktoken's cl100k_base) and GPT2 (vocab.json +
// merges.txt with the byte-to-printable transform). Both share the
// same external shape: Load, Encode/EncodeInto, CountTokens, Decode.
package tokenizer

import (
	"fmt"
	"os"

	"github.com/localchat/tokenizer/internal/bpe/rankmin"
	"github.com/localchat/tokenizer/internal/pretok"
	"github.com/localchat/tokenizer/internal/tokio"
)

// CL100K is a loaded cl100k_base tokenizer: pretokenize with the
// eight-rule cl100k scan, then rank-minimum BPE merge each piece
// directly against the vocabulary (no separate merge table, no
// cache — cl100k's bottleneck is pretokenization, not merging).
type CL100K struct {
	vocab       *tokio.CL100K
	maxTokenLen int
}

// LoadCL100K reads a tiktoken-format vocabulary file from path.
func LoadCL100K(path string) (*CL100K, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	defer f.Close()

	v, err := tokio.LoadCL100K(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	maxLen := 0
	for _, b := range v.ByRank {
		if len(b) > maxLen {
			maxLen = len(b)
		}
	}

	return &CL100K{vocab: v, maxTokenLen: maxLen}, nil
}

// Encode tokenizes text and returns the resulting token ids.
func (t *CL100K) Encode(text []byte) ([]uint32, error) {
	return t.EncodeInto(text, nil)
}

// EncodeInto tokenizes text, appending ids to out, and returns the
// extended slice. Passing a pre-sized out avoids reallocation for
// repeated calls.
func (t *CL100K) EncodeInto(text []byte, out []uint32) ([]uint32, error) {
	spans := pretok.SplitCL100K(text)
	for _, s := range spans {
		out = rankmin.Encode(t.vocab.Ranks, text[s.Start:s.End], out)
	}
	return out, nil
}

// CountTokens returns the number of tokens Encode would produce.
func (t *CL100K) CountTokens(text []byte) (int, error) {
	ids, err := t.Encode(text)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// Decode reconstructs the UTF-8 text for a sequence of token ids. An
// id with no corresponding vocabulary entry is skipped.
func (t *CL100K) Decode(ids []uint32) []byte {
	var out []byte
	for _, id := range ids {
		if int(id) < len(t.vocab.ByRank) {
			out = append(out, t.vocab.ByRank[id]...)
		}
	}
	return out
}

// TokenByteLen returns the number of raw bytes token id decodes to,
// or 0 if id has no vocabulary entry.
func (t *CL100K) TokenByteLen(id uint32) int {
	if int(id) < len(t.vocab.ByRank) {
		return len(t.vocab.ByRank[id])
	}
	return 0
}

// MaxTokenLen returns the longest byte length any single token in
// this vocabulary decodes to. Streaming encoders use this to bound
// how many trailing input bytes must stay buffered.
func (t *CL100K) MaxTokenLen() int {
	return t.maxTokenLen
}
