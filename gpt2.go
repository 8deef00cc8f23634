package tokenizer

import (
	"fmt"
	"os"

	"github.com/localchat/tokenizer/internal/bpe/cache"
	"github.com/localchat/tokenizer/internal/bpe/heapmerge"
	"github.com/localchat/tokenizer/internal/pretok"
	"github.com/localchat/tokenizer/internal/simd"
	"github.com/localchat/tokenizer/internal/tokio"
	"github.com/localchat/tokenizer/internal/utf8x"
	"github.com/localchat/tokenizer/internal/vocab"
)

// GPT2 is a loaded GPT-2 style tokenizer: pretokenize, map raw bytes
// to their printable codepoints, look up the whole piece in the
// vocabulary trie, fall back to the piece cache, and finally to the
// heap-based BPE merger seeded from the trained merges.txt ranks.
type GPT2 struct {
	vocab       *tokio.GPT2
	cache       *cache.Cache
	maxTokenLen int
}

type mergeRanker struct {
	m interface {
		Rank(left, right []byte) (uint32, bool)
	}
}

func (r mergeRanker) MergeRank(left, right []byte) (uint32, bool) {
	return r.m.Rank(left, right)
}

// LoadGPT2 reads a HuggingFace-style vocab.json and merges.txt pair.
func LoadGPT2(vocabPath, mergesPath string) (*GPT2, error) {
	vf, err := os.Open(vocabPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	defer vf.Close()

	v, err := tokio.LoadGPT2Vocab(vf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	mf, err := os.Open(mergesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	defer mf.Close()

	if err := tokio.LoadGPT2Merges(v, mf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	maxLen := 0
	var decodeBuf []byte
	for _, tok := range v.Tokens {
		if tok == nil {
			continue
		}
		decodeBuf = decodeBuf[:0]
		decodeBuf, _ = tokio.DecodeBytes(decodeBuf, tok)
		if len(decodeBuf) > maxLen {
			maxLen = len(decodeBuf)
		}
	}

	return &GPT2{vocab: v, cache: cache.New(), maxTokenLen: maxLen}, nil
}

// EOSToken returns the id of the end-of-text special token, if the
// loaded vocabulary defines one.
func (t *GPT2) EOSToken() (uint32, bool) {
	return t.vocab.EOSToken, t.vocab.HasEOS
}

// Encode tokenizes text and returns the resulting token ids.
func (t *GPT2) Encode(text []byte) ([]uint32, error) {
	return t.EncodeInto(text, nil)
}

// EncodeInto tokenizes text, appending ids to out.
func (t *GPT2) EncodeInto(text []byte, out []uint32) ([]uint32, error) {
	spans := pretok.SplitGPT2(text)

	var encBuf []byte
	ranker := mergeRanker{m: t.vocab.Merges}

	for _, s := range spans {
		piece := text[s.Start:s.End]

		encBuf = encBuf[:0]
		encBuf = tokio.EncodeBytes(encBuf, piece)

		if id := t.vocab.ByID.LookupWhole(encBuf); id >= 0 {
			out = append(out, uint32(id))
			continue
		}

		hash := simd.HashBytes(encBuf)
		if cached, ok := t.cache.Lookup(len(encBuf), hash, out); ok {
			out = cached
			continue
		}

		codepointLens := codepointLengths(encBuf)
		byteSpans := heapmerge.Merge(ranker, encBuf, codepointLens, nil)

		start := len(out)
		for _, bs := range byteSpans {
			id := t.vocab.ByBytes.Lookup(encBuf[bs.Start:bs.End])
			if id == vocab.Missing {
				return out, fmt.Errorf("%w: piece %q", ErrVocabMiss, encBuf[bs.Start:bs.End])
			}
			out = append(out, id)
		}
		if len(encBuf) <= cache.MaxPieceLen {
			t.cache.Store(hash, out[start:])
		}
	}

	return out, nil
}

func codepointLengths(b []byte) []int {
	lens := make([]int, 0, len(b))
	pos := 0
	for pos < len(b) {
		_, n := utf8x.Decode(b[pos:])
		lens = append(lens, n)
		pos += n
	}
	return lens
}

// CountTokens returns the number of tokens Encode would produce.
func (t *GPT2) CountTokens(text []byte) (int, error) {
	ids, err := t.Encode(text)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// Decode reconstructs the raw bytes for a sequence of token ids,
// reversing both the BPE vocabulary lookup and the byte-to-printable
// mapping. An id with no corresponding token is skipped.
func (t *GPT2) Decode(ids []uint32) []byte {
	var encoded []byte
	for _, id := range ids {
		if int(id) < len(t.vocab.Tokens) && t.vocab.Tokens[id] != nil {
			encoded = append(encoded, t.vocab.Tokens[id]...)
		}
	}
	decoded, _ := tokio.DecodeBytes(nil, encoded)
	return decoded
}

// TokenByteLen returns the number of raw bytes token id decodes to,
// or 0 if id has no vocabulary entry.
func (t *GPT2) TokenByteLen(id uint32) int {
	if int(id) >= len(t.vocab.Tokens) || t.vocab.Tokens[id] == nil {
		return 0
	}
	decoded, ok := tokio.DecodeBytes(nil, t.vocab.Tokens[id])
	if !ok {
		return 0
	}
	return len(decoded)
}

// MaxTokenLen returns the longest byte length any single token in
// this vocabulary decodes to. Streaming encoders use this to bound
// how many trailing input bytes must stay buffered.
func (t *GPT2) MaxTokenLen() int {
	return t.maxTokenLen
}
