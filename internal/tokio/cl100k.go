// Package tokio loads tokenizer vocabularies from their on-disk
// formats: the tiktoken ".tiktoken" base64-rank format for cl100k,
// and the HuggingFace vocab.json/merges.txt pair for GPT-2.
package tokio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/localchat/tokenizer/internal/simd"
	"github.com/localchat/tokenizer/internal/vocab"
)

// MaxTokenBytes bounds the byte length of a single vocabulary piece;
// it mirrors the reference tokenizer's fixed-size token buffer.
const MaxTokenBytes = 256

// CL100K is a loaded tiktoken-format vocabulary: ranks for lookup
// during encoding, plus a rank-indexed reverse table for decoding.
type CL100K struct {
	Ranks   *vocab.Map
	ByRank  [][]byte
	MaxRank uint32
}

// LoadCL100K parses a tiktoken vocabulary file: one line per entry,
// "<base64 bytes> <decimal rank>\n". Lines without a space separator
// are skipped, matching the reference loader.
func LoadCL100K(r io.Reader) (*CL100K, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tokio: read cl100k vocab: %w", err)
	}

	out := &CL100K{Ranks: vocab.NewMap(128_000)}

	decodeBuf := make([]byte, MaxTokenBytes)

	pos := 0
	for pos < len(data) {
		lineEnd := bytes.IndexByte(data[pos:], '\n')
		var line []byte
		if lineEnd < 0 {
			line = data[pos:]
			pos = len(data)
		} else {
			line = data[pos : pos+lineEnd]
			pos += lineEnd + 1
		}

		space := bytes.IndexByte(line, ' ')
		if space < 0 {
			continue
		}

		b64 := line[:space]
		n := simd.Base64Decode(b64, decodeBuf)
		if n == 0 {
			continue
		}

		var rank uint32
		for _, c := range line[space+1:] {
			if c < '0' || c > '9' {
				break
			}
			rank = rank*10 + uint32(c-'0')
		}

		decoded := append([]byte(nil), decodeBuf[:n]...)
		if int(rank) >= len(out.ByRank) {
			grown := make([][]byte, rank+1)
			copy(grown, out.ByRank)
			out.ByRank = grown
		}
		out.ByRank[rank] = decoded

		if n == 1 {
			out.Ranks.PutByte(decoded[0], rank)
		} else {
			out.Ranks.Put(decoded, rank)
		}
		if rank > out.MaxRank {
			out.MaxRank = rank
		}
	}

	return out, nil
}
