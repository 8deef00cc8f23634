package tokio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/localchat/tokenizer/internal/bytemap"
	"github.com/localchat/tokenizer/internal/vocab"
)

// GPT2 is a loaded GPT-2 vocabulary: the trained token strings (in
// their byte-mapped printable encoding) indexed by id, a trie and
// hash map for id lookup, and a rank table for the merges.
type GPT2 struct {
	Tokens   [][]byte // id -> byte-mapped encoded token bytes
	ByID     *vocab.Trie
	ByBytes  *vocab.Map
	Merges   *vocab.MergeMap
	EOSToken uint32
	HasEOS   bool
}

const eosTokenText = "<|endoftext|>"

// LoadGPT2Vocab parses a HuggingFace-style vocab.json: a flat JSON
// object mapping each token's byte-mapped text to its integer id.
// encoding/json already understands every escape the format uses, so
// unlike the reference loader's hand-rolled character walker this
// just decodes into a map.
func LoadGPT2Vocab(r io.Reader) (*GPT2, error) {
	var raw map[string]uint32
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("tokio: decode vocab.json: %w", err)
	}

	size := uint32(0)
	for _, id := range raw {
		if id+1 > size {
			size = id + 1
		}
	}

	g := &GPT2{
		Tokens: make([][]byte, size),
	}
	for text, id := range raw {
		g.Tokens[id] = []byte(text)
	}

	g.ByID = vocab.NewTrie(g.Tokens)
	g.ByBytes = vocab.NewMap(len(raw))
	for id, tok := range g.Tokens {
		if tok == nil {
			continue
		}
		if len(tok) == 1 {
			g.ByBytes.PutByte(tok[0], uint32(id))
		} else {
			g.ByBytes.Put(tok, uint32(id))
		}
		if string(tok) == eosTokenText {
			if !g.HasEOS {
				g.EOSToken = uint32(id)
				g.HasEOS = true
			}
		}
	}

	return g, nil
}

// LoadGPT2Merges parses a merges.txt file: a header line, then one
// "<left> <right>" pair per line in training order. Rank is the
// line's 0-based position among valid merge lines.
func LoadGPT2Merges(g *GPT2, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	first := true
	rank := uint32(0)
	const mergeCapacityHint = 64_000
	merges := vocab.NewMergeMap(mergeCapacityHint)

	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			continue
		}
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			continue
		}
		merges.Put([]byte(parts[0]), []byte(parts[1]), rank)
		rank++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("tokio: read merges.txt: %w", err)
	}

	g.Merges = merges
	return nil
}

// EncodeBytes maps raw input bytes to their printable byte-mapped
// form, the representation the trained vocabulary and merges
// operate on.
func EncodeBytes(dst, src []byte) []byte {
	return bytemap.Encode(dst, src)
}

// DecodeBytes maps byte-mapped text back to the raw bytes it
// represents.
func DecodeBytes(dst, src []byte) ([]byte, bool) {
	return bytemap.Decode(dst, src)
}
