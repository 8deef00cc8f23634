// Package rankmin implements the cl100k_base BPE merge: repeatedly
// merge the adjacent pair with the lowest rank until no mergeable
// pair remains. This is the "rank-minimum" variant tiktoken uses,
// distinct from GPT-2's iterate-over-merges-in-training-order
// variant implemented in package heapmerge.
package rankmin

import "github.com/localchat/tokenizer/internal/vocab"

// Ranker looks up the rank of a byte string. A single byte always
// has a rank (every vocabulary must cover all 256 bytes); multi-byte
// pieces may be Missing.
type Ranker interface {
	Lookup(bytes []byte) uint32
}

// part is a boundary into piece: parts[i].start..parts[i+1].start is
// the i'th current segment, and parts[i].rank is the rank of merging
// that segment with the next one.
type part struct {
	start int
	rank  uint32
}

// maxInlineParts covers the overwhelming majority of pretoken pieces
// without an allocation. Longer pieces fall through to encodeLong,
// which drives the same lowest-rank-first merge over a bucketQueue
// instead of rescanning a flat array on every merge.
const maxInlineParts = 64

// Encode merges piece using the lowest-rank-wins rule and appends the
// resulting token ranks to out. It returns the extended slice. A
// byte with no rank registered anywhere is impossible for a complete
// vocabulary and indicates a malformed load; Encode still returns a
// best-effort result rather than panicking, since a missing single
// byte rank cannot occur for a correctly loaded cl100k vocabulary.
func Encode(r Ranker, piece []byte, out []uint32) []uint32 {
	if len(piece) == 0 {
		return out
	}
	if len(piece) == 1 {
		return append(out, r.Lookup(piece))
	}
	if direct := r.Lookup(piece); direct != vocab.Missing {
		return append(out, direct)
	}

	if len(piece)+1 > maxInlineParts {
		return encodeLong(r, piece, out)
	}

	var inline [maxInlineParts + 1]part
	parts := inline[:len(piece)+1]

	for i := 0; i < len(piece); i++ {
		rank := vocab.Missing
		if i+1 < len(piece) {
			rank = r.Lookup(piece[i : i+2])
		}
		parts[i] = part{start: i, rank: rank}
	}
	parts[len(piece)] = part{start: len(piece), rank: vocab.Missing}

	numParts := len(piece) + 1

	for {
		minRank := vocab.Missing
		minIdx := 0
		for i := 0; i+1 < numParts; i++ {
			if parts[i].rank < minRank {
				minRank = parts[i].rank
				minIdx = i
			}
		}
		if minRank == vocab.Missing {
			break
		}

		i := minIdx
		copy(parts[i+1:numParts-1], parts[i+2:numParts])
		numParts--

		if i > 0 {
			if i+1 < numParts {
				start := parts[i-1].start
				end := parts[i+1].start
				parts[i-1].rank = r.Lookup(piece[start:end])
			} else {
				parts[i-1].rank = vocab.Missing
			}
		}

		if i+2 < numParts {
			start := parts[i].start
			end := parts[i+2].start
			parts[i].rank = r.Lookup(piece[start:end])
		} else {
			parts[i].rank = vocab.Missing
		}
	}

	for i := 0; i+1 < numParts; i++ {
		start, end := parts[i].start, parts[i+1].start
		seg := piece[start:end]
		if rank := r.Lookup(seg); rank != vocab.Missing {
			out = append(out, rank)
			continue
		}
		for _, b := range seg {
			out = append(out, r.Lookup([]byte{b}))
		}
	}

	return out
}
