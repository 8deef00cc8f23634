// Package heapmerge implements the GPT-2 style BPE merge: unlike
// cl100k's rank-minimum scan, GPT-2 repeatedly applies the
// lowest-trained-rank adjacent merge available, tracked with a
// doubly-linked list of live parts and a binary min-heap of
// candidate merges. A lazy-deletion heap (entries referring to a
// part that has since moved or vanished are skipped on pop) avoids
// ever rebuilding the heap from scratch.
package heapmerge

import "container/heap"

// Ranker looks up the trained merge rank for two adjacent pieces.
// Lower rank means the merge was learned earlier in training and
// takes priority.
type Ranker interface {
	MergeRank(left, right []byte) (rank uint32, ok bool)
}

const noRank = ^uint32(0)

type part struct {
	start, length int
	prev, next    int32 // -1 marks a list end
	rank          uint32
	deleted       bool
}

type candidate struct {
	rank uint32
	idx  int32
}

// candHeap is a binary min-heap on rank, tie-broken by idx so that
// the leftmost pending merge always wins ties deterministically.
type candHeap []candidate

func (h candHeap) Len() int { return len(h) }
func (h candHeap) Less(i, j int) bool {
	if h[i].rank != h[j].rank {
		return h[i].rank < h[j].rank
	}
	return h[i].idx < h[j].idx
}
func (h candHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }
func (h *candHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// maxInlineParts covers ordinary pretoken pieces without allocating;
// pieces with more codepoints grow the slice normally.
const maxInlineParts = 64

// Merge splits piece into UTF-8 codepoint runs given by codepointLens
// (the length in bytes of each codepoint, in order) and repeatedly
// merges the lowest-rank adjacent pair known to r, until no
// mergeable pair remains. It appends the resulting byte spans, each
// as a [start,end) pair into piece, to out and returns the extended
// slice.
func Merge(r Ranker, piece []byte, codepointLens []int, out []Span) []Span {
	if len(piece) == 0 || len(codepointLens) == 0 {
		return out
	}

	var inline [maxInlineParts]part
	parts := inline[:0]
	if len(codepointLens) <= maxInlineParts {
		parts = inline[:len(codepointLens)]
	} else {
		parts = make([]part, len(codepointLens))
	}

	pos := 0
	for i, l := range codepointLens {
		parts[i] = part{
			start:  pos,
			length: l,
			prev:   int32(i - 1),
			next:   int32(i + 1),
			rank:   noRank,
		}
		pos += l
	}
	parts[len(parts)-1].next = -1

	h := make(candHeap, 0, len(parts))
	for i := 0; i+1 < len(parts); i++ {
		next := parts[i].next
		if next < 0 {
			continue
		}
		if rank, ok := r.MergeRank(piece[parts[i].start:parts[i].start+parts[i].length],
			piece[parts[next].start:parts[next].start+parts[next].length]); ok {
			parts[i].rank = rank
			h = append(h, candidate{rank: rank, idx: int32(i)})
		}
	}
	heap.Init(&h)

	for h.Len() > 0 {
		top := heap.Pop(&h).(candidate)
		idx := top.idx
		if parts[idx].deleted || parts[idx].rank != top.rank {
			continue
		}
		next := parts[idx].next
		if next < 0 || parts[next].deleted {
			continue
		}

		parts[idx].length += parts[next].length
		parts[next].deleted = true

		nextNext := parts[next].next
		parts[idx].next = nextNext
		if nextNext >= 0 {
			parts[nextNext].prev = idx
		}

		if nextNext >= 0 && !parts[nextNext].deleted {
			if rank, ok := r.MergeRank(
				piece[parts[idx].start:parts[idx].start+parts[idx].length],
				piece[parts[nextNext].start:parts[nextNext].start+parts[nextNext].length]); ok {
				parts[idx].rank = rank
				heap.Push(&h, candidate{rank: rank, idx: idx})
			} else {
				parts[idx].rank = noRank
			}
		} else {
			parts[idx].rank = noRank
		}

		prev := parts[idx].prev
		if prev >= 0 && !parts[prev].deleted {
			if rank, ok := r.MergeRank(
				piece[parts[prev].start:parts[prev].start+parts[prev].length],
				piece[parts[idx].start:parts[idx].start+parts[idx].length]); ok {
				parts[prev].rank = rank
				heap.Push(&h, candidate{rank: rank, idx: prev})
			} else {
				parts[prev].rank = noRank
			}
		}
	}

	for j := int32(0); j >= 0; j = parts[j].next {
		if parts[j].deleted {
			continue
		}
		out = append(out, Span{Start: parts[j].start, End: parts[j].start + parts[j].length})
	}
	return out
}

// Span is a half-open byte range [Start, End) into the piece passed
// to Merge.
type Span struct {
	Start, End int
}
