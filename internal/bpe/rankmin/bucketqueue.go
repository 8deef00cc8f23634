package rankmin

import "github.com/localchat/tokenizer/internal/vocab"

// mergeCand is a candidate adjacent-pair merge: the pair starting at
// position pos has the given rank, and verL/verR pin it to the
// liveVersion of its left and right slots at the time it was queued,
// so a stale candidate popped after one of its slots already merged
// again can be detected and skipped.
type mergeCand struct {
	rank       uint32
	pos        int
	verL, verR int
}

// bucketQueue is a priority queue over mergeCand ordered by rank, then
// by position for ties. Ranks in a loaded vocabulary are dense small
// integers, so bucketing by rank gives O(1) push/pop instead of a
// heap's O(log n), which matters once a piece is too long for the
// inline linear scan to stay cheap.
//
// Adapted from the bucket queue the original offline encoder used to
// drive its merge loop.
type bucketQueue struct {
	buckets [][]mergeCand
	current int
	count   int
}

func newBucketQueue(maxRank int) *bucketQueue {
	return &bucketQueue{buckets: make([][]mergeCand, maxRank+1)}
}

func (bq *bucketQueue) push(c mergeCand) {
	rank := int(c.rank)
	if rank >= len(bq.buckets) {
		grown := make([][]mergeCand, rank+1)
		copy(grown, bq.buckets)
		bq.buckets = grown
	}
	if rank < bq.current {
		bq.current = rank
	}

	bucket := bq.buckets[rank]
	insertPos := len(bucket)
	for i := range bucket {
		if bucket[i].pos >= c.pos {
			insertPos = i
			break
		}
	}

	bucket = append(bucket, mergeCand{})
	copy(bucket[insertPos+1:], bucket[insertPos:])
	bucket[insertPos] = c
	bq.buckets[rank] = bucket
	bq.count++
}

func (bq *bucketQueue) pop() (mergeCand, bool) {
	for bq.current < len(bq.buckets) && len(bq.buckets[bq.current]) == 0 {
		bq.current++
	}
	if bq.current >= len(bq.buckets) {
		return mergeCand{}, false
	}

	bucket := bq.buckets[bq.current]
	c := bucket[0]
	bq.buckets[bq.current] = bucket[1:]
	bq.count--
	return c, true
}

// encodeLong runs the same lowest-rank-first merge as Encode's inline
// path, but over a doubly-linked list of byte positions driven by a
// bucketQueue, for pieces too long for the quadratic linear scan to
// stay cheap.
func encodeLong(r Ranker, piece []byte, out []uint32) []uint32 {
	n := len(piece)

	prev := make([]int, n)
	next := make([]int, n)
	live := make([]int, n)
	for i := 0; i < n; i++ {
		prev[i] = i - 1
		next[i] = i + 1
	}
	next[n-1] = -1

	bq := newBucketQueue(1 << 16)

	// segEnd returns the end of the segment that starts at i.
	segEnd := func(i int) int {
		if next[i] == -1 {
			return n
		}
		return next[i]
	}

	pushIfMergeable := func(i int) {
		if i == -1 {
			return
		}
		j := next[i]
		if j == -1 {
			return
		}
		rank := r.Lookup(piece[i:segEnd(j)])
		if rank == vocab.Missing {
			return
		}
		bq.push(mergeCand{rank: rank, pos: i, verL: live[i], verR: live[j]})
	}

	for i := 0; next[i] != -1; i = next[i] {
		pushIfMergeable(i)
	}

	for {
		c, ok := bq.pop()
		if !ok {
			break
		}
		i := c.pos
		j := next[i]
		if j == -1 || live[i] != c.verL || live[j] != c.verR {
			continue
		}
		if r.Lookup(piece[i:segEnd(j)]) != c.rank {
			continue
		}

		nj := next[j]
		next[i] = nj
		if nj != -1 {
			prev[nj] = i
		}
		live[i]++
		live[j]++

		if pi := prev[i]; pi != -1 {
			pushIfMergeable(pi)
		}
		pushIfMergeable(i)
	}

	for i := 0; i != -1; i = next[i] {
		end := n
		if next[i] != -1 {
			end = next[i]
		}
		seg := piece[i:end]
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
