package vocab

import "github.com/localchat/tokenizer/internal/simd"

// mergeKey combines the independent hashes of the two merge operands
// into a single 64-bit key, the same way the reference encoder keys
// its merge-rank hash table.
func mergeKey(left, right []byte) uint64 {
	h1 := uint32(simd.HashBytes(left))
	h2 := uint32(simd.HashBytes(right))
	return uint64(h1)<<32 | uint64(h2)
}

type mergeEntry struct {
	left, right []byte
	rank        uint32
	occupied    bool
}

// MergeMap maps an ordered pair of byte strings (the two sides of a
// GPT-2 training merge) to the rank at which that merge was learned.
// Lower rank means the merge was learned earlier and has priority.
type MergeMap struct {
	table []mergeEntry
	mask  uint64
	count int
}

// NewMergeMap creates a MergeMap sized for at least capacityHint
// merges.
func NewMergeMap(capacityHint int) *MergeMap {
	size := uint64(1)
	for size < uint64(capacityHint)*2 || size < 16 {
		size <<= 1
	}
	return &MergeMap{table: make([]mergeEntry, size), mask: size - 1}
}

// Put records that (left, right) merges at the given rank. Earlier
// calls win ties only in the sense that the first insertion for a
// given pair is never overwritten by a later Put with a different
// pair that happens to collide in the hash table open-addressing
// chain; duplicate Put calls for the same pair simply probe to a
// fresh slot, mirroring the reference loader, which never
// deduplicates merges.txt lines.
func (m *MergeMap) Put(left, right []byte, rank uint32) {
	if m.count*2 >= len(m.table) {
		m.grow()
	}
	m.insert(append([]byte(nil), left...), append([]byte(nil), right...), rank)
}

func (m *MergeMap) insert(left, right []byte, rank uint32) {
	key := mergeKey(left, right)
	idx := key & m.mask
	start := idx
	for {
		e := &m.table[idx]
		if !e.occupied {
			e.left, e.right, e.rank, e.occupied = left, right, rank, true
			m.count++
			return
		}
		idx = (idx + 1) & m.mask
		if idx == start {
			return
		}
	}
}

func (m *MergeMap) grow() {
	old := m.table
	newSize := uint64(len(old)) * 2
	m.table = make([]mergeEntry, newSize)
	m.mask = newSize - 1
	m.count = 0
	for _, e := range old {
		if e.occupied {
			m.insert(e.left, e.right, e.rank)
		}
	}
}

// Rank returns the merge rank for (left, right) and true if that
// exact pair was trained; otherwise it returns (0, false).
func (m *MergeMap) Rank(left, right []byte) (uint32, bool) {
	if len(m.table) == 0 {
		return 0, false
	}
	key := mergeKey(left, right)
	idx := key & m.mask
	start := idx
	for {
		e := &m.table[idx]
		if !e.occupied {
			return 0, false
		}
		if len(e.left) == len(left) && len(e.right) == len(right) &&
			bytesEqual(e.left, left) && bytesEqual(e.right, right) {
			return e.rank, true
		}
		idx = (idx + 1) & m.mask
		if idx == start {
			return 0, false
		}
	}
}
