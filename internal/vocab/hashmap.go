// Package vocab stores a byte-string-to-rank vocabulary the way a BPE
// merger needs to query it: O(1) for single bytes, open-addressed
// hashing for everything else, and (for GPT-2) a byte-trie for
// exact whole-piece lookups.
package vocab

import "github.com/localchat/tokenizer/internal/simd"

// Missing is the sentinel rank returned for a piece not present in
// the vocabulary.
const Missing = ^uint32(0)

type entry struct {
	bytes    []byte
	rank     uint32
	occupied bool
}

// Map is an open-addressed hash table from byte strings to ranks,
// with a dedicated 256-entry table for single bytes so the hot path
// of the BPE mergers never touches the hash table at all.
type Map struct {
	byteToRank [256]uint32
	table      []entry
	mask       uint64
	count      int
}

// NewMap creates a Map sized for at least capacityHint entries (not
// counting single bytes, which always have a dedicated slot). The
// backing table is always a power of two.
func NewMap(capacityHint int) *Map {
	size := uint64(1)
	for size < uint64(capacityHint)*2 || size < 16 {
		size <<= 1
	}
	m := &Map{
		table: make([]entry, size),
		mask:  size - 1,
	}
	for i := range m.byteToRank {
		m.byteToRank[i] = Missing
	}
	return m
}

// PutByte assigns the rank for a single raw byte.
func (m *Map) PutByte(b byte, rank uint32) {
	m.byteToRank[b] = rank
}

// Put inserts a byte string's rank. Strings of length 0 or 1 are
// rejected; callers must use PutByte for single bytes (this mirrors
// the reference hash_insert, which silently no-ops on len <= 1).
func (m *Map) Put(bytes []byte, rank uint32) {
	if len(bytes) <= 1 {
		return
	}
	if m.count*2 >= len(m.table) {
		m.grow()
	}
	m.insert(append([]byte(nil), bytes...), rank)
}

func (m *Map) insert(bytes []byte, rank uint32) {
	hash := simd.HashBytes(bytes)
	idx := hash & m.mask
	start := idx
	for {
		e := &m.table[idx]
		if !e.occupied {
			e.bytes = bytes
			e.rank = rank
			e.occupied = true
			m.count++
			return
		}
		idx = (idx + 1) & m.mask
		if idx == start {
			return
		}
	}
}

func (m *Map) grow() {
	old := m.table
	newSize := uint64(len(old)) * 2
	m.table = make([]entry, newSize)
	m.mask = newSize - 1
	m.count = 0
	for _, e := range old {
		if e.occupied {
			m.insert(e.bytes, e.rank)
		}
	}
}

// Lookup returns the rank for bytes, or Missing if not present.
func (m *Map) Lookup(bytes []byte) uint32 {
	if len(bytes) == 1 {
		return m.byteToRank[bytes[0]]
	}
	if len(m.table) == 0 {
		return Missing
	}
	hash := simd.HashBytes(bytes)
	idx := hash & m.mask
	start := idx
	for {
		e := &m.table[idx]
		if !e.occupied {
			return Missing
		}
		if len(e.bytes) == len(bytes) && bytesEqual(e.bytes, bytes) {
			return e.rank
		}
		idx = (idx + 1) & m.mask
		if idx == start {
			return Missing
		}
	}
}

// ByteRank returns the rank assigned to a single raw byte.
func (m *Map) ByteRank(b byte) uint32 {
	return m.byteToRank[b]
}

// bytesEqual is a length-specialized comparator: most vocabulary
// pieces are short, so the common cases avoid the general loop.
func bytesEqual(a, b []byte) bool {
	switch len(a) {
	case 2:
		return a[0] == b[0] && a[1] == b[1]
	case 3:
		return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
	case 4:
		return a[0] == b[0] && a[1] == b[1] && a[2] == b[2] && a[3] == b[3]
	default:
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
}
