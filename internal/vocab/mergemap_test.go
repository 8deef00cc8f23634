package vocab

import "testing"

func TestMergeMapRoundTrip(t *testing.T) {
	m := NewMergeMap(8)
	m.Put([]byte("t"), []byte("h"), 0)
	m.Put([]byte("th"), []byte("e"), 1)
	m.Put([]byte("a"), []byte("n"), 2)

	if rank, ok := m.Rank([]byte("t"), []byte("h")); !ok || rank != 0 {
		t.Fatalf("got %d, %v, want 0, true", rank, ok)
	}
	if rank, ok := m.Rank([]byte("th"), []byte("e")); !ok || rank != 1 {
		t.Fatalf("got %d, %v, want 1, true", rank, ok)
	}
	if _, ok := m.Rank([]byte("x"), []byte("y")); ok {
		t.Fatalf("expected miss for untrained pair")
	}
}

func TestMergeMapDistinguishesSplitPoint(t *testing.T) {
	m := NewMergeMap(8)
	m.Put([]byte("ab"), []byte("c"), 0)
	if _, ok := m.Rank([]byte("a"), []byte("bc")); ok {
		t.Fatalf("different split point of the same concatenation must not match")
	}
}

func TestMergeMapGrows(t *testing.T) {
	m := NewMergeMap(2)
	for i := 0; i < 500; i++ {
		left := []byte{byte(i % 256), byte(i / 256)}
		right := []byte{byte(i), byte(255 - i%256)}
		m.Put(left, right, uint32(i))
	}
	for i := 0; i < 500; i++ {
		left := []byte{byte(i % 256), byte(i / 256)}
		right := []byte{byte(i), byte(255 - i%256)}
		rank, ok := m.Rank(left, right)
		if !ok || rank != uint32(i) {
			t.Fatalf("i=%d: got %d, %v", i, rank, ok)
		}
	}
}
