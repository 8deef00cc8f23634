package bpetok

import "testing"

// fakeBackend tokenizes by splitting on every byte boundary, with a
// configurable set of two-byte merges, so tests can exercise chunk
// boundary behavior without a real vocabulary file.
type fakeBackend struct {
	merges      map[[2]byte]uint32
	maxTokenLen int
}

func (f *fakeBackend) EncodeInto(text []byte, out []uint32) ([]uint32, error) {
	i := 0
	for i < len(text) {
		if i+1 < len(text) {
			if id, ok := f.merges[[2]byte{text[i], text[i+1]}]; ok {
				out = append(out, id)
				i += 2
				continue
			}
		}
		out = append(out, uint32(text[i]))
		i++
	}
	return out, nil
}

func (f *fakeBackend) MaxTokenLen() int { return f.maxTokenLen }

func (f *fakeBackend) TokenByteLen(id uint32) int {
	if id < 256 {
		return 1
	}
	return 2
}

type fakeDecoder struct {
	merges map[uint32][2]byte
}

func (d *fakeDecoder) Decode(ids []uint32) []byte {
	var out []byte
	for _, id := range ids {
		if pair, ok := d.merges[id]; ok {
			out = append(out, pair[0], pair[1])
			continue
		}
		out = append(out, byte(id))
	}
	return out
}

func TestEncoderFlushWithoutFeedEmitsNothing(t *testing.T) {
	b := &fakeBackend{maxTokenLen: 2}
	tok := New(b, &fakeDecoder{})
	enc := tok.NewEncoder()
	if got := enc.Flush(); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestEncoderHoldsBackTailReserve(t *testing.T) {
	b := &fakeBackend{maxTokenLen: 2}
	tok := New(b, &fakeDecoder{})
	enc := tok.NewEncoder()

	got := enc.Feed([]byte("a"))
	if got != nil {
		t.Fatalf("got %v, want nil (single byte held back as merge tail)", got)
	}
}

func TestEncoderEmitsAcrossFeedCalls(t *testing.T) {
	b := &fakeBackend{maxTokenLen: 1}
	tok := New(b, &fakeDecoder{})
	enc := tok.NewEncoder()

	var got []uint32
	got = append(got, enc.Feed([]byte("ab"))...)
	got = append(got, enc.Feed([]byte("cd"))...)
	got = append(got, enc.Flush()...)

	want := []uint32{'a', 'b', 'c', 'd'}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEncoderMergeSpanningChunkBoundary(t *testing.T) {
	b := &fakeBackend{
		maxTokenLen: 2,
		merges:      map[[2]byte]uint32{{'a', 'b'}: 300},
	}
	tok := New(b, &fakeDecoder{merges: map[uint32][2]byte{300: {'a', 'b'}}})
	enc := tok.NewEncoder()

	var got []uint32
	got = append(got, enc.Feed([]byte("a"))...)
	got = append(got, enc.Feed([]byte("b"))...)
	got = append(got, enc.Flush()...)

	if len(got) != 1 || got[0] != 300 {
		t.Fatalf("got %v, want merged token 300", got)
	}
}

func TestDecoderFeedEmptyReturnsNil(t *testing.T) {
	tok := New(&fakeBackend{}, &fakeDecoder{})
	dec := tok.NewDecoder()
	if got := dec.Feed(nil); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestDecoderRoundTripsMergedTokens(t *testing.T) {
	tok := New(&fakeBackend{}, &fakeDecoder{merges: map[uint32][2]byte{300: {'a', 'b'}}})
	dec := tok.NewDecoder()
	got := dec.Feed([]uint32{300, 'c'})
	if string(got) != "abc" {
		t.Fatalf("got %q, want %q", got, "abc")
	}
}
