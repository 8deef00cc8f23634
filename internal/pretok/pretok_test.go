package pretok

import (
	"math/rand"
	"testing"
)

func checkCoverage(t *testing.T, text []byte, spans []Span) {
	t.Helper()
	pos := 0
	for i, s := range spans {
		if s.Start != pos {
			t.Fatalf("span %d: gap/overlap, start=%d want %d", i, s.Start, pos)
		}
		if s.End <= s.Start {
			t.Fatalf("span %d: empty or backwards span %+v", i, s)
		}
		pos = s.End
	}
	if pos != len(text) {
		t.Fatalf("spans cover %d bytes, want %d (text %q)", pos, len(text), text)
	}
}

func TestSplitCL100KCoversInput(t *testing.T) {
	samples := []string{
		"",
		"hello world",
		"  leading and   internal   spaces",
		"it's a test, isn't it?",
		"line1\nline2\r\nline3",
		"1234567890 numbers 42",
		"日本語のテキストです",
		"tab\ttab\ttab",
		"mixed123abc456",
		"punctuation!!!...,,,",
		"\n\n\n\n",
		"trailing spaces   ",
	}
	for _, s := range samples {
		spans := SplitCL100K([]byte(s))
		checkCoverage(t, []byte(s), spans)
	}
}

func TestSplitGPT2CoversInput(t *testing.T) {
	samples := []string{
		"",
		"hello world",
		"  leading and   internal   spaces",
		"it's a test, isn't it?",
		"line1\nline2\r\nline3",
		"1234567890 numbers 42",
		"日本語のテキストです",
		"tab\ttab\ttab",
		"mixed123abc456",
		"punctuation!!!...,,,",
		"\n\n\n\n",
		"trailing spaces   ",
	}
	for _, s := range samples {
		spans := SplitGPT2([]byte(s))
		checkCoverage(t, []byte(s), spans)
	}
}

func TestSplitCL100KCoversRandomInput(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	alphabet := []rune("abc XYZ 012   \t\n'.,!?日本語😀")
	for trial := 0; trial < 10000; trial++ {
		n := r.Intn(40)
		runes := make([]rune, n)
		for i := range runes {
			runes[i] = alphabet[r.Intn(len(alphabet))]
		}
		text := []byte(string(runes))
		spans := SplitCL100K(text)
		checkCoverage(t, text, spans)
	}
}

func TestSplitGPT2CoversRandomInput(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	alphabet := []rune("abc XYZ 012   \t\n'.,!?日本語😀")
	for trial := 0; trial < 10000; trial++ {
		n := r.Intn(40)
		runes := make([]rune, n)
		for i := range runes {
			runes[i] = alphabet[r.Intn(len(alphabet))]
		}
		text := []byte(string(runes))
		spans := SplitGPT2(text)
		checkCoverage(t, text, spans)
	}
}

func TestSplitCL100KContractions(t *testing.T) {
	spans := SplitCL100K([]byte("don't"))
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2: %+v", len(spans), spans)
	}
	if got := string([]byte("don't")[spans[0].Start:spans[0].End]); got != "don" {
		t.Fatalf("first span = %q, want %q", got, "don")
	}
	if got := string([]byte("don't")[spans[1].Start:spans[1].End]); got != "'t" {
		t.Fatalf("second span = %q, want %q", got, "'t")
	}
}

func TestSplitGPT2LeadingSpaceJoinsWord(t *testing.T) {
	text := []byte("a big word")
	spans := SplitGPT2(text)
	var got []string
	for _, s := range spans {
		got = append(got, string(text[s.Start:s.End]))
	}
	want := []string{"a", " big", " word"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("span %d: got %q want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestSplitGPT2MultiSpaceRunBeforeWordKeepsOneSpace(t *testing.T) {
	text := []byte("a   big")
	spans := SplitGPT2(text)
	var got []string
	for _, s := range spans {
		got = append(got, string(text[s.Start:s.End]))
	}
	want := []string{"a", "  ", " big"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("span %d: got %q want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestSplitGPT2NumberRunCapsAtThreeDigits(t *testing.T) {
	text := []byte("123456")
	spans := SplitGPT2(text)
	var got []string
	for _, s := range spans {
		got = append(got, string(text[s.Start:s.End]))
	}
	want := []string{"123", "456"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("span %d: got %q want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestSplitGPT2NonSpacePrefixJoinsLetterRun(t *testing.T) {
	text := []byte("!hello")
	spans := SplitGPT2(text)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(spans), spans)
	}
	if got := string(text[spans[0].Start:spans[0].End]); got != "!hello" {
		t.Fatalf("got %q, want %q", got, "!hello")
	}
}

func TestSplitGPT2TrailingWhitespaceIsOneSpan(t *testing.T) {
	text := []byte("word   ")
	spans := SplitGPT2(text)
	last := spans[len(spans)-1]
	if got := string(text[last.Start:last.End]); got != "   " {
		t.Fatalf("last span = %q, want %q", got, "   ")
	}
}
