package tokenizer

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

func writeCL100KFile(t *testing.T, pieces map[string]uint32) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tiktoken")

	var data []byte
	for piece, rank := range pieces {
		line := base64.StdEncoding.EncodeToString([]byte(piece)) + " " + itoa(rank) + "\n"
		data = append(data, line...)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write test vocab: %v", err)
	}
	return path
}

func itoa(n uint32) string {
	if n == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func allByteVocab() map[string]uint32 {
	m := make(map[string]uint32, 256)
	for i := 0; i < 256; i++ {
		m[string([]byte{byte(i)})] = uint32(i)
	}
	return m
}

func TestCL100KEncodeDecodeRoundTrip(t *testing.T) {
	pieces := allByteVocab()
	pieces["hello"] = 256
	pieces[" world"] = 257

	path := writeCL100KFile(t, pieces)
	tok, err := LoadCL100K(path)
	if err != nil {
		t.Fatalf("LoadCL100K: %v", err)
	}

	ids, err := tok.Encode([]byte("hello world"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("got %d ids, want 2: %v", len(ids), ids)
	}

	got := tok.Decode(ids)
	if string(got) != "hello world" {
		t.Fatalf("Decode = %q, want %q", got, "hello world")
	}
}

func TestCL100KEmptyInput(t *testing.T) {
	path := writeCL100KFile(t, allByteVocab())
	tok, err := LoadCL100K(path)
	if err != nil {
		t.Fatalf("LoadCL100K: %v", err)
	}
	ids, err := tok.Encode(nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("got %v, want empty", ids)
	}
}

func TestCL100KCountTokensMatchesEncodeLength(t *testing.T) {
	pieces := allByteVocab()
	pieces["count"] = 300
	path := writeCL100KFile(t, pieces)
	tok, err := LoadCL100K(path)
	if err != nil {
		t.Fatalf("LoadCL100K: %v", err)
	}

	text := []byte("count the tokens")
	ids, err := tok.Encode(text)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	n, err := tok.CountTokens(text)
	if err != nil {
		t.Fatalf("CountTokens: %v", err)
	}
	if n != len(ids) {
		t.Fatalf("CountTokens = %d, want %d", n, len(ids))
	}
}

func TestCL100KByteFallbackRoundTripsArbitraryBytes(t *testing.T) {
	path := writeCL100KFile(t, allByteVocab())
	tok, err := LoadCL100K(path)
	if err != nil {
		t.Fatalf("LoadCL100K: %v", err)
	}
	text := []byte("Hello, world! 日本語 123")
	ids, err := tok.Encode(text)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got := tok.Decode(ids)
	if string(got) != string(text) {
		t.Fatalf("got %q, want %q", got, text)
	}
}

func TestLoadCL100KMissingFile(t *testing.T) {
	if _, err := LoadCL100K("/nonexistent/path/does/not/exist.tiktoken"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
