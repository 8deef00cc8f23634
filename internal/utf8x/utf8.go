// Package utf8x decodes and encodes single UTF-8 codepoints with the
// exact malformed-input behavior the tokenizers rely on: a malformed
// or truncated sequence yields U+FFFD and consumes exactly one byte,
// so a caller's scan loop always makes progress.
package utf8x

import "unicode/utf8"

// Decode inspects the leading bytes of b and returns the decoded
// codepoint and the number of bytes consumed. On malformed or
// truncated input it returns (utf8.RuneError, 1); it never returns a
// consumed count of 0 for non-empty input.
func Decode(b []byte) (cp rune, size int) {
	if len(b) == 0 {
		return 0, 0
	}
	r, n := utf8.DecodeRune(b)
	if r == utf8.RuneError && n <= 1 {
		return utf8.RuneError, 1
	}
	return r, n
}

// Encode writes the canonical shortest UTF-8 form of cp into out,
// which must have room for at least 4 bytes, and returns the number
// of bytes written. A cp >= 0x110000 or a surrogate half is written
// as the 3-byte encoding of U+FFFD.
func Encode(cp rune, out []byte) int {
	return utf8.EncodeRune(out, cp)
}
