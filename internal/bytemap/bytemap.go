// Package bytemap implements the GPT-2 byte-to-printable-codepoint
// bijection: every possible input byte maps to a codepoint that is
// visible and whitespace-free, so a BPE vocabulary trained on Unicode
// text can still represent arbitrary binary input one byte at a time.
package bytemap

import "github.com/localchat/tokenizer/internal/utf8x"

// ByteToRune and runeToByte are built once at init from the same rule
// the reference encoder uses: the 188 bytes that are already "nice"
// printable ASCII or Latin-1 codepoints map to themselves, and the
// remaining 68 bytes are assigned the codepoints 256..323 in byte
// order.
var (
	byteToRune [256]rune
	runeToByte map[rune]byte
)

func init() {
	var bs [256]byte
	n := 0
	for b := int('!'); b <= int('~'); b++ {
		bs[n] = byte(b)
		n++
	}
	for b := 0xA1; b <= 0xAC; b++ {
		bs[n] = byte(b)
		n++
	}
	for b := 0xAE; b <= 0xFF; b++ {
		bs[n] = byte(b)
		n++
	}

	isNice := [256]bool{}
	for i := 0; i < n; i++ {
		byteToRune[bs[i]] = rune(bs[i])
		isNice[bs[i]] = true
	}

	extra := rune(256)
	for b := 0; b < 256; b++ {
		if !isNice[b] {
			byteToRune[b] = extra
			extra++
		}
	}

	runeToByte = make(map[rune]byte, 256)
	for b := 0; b < 256; b++ {
		runeToByte[byteToRune[b]] = byte(b)
	}
}

// ByteToRune returns the printable codepoint a raw byte encodes to.
func ByteToRune(b byte) rune {
	return byteToRune[b]
}

// RuneToByte returns the raw byte a printable codepoint decodes from
// and whether r is a valid byte-mapped codepoint.
func RuneToByte(r rune) (byte, bool) {
	b, ok := runeToByte[r]
	return b, ok
}

// Encode appends the UTF-8 encoding of each input byte's mapped
// codepoint to dst and returns the extended slice.
func Encode(dst []byte, src []byte) []byte {
	var buf [4]byte
	for _, b := range src {
		n := utf8x.Encode(byteToRune[b], buf[:])
		dst = append(dst, buf[:n]...)
	}
	return dst
}

// Decode reads the UTF-8 text in src, mapping each codepoint back to
// its raw byte, and appends the result to dst. It returns the
// extended slice and false if src contains a codepoint that is not a
// valid byte mapping.
func Decode(dst []byte, src []byte) ([]byte, bool) {
	pos := 0
	for pos < len(src) {
		cp, n := utf8x.Decode(src[pos:])
		if n == 0 {
			break
		}
		b, ok := RuneToByte(cp)
		if !ok {
			return dst, false
		}
		dst = append(dst, b)
		pos += n
	}
	return dst, true
}
