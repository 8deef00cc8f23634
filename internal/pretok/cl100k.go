package pretok

import (
	"github.com/localchat/tokenizer/internal/simd"
	"github.com/localchat/tokenizer/internal/uclass"
	"github.com/localchat/tokenizer/internal/utf8x"
)

func isNewline(cp uint32) bool { return cp == '\n' || cp == '\r' }

func matchContraction(b []byte) (matchLen int, ok bool) {
	if len(b) < 2 || b[0] != '\'' {
		return 0, false
	}
	lower := func(c byte) byte {
		if c >= 'A' && c <= 'Z' {
			return c + ('a' - 'A')
		}
		return c
	}
	if c := lower(b[1]); c == 's' || c == 't' || c == 'm' || c == 'd' {
		return 2, true
	}
	if len(b) >= 3 {
		c1, c2 := lower(b[1]), lower(b[2])
		if (c1 == 'l' && c2 == 'l') || (c1 == 'v' && c2 == 'e') || (c1 == 'r' && c2 == 'e') {
			return 3, true
		}
	}
	return 0, false
}

// matchLetters consumes an ASCII run via simd.MatchASCIILetters first
// (the common case), then falls back to a codepoint-at-a-time
// Unicode loop for the remainder.
func matchLetters(b []byte) int {
	pos := simd.MatchASCIILetters(b)
	for pos < len(b) {
		if b[pos] < 0x80 {
			if !((b[pos] >= 'A' && b[pos] <= 'Z') || (b[pos] >= 'a' && b[pos] <= 'z')) {
				break
			}
			pos++
			continue
		}
		cp, n := utf8x.Decode(b[pos:])
		if n == 0 || !uclass.IsLetter(uint32(cp)) {
			break
		}
		pos += n
	}
	return pos
}

func matchNumbers(b []byte, maxDigits int) int {
	pos := 0
	count := 0
	for pos < len(b) && (maxDigits == 0 || count < maxDigits) {
		cp, n := utf8x.Decode(b[pos:])
		if n == 0 || !uclass.IsNumber(uint32(cp)) {
			break
		}
		pos += n
		count++
	}
	return pos
}

func matchPunctNoWS(b []byte) int {
	pos := 0
	for pos < len(b) {
		cp, n := utf8x.Decode(b[pos:])
		if n == 0 {
			break
		}
		if uclass.IsLetter(uint32(cp)) || uclass.IsNumber(uint32(cp)) || uclass.IsWhitespace(uint32(cp)) {
			break
		}
		pos += n
	}
	return pos
}

func matchNewlines(b []byte) int {
	pos := 0
	for pos < len(b) {
		cp, n := utf8x.Decode(b[pos:])
		if n == 0 || !isNewline(uint32(cp)) {
			break
		}
		pos += n
	}
	return pos
}

// SplitCL100K splits text into cl100k_base pretoken spans following
// the eight ordered alternatives: contraction, leading-punct word,
// letter run, number run (<=3 digits), space+punct(+newlines),
// punct(+newlines), whitespace run, single-codepoint fallback.
func SplitCL100K(text []byte) []Span {
	var spans []Span
	pos := 0
	n := len(text)

	for pos < n {
		start := pos
		rest := text[pos:]

		if matchLen, ok := matchContraction(rest); ok {
			pos += matchLen
			spans = append(spans, Span{start, pos})
			continue
		}

		cp, cplen := utf8x.Decode(rest)
		if cplen == 0 {
			pos++
			continue
		}

		if !isNewline(uint32(cp)) && !uclass.IsLetter(uint32(cp)) && !uclass.IsNumber(uint32(cp)) {
			letters := matchLetters(text[pos+cplen:])
			if letters > 0 {
				pos += cplen + letters
				spans = append(spans, Span{start, pos})
				continue
			}
		}

		if uclass.IsLetter(uint32(cp)) {
			pos += cplen
			pos += matchLetters(text[pos:])
			spans = append(spans, Span{start, pos})
			continue
		}

		if uclass.IsNumber(uint32(cp)) {
			pos += matchNumbers(rest, 3)
			spans = append(spans, Span{start, pos})
			continue
		}

		if cp == ' ' {
			nextCP, nextLen := utf8x.Decode(text[pos+cplen:])
			if nextLen > 0 && !uclass.IsLetter(uint32(nextCP)) && !uclass.IsNumber(uint32(nextCP)) && !uclass.IsWhitespace(uint32(nextCP)) {
				pos += cplen
				pos += matchPunctNoWS(text[pos:])
				pos += matchNewlines(text[pos:])
				spans = append(spans, Span{start, pos})
				continue
			}
		}

		if !uclass.IsLetter(uint32(cp)) && !uclass.IsNumber(uint32(cp)) && !uclass.IsWhitespace(uint32(cp)) {
			pos += matchPunctNoWS(rest)
			pos += matchNewlines(text[pos:])
			spans = append(spans, Span{start, pos})
			continue
		}

		if uclass.IsWhitespace(uint32(cp)) {
			wsEnd := pos
			for wsEnd < n {
				wsCP, wsLen := utf8x.Decode(text[wsEnd:])
				if wsLen == 0 || !uclass.IsWhitespace(uint32(wsCP)) {
					break
				}
				wsEnd += wsLen
			}

			if wsEnd >= n {
				pos = wsEnd
				spans = append(spans, Span{start, pos})
				continue
			}

			// Interior whitespace run: leave the last whitespace
			// codepoint for the next iteration (it becomes a leading
			// space for the space+punct rule), unless the run is
			// immediately followed by a newline, which it absorbs.
			bestEnd := pos + cplen
			for tryEnd := wsEnd; tryEnd > pos; {
				prevStart := tryEnd
				for prevStart > pos {
					prevStart--
					if text[prevStart]&0xC0 != 0x80 {
						break
					}
				}
				_, prevLen := utf8x.Decode(text[prevStart:tryEnd])
				if prevLen <= 0 {
					break
				}
				tryEnd = prevStart

				afterPos := tryEnd + prevLen
				afterCP, afterLen := utf8x.Decode(text[afterPos:])

				if afterLen == 0 || uclass.IsWhitespace(uint32(afterCP)) || afterPos >= n {
					bestEnd = afterPos
					break
				}
			}

			afterCP, afterLen := utf8x.Decode(text[bestEnd:])
			if afterLen > 0 && isNewline(uint32(afterCP)) {
				bestEnd += afterLen
			}

			pos = bestEnd
			spans = append(spans, Span{start, pos})
			continue
		}

		pos += cplen
		spans = append(spans, Span{start, pos})
	}

	return spans
}
