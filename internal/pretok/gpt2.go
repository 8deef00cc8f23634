package pretok

import (
	"github.com/localchat/tokenizer/internal/uclass"
	"github.com/localchat/tokenizer/internal/utf8x"
)

// SplitGPT2 splits text into GPT-2 pretoken spans following the
// classic pattern: 's|'t|'re|'ve|'m|'ll|'d
// | ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+
//
// The whitespace alternatives are applied in that order, which gives
// whitespace runs an asymmetric split: a run of two or more spaces
// immediately followed by a letter, digit or punctuation run gives up
// its very last space to that following token (captured by the " ?"
// prefix on the next rule) and keeps the rest for itself.
func SplitGPT2(text []byte) []Span {
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

		// The number and punct rules only ever absorb a literal
		// leading space.
		leadSpace := 0
		afterCP := cp
		if cp == ' ' {
			nextCP, nextLen := utf8x.Decode(rest[cplen:])
			if nextLen > 0 {
				leadSpace = cplen
				afterCP = nextCP
			}
		}

		// The letter rule absorbs any single leading codepoint that
		// isn't itself a letter, number, or newline, not just a space
		// (match_pattern's
		// cp != '\r' && cp != '\n' && !letter && !number check).
		letterLead := 0
		letterCP, letterCPLen := cp, cplen
		if !isNewline(uint32(cp)) && !uclass.IsLetter(uint32(cp)) && !uclass.IsNumber(uint32(cp)) {
			nextCP, nextLen := utf8x.Decode(rest[cplen:])
			if nextLen > 0 {
				letterLead = cplen
				letterCP, letterCPLen = nextCP, nextLen
			}
		}

		if uclass.IsLetter(uint32(letterCP)) {
			pos += letterLead + letterCPLen
			pos += matchLetters(text[pos:])
			spans = append(spans, Span{start, pos})
			continue
		}

		if uclass.IsNumber(uint32(afterCP)) {
			pos += leadSpace
			pos += matchNumbers(text[pos:], 3)
			spans = append(spans, Span{start, pos})
			continue
		}

		if !uclass.IsWhitespace(uint32(afterCP)) {
			pos += leadSpace
			pos += matchPunctNoWS(text[pos:])
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
				// \s+ at end of input: the whole run, no lookahead to
				// fail on.
				pos = wsEnd
				spans = append(spans, Span{start, pos})
				continue
			}

			// \s+(?!\S): greedy run that must be followed by
			// whitespace or end. Since the run here is immediately
			// followed by a non-whitespace codepoint (wsEnd < n and
			// the scan above stopped precisely there), the lookahead
			// fails for the full run; back off one whitespace
			// codepoint so the final space is left for the next
			// token's optional leading space.
			lastStart := wsEnd
			for lastStart > pos {
				prevStart := lastStart
				for prevStart > pos {
					prevStart--
					if text[prevStart]&0xC0 != 0x80 {
						break
					}
				}
				lastStart = prevStart
				break
			}
			if lastStart > pos {
				pos = lastStart
			} else {
				pos = wsEnd
			}
			spans = append(spans, Span{start, pos})
			continue
		}

		pos += cplen
		spans = append(spans, Span{start, pos})
	}

	return spans
}
