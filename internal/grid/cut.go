package grid

import "strings"

// Cut finds the longest prefix of text that fits into cellWidth terminal
// columns and returns its display width together with the number of runes in
// it. The rules, in order:
//
//  1. A line break at rune offset i <= cellWidth wins: the prefix before the
//     break is the cut. The break itself is not part of the returned count;
//     the caller's whitespace trim consumes it.
//  2. If the whole text fits, take all of it.
//  3. Otherwise cut at a word boundary, counting one column per separating
//     space. If even the first word overflows the cell, cut inside it rune
//     by rune.
//
// Cut always makes progress (the rune count is at least 1 for non-empty text
// and cellWidth >= 1, unless rule 1 fires on a leading break). The returned
// width can exceed cellWidth by one column only when a double-width rune
// straddles the boundary in the rune-by-rune fallback; callers must tolerate
// that rather than loop forever looking for a perfect fit.
func Cut(text string, cellWidth int) (int, int) {
	runes := []rune(text)

	for i, r := range runes {
		if r != '\n' {
			continue
		}
		if i <= cellWidth {
			return StringWidth(string(runes[:i])), i
		}
		break
	}

	if printLen := StringWidth(text); printLen <= cellWidth {
		return printLen, len(runes)
	}

	return nextCut(text, cellWidth)
}

// nextCut walks words left to right accumulating their widths plus one
// column per separator, and stops before the word that would overflow.
func nextCut(text string, cellWidth int) (int, int) {
	printLen := 0
	total := 0

	words := strings.Fields(text)
	for i, word := range words {
		wl := StringWidth(word)
		if wl+printLen >= cellWidth {
			// this many words is too many, cut at the previous word
			cutIdx := len([]rune(strings.Join(words[:i], " ")))
			if cutIdx == 0 {
				// first word is too long, we must cut inside it
				return wordCut(word, cellWidth)
			}
			return printLen, cutIdx
		}
		total += wl
		printLen = total + i // +i for the spaces between words
	}

	// Unreachable when the caller already ruled out a full fit; kept so a
	// bad width still terminates.
	return printLen, len([]rune(strings.Join(words, " ")))
}

func wordCut(word string, cellWidth int) (int, int) {
	stop := 0
	for i, r := range []rune(word) {
		stop += RuneWidth(r)
		if stop >= cellWidth {
			return stop, i + 1
		}
	}
	return stop, len([]rune(word))
}
