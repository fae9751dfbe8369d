package grid

import "golang.org/x/text/width"

// RuneWidth returns the number of terminal columns a rune occupies: 2 for
// runes classified East Asian Wide or Fullwidth, 1 for everything else
// (Narrow, Halfwidth, Ambiguous, Neutral). Combining marks and variation
// selectors also count as 1; the width table is intentionally based on the
// East Asian Width property alone so that grid output stays column-compatible
// with existing clients that use the same table.
func RuneWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// StringWidth returns the display width of s in terminal columns. This is
// the unit every column-fit decision is made in; it is not a rune count.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}
