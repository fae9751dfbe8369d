// Package printer owns terminal output: a color-tag-aware writer used as
// the render sink, and the border glyph sets the grid is drawn with.
package printer
