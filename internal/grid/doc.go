// Package grid renders a list of calendar events into a bordered text grid,
// one column per visible weekday, in week or month flavor.
//
// The renderer is a pure transform: it consumes a pre-sorted, pre-localized
// event list plus a style, and writes tagged text fragments to an injected
// sink. It performs no other I/O, never mutates its input and holds no state
// across invocations.
//
// Column fitting is done in terminal display columns (East Asian Wide and
// Fullwidth runes count double), with word-boundary wrapping inside cells
// and a rune-by-rune fallback for words wider than a cell. A one-time "now"
// marker is drawn as a dashed divider ahead of the next upcoming event, or
// by recoloring the event currently in progress.
package grid
