package printer

// BoxArt is the glyph set used to draw grid borders: the vertical and
// horizontal rules, the four corners, the four tee junctions and the cross.
// A style must supply all eleven.
type BoxArt struct {
	Horizontal string
	Vertical   string

	UpperLeft  string
	UpperRight string
	LowerLeft  string
	LowerRight string

	TopTee    string
	BottomTee string
	LeftTee   string
	RightTee  string

	Cross string
}

// UnicodeArt draws borders with box-drawing characters.
var UnicodeArt = BoxArt{
	Horizontal: "─",
	Vertical:   "│",
	UpperLeft:  "┌",
	UpperRight: "┐",
	LowerLeft:  "└",
	LowerRight: "┘",
	TopTee:     "┬",
	BottomTee:  "┴",
	LeftTee:    "├",
	RightTee:   "┤",
	Cross:      "┼",
}

// ASCIIArt draws borders with plain ASCII, for terminals and pipes that
// cannot show box-drawing characters.
var ASCIIArt = BoxArt{
	Horizontal: "-",
	Vertical:   "|",
	UpperLeft:  "+",
	UpperRight: "+",
	LowerLeft:  "+",
	LowerRight: "+",
	TopTee:     "+",
	BottomTee:  "+",
	LeftTee:    "+",
	RightTee:   "+",
	Cross:      "+",
}

// ArtStyle returns the named glyph set, defaulting to Unicode.
func ArtStyle(name string) BoxArt {
	if name == "ascii" {
		return ASCIIArt
	}
	return UnicodeArt
}
