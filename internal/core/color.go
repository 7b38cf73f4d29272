package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette shared by the board renderer and the terminal layer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// tileColors cycles through warm-to-cool hues as tile values double.
var tileColors = []Color{
	ColorWhite,         // 2
	ColorBrightWhite,   // 4
	ColorYellow,        // 8
	ColorOrange,        // 16
	ColorRed,           // 32
	ColorBrightRed,     // 64
	ColorBrightYellow,  // 128
	ColorGreen,         // 256
	ColorBrightGreen,   // 512
	ColorCyan,          // 1024
	ColorBrightMagenta, // 2048
	ColorMagenta,
	ColorBlue,
	ColorBrightBlue,
	ColorBrightCyan,
}

// TileColor returns the display color for a tile value.
// Values past the palette reuse the last entry.
func TileColor(value int) Color {
	if value < 2 {
		return ColorGray
	}
	idx := -1
	for v := value; v > 1; v >>= 1 {
		idx++
	}
	return tileColors[min(idx, len(tileColors)-1)]
}
