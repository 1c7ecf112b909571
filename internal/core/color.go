package core

// Color represents a foreground color for a screen cell. The platform layer
// maps these to terminal colors; games only pick from the palette.
type Color uint8

// Palette. Games use these to mark tile states: dangling connectors red,
// solved boards green, the cursor bright yellow.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorGray
)
