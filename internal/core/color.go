package core

import "image/color"

// Color is a palette entry used by every drawing surface.
// Terminal surfaces map it to an ANSI 256-color code, pixel surfaces to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorGray
	ColorYellow
	ColorSkyDay
	ColorSkyNight
)

var palette = map[Color]struct {
	ansi string
	rgba color.RGBA
}{
	ColorBlack:    {"16", color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}},
	ColorWhite:    {"231", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	ColorGray:     {"102", color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}},
	ColorYellow:   {"221", color.RGBA{R: 0xfe, G: 0xda, B: 0x3e, A: 0xff}},
	ColorSkyDay:   {"117", color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}},
	ColorSkyNight: {"17", color.RGBA{R: 0x0b, G: 0x1d, B: 0x3a, A: 0xff}},
}

// ANSI returns the 256-color code for this color, or "" for ColorDefault.
func (c Color) ANSI() string {
	return palette[c].ansi
}

// RGBA returns the pixel color. ColorDefault is transparent.
func (c Color) RGBA() color.RGBA {
	return palette[c].rgba
}
