package render

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paintball/component"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256 ColorMode = iota
	ColorModeTrueColor
)

// ParseColorMode resolves a config value, "auto" inspects the environment
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// DetectColorMode checks COLORTERM and TERM for 24-bit support
func DetectColorMode() ColorMode {
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}
	for _, env := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "WEZTERM_PANE"} {
		if os.Getenv(env) != "" {
			return ColorModeTrueColor
		}
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") || strings.Contains(term, "24bit") || strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// RGB stores explicit 8-bit channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

var RGBBlack = RGB{}

// Blend returns src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

var teamRGB = [component.TeamCount]RGB{
	{230, 60, 60},
	{70, 130, 240},
	{80, 200, 90},
	{235, 200, 60},
}

// teamPalette256 are xterm indices close to teamRGB
var teamPalette256 = [component.TeamCount]tcell.Color{
	tcell.PaletteColor(167),
	tcell.PaletteColor(69),
	tcell.PaletteColor(77),
	tcell.PaletteColor(221),
}

// Palette maps teams to tcell colors for one color mode
type Palette struct {
	mode ColorMode
}

func NewPalette(mode ColorMode) Palette {
	return Palette{mode: mode}
}

// Team returns the full-strength team color
func (p Palette) Team(t component.Team) tcell.Color {
	i := int(t) % component.TeamCount
	if p.mode == ColorMode256 {
		return teamPalette256[i]
	}
	c := teamRGB[i]
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Decal returns a darkened team color for ground splashes
func (p Palette) Decal(t component.Team) tcell.Color {
	if p.mode == ColorMode256 {
		return tcell.ColorGray
	}
	c := RGBBlack.Blend(teamRGB[int(t)%component.TeamCount], 0.45)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
