package theme

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Palette for the in-game social windows.
var (
	BG            = rl.NewColor(0x12, 0x16, 0x1C, 255) // #12161C
	Panel         = rl.NewColor(0x1A, 0x1F, 0x27, 242) // #1A1F27, slightly translucent
	PanelRaised   = rl.NewColor(0x24, 0x2B, 0x35, 255) // #242B35
	Border        = rl.NewColor(0x3A, 0x45, 0x52, 255) // #3A4552
	BorderOuter   = rl.NewColor(0x8C, 0x74, 0x4A, 255) // #8C744A
	Divider       = rl.NewColor(0x2A, 0x32, 0x3C, 255) // #2A323C
	TextPrimary   = rl.NewColor(0xEE, 0xEA, 0xE0, 255) // #EEEAE0
	TextSecondary = rl.NewColor(0xA9, 0xB2, 0xBC, 255) // #A9B2BC
	TextMuted     = rl.NewColor(0x7A, 0x84, 0x8E, 255) // #7A848E
	AccentGold    = rl.NewColor(0xE0, 0xB0, 0x4C, 255) // #E0B04C
	AccentTeal    = rl.NewColor(0x3F, 0x8F, 0x8A, 255) // #3F8F8A
	Danger        = rl.NewColor(0xC0, 0x4B, 0x3E, 255) // #C04B3E
	Scrim         = rl.NewColor(0x00, 0x00, 0x00, 150)
	TooltipFill   = rl.NewColor(0x0C, 0x0E, 0x12, 235)
)

var named = map[string]rl.Color{
	"lightblue": rl.NewColor(0x9C, 0xCF, 0xFF, 255),
	"yellow":    rl.NewColor(0xFF, 0xE0, 0x66, 255),
	"white":     TextPrimary,
	"grey":      TextMuted,
	"gray":      TextMuted,
	"green":     rl.NewColor(0x7C, 0xD9, 0x7A, 255),
	"red":       rl.NewColor(0xFF, 0x6B, 0x5E, 255),
	"orange":    rl.NewColor(0xFF, 0xA4, 0x4F, 255),
	"pink":      rl.NewColor(0xF5, 0x9B, 0xD6, 255),
}

// NamedColor maps a social-log color name to the palette. Unknown names fall
// back to the primary text color.
func NamedColor(name string) rl.Color {
	if c, ok := named[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return TextPrimary
}
