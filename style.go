package rotkin

import (
	"fmt"
	"image/color"
	"strings"
)

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":             {0xff, 0x00, 0x00, 0xff},
	"green":           {0x00, 0x80, 0x00, 0xff},
	"blue":            {0x00, 0x00, 0xff, 0xff},
	"cyan":            {0x00, 0xff, 0xff, 0xff},
	"magenta":         {0xff, 0x00, 0xff, 0xff},
	"yellow":          {0xff, 0xff, 0x00, 0xff},
	"white":           {0xff, 0xff, 0xff, 0xff},
	"gray20":          {0x33, 0x33, 0x33, 0xff},
	"gray40":          {0x66, 0x66, 0x66, 0xff},
	"gray":            {0x80, 0x80, 0x80, 0xff},
	"gray60":          {0x99, 0x99, 0x99, 0xff},
	"gray80":          {0xcc, 0xcc, 0xcc, 0xff},
	"black":           {0x00, 0x00, 0x00, 0xff},
	"orange":          {0xff, 0xa5, 0x00, 0xff},
	"purple":          {0x80, 0x00, 0x80, 0xff},
	"brown":           {0xa5, 0x2a, 0x2a, 0xff},
	"pink":            {0xff, 0xc0, 0xcb, 0xff},
	"navy":            {0x00, 0x00, 0x80, 0xff},
	"teal":            {0x00, 0x80, 0x80, 0xff},
	"gold":            {0xff, 0xd7, 0x00, 0xff},
	"crimson":         {0xdc, 0x14, 0x3c, 0xff},
	"skyblue":         {0x87, 0xce, 0xeb, 0xff},
	"royalblue":       {0x41, 0x69, 0xe1, 0xff},
	"steelblue":       {0x46, 0x82, 0xb4, 0xff},
	"firebrick":       {0xb2, 0x22, 0x22, 0xff},
	"darkorange":      {0xff, 0x8c, 0x00, 0xff},
	"forestgreen":     {0x22, 0x8b, 0x22, 0xff},
	"mediumslateblue": {0x7b, 0x68, 0xee, 0xff},
	"slateblue":       {0x6a, 0x5a, 0xcd, 0xff},
	"indianred":       {0xcd, 0x5c, 0x5c, 0xff},
	"goldenrod":       {0xda, 0xa5, 0x20, 0xff},
}

// ParseColor understands "#rrggbb", "#rrggbbaa" and the names in
// BuiltinColors (case insensitive).
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		var r, g, b uint8
		a := uint8(0xff)
		if _, err := fmt.Sscanf(s[1:7], "%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("bad color %q: %w", s, err)
		}
		if len(s) == 9 {
			if _, err := fmt.Sscanf(s[7:9], "%02x", &a); err != nil {
				return nil, fmt.Errorf("bad color %q: %w", s, err)
			}
		}
		return color.NRGBA{r, g, b, a}, nil
	}
	if col, ok := BuiltinColors[strings.ToLower(s)]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

// String2Color is ParseColor with a conspicuous fallback for unknown colors.
func String2Color(s string) color.Color {
	if c, err := ParseColor(s); err == nil {
		return c
	}
	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}

// Palette parses a list of colors.
func Palette(names []string) ([]color.Color, error) {
	p := make([]color.Color, len(names))
	for i, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		p[i] = c
	}
	return p, nil
}

// SetAlpha returns c with opacity a in [0,1].
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a * 0xff)}
}
