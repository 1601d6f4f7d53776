package compositor

import (
	"fmt"
	"image/color"
)

// Color is a straight-alpha color with float channels in [0,1].
// Values outside that range are accepted and clamped at use.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Common colors.
var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{1, 1, 1, 0}
)

func clamp01(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamped returns c with every channel clamped to [0,1]. NaN becomes 0.
func (c Color) Clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// NRGBA converts the clamped color to 8-bit straight alpha.
func (c Color) NRGBA() color.NRGBA {
	c = c.Clamped()
	return color.NRGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}
}

// Hex formats the clamped color as #RRGGBBAA.
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// BlendMode selects how an overlay color is applied to the base icon.
type BlendMode int

const (
	// BlendAdd adds the alpha-scaled overlay color to each channel, saturating at 255.
	BlendAdd BlendMode = iota
	// BlendMultiply moves each channel toward channel*overlay by the overlay alpha.
	BlendMultiply
)

var blendNames = map[BlendMode]string{
	BlendAdd:      "add",
	BlendMultiply: "multiply",
}

func (m BlendMode) String() string {
	if s, ok := blendNames[m]; ok {
		return s
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// ParseBlendMode returns the mode named s ("add" or "multiply").
func ParseBlendMode(s string) (BlendMode, error) {
	for m, name := range blendNames {
		if name == s {
			return m, nil
		}
	}
	return BlendAdd, fmt.Errorf("unknown blend mode %q", s)
}
